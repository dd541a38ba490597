package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osmike/memobench"
)

func main() {
	ctx := context.Background()
	cached := memobench.NewMemoizedFunction(memobench.SimulatedCall, nil, nil)

	fmt.Printf("[%v] Starting simulated remote call...\n", time.Now().Truncate(time.Second))
	res, err := cached(ctx, 2000*time.Millisecond, 6, 7)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("[%v] Remote call completed, result - %g.\n", time.Now().Truncate(time.Second), res)

	fmt.Printf("[%v] Starting memoized remote call...\n", time.Now().Truncate(time.Second))
	res, err = cached(ctx, 2000*time.Millisecond, 6, 7)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("[%v] Remote call completed, result cached - %g.\n", time.Now().Truncate(time.Second), res)
}
