package command

import (
	"fmt"
	"slices"
	"strings"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func LogLevelValidator(value any) error {
	var validLevels = []string{"debug", "info", "warn", "error", "fatal"}
	if !slices.Contains(validLevels, strings.ToLower(value.(string))) {
		return fmt.Errorf("must be one of %v", validLevels)
	}
	return nil
}

func NonNegativeValidator(value any) error {
	if value.(int) < 0 {
		return fmt.Errorf("must not be negative, got %d", value)
	}
	return nil
}
