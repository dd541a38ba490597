package errs

import (
	"fmt"
	"sort"
	"strings"
)

// NewError wraps an error with additional context fields for structured error reporting.
//
//   - errType: The sentinel error to wrap. errors.Is keeps matching it.
//   - kv: Key-value pairs providing additional context. Rendered in key order.
//
// Returns an error that includes both the original error and the provided fields.
func NewError(errType error, kv map[string]any) error {
	if len(kv) == 0 {
		return fmt.Errorf("[memobench error], [%w]", errType)
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var details strings.Builder
	for _, k := range keys {
		switch val := kv[k].(type) {
		case error:
			fmt.Fprintf(&details, "%s: %v; ", k, val.Error())
		default:
			fmt.Fprintf(&details, "%s: %v; ", k, val)
		}
	}
	return fmt.Errorf("[memobench error], [%w], details: [%s]", errType, details.String())
}
