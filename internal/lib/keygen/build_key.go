// Package keygen builds deterministic cache keys from call operands.
//
// Operands are encoded one by one and joined with a separator that cannot
// appear inside an encoded operand boundary, so (1, 23) and (12, 3) never
// share a key. Keys longer than maxLen are replaced by their SHA-256 digest.
package keygen

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/osmike/memobench/internal/lib/errs"
)

// Maximum length for keys before hashing.
const maxLen = 100

// Separator joins encoded operands.
const Separator = "-"

// ErrBuildKey indicates a failure to build a cache key from the operands.
var ErrBuildKey = fmt.Errorf("error building cache key")

// BuildKey returns a deterministic string key for the given operands.
//
// Integers and floats are written in decimal, booleans as "b:true"/"b:false"
// and strings quoted with a "s:" prefix. Any other operand type is rejected
// with ErrBuildKey.
func BuildKey(operands ...any) (string, error) {
	parts := make([]string, len(operands))
	for i, op := range operands {
		enc, err := encodeValue(op)
		if err != nil {
			return "", errs.NewError(ErrBuildKey, map[string]any{
				"operation": "building cache key",
				"position":  i,
				"value":     op,
				"error":     err,
			})
		}
		parts[i] = enc
	}

	key := strings.Join(parts, Separator)
	if len(key) > maxLen {
		return hashBytes([]byte(key)), nil
	}
	return key, nil
}

func encodeValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "nil", nil
	case int:
		return strconv.Itoa(val), nil
	case int8, int16, int32, int64:
		return fmt.Sprint(val), nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(val), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case bool:
		return "b:" + strconv.FormatBool(val), nil
	case string:
		return "s:" + strconv.Quote(val), nil
	default:
		return "", fmt.Errorf("unsupported operand type %T", v)
	}
}

// hashBytes hashes the byte slice using SHA-256 and returns the hex string.
func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
