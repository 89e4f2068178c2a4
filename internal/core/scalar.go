package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	integerPattern = regexp.MustCompile(`^-?\d+$`)
	decimalPattern = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// CoerceScalar converts one raw value token into its typed form.
// Precedence: double-quoted string, boolean literal, empty (nil),
// integer, decimal, then string verbatim. A quoted token is never
// re-coerced, so `"true"` stays the string true, and a token like
// 12.13.14 misses the decimal pattern and falls through to string.
func CoerceScalar(token string) any {
	trimmed := strings.TrimSpace(token)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) {
		return trimmed[1 : len(trimmed)-1]
	}
	switch trimmed {
	case "true":
		return true
	case "false":
		return false
	case "":
		return nil
	}
	if integerPattern.MatchString(trimmed) {
		if parsed, err := strconv.Atoi(trimmed); err == nil {
			return parsed
		}
	}
	if decimalPattern.MatchString(trimmed) {
		if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return parsed
		}
	}
	return trimmed
}

// scalarString renders a coerced scalar back to text for fields the
// lock model stores as strings. The round trip is deterministic: the
// same scalar always renders the same text.
func scalarString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
