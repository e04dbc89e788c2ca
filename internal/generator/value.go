package generator

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// formatValue renders a spec value as a source literal. This is the
// single literal-construction rule shared by the condition and action
// compilers and the response builder:
//
//   - empty or absent value: empty-string literal
//   - string containing an interpolation marker: template literal
//   - plain string: quoted literal with internal quotes escaped
//   - anything else: emitted as-is and assumed to be valid source text
//
// The as-is branch is a trust boundary. Non-string values must never
// carry attacker-controlled text.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "''"
	case string:
		if val == "" {
			return "''"
		}
		if strings.Contains(val, "${") {
			return "`" + val + "`"
		}
		if strings.HasPrefix(val, "`") {
			return val
		}
		return "'" + strings.ReplaceAll(val, "'", "\\'") + "'"
	default:
		return rawValue(v)
	}
}

// rawValue renders a non-string value as source text without quoting.
func rawValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "''"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		if data, err := json.Marshal(v); err == nil {
			return string(data)
		}
		return fmt.Sprintf("%v", v)
	}
}
