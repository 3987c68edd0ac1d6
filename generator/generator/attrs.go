package generator

import (
	"fmt"
	"strconv"
	"strings"
)

// Directive is the comment marker the front-end scans for.
const Directive = "//v8glue:method"

// MethodAttrs is the parsed attribute configuration of one directive.
type MethodAttrs struct {
	JSName  string // empty means default to the function name
	State   string // empty means no state lookup
	Promise bool
	Fast    bool
}

// ParseAttrs parses the text following the directive marker. Accepted
// forms are space-separated `state=Type`, `name="jsName"`, `promise` and
// `fast`, or a single bare string literal as shorthand for name.
func ParseAttrs(text string) (MethodAttrs, error) {
	attrs := MethodAttrs{}

	text = strings.TrimSpace(text)
	if text == "" {
		return attrs, nil
	}

	// Bare string literal shorthand: //v8glue:method "jsName"
	if strings.HasPrefix(text, "\"") && !strings.Contains(text, " ") {
		name, err := strconv.Unquote(text)
		if err != nil {
			return attrs, fmt.Errorf("malformed name literal %s", text)
		}
		attrs.JSName = name
		return attrs, nil
	}

	for _, field := range strings.Fields(text) {
		key, value, hasValue := strings.Cut(field, "=")
		switch key {
		case "state":
			if !hasValue || value == "" {
				return attrs, fmt.Errorf("state attribute requires a type, expected state=Type")
			}
			if attrs.State != "" {
				return attrs, fmt.Errorf("duplicate state attribute")
			}
			attrs.State = value
		case "name":
			if !hasValue || value == "" {
				return attrs, fmt.Errorf("name attribute requires a value, expected name=\"jsName\"")
			}
			if strings.HasPrefix(value, "\"") {
				unquoted, err := strconv.Unquote(value)
				if err != nil {
					return attrs, fmt.Errorf("malformed name literal %s", value)
				}
				value = unquoted
			}
			if attrs.JSName != "" {
				return attrs, fmt.Errorf("duplicate name attribute")
			}
			attrs.JSName = value
		case "promise":
			if hasValue {
				return attrs, fmt.Errorf("promise attribute takes no value")
			}
			attrs.Promise = true
		case "fast":
			if hasValue {
				return attrs, fmt.Errorf("fast attribute takes no value")
			}
			attrs.Fast = true
		default:
			return attrs, fmt.Errorf("unknown attribute %q, expected state=Type, name=\"jsName\", promise or fast", key)
		}
	}

	return attrs, nil
}
