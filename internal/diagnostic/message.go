package diagnostic

import (
	"fmt"
	"strconv"
	"strings"
)

// Named supplies a value for a "{name}" placeholder.
type Named struct {
	Name  string
	Value any
}

// Message is a user-supplied failure message: a template and its arguments.
type Message struct {
	Template string
	Args     []any
}

// NewMessage builds a Message from the variadic arguments the entry points
// accept: a template followed by its arguments. It returns nil when args is
// empty. A non-string first argument is rendered as the whole message.
func NewMessage(args []any) *Message {
	if len(args) == 0 {
		return nil
	}

	tmpl, ok := args[0].(string)
	if !ok {
		return &Message{Template: "{}", Args: args[:1]}
	}

	return &Message{Template: tmpl, Args: args[1:]}
}

// Format expands the template. debug renders "{:?}" slots.
//
// Placeholders are "{}" for the next positional argument, "{0}" for an
// explicit one, "{name}" for a Named argument, each optionally suffixed with
// ":?" for debug rendering; "{{" and "}}" are literal braces. A template
// without placeholders that contains "%" verbs is formatted with fmt.Sprintf.
// Placeholders without a matching argument render as "%!{slot}(MISSING)".
func (m *Message) Format(debug func(any) string) string {
	if m == nil {
		return ""
	}

	if !strings.ContainsAny(m.Template, "{}") {
		if strings.Contains(m.Template, "%") && len(m.Args) > 0 {
			return fmt.Sprintf(m.Template, m.Args...)
		}

		return m.Template
	}

	var (
		positional []any
		named      = map[string]any{}
	)

	for _, a := range m.Args {
		if n, ok := a.(Named); ok {
			named[n.Name] = n.Value
			continue
		}

		positional = append(positional, a)
	}

	var (
		sb   strings.Builder
		next int
		src  = m.Template
	)

	for i := 0; i < len(src); i++ {
		c := src[i]

		switch {
		case c == '{' && i+1 < len(src) && src[i+1] == '{':
			sb.WriteByte('{')
			i++

		case c == '}' && i+1 < len(src) && src[i+1] == '}':
			sb.WriteByte('}')
			i++

		case c == '{':
			end := strings.IndexByte(src[i:], '}')
			if end < 0 {
				sb.WriteString(src[i:])
				return sb.String()
			}

			slot := src[i+1 : i+end]
			sb.WriteString(fill(slot, positional, named, &next, debug))

			i += end

		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

func fill(slot string, positional []any, named map[string]any, next *int, debug func(any) string) string {
	key, spec, _ := strings.Cut(slot, ":")
	key = strings.TrimSpace(key)

	var (
		v  any
		ok bool
	)

	switch {
	case key == "":
		if *next < len(positional) {
			v, ok = positional[*next], true
		}

		*next++

	case key[0] >= '0' && key[0] <= '9':
		if n, err := strconv.Atoi(key); err == nil && n < len(positional) {
			v, ok = positional[n], true
		}

	default:
		v, ok = named[key]
	}

	if !ok {
		return "%!{" + slot + "}(MISSING)"
	}

	if strings.TrimSpace(spec) == "?" && debug != nil {
		return debug(v)
	}

	return fmt.Sprint(v)
}
