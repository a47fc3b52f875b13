package i18n

import (
	"fmt"
	"maps"
	"strings"
)

// M holds named interpolation variables.
type M map[string]any

// Interpolate substitutes named conversions in template with values from vars.
//
// The template syntax is the one used by gettext catalogs of Python
// projects: "%(name)s", "%(num)d", "%(price).2f", and "%%" for a literal
// percent sign. Flags, width and precision are supported. Supported
// conversions are s, r, d, i, f, F, e, E, g, G, x, X, o and c.
//
// A conversion naming a missing variable, a conversion without a name, an
// unknown conversion or a value of the wrong type returns ErrFormatMismatch.
//
// Example:
//
//	template: "%(name)s has %(num)d new messages"
//	vars: M{"name": "Anna", "num": 5}
//	returns: "Anna has 5 new messages"
func Interpolate(template string, vars M) (string, error) {
	if !strings.Contains(template, "%") {
		return template, nil
	}

	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		c := template[i]
		if c != '%' {
			b.WriteByte(c)
			i++
			continue
		}

		if i+1 < len(template) && template[i+1] == '%' {
			b.WriteByte('%')
			i += 2
			continue
		}

		conv, next, err := parseConversion(template, i)
		if err != nil {
			return "", err
		}

		value, ok := vars[conv.name]
		if !ok {
			return "", fmt.Errorf("%w: missing variable %q in %q", ErrFormatMismatch, conv.name, template)
		}

		out, err := conv.format(value)
		if err != nil {
			return "", fmt.Errorf("%w: %q in %q", err, conv.name, template)
		}
		b.WriteString(out)
		i = next
	}

	return b.String(), nil
}

// mergeVars flattens variable maps; later maps win.
func mergeVars(vars ...M) M {
	merged := make(M)
	for _, v := range vars {
		maps.Copy(merged, v)
	}
	return merged
}

type conversion struct {
	name  string
	flags string
	width string
	prec  string
	verb  byte
}

// parseConversion reads the conversion starting at template[start] == '%'
// and returns it with the index of the first byte after it.
func parseConversion(template string, start int) (conversion, int, error) {
	var conv conversion
	i := start + 1

	if i >= len(template) || template[i] != '(' {
		return conv, 0, fmt.Errorf("%w: unnamed conversion at offset %d in %q", ErrFormatMismatch, start, template)
	}
	end := strings.IndexByte(template[i:], ')')
	if end < 0 {
		return conv, 0, fmt.Errorf("%w: unterminated variable name in %q", ErrFormatMismatch, template)
	}
	conv.name = template[i+1 : i+end]
	i += end + 1

	j := i
	for j < len(template) && strings.IndexByte("-+ #0", template[j]) >= 0 {
		j++
	}
	conv.flags = template[i:j]

	i = j
	for j < len(template) && isDigit(template[j]) {
		j++
	}
	conv.width = template[i:j]

	if j < len(template) && template[j] == '.' {
		i = j
		j++
		for j < len(template) && isDigit(template[j]) {
			j++
		}
		conv.prec = template[i:j]
	}

	if j >= len(template) {
		return conv, 0, fmt.Errorf("%w: incomplete conversion for %q in %q", ErrFormatMismatch, conv.name, template)
	}
	conv.verb = template[j]
	return conv, j + 1, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (c conversion) goFormat(verb byte) string {
	return "%" + c.flags + c.width + c.prec + string(verb)
}

func (c conversion) format(value any) (string, error) {
	switch c.verb {
	case 's':
		return fmt.Sprintf(c.goFormat('v'), value), nil
	case 'r':
		if s, ok := value.(string); ok {
			return fmt.Sprintf(c.goFormat('q'), s), nil
		}
		return fmt.Sprintf(c.goFormat('v'), value), nil
	case 'd', 'i':
		n, ok := toInt(value)
		if !ok {
			return "", fmt.Errorf("%w: %%%c requires a number, got %T", ErrFormatMismatch, c.verb, value)
		}
		return fmt.Sprintf(c.goFormat('d'), n), nil
	case 'x', 'X', 'o':
		n, ok := toInt(value)
		if !ok {
			return "", fmt.Errorf("%w: %%%c requires a number, got %T", ErrFormatMismatch, c.verb, value)
		}
		return fmt.Sprintf(c.goFormat(c.verb), n), nil
	case 'f', 'F', 'e', 'E', 'g', 'G':
		f, ok := toFloat(value)
		if !ok {
			return "", fmt.Errorf("%w: %%%c requires a number, got %T", ErrFormatMismatch, c.verb, value)
		}
		verb := c.verb
		if verb == 'F' {
			verb = 'f'
		}
		if c.prec == "" && (verb == 'f' || verb == 'e' || verb == 'E') {
			c.prec = ".6"
		}
		return fmt.Sprintf(c.goFormat(verb), f), nil
	case 'c':
		switch v := value.(type) {
		case string:
			if len([]rune(v)) != 1 {
				return "", fmt.Errorf("%w: %%c requires a single character", ErrFormatMismatch)
			}
			return fmt.Sprintf(c.goFormat('s'), v), nil
		default:
			n, ok := toInt(value)
			if !ok {
				return "", fmt.Errorf("%w: %%c requires a character, got %T", ErrFormatMismatch, value)
			}
			return fmt.Sprintf(c.goFormat('c'), rune(n)), nil
		}
	default:
		return "", fmt.Errorf("%w: unsupported conversion %%%c", ErrFormatMismatch, c.verb)
	}
}

func toInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float32:
		return int64(v), true
	case float64:
		return int64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		n, ok := toInt(value)
		return float64(n), ok
	}
}
