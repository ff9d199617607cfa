package emit

import (
	"strconv"
	"strings"

	"github.com/arolek/stepfuse/internal/entity"
)

// formatValue renders a single entity.Value per spec: integers base
// 10, reals with a decimal point always present using the shortest
// round-tripping representation, strings single-quoted with embedded
// quotes doubled and non-printable bytes escaped, enums dotted, refs
// as #N, Omitted as $, Redeclared as *, lists parenthesized, Typed as
// NAME(args).
func formatValue(v entity.Value) string {
	switch v.Kind {
	case entity.KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case entity.KindReal:
		return formatReal(v.Real)
	case entity.KindString:
		return formatString(v.Str)
	case entity.KindBinary:
		return `"` + v.Str + `"`
	case entity.KindEnum:
		return "." + v.Enum + "."
	case entity.KindRef:
		return "#" + strconv.FormatInt(int64(v.Ref), 10)
	case entity.KindOmitted:
		return "$"
	case entity.KindRedeclared:
		return "*"
	case entity.KindList:
		return "(" + formatArgs(v.List) + ")"
	case entity.KindTyped:
		return v.Name + "(" + formatArgs(v.Args) + ")"
	default:
		return "$"
	}
}

func formatArgs(vs []entity.Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, ",")
}

// formatReal uses the shortest decimal representation that
// round-trips through strconv.ParseFloat, then guarantees a decimal
// point is present even for integral values (Part 21 requires one).
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += "."
	}
	// Part 21 reals spell the exponent as E, not Go's lowercase e, and
	// require a decimal point before it (e.g. "1.E+06", not "1e+06").
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa, exp := s[:i], s[i+1:]
		if !strings.Contains(mantissa, ".") {
			mantissa += "."
		}
		if len(exp) > 0 && exp[0] != '+' && exp[0] != '-' {
			exp = "+" + exp
		}
		s = mantissa + "E" + exp
	}
	return s
}

// formatString single-quotes s, doubling embedded quotes and escaping
// non-printable bytes per Part 21 Annex D (\X\ followed by two
// uppercase hex digits for 8-bit values outside the printable ASCII
// range).
func formatString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'':
			b.WriteString("''")
		case c < 0x20 || c > 0x7e:
			b.WriteString(`\X\`)
			if c < 0x10 {
				b.WriteByte('0')
			}
			b.WriteString(strings.ToUpper(strconv.FormatInt(int64(c), 16)))
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
