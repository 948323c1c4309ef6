package bon

import (
	"strconv"
	"strings"
)

// Format returns a human-readable rendering of v for logs, the REPL and
// error messages.  It is not the BON encoding (see package codec).
//
//	int     42              float   1.5, 42.0
//	atom    ok, 'Not Bare'  string  "text"
//	binary  <<1,2,3>>       tuple   {a,b}
//	list    [1,2]           array   [1, 2]
//	object  { k: v }        map     #{k => v}
//	set     Set{1,2}
func Format(v Value) string {
	var b strings.Builder
	format(&b, v)
	return b.String()
}

func format(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case Int:
		b.WriteString(v.String())
	case Float:
		b.WriteString(v.String())
	case Atom:
		b.WriteString(formatAtom(v))
	case String:
		b.WriteString(formatString(string(v)))
	case Binary:
		b.WriteString(formatBinary(v))
	case Tuple:
		formatSeq(b, "{", ",", "}", v.fields)
	case *List:
		b.WriteByte('[')
		for l := v; l != nil; l = l.tail {
			if l != v {
				b.WriteByte(',')
			}
			format(b, l.head)
		}
		b.WriteByte(']')
	case Array:
		formatSeq(b, "[", ", ", "]", v)
	case Object:
		if len(v) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{ ")
		for k, key := range v.Keys() {
			if k > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatString(key))
			b.WriteString(": ")
			format(b, v[key])
		}
		b.WriteString(" }")
	case *Map:
		b.WriteString("#{")
		first := true
		v.Range(func(key, val Value) bool {
			if !first {
				b.WriteByte(',')
			}
			first = false
			format(b, key)
			b.WriteString(" => ")
			format(b, val)
			return true
		})
		b.WriteByte('}')
	case *Set:
		formatSeq(b, "Set{", ",", "}", v.Values())
	default:
		b.WriteString("<invalid>")
	}
}

func formatSeq(b *strings.Builder, open, sep, close string, vals []Value) {
	b.WriteString(open)
	for k, v := range vals {
		if k > 0 {
			b.WriteString(sep)
		}
		format(b, v)
	}
	b.WriteString(close)
}

// formatAtom writes names that start with a lowercase letter and continue
// with letters, digits, '_' or '@' bare and quotes everything else.
func formatAtom(a Atom) string {
	name := a.Name()
	if isBareAtom(name) {
		return name
	}
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range name {
		if r == '\'' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

func isBareAtom(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	for k := 1; k < len(name); k++ {
		c := name[k]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '_' || c == '@') {
			return false
		}
	}
	return true
}

func formatString(s string) string {
	return QuotedString(s)
}

func formatBinary(b Binary) string {
	var sb strings.Builder
	sb.WriteString("<<")
	for k, c := range b.b {
		if k > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	sb.WriteString(">>")
	return sb.String()
}

func formatTuple(t Tuple) string   { return Format(t) }
func formatList(l *List) string    { return Format(l) }
func formatArray(a Array) string   { return Format(a) }
func formatObject(o Object) string { return Format(o) }
func formatMap(m *Map) string      { return Format(m) }
func formatSet(s *Set) string      { return Format(s) }
