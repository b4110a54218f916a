package cjlib

import (
	"math"
	"strconv"
	"strings"
)

// serChild is one pending member of a container being serialised: a
// key/value pair for Objects (key empty for Array elements).
type serChild struct {
	key   string
	value *Value
}

// serFrame mirrors the parser's frame but runs in reverse: it holds the
// accumulated output fragment for one in-progress container, its kind,
// a pending-children Queue (pre-ordered for Objects via
// OrderedMap.Keys, insertion-ordered for Arrays), and the key under
// which the finished fragment attaches to its parent (empty at root).
type serFrame struct {
	kind     frameKind
	key      string
	fragment strings.Builder
	pending  *Queue[serChild]
}

func newSerFrame(v *Value, key string) *serFrame {
	f := &serFrame{key: key, pending: NewQueue[serChild]()}
	if v.Type() == Object {
		f.kind = frameObject
		for _, k := range v.objectValue.Keys() {
			item, _ := v.objectValue.Search(k)
			f.pending.Enqueue(serChild{key: k, value: item})
		}
		return f
	}
	f.kind = frameArray
	v.arrayValue.Each(func(_ int, item *Value) bool {
		f.pending.Enqueue(serChild{value: item})
		return true
	})
	return f
}

func (f *serFrame) wrap() string {
	if f.kind == frameObject {
		return "{" + f.fragment.String() + "}"
	}
	return "[" + f.fragment.String() + "]"
}

// appendMember writes one already-formatted child (text) into f's
// fragment, prefixed by "key:" for Objects, and followed by a trailing
// comma unless f's pending queue is now empty.
func (f *serFrame) appendMember(key, text string) {
	if f.kind == frameObject {
		f.fragment.WriteString(quoteJSONString(key))
		f.fragment.WriteByte(':')
	}
	f.fragment.WriteString(text)
	if !f.pending.IsEmpty() {
		f.fragment.WriteByte(',')
	}
}

// Serialize converts v into its JSON wire form, iteratively: an explicit
// Stack of serFrame values plays the role a call stack otherwise would,
// so no Go call-stack recursion occurs regardless of v's nesting depth.
// Scalar roots are formatted directly without any frame. Refuses to
// serialise a Number holding ±Inf or NaN.
func Serialize(v *Value) ([]byte, error) {
	switch v.Type() {
	case Null, Boolean, String, Number, Integer:
		s, err := formatScalar(v)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	}

	frames := NewStack[*serFrame]()
	frames.Push(newSerFrame(v, ""))

	for {
		top, ok := frames.Peek()
		if !ok {
			return nil, newSerializeErr(InvalidJson, "", "")
		}

		child, ok := top.pending.Dequeue()
		if !ok {
			wrapped := top.wrap()
			frames.Pop()
			parent, ok := frames.Peek()
			if !ok {
				return []byte(wrapped), nil
			}
			parent.appendMember(top.key, wrapped)
			continue
		}

		if child.value.Type() == Object || child.value.Type() == Array {
			frames.Push(newSerFrame(child.value, child.key))
			continue
		}

		text, err := formatScalar(child.value)
		if err != nil {
			return nil, err
		}
		top.appendMember(child.key, text)
	}
}

// formatScalar renders one non-container Value as JSON text.
func formatScalar(v *Value) (string, error) {
	switch v.Type() {
	case Null:
		return "null", nil
	case Boolean:
		b, _ := v.AsBoolean()
		if b {
			return "true", nil
		}
		return "false", nil
	case String:
		s, _ := v.AsString()
		return quoteJSONString(s), nil
	case Integer:
		i, _ := v.AsInteger()
		return strconv.FormatInt(i, 10), nil
	case Number:
		f, _ := v.AsNumber()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return "", newSerializeErr(InvalidNumber, "", strconv.FormatFloat(f, 'g', -1, 64))
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			// Force a decimal point so re-parsing recovers Number, not
			// Integer. The Integer tag is purely presentational and must
			// not leak into Number's round trip.
			s += ".0"
		}
		return s, nil
	}
	return "", newSerializeErr(InvalidType, "", v.String())
}

// quoteJSONString escapes the minimum required for valid JSON output:
// the quote and backslash characters, and C0 control bytes. Everything
// else, including multi-byte UTF-8 sequences, passes through verbatim.
// parseStringLiteral decodes every escape written here, so the parser
// recovers the original string.
func quoteJSONString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20:
			b.WriteString(`\u00`)
			const hex = "0123456789abcdef"
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0xf])
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
