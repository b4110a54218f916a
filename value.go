// Package cjlib implements a standalone JSON library: a stack-driven
// streaming parser, a queue-driven serialiser, and an AVL-backed ordered
// map that backs object values. It is a Go re-implementation of the
// constarg/cjlib C library's design, ported idiomatically rather than
// translated line for line.
package cjlib

import (
	"fmt"
	"strconv"
)

// Type identifies which of the six JSON kinds a Value holds.
type Type int

// The six JSON kinds, plus Integer as a presentation tag over Number
// (Integer is presentational only).
const (
	Null Type = iota
	Number
	Integer
	String
	Boolean
	Array
	Object
	numTypes
	typeUnknown Type = -1
)

var typeStrings = [numTypes]string{
	"<null>",
	"<number>",
	"<integer>",
	"<string>",
	"<boolean>",
	"<array>",
	"<object>",
}

// String returns a human-readable name for t.
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "<unknown>"
	}
	return typeStrings[t]
}

// Value is the tagged sum of the six JSON kinds. Exactly one payload
// field is meaningful at a time, selected by jsonType. Object values own
// an *OrderedMap; Array values own a *Sequence; both are exclusively
// owned — destroying or overwriting a Value destroys everything it
// transitively owns.
type Value struct {
	jsonType     Type
	numberValue  float64
	integerValue int64
	stringValue  string
	booleanValue bool
	arrayValue   *Sequence
	objectValue  *OrderedMap
}

// NewNull returns a Null value.
func NewNull() *Value { return &Value{jsonType: Null} }

// NewBool returns a Boolean value.
func NewBool(b bool) *Value { return &Value{jsonType: Boolean, booleanValue: b} }

// NewString returns a String value. The payload excludes the
// surrounding quotes.
func NewString(s string) *Value { return &Value{jsonType: String, stringValue: s} }

// NewNumber returns a Number value backed by an IEEE-754 double.
func NewNumber(f float64) *Value { return &Value{jsonType: Number, numberValue: f} }

// NewInteger returns an Integer-tagged value. It keeps i exactly as an
// int64, which AsInteger, String(), Equal and Serialize use; AsNumber
// returns it converted to float64.
func NewInteger(i int64) *Value {
	return &Value{jsonType: Integer, integerValue: i, numberValue: float64(i)}
}

// NewArray returns an empty Array value.
func NewArray() *Value { return &Value{jsonType: Array, arrayValue: NewSequence()} }

// NewObject returns an empty Object value backed by an OrderedMap.
func NewObject() *Value { return &Value{jsonType: Object, objectValue: NewOrderedMap()} }

// Type returns the kind of v.
func (v *Value) Type() Type {
	if v == nil {
		return typeUnknown
	}
	if v.jsonType >= 0 && v.jsonType < numTypes {
		return v.jsonType
	}
	return typeUnknown
}

// AsNull reports whether v holds Null.
func (v *Value) AsNull() (struct{}, error) {
	if v.Type() == Null {
		return struct{}{}, nil
	}
	return struct{}{}, fmt.Errorf("%w: value not null: %v", ErrType, v)
}

// AsNumber extracts a float64, accepting both Number and Integer values.
func (v *Value) AsNumber() (float64, error) {
	switch v.Type() {
	case Integer:
		return float64(v.integerValue), nil
	case Number:
		return v.numberValue, nil
	}
	return 0, fmt.Errorf("%w: value not a valid number: %v", ErrType, v)
}

// AsInteger extracts an int64. It only succeeds for values created via
// NewInteger or parsed as whole numbers without a fraction/exponent.
func (v *Value) AsInteger() (int64, error) {
	if v.Type() == Integer {
		return v.integerValue, nil
	}
	return 0, fmt.Errorf("%w: value not a valid integer: %v", ErrType, v)
}

// AsString extracts the string payload.
func (v *Value) AsString() (string, error) {
	if v.Type() == String {
		return v.stringValue, nil
	}
	return "", fmt.Errorf("%w: value not a valid string: %v", ErrType, v)
}

// AsBoolean extracts the boolean payload.
func (v *Value) AsBoolean() (bool, error) {
	if v.Type() == Boolean {
		return v.booleanValue, nil
	}
	return false, fmt.Errorf("%w: value not a valid boolean: %v", ErrType, v)
}

// AsArray extracts the backing Sequence.
func (v *Value) AsArray() (*Sequence, error) {
	if v.Type() == Array {
		return v.arrayValue, nil
	}
	return nil, fmt.Errorf("%w: value not a valid array: %v", ErrType, v)
}

// AsObject extracts the backing OrderedMap.
func (v *Value) AsObject() (*OrderedMap, error) {
	if v.Type() == Object {
		return v.objectValue, nil
	}
	return nil, fmt.Errorf("%w: value not a valid object: %v", ErrType, v)
}

// Index is a fluent accessor for array members. It returns a typed-null
// Value rather than an error so that chained lookups (Key("a").Index(0))
// degrade gracefully instead of panicking; the underlying IndexOutOfRange
// failure is still recorded in the Reporter via GetChecked, for callers
// that want the array-get error instead of the fluent degrade.
func (v *Value) Index(i int) *Value {
	if v.Type() != Array {
		return &Value{jsonType: typeUnknown}
	}
	item, err := v.arrayValue.GetChecked(i)
	if err != nil {
		report(err)
		return &Value{jsonType: typeUnknown}
	}
	return item
}

// Key is a fluent accessor for object members, with the same
// degrade-gracefully contract as Index.
func (v *Value) Key(k string) *Value {
	if v.Type() != Object {
		return &Value{jsonType: typeUnknown}
	}
	item, ok := v.objectValue.Search(k)
	if !ok {
		return &Value{jsonType: typeUnknown}
	}
	return item
}

// Equal reports whether v and other represent the same JSON value,
// recursively. It exists so tests (via google/go-cmp, see serializer_test.go)
// can compare Value trees without reaching into unexported fields.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Type() != other.Type() {
		return false
	}
	switch v.Type() {
	case Null:
		return true
	case Boolean:
		return v.booleanValue == other.booleanValue
	case String:
		return v.stringValue == other.stringValue
	case Integer:
		return v.integerValue == other.integerValue
	case Number:
		return v.numberValue == other.numberValue
	case Array:
		if v.arrayValue.Len() != other.arrayValue.Len() {
			return false
		}
		equal := true
		v.arrayValue.Each(func(i int, item *Value) bool {
			o, _ := other.arrayValue.Get(i)
			if !item.Equal(o) {
				equal = false
				return false
			}
			return true
		})
		return equal
	case Object:
		keysA := v.objectValue.Keys()
		keysB := other.objectValue.Keys()
		if len(keysA) != len(keysB) {
			return false
		}
		for i, k := range keysA {
			if k != keysB[i] {
				return false
			}
			a, _ := v.objectValue.Search(k)
			b, _ := other.objectValue.Search(k)
			if !a.Equal(b) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders a debug representation of v. It is NOT valid JSON
// output — use Serialize/Stringify for the wire form.
func (v *Value) String() string {
	switch v.Type() {
	case Null:
		return "null"
	case Integer:
		return strconv.FormatInt(v.integerValue, 10)
	case Number:
		return strconv.FormatFloat(v.numberValue, 'g', -1, 64)
	case String:
		return strconv.Quote(v.stringValue)
	case Boolean:
		if v.booleanValue {
			return "true"
		}
		return "false"
	case Array:
		str := "["
		first := true
		v.arrayValue.Each(func(_ int, item *Value) bool {
			if !first {
				str += ", "
			}
			first = false
			str += item.String()
			return true
		})
		str += "]"
		return str
	case Object:
		str := "{"
		for i, k := range v.objectValue.Keys() {
			if i > 0 {
				str += ", "
			}
			item, _ := v.objectValue.Search(k)
			str += strconv.Quote(k)
			str += ": "
			str += item.String()
		}
		str += "}"
		return str
	}
	return "<unknown>"
}
