package value

import (
	"math"
	"strconv"
)

// Type represents the tag in the Value tagged union.
type Type uint8

const (
	TypeNil Type = iota
	TypeBool
	TypeNumber
	TypeString
)

func (t Type) String() string {
	switch t {
	case TypeNil:
		return "nil"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a tagged union. The zero Value is nil.
// Data holds the bits of a number or a bool; Str holds a string payload.
type Value struct {
	Type Type
	Data uint64
	Str  string
}

// Nil returns the absent value.
func Nil() Value {
	return Value{}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	v := Value{Type: TypeBool}
	if b {
		v.Data = 1
	}
	return v
}

// Number wraps a float64.
func Number(f float64) Value {
	return Value{Type: TypeNumber, Data: math.Float64bits(f)}
}

// String wraps a string.
func String(s string) Value {
	return Value{Type: TypeString, Str: s}
}

// IsNil reports whether the value carries no payload.
func (v Value) IsNil() bool {
	return v.Type == TypeNil
}

// AsNumber returns the numeric payload; ok is false for any other tag.
func (v Value) AsNumber() (float64, bool) {
	if v.Type != TypeNumber {
		return 0, false
	}
	return math.Float64frombits(v.Data), true
}

// AsString returns the string payload; ok is false for any other tag.
func (v Value) AsString() (string, bool) {
	if v.Type != TypeString {
		return "", false
	}
	return v.Str, true
}

// AsBool returns the boolean payload; ok is false for any other tag.
func (v Value) AsBool() (bool, bool) {
	if v.Type != TypeBool {
		return false, false
	}
	return v.Data != 0, true
}

// Equal reports whether two values have the same tag and payload.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case TypeNil:
		return true
	case TypeNumber:
		a, _ := v.AsNumber()
		b, _ := o.AsNumber()
		return a == b
	case TypeString:
		return v.Str == o.Str
	default:
		return v.Data == o.Data
	}
}

// Format returns the textual form of the value. Infinite numbers render
// as "+Inf" or "-Inf".
func (v Value) Format() string {
	switch v.Type {
	case TypeNil:
		return "nil"
	case TypeBool:
		if v.Data != 0 {
			return "true"
		}
		return "false"
	case TypeNumber:
		return strconv.FormatFloat(math.Float64frombits(v.Data), 'f', -1, 64)
	case TypeString:
		return v.Str
	default:
		return strconv.FormatUint(v.Data, 10)
	}
}

func (v Value) String() string {
	return v.Format()
}
