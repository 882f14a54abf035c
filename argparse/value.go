package argparse

import (
	"math"
	"strconv"
	"strings"
)

// Kind enumerates the shapes a Value can take.
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindInt
	KindDouble
	KindBool
	KindStringArray
	KindIntArray
	KindDoubleArray
	KindBoolArray
)

// String returns the lowercase kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	case KindStringArray:
		return "string array"
	case KindIntArray:
		return "int array"
	case KindDoubleArray:
		return "double array"
	case KindBoolArray:
		return "bool array"
	default:
		return "unknown"
	}
}

// IsArray reports whether k is one of the array kinds.
func (k Kind) IsArray() bool { return k >= KindStringArray && k <= KindBoolArray }

// Elem returns the element kind of an array kind. Scalars map to themselves.
func (k Kind) Elem() Kind {
	if k.IsArray() {
		return k - KindStringArray + KindString
	}
	return k
}

// Array returns the array kind holding elements of scalar kind k.
// KindNone and array kinds map to themselves.
func (k Kind) Array() Kind {
	if k >= KindString && k <= KindBool {
		return k - KindString + KindStringArray
	}
	return k
}

// Value is an immutable tagged union holding one parsed, default, const or
// choice value. The zero Value is absent (KindNone).
type Value struct {
	kind Kind
	s    string
	i    int
	d    float64
	b    bool
	ss   []string
	is   []int
	ds   []float64
	bs   []bool
}

// None returns the absent value.
func None() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an integer value.
func Int(i int) Value { return Value{kind: KindInt, i: i} }

// Double returns a floating-point value.
func Double(d float64) Value { return Value{kind: KindDouble, d: d} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Strings returns a string array holding a copy of v.
func Strings(v ...string) Value { return Value{kind: KindStringArray, ss: append([]string{}, v...)} }

// Ints returns an int array holding a copy of v.
func Ints(v ...int) Value { return Value{kind: KindIntArray, is: append([]int{}, v...)} }

// Doubles returns a double array holding a copy of v.
func Doubles(v ...float64) Value { return Value{kind: KindDoubleArray, ds: append([]float64{}, v...)} }

// Bools returns a bool array holding a copy of v.
func Bools(v ...bool) Value { return Value{kind: KindBoolArray, bs: append([]bool{}, v...)} }

// Kind returns the value's tag.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether v is absent.
func (v Value) IsNone() bool { return v.kind == KindNone }

// IsString reports whether v holds a string.
func (v Value) IsString() bool { return v.kind == KindString }

// IsInt reports whether v holds an int.
func (v Value) IsInt() bool { return v.kind == KindInt }

// IsDouble reports whether v holds a double.
func (v Value) IsDouble() bool { return v.kind == KindDouble }

// IsBool reports whether v holds a bool.
func (v Value) IsBool() bool { return v.kind == KindBool }

// IsStringArray reports whether v holds a string array.
func (v Value) IsStringArray() bool { return v.kind == KindStringArray }

// IsIntArray reports whether v holds an int array.
func (v Value) IsIntArray() bool { return v.kind == KindIntArray }

// IsDoubleArray reports whether v holds a double array.
func (v Value) IsDoubleArray() bool { return v.kind == KindDoubleArray }

// IsBoolArray reports whether v holds a bool array.
func (v Value) IsBoolArray() bool { return v.kind == KindBoolArray }

// IsArray reports whether v holds any array kind.
func (v Value) IsArray() bool { return v.kind.IsArray() }

// Accessors return the zero value of the requested kind when the tag does
// not match. They never convert between kinds.

// Str returns the string payload, or "".
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// IntValue returns the int payload, or 0.
func (v Value) IntValue() int {
	if v.kind != KindInt {
		return 0
	}
	return v.i
}

// DoubleValue returns the double payload, or 0.
func (v Value) DoubleValue() float64 {
	if v.kind != KindDouble {
		return 0
	}
	return v.d
}

// BoolValue returns the bool payload, or false.
func (v Value) BoolValue() bool {
	return v.kind == KindBool && v.b
}

// StringArray returns a copy of the string elements, or nil.
func (v Value) StringArray() []string {
	if v.kind != KindStringArray {
		return nil
	}
	return append([]string(nil), v.ss...)
}

// IntArray returns a copy of the int elements, or nil.
func (v Value) IntArray() []int {
	if v.kind != KindIntArray {
		return nil
	}
	return append([]int(nil), v.is...)
}

// DoubleArray returns a copy of the double elements, or nil.
func (v Value) DoubleArray() []float64 {
	if v.kind != KindDoubleArray {
		return nil
	}
	return append([]float64(nil), v.ds...)
}

// BoolArray returns a copy of the bool elements, or nil.
func (v Value) BoolArray() []bool {
	if v.kind != KindBoolArray {
		return nil
	}
	return append([]bool(nil), v.bs...)
}

// Len returns the element count of an array value, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindStringArray:
		return len(v.ss)
	case KindIntArray:
		return len(v.is)
	case KindDoubleArray:
		return len(v.ds)
	case KindBoolArray:
		return len(v.bs)
	}
	return 0
}

// Index returns element i of an array value as a scalar Value, or None when
// v is not an array or i is out of range.
func (v Value) Index(i int) Value {
	if i < 0 || i >= v.Len() {
		return None()
	}
	switch v.kind {
	case KindStringArray:
		return String(v.ss[i])
	case KindIntArray:
		return Int(v.is[i])
	case KindDoubleArray:
		return Double(v.ds[i])
	case KindBoolArray:
		return Bool(v.bs[i])
	}
	return None()
}

// Contains reports whether scalar x equals some element of array v.
func (v Value) Contains(x Value) bool {
	for i := 0; i < v.Len(); i++ {
		if v.Index(i).Equal(x) {
			return true
		}
	}
	return false
}

// Equal compares kinds, then payloads; arrays compare length and then
// element-wise. NaN equals NaN, so a double always equals itself.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindString:
		return v.s == o.s
	case KindInt:
		return v.i == o.i
	case KindDouble:
		return sameDouble(v.d, o.d)
	case KindBool:
		return v.b == o.b
	case KindStringArray:
		return sliceEqual(v.ss, o.ss)
	case KindIntArray:
		return sliceEqual(v.is, o.is)
	case KindDoubleArray:
		if len(v.ds) != len(o.ds) {
			return false
		}
		for i := range v.ds {
			if !sameDouble(v.ds[i], o.ds[i]) {
				return false
			}
		}
		return true
	case KindBoolArray:
		return sliceEqual(v.bs, o.bs)
	}
	return false
}

func sameDouble(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func sliceEqual[E comparable](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders v for help text, error messages and string results.
// Doubles use the shortest form that parses back to the same number, so
// coercing a scalar's display string yields the scalar again.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.Itoa(v.i)
	case KindDouble:
		return strconv.FormatFloat(v.d, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	if !v.IsArray() {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.Index(i).String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// GoString makes %#v output readable in test failures.
func (v Value) GoString() string {
	if v.kind == KindNone {
		return "argparse.None()"
	}
	return "argparse.Value(" + v.kind.String() + ":" + v.String() + ")"
}

// fromScalars builds the array value for a run of scalars that share the
// first element's kind. An empty run is absent.
func fromScalars(run []Value) Value {
	if len(run) == 0 {
		return None()
	}
	out := Value{kind: run[0].kind.Array()}
	for _, x := range run {
		switch out.kind {
		case KindStringArray:
			out.ss = append(out.ss, x.Str())
		case KindIntArray:
			out.is = append(out.is, x.IntValue())
		case KindDoubleArray:
			out.ds = append(out.ds, x.DoubleValue())
		case KindBoolArray:
			out.bs = append(out.bs, x.BoolValue())
		}
	}
	return out
}
