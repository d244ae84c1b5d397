package munin

import "strconv"

// Value is a single sample for a graph field.  A Value is either a
// known number or the explicit unknown marker that munin renders as
// "U".  Absent counters and derivations with missing operands produce
// unknown values so that a gap is structurally distinguishable from a
// legitimate zero.
type Value struct {
	val   float64
	known bool
}

// NewValue returns a known value.
func NewValue(v float64) Value {
	return Value{val: v, known: true}
}

// Unknown returns the unknown sample marker.
func Unknown() Value {
	return Value{}
}

// Known returns whether the value carries a number.
func (v Value) Known() bool {
	return v.known
}

// Float returns the underlying number; ok is false for unknown values.
func (v Value) Float() (float64, bool) {
	return v.val, v.known
}

// Add returns v + o, or unknown if either operand is unknown.
func (v Value) Add(o Value) Value {
	if !v.known || !o.known {
		return Unknown()
	}
	return NewValue(v.val + o.val)
}

// Sub returns v - o, or unknown if either operand is unknown.
func (v Value) Sub(o Value) Value {
	if !v.known || !o.known {
		return Unknown()
	}
	return NewValue(v.val - o.val)
}

// Mul returns v * o, or unknown if either operand is unknown.
func (v Value) Mul(o Value) Value {
	if !v.known || !o.known {
		return Unknown()
	}
	return NewValue(v.val * o.val)
}

// String renders the value in munin's value syntax.
func (v Value) String() string {
	if !v.known {
		return "U"
	}
	return strconv.FormatFloat(v.val, 'f', -1, 64)
}
