package evaluator

import "math"

// isTruthy: nil and false are falsy, everything else (0 and "" too) is truthy.
func isTruthy(v Value) bool {
	switch v := v.(type) {
	case *Nil:
		return false
	case *Boolean:
		return v.Value
	default:
		return true
	}
}

// isEqual compares by value. Values of different kinds are never equal.
func isEqual(a, b Value) bool {
	switch a := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Number:
		bn, ok := b.(*Number)
		return ok && numbersEqual(a.Value, bn.Value)
	case *String:
		bs, ok := b.(*String)
		return ok && a.Value == bs.Value
	case *Boolean:
		bb, ok := b.(*Boolean)
		return ok && a.Value == bb.Value
	default:
		return false
	}
}

// numbersEqual compares bit patterns with every NaN collapsed to one:
// NaN == NaN holds and 0 == -0 does not.
func numbersEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Float64bits(a) == math.Float64bits(b)
}
