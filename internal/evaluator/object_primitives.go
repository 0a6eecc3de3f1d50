package evaluator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is the only numeric type; every number is a float64.
type Number struct {
	Value float64
}

func (n *Number) Type() ValueType { return NUMBER_VAL }
func (n *Number) Inspect() string { return formatNumber(n.Value) }
func (n *Number) valueNode()      {}

// String
type String struct {
	Value string
}

func (s *String) Type() ValueType { return STRING_VAL }
func (s *String) Inspect() string { return s.Value }
func (s *String) valueNode()      {}

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BOOLEAN_VAL }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }
func (b *Boolean) valueNode()      {}

// Nil is the value of uninitialized variables.
type Nil struct{}

func (n *Nil) Type() ValueType { return NIL_VAL }
func (n *Nil) Inspect() string { return "nil" }
func (n *Nil) valueNode()      {}

// formatNumber prints magnitudes in [1e-3, 1e7) in plain decimal without a
// trailing ".0" (3.0 prints as 3) and everything else in E notation with at
// least one fractional digit (1e7 prints as 1.0E7, 1e-4 as 1.0E-4).
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	if abs := math.Abs(f); abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(n)
}
