package evaluator

type ValueType string

const (
	NUMBER_VAL  = "NUMBER"
	STRING_VAL  = "STRING"
	BOOLEAN_VAL = "BOOLEAN"
	NIL_VAL     = "NIL"
)

// Value is a runtime value. The set of implementations is closed:
// *Number, *String, *Boolean and *Nil.
type Value interface {
	Type() ValueType
	// Inspect returns the form `print` writes.
	Inspect() string
	valueNode()
}

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NIL   = &Nil{}
)

// FromLiteral converts a lexer literal (float64, string, bool or nil) to a Value.
func FromLiteral(v any) (Value, bool) {
	switch v := v.(type) {
	case nil:
		return NIL, true
	case float64:
		return &Number{Value: v}, true
	case int:
		return &Number{Value: float64(v)}, true
	case int64:
		return &Number{Value: float64(v)}, true
	case string:
		return &String{Value: v}, true
	case bool:
		return nativeBoolToBooleanObject(v), true
	default:
		return nil, false
	}
}

func nativeBoolToBooleanObject(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}
