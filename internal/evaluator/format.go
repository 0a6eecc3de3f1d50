package evaluator

// Stringify returns the display form print writes for v. A nil Value prints
// as nil.
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Inspect()
}
