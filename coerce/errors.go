package coerce

import (
	"errors"
	"fmt"

	"value-objects/primitive"
	"value-objects/tree"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrUnknownType  = errors.New("unknown type")
)

// MismatchError reports a value that could not be coerced to the expected
// type.
type MismatchError struct {
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("only accepts values that are of type %s, %s given", e.Expected, e.Actual)
}

func (e *MismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// Mismatch builds a MismatchError for value against the expected type name.
func Mismatch(expected string, value any) *MismatchError {
	return &MismatchError{Expected: expected, Actual: describe(value)}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return primitive.KindBool.TypeName()
	case int:
		return primitive.KindInt.TypeName()
	case float64:
		return primitive.KindFloat.TypeName()
	case string:
		return primitive.KindString.TypeName()
	case []any:
		return primitive.KindSequence.TypeName()
	case *tree.Map:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
