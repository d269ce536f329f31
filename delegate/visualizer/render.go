package visualizer

import (
	"fmt"
	"reflect"
	"strconv"
)

// NotRepresentableError reports a subscriber result the visualizer has no
// text form for. The report is abandoned rather than printing a placeholder.
type NotRepresentableError struct {
	Index int
	Value any
}

// Error implements the error interface for NotRepresentableError.
func (e *NotRepresentableError) Error() string {
	return fmt.Sprintf("visualizer: result of subscriber %d has type %T, which has no text form", e.Index, e.Value)
}

// formatValue renders a single subscriber result. It accepts fmt.Stringer
// plus the primitive kinds a value delegate can produce; anything else
// fails with a NotRepresentableError carrying the subscriber index.
func formatValue(index int, v any) (string, error) {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Complex64:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 64), nil
	case reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 128), nil
	case reflect.String:
		return rv.String(), nil
	default:
		return "", &NotRepresentableError{Index: index, Value: v}
	}
}
