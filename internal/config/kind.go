package config

import "fmt"

// Kind is the parameter or result type of a delegate, as declared in
// scenario and manifest files. The runner bridges each Kind onto a concrete
// Go instantiation of the delegate library.
type Kind int

const (
	// KindVoid is only valid as a result kind and marks a non-accumulating
	// delegate.
	KindVoid Kind = iota
	KindInt
	KindFloat
	KindString
)

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a type keyword from a configuration file onto a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "void":
		return KindVoid, nil
	case "int":
		return KindInt, nil
	case "float":
		return KindFloat, nil
	case "string":
		return KindString, nil
	default:
		return KindVoid, fmt.Errorf("unknown type keyword %q: must be 'void', 'int', 'float', or 'string'", name)
	}
}
