package v8glue

// FastType is a calling-convention type for fast-path host calls.
// Engines with a fast API can call the generated <Name>V8Fast variant
// directly with unboxed values.
type FastType int

const (
	FastVoid FastType = iota
	FastBool
	FastInt32
	FastUint32
	FastInt64
	FastUint64
	FastFloat32
	FastFloat64
)

func (t FastType) String() string {
	switch t {
	case FastVoid:
		return "void"
	case FastBool:
		return "bool"
	case FastInt32:
		return "int32"
	case FastUint32:
		return "uint32"
	case FastInt64:
		return "int64"
	case FastUint64:
		return "uint64"
	case FastFloat32:
		return "float32"
	case FastFloat64:
		return "float64"
	}
	return "unknown"
}

// FastCallInfo describes the fast call signature of a generated fast
// variant: argument types in JS argument order (the implicit receiver is
// not listed) and the result type.
type FastCallInfo struct {
	Args   []FastType
	Result FastType
}

// FastCallOptions is passed as the trailing parameter of a stateful fast
// variant. Data carries the same value the context slot would hold on
// the slow path; the embedder sets it at registration time.
type FastCallOptions struct {
	Data any
}
