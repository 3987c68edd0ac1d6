package generator

// GluePkgPath is the import path of the runtime contract package. The
// analyzer recognizes scope and handle parameters by this path, the
// emitter imports it into every generated file.
const GluePkgPath = "github.com/jerbob92/v8glue"

// TypeClass decides how a JS argument is extracted. The enumeration is
// closed on purpose: every switch over it in the emitter handles all
// variants explicitly, adding a class means revisiting each site.
type TypeClass int

const (
	// ClassPrimitive is a Go basic type converted through the
	// conversion library.
	ClassPrimitive TypeClass = iota
	// ClassDeserializable is any other type; validity is deferred to
	// the conversion library when the generated file compiles and runs.
	ClassDeserializable
	// ClassEngineHandle is an engine-native handle passed through
	// without conversion after a kind check.
	ClassEngineHandle
)

func (c TypeClass) String() string {
	switch c {
	case ClassPrimitive:
		return "primitive"
	case ClassDeserializable:
		return "deserializable"
	case ClassEngineHandle:
		return "handle"
	}
	return "unknown"
}

// HandleKind is one of the engine's built-in value categories.
type HandleKind int

const (
	HandleValue HandleKind = iota
	HandleFunction
	HandleObject
	HandleArray
	HandleUint8Array
	HandleArrayBuffer
	HandleString
	HandleNumber
)

// handleKinds maps the runtime package type names to their kind.
var handleKinds = map[string]HandleKind{
	"Value":       HandleValue,
	"Function":    HandleFunction,
	"Object":      HandleObject,
	"Array":       HandleArray,
	"Uint8Array":  HandleUint8Array,
	"ArrayBuffer": HandleArrayBuffer,
	"String":      HandleString,
	"Number":      HandleNumber,
}

// TypeName returns the type name within the runtime package.
func (k HandleKind) TypeName() string {
	switch k {
	case HandleValue:
		return "Value"
	case HandleFunction:
		return "Function"
	case HandleObject:
		return "Object"
	case HandleArray:
		return "Array"
	case HandleUint8Array:
		return "Uint8Array"
	case HandleArrayBuffer:
		return "ArrayBuffer"
	case HandleString:
		return "String"
	case HandleNumber:
		return "Number"
	}
	return ""
}

// CheckMethod returns the Value predicate guarding a cast to this kind,
// empty for HandleValue which needs no check.
func (k HandleKind) CheckMethod() string {
	switch k {
	case HandleValue:
		return ""
	case HandleFunction:
		return "IsFunction"
	case HandleObject:
		return "IsObject"
	case HandleArray:
		return "IsArray"
	case HandleUint8Array:
		return "IsUint8Array"
	case HandleArrayBuffer:
		return "IsArrayBuffer"
	case HandleString:
		return "IsString"
	case HandleNumber:
		return "IsNumber"
	}
	return ""
}

// ParameterSpec describes one JS-indexed parameter of the target
// function. Scope and state parameters never become ParameterSpecs.
type ParameterSpec struct {
	Name     string
	GoType   string // declared Go type as written, without the optional pointer
	Class    TypeClass
	Handle   HandleKind // meaningful for ClassEngineHandle only
	Optional bool
	Index    int // JS argument index
}

// ReturnSpec describes the target function's result handling.
type ReturnSpec struct {
	GoType    string // success value type, empty when HasValue is false
	HasValue  bool
	Fallible  bool
	AsPromise bool
}

// StateSpec requests a context-slot lookup for the named in-package
// type before any argument extraction.
type StateSpec struct {
	Type string
}

// WrapperDescriptor is the analyzer's whole output for one function:
// everything the emitter needs, nothing tied to go/types.
type WrapperDescriptor struct {
	FuncName    string
	JSName      string
	WrapperName string
	HasScope    bool
	State       *StateSpec
	Params      []ParameterSpec
	Ret         ReturnSpec
	Fast        bool
}

// Signature is the structured description of a function the front-end
// hands to Analyze. Keeping it plain data decouples "read a real
// signature" from "decide what wrapper code to emit".
type Signature struct {
	Name    string
	Params  []Param
	Results []TypeRef
}

// Param is one declared parameter.
type Param struct {
	Name string
	Type TypeRef
}

// TypeRef describes a declared type structurally. Expr is the type as it
// appears in generated source; Name and PkgPath identify the named type
// behind at most one level of pointer indirection.
type TypeRef struct {
	Expr    string
	Name    string
	PkgPath string
	Pointer bool
}
