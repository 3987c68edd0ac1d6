// Package v8glue is the runtime contract between generated host-function
// callbacks and a JavaScript engine embedding. The generator under
// generator/ turns annotated Go functions into callbacks with the
// Callback shape; the interfaces in this package are what that generated
// code calls into. Engine implementations provide them, the package
// itself is engine-agnostic.
package v8glue

// Callback is the engine's fixed native host-function shape. Results and
// errors are communicated through rv and the scope's throw channel, never
// through a return value.
type Callback func(scope Scope, args CallbackArgs, rv ReturnValue)

// Binding pairs a JS-visible function name with its generated callback.
// Generated files expose a Bindings slice for host-side registration.
type Binding struct {
	Name     string
	Callback Callback
}
