package v8glue

import "reflect"

// Value is an engine-owned JS value handle. Kind predicates mirror the
// checks a host function needs before casting; everything else goes
// through the scope's conversion methods.
type Value interface {
	IsUndefined() bool
	IsNull() bool
	IsBoolean() bool
	IsNumber() bool
	IsString() bool
	IsObject() bool
	IsArray() bool
	IsFunction() bool
	IsUint8Array() bool
	IsArrayBuffer() bool
	IsPromise() bool
}

// Scope is the engine scope for one callback invocation. It carries the
// conversion library and the engine's exception channel.
type Scope interface {
	// Context returns the runtime context the call executes in.
	Context() Context

	Undefined() Value
	NewError(message string) Value

	// ThrowException reports exception through the engine's throw
	// channel; the callback must return immediately afterwards.
	ThrowException(exception Value)
	ThrowError(message string)
	ThrowTypeError(message string)

	// NewPromiseResolver returns a resolver and its pending promise.
	NewPromiseResolver() (PromiseResolver, Value)

	// CallFunction invokes a JS function value.
	CallFunction(fn Value, recv Value, args ...Value) (Value, error)

	// ToValue converts a Go value to an engine value.
	ToValue(o any) (Value, error)

	// FromValue converts an engine value into target, which must be a
	// non-nil pointer.
	FromValue(v Value, target any) error
}

// Context is a runtime context with embedder-owned slots, one per Go
// type. Slot values are owned by the context; callbacks hold shared,
// non-exclusive references for the duration of a call.
type Context interface {
	GetSlot(key reflect.Type) (any, bool)
	SetSlot(key reflect.Type, value any)
}

// CallbackArgs is the engine's argument container for one call. Get
// returns the undefined value for an out-of-range index.
type CallbackArgs interface {
	Get(i int) Value
	Length() int
}

// ReturnValue receives the call result. Leaving it unset yields
// undefined to the JS caller.
type ReturnValue interface {
	Set(v Value)
}

// PromiseResolver pairs a pending promise with its settle operations.
type PromiseResolver interface {
	Resolve(value Value)
	Reject(exception Value)
}
