package v8glue

// Handle types the engine passes to host functions without value
// conversion. The generator casts an argument to one of these after the
// matching kind check and throws a TypeError when the check fails.

type Function struct{ Value }

// Call invokes the JS function with recv as this.
func (f Function) Call(scope Scope, recv Value, args ...Value) (Value, error) {
	return scope.CallFunction(f.Value, recv, args...)
}

type Object struct{ Value }

type Array struct{ Value }

type Uint8Array struct{ Value }

// Bytes returns a copy of the array contents when the engine value
// exposes them, nil otherwise.
func (a Uint8Array) Bytes() []byte {
	b, ok := a.Value.(interface{ Bytes() []byte })
	if !ok {
		return nil
	}
	return b.Bytes()
}

type ArrayBuffer struct{ Value }

type String struct{ Value }

type Number struct{ Value }
