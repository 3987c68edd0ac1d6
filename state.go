package v8glue

import "reflect"

// SetState stores state in the context slot for T. One value per type,
// later calls replace earlier ones.
func SetState[T any](ctx Context, state *T) {
	ctx.SetSlot(reflect.TypeOf((*T)(nil)), state)
}

// State retrieves the context-slot value for T. The second return is
// false when the slot is empty or holds a different type; generated
// wrappers turn that into a thrown error before the target function
// runs.
func State[T any](scope Scope) (*T, bool) {
	v, ok := scope.Context().GetSlot(reflect.TypeOf((*T)(nil)))
	if !ok {
		return nil, false
	}
	state, ok := v.(*T)
	if !ok {
		return nil, false
	}
	return state, true
}
