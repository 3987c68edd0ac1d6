package enginetest

import (
	"fmt"
	"reflect"

	v8glue "github.com/jerbob92/v8glue"
)

// Context is a runtime context with one state slot per Go type.
type Context struct {
	slots map[reflect.Type]any
}

func NewContext() *Context {
	return &Context{slots: map[reflect.Type]any{}}
}

func (c *Context) GetSlot(key reflect.Type) (any, bool) {
	v, ok := c.slots[key]
	return v, ok
}

func (c *Context) SetSlot(key reflect.Type, value any) {
	c.slots[key] = value
}

// Scope implements v8glue.Scope for one callback invocation. A thrown
// exception is recorded instead of unwinding, like an engine's pending
// exception slot.
type Scope struct {
	ctx       *Context
	exception v8glue.Value
}

func NewScope(ctx *Context) *Scope {
	return &Scope{ctx: ctx}
}

func (s *Scope) Context() v8glue.Context { return s.ctx }

func (s *Scope) Undefined() v8glue.Value { return undefinedValue }

func (s *Scope) NewError(message string) v8glue.Value {
	return NewObject(map[string]v8glue.Value{
		"name":    String("Error"),
		"message": String(message),
	})
}

func (s *Scope) newTypeError(message string) v8glue.Value {
	return NewObject(map[string]v8glue.Value{
		"name":    String("TypeError"),
		"message": String(message),
	})
}

func (s *Scope) ThrowException(exception v8glue.Value) {
	if s.exception == nil {
		s.exception = exception
	}
}

func (s *Scope) ThrowError(message string) {
	s.ThrowException(s.NewError(message))
}

func (s *Scope) ThrowTypeError(message string) {
	s.ThrowException(s.newTypeError(message))
}

// Exception returns the pending exception, nil when the call completed
// normally.
func (s *Scope) Exception() v8glue.Value { return s.exception }

func (s *Scope) NewPromiseResolver() (v8glue.PromiseResolver, v8glue.Value) {
	promise := &Promise{state: PromisePending}
	return &resolver{promise: promise}, &value{kind: kindPromise, promise: promise}
}

func (s *Scope) CallFunction(fn v8glue.Value, recv v8glue.Value, args ...v8glue.Value) (v8glue.Value, error) {
	val, ok := fn.(*value)
	if !ok || val.kind != kindFunction {
		return nil, fmt.Errorf("value is not a function")
	}
	result, err := val.fn(s, recv, args)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = undefinedValue
	}
	return result, nil
}

// PromiseState mirrors the engine-side promise lifecycle.
type PromiseState int

const (
	PromisePending PromiseState = iota
	PromiseFulfilled
	PromiseRejected
)

// Promise is the settled-state record behind a promise value.
type Promise struct {
	state  PromiseState
	result v8glue.Value
}

func (p *Promise) State() PromiseState { return p.state }

// Result is the fulfillment value or rejection reason, nil while
// pending.
func (p *Promise) Result() v8glue.Value { return p.result }

type resolver struct {
	promise *Promise
}

func (r *resolver) Resolve(value v8glue.Value) {
	if r.promise.state != PromisePending {
		return
	}
	r.promise.state = PromiseFulfilled
	r.promise.result = value
}

func (r *resolver) Reject(exception v8glue.Value) {
	if r.promise.state != PromisePending {
		return
	}
	r.promise.state = PromiseRejected
	r.promise.result = exception
}

// PromiseOf unwraps a promise value for assertions.
func PromiseOf(v v8glue.Value) (*Promise, bool) {
	val, ok := v.(*value)
	if !ok || val.kind != kindPromise {
		return nil, false
	}
	return val.promise, true
}

type callbackArgs struct {
	values []v8glue.Value
}

func (a callbackArgs) Get(i int) v8glue.Value {
	if i < 0 || i >= len(a.values) {
		return undefinedValue
	}
	return a.values[i]
}

func (a callbackArgs) Length() int { return len(a.values) }

type returnValue struct {
	value v8glue.Value
}

func (rv *returnValue) Set(v v8glue.Value) { rv.value = v }

// Invoke calls a generated callback the way an engine dispatches a host
// function: the JS argument list is padded with undefined, the result
// defaults to undefined, and a pending exception is returned instead of
// a result.
func Invoke(scope *Scope, cb v8glue.Callback, args ...v8glue.Value) (v8glue.Value, v8glue.Value) {
	rv := &returnValue{}
	cb(scope, callbackArgs{values: args}, rv)

	if scope.exception != nil {
		exception := scope.exception
		scope.exception = nil
		return nil, exception
	}

	if rv.value == nil {
		return undefinedValue, nil
	}
	return rv.value, nil
}
