// Package enginetest is an in-memory implementation of the v8glue
// engine interfaces. It exists so generated wrappers can be exercised
// without a real JS engine; embedders bring their own implementation.
package enginetest

import (
	v8glue "github.com/jerbob92/v8glue"
)

type valueKind int

const (
	kindUndefined valueKind = iota
	kindNull
	kindBoolean
	kindNumber
	kindString
	kindArray
	kindObject
	kindFunction
	kindUint8Array
	kindArrayBuffer
	kindPromise
)

// FuncImpl is the Go implementation behind a JS function value.
type FuncImpl func(scope v8glue.Scope, recv v8glue.Value, args []v8glue.Value) (v8glue.Value, error)

type value struct {
	kind    valueKind
	boolean bool
	number  float64
	str     string
	elems   []v8glue.Value
	fields  map[string]v8glue.Value
	fn      FuncImpl
	bytes   []byte
	promise *Promise
}

func (v *value) IsUndefined() bool   { return v.kind == kindUndefined }
func (v *value) IsNull() bool        { return v.kind == kindNull }
func (v *value) IsBoolean() bool     { return v.kind == kindBoolean }
func (v *value) IsNumber() bool      { return v.kind == kindNumber }
func (v *value) IsString() bool      { return v.kind == kindString }
func (v *value) IsArray() bool       { return v.kind == kindArray }
func (v *value) IsFunction() bool    { return v.kind == kindFunction }
func (v *value) IsUint8Array() bool  { return v.kind == kindUint8Array }
func (v *value) IsArrayBuffer() bool { return v.kind == kindArrayBuffer }
func (v *value) IsPromise() bool     { return v.kind == kindPromise }

// IsObject follows the JS notion: arrays, functions, promises and plain
// objects all are, primitives are not.
func (v *value) IsObject() bool {
	switch v.kind {
	case kindObject, kindArray, kindFunction, kindUint8Array, kindArrayBuffer, kindPromise:
		return true
	}
	return false
}

// Bytes exposes typed-array contents; the v8glue.Uint8Array handle
// discovers it through a capability check.
func (v *value) Bytes() []byte {
	if v.kind != kindUint8Array && v.kind != kindArrayBuffer {
		return nil
	}
	out := make([]byte, len(v.bytes))
	copy(out, v.bytes)
	return out
}

var (
	undefinedValue = &value{kind: kindUndefined}
	nullValue      = &value{kind: kindNull}
)

func Undefined() v8glue.Value { return undefinedValue }

func Null() v8glue.Value { return nullValue }

func Boolean(b bool) v8glue.Value { return &value{kind: kindBoolean, boolean: b} }

func Number(f float64) v8glue.Value { return &value{kind: kindNumber, number: f} }

func String(s string) v8glue.Value { return &value{kind: kindString, str: s} }

func NewArray(elems ...v8glue.Value) v8glue.Value {
	return &value{kind: kindArray, elems: elems}
}

func NewObject(fields map[string]v8glue.Value) v8glue.Value {
	return &value{kind: kindObject, fields: fields}
}

func NewFunction(fn FuncImpl) v8glue.Value {
	return &value{kind: kindFunction, fn: fn}
}

func NewUint8Array(data []byte) v8glue.Value {
	return &value{kind: kindUint8Array, bytes: data}
}

func NewArrayBuffer(data []byte) v8glue.Value {
	return &value{kind: kindArrayBuffer, bytes: data}
}

// NumberOf unwraps a number value for assertions.
func NumberOf(v v8glue.Value) (float64, bool) {
	val, ok := v.(*value)
	if !ok || val.kind != kindNumber {
		return 0, false
	}
	return val.number, true
}

// StringOf unwraps a string value for assertions.
func StringOf(v v8glue.Value) (string, bool) {
	val, ok := v.(*value)
	if !ok || val.kind != kindString {
		return "", false
	}
	return val.str, true
}

// BooleanOf unwraps a boolean value for assertions.
func BooleanOf(v v8glue.Value) (bool, bool) {
	val, ok := v.(*value)
	if !ok || val.kind != kindBoolean {
		return false, false
	}
	return val.boolean, true
}

// ErrorMessage returns the message field of an error object.
func ErrorMessage(v v8glue.Value) (string, bool) {
	val, ok := v.(*value)
	if !ok || val.kind != kindObject {
		return "", false
	}
	message, ok := val.fields["message"]
	if !ok {
		return "", false
	}
	return StringOf(message)
}
