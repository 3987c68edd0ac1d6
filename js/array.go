// Package js holds plain Go representations of JS values that have no
// direct Go equivalent. Conversion layers map these to and from engine
// handles without guessing at element types.
package js

type Int8Array []int8

type Int16Array []int16

type Int32Array []int32

type Uint8Array []uint8

type Uint16Array []uint16

type Uint32Array []uint32

type Float32Array []float32

type Float64Array []float64

type ArrayBuffer []byte
