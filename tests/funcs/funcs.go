// Package funcs contains the annotated functions the behavior suite
// runs the generator against. funcs_v8.go is the checked-in generator
// output for this file.
package funcs

import (
	"fmt"
	"math"
	"strconv"

	v8glue "github.com/jerbob92/v8glue"
)

//go:generate go run github.com/jerbob92/v8glue/generator

// Counter is shared state stored in the runtime context slot.
type Counter struct {
	Value int32
}

// Point is deserialized from a plain JS object.
type Point struct {
	X float64
	Y float64
}

// LastValue records the most recent setValue call for assertions.
var LastValue int32

//v8glue:method
func add(scope v8glue.Scope, a float64, b float64) float64 {
	return a + b
}

//v8glue:method
func concat(scope v8glue.Scope, a string, b string) string {
	return a + b
}

//v8glue:method
func setValue(scope v8glue.Scope, val int32) {
	LastValue = val
}

//v8glue:method
func greet(scope v8glue.Scope, name string, title *string) string {
	if title == nil {
		return name
	}
	return *title + " " + name
}

//v8glue:method
func parseNumber(scope v8glue.Scope, input string) (float64, error) {
	parsed, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse %q as a number", input)
	}
	return parsed, nil
}

//v8glue:method
func failWhen(scope v8glue.Scope, shouldFail bool) error {
	if shouldFail {
		return fmt.Errorf("requested failure")
	}
	return nil
}

//v8glue:method
func callTwice(scope v8glue.Scope, callback v8glue.Function, value float64) (float64, error) {
	arg, err := scope.ToValue(value)
	if err != nil {
		return 0, err
	}

	first, err := callback.Call(scope, scope.Undefined(), arg)
	if err != nil {
		return 0, err
	}

	second, err := callback.Call(scope, scope.Undefined(), first)
	if err != nil {
		return 0, err
	}

	var out float64
	err = scope.FromValue(second, &out)
	if err != nil {
		return 0, err
	}

	return out, nil
}

//v8glue:method state=Counter
func increment(scope v8glue.Scope, state *Counter, amount int32) int32 {
	state.Value += amount
	return state.Value
}

//v8glue:method promise
func asyncDivide(scope v8glue.Scope, a float64, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("division by zero")
	}
	return a / b, nil
}

//v8glue:method promise
func fetchGreeting(scope v8glue.Scope, name string) string {
	return "hello " + name
}

//v8glue:method
func sumBytes(scope v8glue.Scope, data v8glue.Uint8Array) uint32 {
	sum := uint32(0)
	for _, b := range data.Bytes() {
		sum += uint32(b)
	}
	return sum
}

//v8glue:method
func formatMessage(scope v8glue.Scope, prefix string, count int32, suffix *string) string {
	unit := "items"
	if suffix != nil {
		unit = *suffix
	}
	return fmt.Sprintf("%s: %d %s", prefix, count, unit)
}

//v8glue:method
func isEven(scope v8glue.Scope, n int32) bool {
	return n%2 == 0
}

//v8glue:method
func distance(scope v8glue.Scope, p Point) float64 {
	return math.Hypot(p.X, p.Y)
}

//v8glue:method fast
func multiply(a float64, b float64) float64 {
	return a * b
}

//v8glue:method fast state=Counter
func counterAdd(state *Counter, amount int32) int32 {
	state.Value += amount
	return state.Value
}
