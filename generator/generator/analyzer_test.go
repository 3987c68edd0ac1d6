package generator_test

import (
	"github.com/jerbob92/v8glue/generator/generator"

	"github.com/google/go-cmp/cmp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func scopeRef() generator.TypeRef {
	return generator.TypeRef{
		Expr:    "v8glue.Scope",
		Name:    "Scope",
		PkgPath: generator.GluePkgPath,
	}
}

func primitiveRef(name string) generator.TypeRef {
	return generator.TypeRef{Expr: name, Name: name}
}

func handleRef(name string) generator.TypeRef {
	return generator.TypeRef{
		Expr:    "v8glue." + name,
		Name:    name,
		PkgPath: generator.GluePkgPath,
	}
}

func localRef(name string) generator.TypeRef {
	return generator.TypeRef{Expr: name, Name: name, PkgPath: "example.com/pkg"}
}

func pointerRef(tr generator.TypeRef) generator.TypeRef {
	tr.Expr = "*" + tr.Expr
	tr.Pointer = true
	return tr
}

func errorRef() generator.TypeRef {
	return generator.TypeRef{Expr: "error", Name: "error"}
}

var _ = Describe("Analyze", func() {
	It("describes a plain value function", func() {
		sig := generator.Signature{
			Name: "add",
			Params: []generator.Param{
				{Name: "scope", Type: scopeRef()},
				{Name: "a", Type: primitiveRef("float64")},
				{Name: "b", Type: primitiveRef("float64")},
			},
			Results: []generator.TypeRef{primitiveRef("float64")},
		}

		d, err := generator.Analyze(sig, generator.MethodAttrs{})
		Expect(err).To(BeNil())

		want := &generator.WrapperDescriptor{
			FuncName:    "add",
			JSName:      "add",
			WrapperName: "AddV8",
			HasScope:    true,
			Params: []generator.ParameterSpec{
				{Name: "a", GoType: "float64", Class: generator.ClassPrimitive, Index: 0},
				{Name: "b", GoType: "float64", Class: generator.ClassPrimitive, Index: 1},
			},
			Ret: generator.ReturnSpec{GoType: "float64", HasValue: true},
		}
		Expect(cmp.Diff(want, d)).To(BeEmpty())
	})

	It("derives the exported wrapper name from snake_case", func() {
		sig := generator.Signature{Name: "get_user_name"}
		d, err := generator.Analyze(sig, generator.MethodAttrs{})
		Expect(err).To(BeNil())
		Expect(d.WrapperName).To(Equal("GetUserNameV8"))
	})

	It("keeps a camelCase function name mostly intact", func() {
		sig := generator.Signature{Name: "fetchGreeting"}
		d, err := generator.Analyze(sig, generator.MethodAttrs{})
		Expect(err).To(BeNil())
		Expect(d.WrapperName).To(Equal("FetchGreetingV8"))
	})

	It("uses the name attribute for the JS name only", func() {
		sig := generator.Signature{Name: "add"}
		d, err := generator.Analyze(sig, generator.MethodAttrs{JSName: "plus"})
		Expect(err).To(BeNil())
		Expect(d.JSName).To(Equal("plus"))
		Expect(d.WrapperName).To(Equal("AddV8"))
	})

	It("prefers the handle class over deserialization", func() {
		sig := generator.Signature{
			Name: "callIt",
			Params: []generator.Param{
				{Name: "scope", Type: scopeRef()},
				{Name: "callback", Type: handleRef("Function")},
				{Name: "data", Type: handleRef("Uint8Array")},
			},
		}

		d, err := generator.Analyze(sig, generator.MethodAttrs{})
		Expect(err).To(BeNil())
		Expect(d.Params).To(HaveLen(2))
		Expect(d.Params[0].Class).To(Equal(generator.ClassEngineHandle))
		Expect(d.Params[0].Handle).To(Equal(generator.HandleFunction))
		Expect(d.Params[1].Handle).To(Equal(generator.HandleUint8Array))
	})

	It("classifies unknown named types as deserializable", func() {
		sig := generator.Signature{
			Name: "distance",
			Params: []generator.Param{
				{Name: "scope", Type: scopeRef()},
				{Name: "p", Type: localRef("Point")},
			},
			Results: []generator.TypeRef{primitiveRef("float64")},
		}

		d, err := generator.Analyze(sig, generator.MethodAttrs{})
		Expect(err).To(BeNil())
		Expect(d.Params[0].Class).To(Equal(generator.ClassDeserializable))
		Expect(d.Params[0].GoType).To(Equal("Point"))
	})

	It("marks pointer parameters optional without changing the class", func() {
		sig := generator.Signature{
			Name: "greet",
			Params: []generator.Param{
				{Name: "scope", Type: scopeRef()},
				{Name: "name", Type: primitiveRef("string")},
				{Name: "title", Type: pointerRef(primitiveRef("string"))},
			},
			Results: []generator.TypeRef{primitiveRef("string")},
		}

		d, err := generator.Analyze(sig, generator.MethodAttrs{})
		Expect(err).To(BeNil())
		Expect(d.Params[1].Optional).To(BeTrue())
		Expect(d.Params[1].Class).To(Equal(generator.ClassPrimitive))
		Expect(d.Params[1].GoType).To(Equal("string"))
		Expect(d.Params[1].Index).To(Equal(1))
	})

	It("accepts a function without a scope parameter", func() {
		sig := generator.Signature{
			Name: "multiply",
			Params: []generator.Param{
				{Name: "a", Type: primitiveRef("float64")},
				{Name: "b", Type: primitiveRef("float64")},
			},
			Results: []generator.TypeRef{primitiveRef("float64")},
		}

		d, err := generator.Analyze(sig, generator.MethodAttrs{Fast: true})
		Expect(err).To(BeNil())
		Expect(d.HasScope).To(BeFalse())
		Expect(d.Fast).To(BeTrue())
		Expect(d.Params).To(HaveLen(2))
		Expect(d.Params[0].Index).To(Equal(0))
	})

	It("consumes a state parameter directly after the scope", func() {
		sig := generator.Signature{
			Name: "increment",
			Params: []generator.Param{
				{Name: "scope", Type: scopeRef()},
				{Name: "state", Type: pointerRef(localRef("Counter"))},
				{Name: "amount", Type: primitiveRef("int32")},
			},
			Results: []generator.TypeRef{primitiveRef("int32")},
		}

		d, err := generator.Analyze(sig, generator.MethodAttrs{State: "Counter"})
		Expect(err).To(BeNil())
		Expect(d.State).To(Equal(&generator.StateSpec{Type: "Counter"}))
		Expect(d.Params).To(HaveLen(1))
		Expect(d.Params[0].Name).To(Equal("amount"))
		Expect(d.Params[0].Index).To(Equal(0))
	})

	It("rejects a state parameter without the state attribute", func() {
		sig := generator.Signature{
			Name: "increment",
			Params: []generator.Param{
				{Name: "scope", Type: scopeRef()},
				{Name: "state", Type: pointerRef(localRef("Counter"))},
			},
		}

		_, err := generator.Analyze(sig, generator.MethodAttrs{})
		Expect(err).ToNot(BeNil())
		Expect(err.Error()).To(ContainSubstring("no state type"))
	})

	It("rejects a state attribute without a state parameter", func() {
		sig := generator.Signature{
			Name: "increment",
			Params: []generator.Param{
				{Name: "scope", Type: scopeRef()},
				{Name: "amount", Type: primitiveRef("int32")},
			},
		}

		_, err := generator.Analyze(sig, generator.MethodAttrs{State: "Counter"})
		Expect(err).ToNot(BeNil())
		Expect(err.Error()).To(ContainSubstring("no state parameter"))
	})

	It("rejects a scope parameter that is not first", func() {
		sig := generator.Signature{
			Name: "bad",
			Params: []generator.Param{
				{Name: "a", Type: primitiveRef("int32")},
				{Name: "scope", Type: scopeRef()},
			},
		}

		_, err := generator.Analyze(sig, generator.MethodAttrs{})
		Expect(err).ToNot(BeNil())
		Expect(err.Error()).To(ContainSubstring("only the first parameter may be a scope"))
	})

	It("rejects a state parameter after regular parameters", func() {
		sig := generator.Signature{
			Name: "bad",
			Params: []generator.Param{
				{Name: "scope", Type: scopeRef()},
				{Name: "amount", Type: primitiveRef("int32")},
				{Name: "state", Type: pointerRef(localRef("Counter"))},
			},
		}

		_, err := generator.Analyze(sig, generator.MethodAttrs{State: "Counter"})
		Expect(err).ToNot(BeNil())
		Expect(err.Error()).To(ContainSubstring("directly follow the scope parameter"))
	})

	It("describes a void result", func() {
		sig := generator.Signature{Name: "touch"}
		d, err := generator.Analyze(sig, generator.MethodAttrs{})
		Expect(err).To(BeNil())
		Expect(d.Ret).To(Equal(generator.ReturnSpec{}))
	})

	It("describes a bare error result", func() {
		sig := generator.Signature{
			Name:    "failWhen",
			Results: []generator.TypeRef{errorRef()},
		}
		d, err := generator.Analyze(sig, generator.MethodAttrs{})
		Expect(err).To(BeNil())
		Expect(d.Ret).To(Equal(generator.ReturnSpec{Fallible: true}))
	})

	It("describes a value and error result pair", func() {
		sig := generator.Signature{
			Name:    "parseNumber",
			Results: []generator.TypeRef{primitiveRef("float64"), errorRef()},
		}
		d, err := generator.Analyze(sig, generator.MethodAttrs{})
		Expect(err).To(BeNil())
		Expect(d.Ret).To(Equal(generator.ReturnSpec{GoType: "float64", HasValue: true, Fallible: true}))
	})

	It("marks the promise attribute on the return", func() {
		sig := generator.Signature{
			Name:    "fetch",
			Results: []generator.TypeRef{primitiveRef("string")},
		}
		d, err := generator.Analyze(sig, generator.MethodAttrs{Promise: true})
		Expect(err).To(BeNil())
		Expect(d.Ret.AsPromise).To(BeTrue())
	})

	It("rejects more than one non-error result", func() {
		sig := generator.Signature{
			Name:    "bad",
			Results: []generator.TypeRef{primitiveRef("int32"), primitiveRef("int32")},
		}
		_, err := generator.Analyze(sig, generator.MethodAttrs{})
		Expect(err).ToNot(BeNil())
		Expect(err.Error()).To(ContainSubstring("more than one non-error result"))
	})

	It("rejects an error that is not the last result", func() {
		sig := generator.Signature{
			Name:    "bad",
			Results: []generator.TypeRef{errorRef(), errorRef()},
		}
		_, err := generator.Analyze(sig, generator.MethodAttrs{})
		Expect(err).ToNot(BeNil())
		Expect(err.Error()).To(ContainSubstring("error must be the last result"))
	})
})
