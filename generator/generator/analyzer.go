package generator

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// primitiveTypes are the Go basic types classified as ClassPrimitive.
var primitiveTypes = map[string]bool{
	"bool":    true,
	"string":  true,
	"int":     true,
	"int8":    true,
	"int16":   true,
	"int32":   true,
	"int64":   true,
	"uint":    true,
	"uint8":   true,
	"uint16":  true,
	"uint32":  true,
	"uint64":  true,
	"float32": true,
	"float64": true,
	"byte":    true,
	"rune":    true,
}

// Analyze turns a structured signature description and its attribute
// configuration into a WrapperDescriptor. It fails on malformed shapes
// (duplicate or misplaced scope/state parameters, unsupported result
// lists); unrecognized argument and return types are not failures, they
// classify as deserializable and any problem surfaces when the generated
// file compiles.
func Analyze(sig Signature, attrs MethodAttrs) (*WrapperDescriptor, error) {
	d := &WrapperDescriptor{
		FuncName:    sig.Name,
		JSName:      attrs.JSName,
		WrapperName: exportName(sig.Name) + "V8",
		Fast:        attrs.Fast,
	}
	if d.JSName == "" {
		d.JSName = sig.Name
	}

	// Phase one: greedily consume at most one leading scope parameter
	// and one state parameter. Neither gets a JS argument index.
	params := sig.Params
	if len(params) > 0 && isScopeType(params[0].Type) {
		d.HasScope = true
		params = params[1:]
	}
	if len(params) > 0 && params[0].Name == "state" {
		if attrs.State == "" {
			return nil, fmt.Errorf("function %s has a state parameter but no state type, use //v8glue:method state=Type", sig.Name)
		}
		d.State = &StateSpec{Type: attrs.State}
		params = params[1:]
	}
	if attrs.State != "" && d.State == nil {
		return nil, fmt.Errorf("function %s has a state attribute but no state parameter directly after the scope parameter", sig.Name)
	}

	// Phase two: the remaining slice binds positionally to the JS
	// argument list, 0, 1, 2, ...
	for i := range params {
		if isScopeType(params[i].Type) {
			return nil, fmt.Errorf("function %s: parameter %s: only the first parameter may be a scope", sig.Name, params[i].Name)
		}
		if params[i].Name == "state" {
			return nil, fmt.Errorf("function %s: parameter %d: the state parameter must directly follow the scope parameter", sig.Name, i)
		}

		spec := classifyParam(params[i])
		spec.Index = i
		d.Params = append(d.Params, spec)
	}

	ret, err := classifyReturn(sig)
	if err != nil {
		return nil, err
	}
	ret.AsPromise = attrs.Promise
	d.Ret = ret

	return d, nil
}

func isScopeType(tr TypeRef) bool {
	return !tr.Pointer && tr.PkgPath == GluePkgPath && tr.Name == "Scope"
}

// classifyParam applies the fixed preference order: engine handle, then
// primitive, then deserializable. A pointer wraps any of them as
// optional, optionality is orthogonal to the class.
func classifyParam(p Param) ParameterSpec {
	spec := ParameterSpec{
		Name:     p.Name,
		GoType:   strings.TrimPrefix(p.Type.Expr, "*"),
		Optional: p.Type.Pointer,
	}

	if p.Type.PkgPath == GluePkgPath {
		if kind, ok := handleKinds[p.Type.Name]; ok {
			spec.Class = ClassEngineHandle
			spec.Handle = kind
			return spec
		}
	}

	if p.Type.PkgPath == "" && primitiveTypes[p.Type.Name] {
		spec.Class = ClassPrimitive
		return spec
	}

	spec.Class = ClassDeserializable
	return spec
}

func classifyReturn(sig Signature) (ReturnSpec, error) {
	ret := ReturnSpec{}

	results := sig.Results
	if len(results) > 0 {
		last := results[len(results)-1]
		if last.PkgPath == "" && last.Name == "error" && !last.Pointer {
			ret.Fallible = true
			results = results[:len(results)-1]
		}
	}

	if len(results) > 1 {
		return ret, fmt.Errorf("function %s: more than one non-error result is not supported", sig.Name)
	}
	if len(results) == 1 {
		if results[0].PkgPath == "" && results[0].Name == "error" && !results[0].Pointer {
			return ret, fmt.Errorf("function %s: error must be the last result", sig.Name)
		}
		ret.HasValue = true
		ret.GoType = results[0].Expr
	}

	return ret, nil
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

// exportName derives the exported Go name for generated symbols, turning
// snake_case and camelCase function names into CamelCase.
func exportName(name string) string {
	parts := strings.Split(name, "_")
	out := make([]string, 0, len(parts))
	for i := range parts {
		if parts[i] == "" {
			continue
		}
		out = append(out, titleCaser.String(parts[i]))
	}
	return strings.Join(out, "")
}
