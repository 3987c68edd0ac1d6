package generator

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"
)

var (
	//go:embed templates/*
	templates embed.FS
)

// TemplateData is the root value handed to bindings.tmpl.
type TemplateData struct {
	Pkg       string
	Imports   []string
	Functions []TemplateFunction
}

// TemplateFunction is the emission view of one WrapperDescriptor with
// everything precomputed, keeping the template itself pure layout.
type TemplateFunction struct {
	FuncName    string
	JSName      string
	WrapperName string
	State       *StateSpec
	Params      []TemplateParam
	Ret         ReturnSpec
	CallExpr    string
	Fast        *TemplateFast
}

// TemplateParam carries one extraction site. Mode is one of "handle",
// "value" and "convert"; the mapping from TypeClass is total and adding
// a class fails loudly here instead of falling through in the template.
type TemplateParam struct {
	Name        string
	GoType      string
	Index       int
	Optional    bool
	Mode        string
	HandleType  string
	CheckMethod string
}

// TemplateFast describes the direct-call fast variant of a function.
type TemplateFast struct {
	Params     []TemplateFastParam
	ReturnType string
	HasReturn  bool
	HasState   bool
	StateType  string
	CallExpr   string
	InfoArgs   []string
	InfoResult string
}

type TemplateFastParam struct {
	Name   string
	GoType string
}

// fastTypes maps Go type names to the FastType constant of the runtime
// package. Only these types qualify for the fast calling convention.
var fastTypes = map[string]string{
	"bool":    "FastBool",
	"int32":   "FastInt32",
	"uint32":  "FastUint32",
	"int64":   "FastInt64",
	"uint64":  "FastUint64",
	"float32": "FastFloat32",
	"float64": "FastFloat64",
}

// BuildTemplateData turns analyzed descriptors into template input.
// Functions are sorted by wrapper name so output is deterministic.
func BuildTemplateData(pkg string, imports []string, descriptors []*WrapperDescriptor) TemplateData {
	data := TemplateData{
		Pkg:       pkg,
		Imports:   append([]string{GluePkgPath}, imports...),
		Functions: make([]TemplateFunction, 0, len(descriptors)),
	}
	sort.Strings(data.Imports)

	for _, d := range descriptors {
		fn := TemplateFunction{
			FuncName:    d.FuncName,
			JSName:      d.JSName,
			WrapperName: d.WrapperName,
			State:       d.State,
			Ret:         d.Ret,
			CallExpr:    callExpr(d),
		}

		for _, p := range d.Params {
			fn.Params = append(fn.Params, templateParam(p))
		}

		if d.Fast {
			fn.Fast = buildFast(d)
		}

		data.Functions = append(data.Functions, fn)
	}

	sort.Slice(data.Functions, func(i, j int) bool {
		return data.Functions[i].WrapperName < data.Functions[j].WrapperName
	})

	return data
}

func templateParam(p ParameterSpec) TemplateParam {
	tp := TemplateParam{
		Name:     p.Name,
		GoType:   p.GoType,
		Index:    p.Index,
		Optional: p.Optional,
	}

	switch p.Class {
	case ClassEngineHandle:
		if p.Handle == HandleValue {
			tp.Mode = "value"
		} else {
			tp.Mode = "handle"
			tp.HandleType = p.Handle.TypeName()
			tp.CheckMethod = p.Handle.CheckMethod()
		}
	case ClassPrimitive, ClassDeserializable:
		tp.Mode = "convert"
	default:
		panic(fmt.Sprintf("unhandled type class %s", p.Class))
	}

	return tp
}

func callExpr(d *WrapperDescriptor) string {
	args := make([]string, 0, len(d.Params)+2)
	if d.HasScope {
		args = append(args, "scope")
	}
	if d.State != nil {
		args = append(args, "state")
	}
	for _, p := range d.Params {
		args = append(args, p.Name)
	}
	return d.FuncName + "(" + strings.Join(args, ", ") + ")"
}

// buildFast returns the fast variant when the signature qualifies:
// no scope parameter, no optional parameters, every parameter and the
// result representable as a fast type, and neither fallible nor promise
// shaped. Otherwise nil, the slow path alone is emitted.
func buildFast(d *WrapperDescriptor) *TemplateFast {
	if d.HasScope || d.Ret.Fallible || d.Ret.AsPromise {
		return nil
	}

	fast := &TemplateFast{
		InfoResult: "FastVoid",
	}

	for _, p := range d.Params {
		if p.Optional || p.Class != ClassPrimitive {
			return nil
		}
		ft, ok := fastTypes[p.GoType]
		if !ok {
			return nil
		}
		fast.Params = append(fast.Params, TemplateFastParam{Name: p.Name, GoType: p.GoType})
		fast.InfoArgs = append(fast.InfoArgs, ft)
	}

	if d.Ret.HasValue {
		ft, ok := fastTypes[d.Ret.GoType]
		if !ok {
			return nil
		}
		fast.ReturnType = d.Ret.GoType
		fast.HasReturn = true
		fast.InfoResult = ft
	}

	if d.State != nil {
		fast.HasState = true
		fast.StateType = d.State.Type
	}
	fast.CallExpr = callExpr(d)

	return fast
}

// Emit renders the bindings file for data and returns gofmt-formatted
// source, ready to be written next to the annotated file.
func Emit(data TemplateData) ([]byte, error) {
	tmpl, err := template.New("").ParseFS(templates, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	writer := bytes.NewBuffer(nil)
	err = tmpl.ExecuteTemplate(writer, "bindings.tmpl", data)
	if err != nil {
		return nil, err
	}

	fileBytes := writer.Bytes()
	formattedSource, err := format.Source(fileBytes)
	if err != nil {
		return nil, fmt.Errorf("could not format generated bindings: %w\nsource:\n%s", err, fileBytes)
	}

	return formattedSource, nil
}
