package generator

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// AnnotatedFunc is one directive-annotated function found in the
// annotated file: its structured signature plus the parsed attributes.
type AnnotatedFunc struct {
	Sig      Signature
	Attrs    MethodAttrs
	Position token.Position
}

// LoadedFile is the front-end's whole output for one annotated file.
type LoadedFile struct {
	Pkg     string
	Funcs   []AnnotatedFunc
	Imports []string // packages referenced by parameter/return types, glue package excluded
}

// Load type-checks the package containing fileName and extracts every
// function carrying a //v8glue:method directive. Attribute parse errors
// are returned per function through errs so the remaining functions
// still generate.
func Load(fileName string) (*LoadedFile, []error, error) {
	fset := token.NewFileSet()
	pkgs, err := packages.Load(&packages.Config{
		Fset: fset,
		Mode: packages.NeedSyntax | packages.NeedName | packages.NeedModule | packages.NeedTypes | packages.NeedTypesInfo,
	}, fmt.Sprintf("file=%s", fileName))
	if err != nil {
		return nil, nil, err
	}
	if len(pkgs) == 0 {
		return nil, nil, fmt.Errorf("no package found for file %s", fileName)
	}

	pkg := pkgs[0]
	loaded := &LoadedFile{Pkg: pkg.Name}

	importSet := map[string]bool{}
	qualifier := func(p *types.Package) string {
		if p == pkg.Types {
			return ""
		}
		if p.Path() == GluePkgPath {
			return "v8glue"
		}
		importSet[p.Path()] = true
		return p.Name()
	}

	var errs []error
	base := filepath.Base(fileName)
	for _, file := range pkg.Syntax {
		position := fset.Position(file.Pos())
		if filepath.Base(position.Filename) != base {
			continue
		}

		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Doc == nil || fd.Recv != nil {
				continue
			}

			attrsText, ok := directiveText(fd.Doc)
			if !ok {
				continue
			}

			pos := fset.Position(fd.Pos())
			attrs, err := ParseAttrs(attrsText)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: function %s: %w", pos, fd.Name.Name, err))
				continue
			}

			obj, ok := pkg.TypesInfo.Defs[fd.Name].(*types.Func)
			if !ok {
				errs = append(errs, fmt.Errorf("%s: could not resolve function %s", pos, fd.Name.Name))
				continue
			}

			loaded.Funcs = append(loaded.Funcs, AnnotatedFunc{
				Sig:      signatureOf(obj, qualifier),
				Attrs:    attrs,
				Position: pos,
			})
		}
	}

	for path := range importSet {
		loaded.Imports = append(loaded.Imports, path)
	}
	sort.Strings(loaded.Imports)

	return loaded, errs, nil
}

// directiveText returns the attribute text following the v8glue:method
// marker in doc, and whether the marker is present at all.
func directiveText(doc *ast.CommentGroup) (string, bool) {
	for _, comment := range doc.List {
		if !strings.HasPrefix(comment.Text, Directive) {
			continue
		}
		rest := comment.Text[len(Directive):]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		return rest, true
	}
	return "", false
}

func signatureOf(obj *types.Func, qualifier types.Qualifier) Signature {
	sig := obj.Type().(*types.Signature)

	out := Signature{Name: obj.Name()}
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		out.Params = append(out.Params, Param{
			Name: params.At(i).Name(),
			Type: typeRefOf(params.At(i).Type(), qualifier),
		})
	}

	results := sig.Results()
	for i := 0; i < results.Len(); i++ {
		out.Results = append(out.Results, typeRefOf(results.At(i).Type(), qualifier))
	}

	return out
}

// typeRefOf flattens a go/types type into the structural description the
// analyzer consumes. Only one level of pointer indirection is inspected,
// deeper shapes classify as deserializable through the empty Name.
func typeRefOf(t types.Type, qualifier types.Qualifier) TypeRef {
	tr := TypeRef{Expr: types.TypeString(t, qualifier)}

	if ptr, ok := t.(*types.Pointer); ok {
		tr.Pointer = true
		t = ptr.Elem()
	}

	switch tt := t.(type) {
	case *types.Named:
		obj := tt.Obj()
		tr.Name = obj.Name()
		if obj.Pkg() != nil {
			tr.PkgPath = obj.Pkg().Path()
		}
	case *types.Basic:
		tr.Name = tt.Name()
	}

	return tr
}
