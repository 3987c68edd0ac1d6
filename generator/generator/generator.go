package generator

import (
	"errors"
	"os"
	"path"
	"strings"

	"go.uber.org/zap"
)

// Generate processes the annotated file and writes the bindings file
// next to it. An analysis failure aborts generation for that function
// only; the remaining functions are still emitted and the collected
// diagnostics are returned at the end.
func Generate(dir string, fileName string, logger *zap.Logger) error {
	loaded, funcErrs, err := Load(fileName)
	if err != nil {
		return err
	}

	outputPath := path.Join(dir, OutputFileName(fileName))

	descriptors := make([]*WrapperDescriptor, 0, len(loaded.Funcs))
	for _, fn := range loaded.Funcs {
		descriptor, err := Analyze(fn.Sig, fn.Attrs)
		if err != nil {
			funcErrs = append(funcErrs, err)
			continue
		}

		logger.Debug("analyzed function",
			zap.String("function", descriptor.FuncName),
			zap.String("wrapper", descriptor.WrapperName),
			zap.String("jsName", descriptor.JSName))

		descriptors = append(descriptors, descriptor)
	}

	if len(descriptors) == 0 {
		_ = os.Remove(outputPath)
		return errors.Join(funcErrs...)
	}

	data := BuildTemplateData(loaded.Pkg, loaded.Imports, descriptors)

	for i := range data.Functions {
		if fastRequested(descriptors, data.Functions[i].FuncName) && data.Functions[i].Fast == nil {
			logger.Warn("fast attribute ignored, signature is not fast-call compatible",
				zap.String("function", data.Functions[i].FuncName))
		}
	}

	source, err := Emit(data)
	if err != nil {
		funcErrs = append(funcErrs, err)
		return errors.Join(funcErrs...)
	}

	err = os.WriteFile(outputPath, source, 0o644)
	if err != nil {
		funcErrs = append(funcErrs, err)
		return errors.Join(funcErrs...)
	}

	logger.Info("wrote bindings",
		zap.String("output", outputPath),
		zap.Int("functions", len(descriptors)))

	return errors.Join(funcErrs...)
}

// OutputFileName derives the bindings file name from the annotated file,
// funcs.go becomes funcs_v8.go.
func OutputFileName(fileName string) string {
	base := path.Base(fileName)
	return strings.TrimSuffix(base, ".go") + "_v8.go"
}

func fastRequested(descriptors []*WrapperDescriptor, funcName string) bool {
	for _, d := range descriptors {
		if d.FuncName == funcName {
			return d.Fast
		}
	}
	return false
}
