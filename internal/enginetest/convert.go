package enginetest

import (
	"fmt"
	"reflect"
	"unicode"

	v8glue "github.com/jerbob92/v8glue"
	"github.com/jerbob92/v8glue/js"
)

// ToValue converts a Go value to an engine value. Engine handles pass
// through untouched, everything else goes through reflection.
func (s *Scope) ToValue(o any) (v8glue.Value, error) {
	if o == nil {
		return nullValue, nil
	}

	if v, ok := o.(v8glue.Value); ok {
		return v, nil
	}

	switch t := o.(type) {
	case bool:
		return Boolean(t), nil
	case string:
		return String(t), nil
	case js.Uint8Array:
		return NewUint8Array([]byte(t)), nil
	case js.ArrayBuffer:
		return NewArrayBuffer([]byte(t)), nil
	}

	rv := reflect.ValueOf(o)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Boolean(rv.Bool()), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return nullValue, nil
		}
		return s.ToValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		elems := make([]v8glue.Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem, err := s.ToValue(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return NewArray(elems...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("could not convert map with key type %s", rv.Type().Key())
		}
		fields := map[string]v8glue.Value{}
		iter := rv.MapRange()
		for iter.Next() {
			field, err := s.ToValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			fields[iter.Key().String()] = field
		}
		return NewObject(fields), nil
	case reflect.Struct:
		fields := map[string]v8glue.Value{}
		for i := 0; i < rv.NumField(); i++ {
			structField := rv.Type().Field(i)
			if !structField.IsExported() {
				continue
			}
			field, err := s.ToValue(rv.Field(i).Interface())
			if err != nil {
				return nil, err
			}
			fields[lowerFirst(structField.Name)] = field
		}
		return NewObject(fields), nil
	}

	return nil, fmt.Errorf("could not convert value of type %T", o)
}

// FromValue converts an engine value into target, which must be a
// non-nil pointer.
func (s *Scope) FromValue(v v8glue.Value, target any) error {
	val, ok := v.(*value)
	if !ok {
		return fmt.Errorf("value does not belong to this engine")
	}

	if t, ok := target.(*v8glue.Value); ok {
		*t = v
		return nil
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer")
	}

	return s.fromValue(val, rv.Elem())
}

func (s *Scope) fromValue(val *value, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Bool:
		if val.kind != kindBoolean {
			return typeMismatch(dst)
		}
		dst.SetBool(val.boolean)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if val.kind != kindNumber {
			return typeMismatch(dst)
		}
		dst.SetInt(int64(val.number))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if val.kind != kindNumber {
			return typeMismatch(dst)
		}
		dst.SetUint(uint64(val.number))
		return nil
	case reflect.Float32, reflect.Float64:
		if val.kind != kindNumber {
			return typeMismatch(dst)
		}
		dst.SetFloat(val.number)
		return nil
	case reflect.String:
		if val.kind != kindString {
			return typeMismatch(dst)
		}
		dst.SetString(val.str)
		return nil
	case reflect.Slice:
		if dst.Type().Elem().Kind() == reflect.Uint8 &&
			(val.kind == kindUint8Array || val.kind == kindArrayBuffer) {
			out := make([]byte, len(val.bytes))
			copy(out, val.bytes)
			dst.SetBytes(out)
			return nil
		}
		if val.kind != kindArray {
			return typeMismatch(dst)
		}
		out := reflect.MakeSlice(dst.Type(), len(val.elems), len(val.elems))
		for i := range val.elems {
			elem, ok := val.elems[i].(*value)
			if !ok {
				return fmt.Errorf("array element %d does not belong to this engine", i)
			}
			if err := s.fromValue(elem, out.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	case reflect.Map:
		if val.kind != kindObject {
			return typeMismatch(dst)
		}
		if dst.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("could not convert into map with key type %s", dst.Type().Key())
		}
		out := reflect.MakeMap(dst.Type())
		for name, fv := range val.fields {
			field, ok := fv.(*value)
			if !ok {
				return fmt.Errorf("object field %s does not belong to this engine", name)
			}
			elem := reflect.New(dst.Type().Elem()).Elem()
			if err := s.fromValue(field, elem); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(name), elem)
		}
		dst.Set(out)
		return nil
	case reflect.Struct:
		if val.kind != kindObject {
			return typeMismatch(dst)
		}
		for i := 0; i < dst.NumField(); i++ {
			structField := dst.Type().Field(i)
			if !structField.IsExported() {
				continue
			}
			fv, ok := val.fields[lowerFirst(structField.Name)]
			if !ok {
				continue
			}
			field, ok := fv.(*value)
			if !ok {
				return fmt.Errorf("object field %s does not belong to this engine", structField.Name)
			}
			if err := s.fromValue(field, dst.Field(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Pointer:
		if val.kind == kindUndefined || val.kind == kindNull {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		out := reflect.New(dst.Type().Elem())
		if err := s.fromValue(val, out.Elem()); err != nil {
			return err
		}
		dst.Set(out)
		return nil
	}

	return typeMismatch(dst)
}

func typeMismatch(dst reflect.Value) error {
	return fmt.Errorf("value must be of type %s", dst.Type())
}

func lowerFirst(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
