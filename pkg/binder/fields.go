package binder

import (
	"fmt"
	"mime/multipart"
	"path"
	"reflect"
	"strconv"
	"strings"
)

var fileHeaderType = reflect.TypeFor[*multipart.FileHeader]()

// bindValues copies form values and uploaded files into the struct pointed
// to by v. Fields are matched by their `form` and `file` tags; missing keys
// leave the field untouched.
func bindValues(v any, values map[string][]string, files map[string][]*multipart.FileHeader) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a non-nil pointer to struct", ErrInvalidForm)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		sf := rt.Field(i)
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		if name := tagName(sf.Tag.Get("form")); name != "" {
			if vals := values[name]; len(vals) > 0 {
				if err := assign(field, vals); err != nil {
					return fmt.Errorf("%w: field %s: %w", ErrInvalidForm, name, err)
				}
			}
		}

		if name := tagName(sf.Tag.Get("file")); name != "" {
			if fhs := files[name]; len(fhs) > 0 {
				if err := assignFiles(field, fhs); err != nil {
					return fmt.Errorf("%w: file %s: %w", ErrInvalidForm, name, err)
				}
			}
		}
	}
	return nil
}

func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}

// assign converts the submitted values to the field's type. Scalars take
// the first value; slices take every value.
func assign(field reflect.Value, vals []string) error {
	switch field.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return assign(field.Elem(), vals)
	case reflect.Slice:
		slice := reflect.MakeSlice(field.Type(), len(vals), len(vals))
		for i, s := range vals {
			if err := assign(slice.Index(i), []string{s}); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	s := vals[0]
	switch field.Kind() {
	case reflect.String:
		field.SetString(s)
	case reflect.Bool:
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q", s)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(strings.TrimSpace(s), field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		field.SetFloat(n)
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
	return nil
}

// parseBool also accepts the values browsers send for checkboxes.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "on", "yes":
		return true, nil
	case "", "0", "f", "false", "off", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

func assignFiles(field reflect.Value, fhs []*multipart.FileHeader) error {
	for _, fh := range fhs {
		fh.Filename = baseFilename(fh.Filename)
	}

	switch {
	case field.Type() == fileHeaderType:
		field.Set(reflect.ValueOf(fhs[0]))
	case field.Kind() == reflect.Slice && field.Type().Elem() == fileHeaderType:
		field.Set(reflect.ValueOf(fhs).Convert(field.Type()))
	default:
		return fmt.Errorf("unsupported file field type %s", field.Type())
	}
	return nil
}

// baseFilename drops directory components from client supplied names,
// Windows separators included.
func baseFilename(name string) string {
	name = strings.ReplaceAll(name, "\x00", "")
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	switch name {
	case "", ".", "..", "/":
		return "unnamed"
	}
	return name
}
