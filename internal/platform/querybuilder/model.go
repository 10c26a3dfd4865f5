package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds a single-row insert from the struct's db tags.
// Fields tagged `db:"col,readonly"` are read back but never written.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// InsertModels builds one multi-row insert from a slice of structs sharing a type.
func InsertModels(table string, models any, suffix string) (string, []any, error) {
	value := reflect.ValueOf(models)
	if value.Kind() != reflect.Slice {
		return "", nil, fmt.Errorf("models must be slice")
	}
	if value.Len() == 0 {
		return "", nil, fmt.Errorf("models are required")
	}

	builder := InsertInto(table).Suffix(suffix)
	for i := 0; i < value.Len(); i++ {
		cols, vals, err := columnsAndValuesFromModel(value.Index(i).Interface())
		if err != nil {
			return "", nil, fmt.Errorf("model %d: %w", i, err)
		}
		if i == 0 {
			builder.Columns(cols...)
		}
		builder.Values(vals...)
	}
	return builder.ToSQL()
}

// Columns lists the writable db columns of a model type, in field order.
func Columns(model any) ([]string, error) {
	cols, _, err := columnsAndValuesFromModel(model)
	return cols, err
}

// Values lists the writable db values of a model, aligned with Columns.
func Values(model any) ([]any, error) {
	_, vals, err := columnsAndValuesFromModel(model)
	return vals, err
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		parts := strings.Split(tag, ",")
		col := strings.TrimSpace(parts[0])
		if col == "" || col == "-" || hasTagOption(parts[1:], "readonly") {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

func hasTagOption(options []string, want string) bool {
	for _, opt := range options {
		if strings.TrimSpace(opt) == want {
			return true
		}
	}
	return false
}
