package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel inserts every db-tagged field of model into table.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	fields, err := modelFields(model)
	if err != nil {
		return "", nil, err
	}

	cols := make([]string, 0, len(fields))
	vals := make([]any, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, f.column)
		vals = append(vals, f.value)
	}
	return InsertInto(table).Columns(cols...).Values(vals...).Suffix(suffix).ToSQL()
}

// UpdateModel overwrites every db-tagged field of model except key, matching rows on key.
func UpdateModel(table string, model any, key string) (string, []any, error) {
	fields, err := modelFields(model)
	if err != nil {
		return "", nil, err
	}

	update := Update(table)
	var (
		keyValue any
		hasKey   bool
	)
	for _, f := range fields {
		if f.column == key {
			keyValue, hasKey = f.value, true
			continue
		}
		update = update.Set(f.column, f.value)
	}
	if !hasKey {
		return "", nil, fmt.Errorf("model has no %q column", key)
	}
	return update.Where(Eq(key, keyValue)).ToSQL()
}

type modelField struct {
	column string
	value  any
}

func modelFields(model any) ([]modelField, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	fields := make([]modelField, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		fields = append(fields, modelField{column: col, value: value.Field(i).Interface()})
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("model has no db columns")
	}
	return fields, nil
}
