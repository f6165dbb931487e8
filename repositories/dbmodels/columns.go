package dbmodels

import (
	"fmt"
	"reflect"
)

// ColumnList builds the select column list of a db model struct from its
// `db` tags, in field order.
func ColumnList[T any](prefix ...string) []string {
	var value T
	modelType := reflect.TypeOf(value)
	if modelType.Kind() != reflect.Struct {
		panic(fmt.Sprintf("ColumnList: %T is not a struct", value))
	}

	columns := make([]string, 0, modelType.NumField())
	for i := 0; i < modelType.NumField(); i++ {
		tag, ok := modelType.Field(i).Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		if len(prefix) > 0 {
			tag = fmt.Sprintf("%s.%s", prefix[0], tag)
		}
		columns = append(columns, tag)
	}
	return columns
}
