package transforms

import (
	"reflect"
	"strings"
)

type TransformDefinition struct {
	Type  string
	Match map[string]string
	Data  map[string]interface{}
}

func (t *TransformDefinition) apply(inputValue reflect.Value) {
	isMatch := true
	for key, value := range t.Match {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || field.String() != value {
			isMatch = false
		}
	}

	if !isMatch {
		return
	}

	for key, value := range t.Data {
		field := inputValue.FieldByName(key)
		if field.IsValid() && field.CanSet() {
			field.Set(reflect.ValueOf(value))
		}
	}
}

// Transform applies every registered definition to the input, recursing into
// nested structs and slices up to levels deep. Inputs must be pointers, or
// slices of pointers, for updates to stick.
func Transform(input interface{}, levels int) {
	if input == nil {
		return
	}

	inputTypeOf := reflect.TypeOf(input)
	inputValueOf := reflect.ValueOf(input)

	if inputTypeOf.Kind() == reflect.Slice {
		for i := 0; i < inputValueOf.Len(); i++ {
			transformValue(inputValueOf.Index(i).Interface(), levels)
		}
	} else {
		transformValue(input, levels)
	}
}

func transformValue(input interface{}, levels int) {
	inputTypeOf := reflect.TypeOf(input)
	if inputTypeOf == nil || inputTypeOf.Kind() != reflect.Pointer {
		return
	}

	inputValue := reflect.ValueOf(input).Elem()
	if !inputValue.IsValid() || inputValue.Kind() != reflect.Struct {
		return
	}

	inputTypeName := strings.Replace(inputTypeOf.String(), "*", "", 1)

	for _, transformDef := range transforms {
		if transformDef.Type != inputTypeName {
			continue
		}

		transformDef.apply(inputValue)
	}

	if levels <= 1 {
		return
	}

	for i := 0; i < inputValue.NumField(); i++ {
		valueField := inputValue.Field(i)
		typeField := inputValue.Type().Field(i)

		if !typeField.IsExported() {
			continue
		}

		valueTypeKind := typeField.Type.Kind()
		if valueTypeKind == reflect.Pointer {
			indirect := reflect.Indirect(valueField)
			if !indirect.IsValid() {
				continue
			}
			valueTypeKind = indirect.Type().Kind()
		}

		if valueTypeKind == reflect.Slice || valueTypeKind == reflect.Struct {
			Transform(valueField.Interface(), levels-1)
		}
	}
}
