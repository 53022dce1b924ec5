package router

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// bindQuery fills the exported fields of target from the query string,
// matching on the json tag name. Missing parameters leave the zero value.
func bindQuery(values url.Values, target any) error {
	v := reflect.ValueOf(target).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name = strings.ToLower(field.Name)
		}

		if _, ok := values[name]; !ok {
			continue
		}

		raw := values.Get(name)
		fieldValue := v.Field(i)
		switch fieldValue.Kind() {
		case reflect.String:
			fieldValue.SetString(raw)

		case reflect.Int, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer parameter %s", name)
			}
			fieldValue.SetInt(n)

		case reflect.Float64:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("invalid number parameter %s", name)
			}
			fieldValue.SetFloat(f)

		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("invalid boolean parameter %s", name)
			}
			fieldValue.SetBool(b)

		case reflect.Slice:
			if fieldValue.Type().Elem().Kind() != reflect.String {
				return fmt.Errorf("unsupported query parameter %s", name)
			}
			fieldValue.Set(reflect.ValueOf(values[name]))

		default:
			return fmt.Errorf("unsupported query parameter %s", name)
		}
	}

	return nil
}
