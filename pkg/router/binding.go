package router

import (
	"encoding/json"
	"io"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/questlane/backend/pkg/errorx"
)

var errNotSupportedMethod = errorx.New(errorx.NotImplemented, "Not supported method")

func bindBody(body io.Reader, obj any) error {
	if err := json.NewDecoder(body).Decode(obj); err != nil && err != io.EOF {
		return errorx.New(errorx.BadRequest, "Cannot parse request body")
	}

	return nil
}

// bindQuery fills obj with query string values. Fields are matched by their
// json tag, falling back to the lowercase field name.
func bindQuery(values url.Values, obj any) error {
	structValue := reflect.ValueOf(obj).Elem()
	structType := structValue.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" {
			name = strings.ToLower(field.Name)
		}

		if name == "-" || !values.Has(name) {
			continue
		}

		if err := setField(structValue.Field(i), values.Get(name)); err != nil {
			return errorx.New(errorx.BadRequest, "Invalid value of parameter %s", name)
		}
	}

	return nil
}

func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return errorx.New(errorx.BadRequest, "Unsupported parameter type %s", field.Kind())
	}

	return nil
}
