package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.SetTagName("binding")
		validate.RegisterTagNameFunc(jsonTagName)
	})
	return validate
}

// UseJSONFieldNames makes gin's binding validator report json field names
// instead of Go struct field names.
func UseJSONFieldNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// ValidateStruct runs the binding rules of a request model outside of gin.
func ValidateStruct(s interface{}) error {
	if err := validatorInstance().Struct(s); err != nil {
		return BindingError(err)
	}
	return nil
}

// BindingError converts decode and validator failures into a ValidationError
// naming the offending fields.
func BindingError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &ValidationError{Message: "validation failed", Err: err}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{
				Field:   fieldPath(fe),
				Message: describeTag(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{
			Message: "malformed request body",
			Fields:  []FieldError{{Field: typeErr.Field, Message: "must be a " + typeErr.Type.String()}},
			Err:     err,
		}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ValidationError{Message: "malformed request body", Err: err}
	}
	if errors.Is(err, io.EOF) {
		return &ValidationError{Message: "request body is required", Err: err}
	}

	var already *ValidationError
	if errors.As(err, &already) {
		return err
	}
	return &ValidationError{Message: "invalid request", Err: err}
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min", "gte":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max", "lte":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email"
	case "uuid", "uuid4":
		return "must be a valid id"
	case "url":
		return "must be a valid url"
	default:
		return "is invalid"
	}
}
