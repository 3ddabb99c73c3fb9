package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

type FieldError struct {
	Field   string
	Message string
}

// Result is the outcome of validating one request. The zero value is valid.
type Result struct {
	Errors []FieldError
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Result) Add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{Result: r}
}

// Validate checks a request struct against its validate tags.
func Validate(v any) Result {
	var result Result

	err := validate.Struct(v)
	if err == nil {
		return result
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result.Add("request", err.Error())
		return result
	}

	for _, fe := range fieldErrs {
		result.Add(fe.Field(), message(fe))
	}
	return result
}

func message(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", field, fe.Param())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

// ValidationError carries every failed field of a rejected request.
type ValidationError struct {
	Result Result
}

func (e *ValidationError) Error() string {
	return e.Message()
}

// Message is the first failure, followed by a count of the remaining ones.
func (e *ValidationError) Message() string {
	if len(e.Result.Errors) == 0 {
		return "The given data was invalid."
	}

	first := e.Result.Errors[0].Message
	switch rest := len(e.Result.Errors) - 1; rest {
	case 0:
		return first
	case 1:
		return first + " (and 1 more error)"
	default:
		return fmt.Sprintf("%s (and %d more errors)", first, rest)
	}
}

// Fields groups the messages per field, keeping their order.
func (e *ValidationError) Fields() map[string][]string {
	out := make(map[string][]string, len(e.Result.Errors))
	for _, fe := range e.Result.Errors {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}
