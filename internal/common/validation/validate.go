package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/printhaus/go-shop-finance/internal/models"
)

const codeUnknown = "UNKNOW"

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(models.Decimal); ok {
			return d.String()
		}
		return nil
	}, models.Decimal{})

	must(v.RegisterValidation("decimalGreaterThan", compareDecimal(decimal.Decimal.GreaterThan)))
	must(v.RegisterValidation("decimalGreaterThanOrEqual", compareDecimal(decimal.Decimal.GreaterThanOrEqual)))
	must(v.RegisterValidation("noStartEndSpaces", noStartEndSpaces))
	must(v.RegisterValidation("date", isDate))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// ValidateStruct returns a *multierror.Error with one ErrorValidateResponse per
// failed rule. Codes come from the error map, keyed by "<Struct.field>_<tag>"
// first and "<field>_<tag>" second.
func ValidateStruct(toValidate any) error {
	err := validate.Struct(toValidate)
	if err == nil {
		return nil
	}

	var errs *multierror.Error

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return multierror.Append(errs, ErrorValidateResponse{Message: err.Error()})
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return multierror.Append(errs, ErrorValidateResponse{Message: err.Error()})
	}

	for _, fe := range valErrs {
		errs = multierror.Append(errs, toErrorResponse(fe))
	}

	return errs.ErrorOrNil()
}

func toErrorResponse(fe validator.FieldError) ErrorValidateResponse {
	for _, key := range []string{fe.Namespace() + "_" + fe.Tag(), fe.Field() + "_" + fe.Tag()} {
		if detail, ok := models.MapErrors[key]; ok {
			return ErrorValidateResponse{Code: detail.Code, Field: fe.Field(), Message: detail.ErrorMessage.Error()}
		}
	}

	return ErrorValidateResponse{
		Code:    codeUnknown,
		Field:   fe.Field(),
		Message: strings.TrimSpace(fe.Tag() + " " + fe.Param()),
	}
}

func compareDecimal(cmp func(in, param decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		data, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		value, err := decimal.NewFromString(data)
		if err != nil {
			return false
		}

		param, err := models.NewDecimal(fl.Param())
		if err != nil {
			return false
		}

		return cmp(value, param.Decimal)
	}
}

func noStartEndSpaces(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == strings.TrimSpace(s)
}

// isDate accepts calendar dates only, so 2024-02-30 is rejected.
func isDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}
