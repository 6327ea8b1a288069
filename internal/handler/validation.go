package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// FormValidator plugs go-playground/validator into echo.  Field names in
// errors are the form field names, so they line up with template inputs.
type FormValidator struct {
	v *validator.Validate
}

// NewFormValidator returns the validator installed as echo's Validator.
func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &FormValidator{v: v}
}

// Validate implements echo.Validator.
func (fv *FormValidator) Validate(i any) error { return fv.v.Struct(i) }

// fieldErrors turns a validation failure into one Indonesian message per
// form field.  Other errors yield nil.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = fieldMessage(fe)
		}
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required", "notblank":
		return "Wajib diisi."
	case "email":
		return "Format email tidak valid."
	case "len":
		return fmt.Sprintf("Harus tepat %s karakter.", fe.Param())
	case "min":
		return fmt.Sprintf("Minimal %s karakter.", fe.Param())
	case "max":
		return fmt.Sprintf("Maksimal %s karakter.", fe.Param())
	case "eqfield":
		return "Konfirmasi kata sandi tidak cocok."
	}
	return "Isian tidak valid."
}

// validateForm runs echo's validator.  Field problems come back as
// messages; any other failure is returned as an error.
func validateForm(c echo.Context, form any) (map[string]string, error) {
	err := c.Validate(form)
	if err == nil {
		return nil, nil
	}
	if errs := fieldErrors(err); errs != nil {
		return errs, nil
	}
	return nil, err
}
