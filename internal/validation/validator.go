package validation

import (
	"errors"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/genassess/genesis-assessment-hub/internal/models"
)

// FieldErrors maps a JSON field name to the rule it failed.
type FieldErrors map[string]string

// Error implements error so a non-empty FieldErrors can travel as one.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

// Validator checks struct tags of the site's request types.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the site's custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on empty tags or nil functions.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return NotBlank(fl.Field().String())
	})
	_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return Email(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return Phone(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return Date(fl.Field().String())
	})
	_ = v.RegisterValidation("examtype", func(fl validator.FieldLevel) bool {
		return models.ExamType(fl.Field().String()).Valid()
	})

	return &Validator{validate: v}
}

// Struct validates s and returns nil when every field passes.
// All fields are checked; the result holds one entry per failing field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := make(FieldErrors, len(verrs))
	for _, e := range verrs {
		fe[e.Field()] = e.Tag()
	}
	return fe
}
