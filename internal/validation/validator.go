package validation

import (
	"reflect"
	"strings"

	"finance-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// Money and dates are validated through their primitive forms so that
	// standard tags like required and gt apply to them.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterCustomTypeFunc(dateValue, models.Date{})

	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("decimal_gte0", validateNonNegativeAmount)
	_ = v.RegisterValidation("category", validateCategory)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the configured rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func dateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(models.Date); ok {
		return d.Time
	}
	return nil
}

// validateAccountType validates that account type is one of the known types
func validateAccountType(fl validator.FieldLevel) bool {
	return models.AccountType(fl.Field().String()).IsValid()
}

// validateNonNegativeAmount accepts zero and positive amounts
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() >= 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() >= 0
	default:
		return false
	}
}

// validateCategory rejects blank categories and categories with control characters
func validateCategory(fl validator.FieldLevel) bool {
	category := fl.Field().String()
	if strings.TrimSpace(category) == "" {
		return false
	}
	for _, r := range category {
		if r < 0x20 {
			return false
		}
	}
	return true
}
