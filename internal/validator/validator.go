package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/humanglue/glueiq-service/internal/scoring"
)

// Validator wraps struct tag validation with the scoring domain's custom
// rules registered.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)
	return &Validator{structValidator: structValidator}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Validate performs complete validation and converts failures into the
// shared ValidationErrors type.
func (v *Validator) Validate(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if ve := ToValidationErrors(err); len(ve) > 0 {
			return ve
		}
		return err
	}
	return nil
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("answer_type", validateAnswerType)
	validate.RegisterValidation("dimension_key", validateDimensionKey)
	validate.RegisterValidation("priority", validatePriority)
	validate.RegisterValidation("export_format", validateExportFormat)

	// Report field names the way clients see them.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateAnswerType(fl validator.FieldLevel) bool {
	validTypes := []scoring.AnswerType{
		scoring.AnswerScale,
		scoring.AnswerMultiChoice,
		scoring.AnswerFearToConfidence,
		scoring.AnswerBoolean,
		scoring.AnswerPercentage,
	}

	value := fl.Field().String()
	for _, validType := range validTypes {
		if string(validType) == value {
			return true
		}
	}
	return false
}

func validateDimensionKey(fl validator.FieldLevel) bool {
	validKeys := []scoring.DimensionKey{
		scoring.DimensionIndividual,
		scoring.DimensionLeadership,
		scoring.DimensionCultural,
		scoring.DimensionEmbedding,
		scoring.DimensionVelocity,
	}

	value := fl.Field().String()
	for _, validKey := range validKeys {
		if string(validKey) == value {
			return true
		}
	}
	return false
}

func validatePriority(fl validator.FieldLevel) bool {
	validPriorities := []scoring.Priority{
		scoring.PriorityHigh,
		scoring.PriorityMedium,
		scoring.PriorityLow,
	}

	value := fl.Field().String()
	for _, validPriority := range validPriorities {
		if string(validPriority) == value {
			return true
		}
	}
	return false
}

func validateExportFormat(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "csv" || value == "xlsx"
}
