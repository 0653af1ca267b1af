package validator

import (
	"log"

	"nexivo_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum rules used by the DTO tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that cannot be registered is a startup bug.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-service-category", validateServiceCategory)
	mustRegister("is-vacancy-type", validateVacancyType)
	mustRegister("is-submitter-kind", validateSubmitterKind)
	mustRegister("is-submission-status", validateSubmissionStatus)
	mustRegister("is-reaction-kind", validateReactionKind)
}

// Empty values pass every enum rule; 'required' handles presence.

func validateServiceCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidServiceCategory(value)
}

func validateVacancyType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidVacancyType(value)
}

func validateSubmitterKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidSubmitterKind(value)
}

func validateSubmissionStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidSubmissionStatus(value)
}

func validateReactionKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidReactionKind(value)
}
