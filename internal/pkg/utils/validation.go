package utils

import (
	"strconv"
	"waitingwell-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("likert", validateLikert)
	validate.RegisterValidation("yes_no", validateYesNo)
	validate.RegisterValidation("mood", validateMood)
	validate.RegisterValidation("sleep_quality", validateSleepQuality)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateLikert accepts the PHQ-4 style 0-3 frequency answers, which the
// client transmits as strings.
func validateLikert(fl validator.FieldLevel) bool {
	value, err := strconv.Atoi(fl.Field().String())
	if err != nil {
		return false
	}
	return value >= 0 && value <= 3
}

func validateYesNo(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.AnswerYes || value == constvars.AnswerNo
}

func validateMood(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.MoodVeryLow, constvars.MoodLow, constvars.MoodOkay, constvars.MoodGood, constvars.MoodGreat:
		return true
	}
	return false
}

func validateSleepQuality(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.SleepQualityExcellent, constvars.SleepQualityGood, constvars.SleepQualityFair, constvars.SleepQualityPoor:
		return true
	}
	return false
}
