package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/lottery"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance, built once
var (
	validate     *Validator
	validateOnce sync.Once
)

// Custom validation tags
const (
	TagGameType    = "gametype"
	TagMatchResult = "matchresult"
	TagPlayDate    = "playdate"
)

// InitValidator initializes the global validator. Safe to call more than once.
func InitValidator() {
	validateOnce.Do(func() {
		validate = newValidator()
	})
}

func newValidator() *Validator {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation(TagGameType, validateGameType)
	_ = v.RegisterValidation(TagMatchResult, validateMatchResult)
	_ = v.RegisterValidation(TagPlayDate, validatePlayDate)

	return &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case TagGameType:
			errs[field] = "Invalid game type"
		case TagMatchResult:
			errs[field] = "Invalid result"
		case TagPlayDate:
			errs[field] = ErrMsgInvalidDate
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Custom validation function for game type.
// Empty passes; pair with required when the field is mandatory.
func validateGameType(fl validator.FieldLevel) bool {
	gameType := fl.Field().String()
	if gameType == "" {
		return true
	}
	return lottery.IsValidGameType(domain.GameType(gameType))
}

func validateMatchResult(fl validator.FieldLevel) bool {
	result := fl.Field().String()
	if result == "" {
		return true
	}
	return domain.MatchResult(result).IsValid()
}

func validatePlayDate(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	_, err := parsePlayDate(raw)
	return err == nil
}

// parsePlayDate accepts a calendar date or a full RFC 3339 timestamp
func parsePlayDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
