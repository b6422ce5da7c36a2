package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/Manish0124/portfolio/internal/utils"
	"github.com/go-playground/validator/v10"
)

// ContactPayload is the normalized contact form.
type ContactPayload struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=3,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

func (p *ContactPayload) normalize() {
	p.Name = utils.SanitizeString(p.Name)
	p.Email = utils.SanitizeString(p.Email)
	p.Subject = utils.SanitizeString(p.Subject)
	p.Message = utils.SanitizeString(p.Message)
}

// ReviewPayload is the normalized review form. It has no approval field, so a
// client cannot submit a pre-approved review.
type ReviewPayload struct {
	ReviewerName    string  `json:"reviewer_name" validate:"required,min=2,max=100"`
	ReviewerCompany *string `json:"reviewer_company,omitempty" validate:"omitempty,max=100"`
	ReviewerEmail   string  `json:"reviewer_email" validate:"required,email"`
	Rating          int     `json:"rating" validate:"min=1,max=5"`
	ReviewText      string  `json:"review_text" validate:"required,max=500"`
}

func (p *ReviewPayload) normalize() {
	p.ReviewerName = utils.SanitizeString(p.ReviewerName)
	p.ReviewerEmail = utils.SanitizeString(p.ReviewerEmail)
	p.ReviewText = utils.SanitizeString(p.ReviewText)
	if p.ReviewerCompany != nil {
		company := utils.SanitizeString(*p.ReviewerCompany)
		if company == "" {
			p.ReviewerCompany = nil
		} else {
			p.ReviewerCompany = &company
		}
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseContact decodes and validates a raw contact form body.
func ParseContact(body []byte) (*ContactPayload, error) {
	var payload ContactPayload
	if err := decode(body, &payload); err != nil {
		return nil, err
	}
	payload.normalize()
	if err := check(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// reviewBody decodes rating as any JSON number so that 5 and 5.0 read the same.
type reviewBody struct {
	ReviewPayload
	Rating *float64 `json:"rating"`
}

// ParseReview decodes and validates a raw review body.
func ParseReview(body []byte) (*ReviewPayload, error) {
	var raw reviewBody
	if err := decode(body, &raw); err != nil {
		return nil, err
	}
	payload := raw.ReviewPayload
	if raw.Rating != nil {
		rating, ok := wholeNumber(*raw.Rating)
		if !ok {
			return nil, NewValidationError("rating", "must be an integer")
		}
		payload.Rating = rating
	}
	payload.normalize()
	if err := check(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func decode(body []byte, dst interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return NewValidationError("body", "is required")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return NewValidationError(typeErr.Field, typeMessage(typeErr.Type))
		}
		return NewValidationError("body", "must be a JSON object")
	}
	return nil
}

// wholeNumber converts an integral float to int. Values far outside the rating
// range are clamped so the range check still reports them.
func wholeNumber(f float64) (int, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Max(-1e6, math.Min(1e6, f))), true
}

func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return "must be an integer"
	case reflect.String:
		return "must be a string"
	default:
		return "has an invalid type"
	}
}

func check(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return &ValidationError{Errors: errs}
}

func describe(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if isText {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}
