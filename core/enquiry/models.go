package enquiry

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type (
	// NewEnquiry is an authenticated visitor's enquiry about a college.
	NewEnquiry struct {
		CollegeSlug string `json:"collegeSlug" validate:"required,dirslug"`
		Subject     string `json:"subject" validate:"required,max=200"`
		Message     string `json:"message" validate:"required,max=5000"`
		Phone       string `json:"phone" validate:"omitempty,e164"`
	}

	Enquiry struct {
		ID          int       `json:"id"`
		Reference   string    `json:"reference"`
		AccountID   string    `json:"accountId"`
		CollegeSlug string    `json:"collegeSlug"`
		Subject     string    `json:"subject"`
		Message     string    `json:"message"`
		Phone       string    `json:"phone,omitempty"`
		CreatedAt   time.Time `json:"createdAt"` // UTC
	}
)

func (e *NewEnquiry) Validate(validate *validator.Validate) error {
	return validate.Struct(e)
}
