package utils

import (
	"errors"
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"ClinicDesk/models"
)

// DateLayout is the calendar-day format used across every data file.
const DateLayout = "2006-01-02"

// ErrInvalidDateFormat is returned for any date string that is not a
// well-formed YYYY-MM-DD calendar day. The message is display-ready:
// malformed input is expected from the operator and must be recoverable.
var ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

// ValidateDate checks that dateStr is a calendar date in YYYY-MM-DD form.
func ValidateDate(dateStr string) error {
	if err := validation.Validate(dateStr, validation.Required, validation.Date(DateLayout)); err != nil {
		return ErrInvalidDateFormat
	}
	return nil
}

// ValidateVisitInput validates the fields supplied for a new visit. The
// registry itself stores whatever it is given; required-field and DOB
// checks belong to the caller, and this is that check.
func ValidateVisitInput(input models.VisitInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.PatientID, validation.Required),
		validation.Field(&input.FirstName, validation.Required),
		validation.Field(&input.LastName, validation.Required),
		validation.Field(&input.Gender, validation.Required),
		validation.Field(&input.DOB, validation.Required, validation.Date(DateLayout)),
		validation.Field(&input.ChiefComplaint, validation.Required),
		validation.Field(&input.Department, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}
