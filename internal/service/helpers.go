package service

import (
	"time"

	"github.com/alexanderramin/daybreak/internal/contract"
)

// validateDate checks that date is a real calendar day in YYYY-MM-DD form.
func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return &contract.DayError{
			Code:    contract.DayErrInvalidDate,
			Message: "date must be a valid YYYY-MM-DD day: " + date,
		}
	}
	return nil
}
