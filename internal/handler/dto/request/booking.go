package request

import (
	"time"

	"rvmarket/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

var ErrInvalidDateFormat = errs.New("dates must use YYYY-MM-DD format")

// CreateBookingRequest carries calendar dates as strings. The fields are
// deliberately not bound as required: a missing date is a business-rule
// violation reported by the validator, not a malformed request.
type CreateBookingRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ParseDates converts the raw strings to times. An absent field maps to the
// zero time; a present but unparseable field is a client error.
func (r *CreateBookingRequest) ParseDates() (start, end time.Time, err error) {
	if r.StartDate != "" {
		start, err = time.Parse(dateLayout, r.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidDateFormat)
		}
	}
	if r.EndDate != "" {
		end, err = time.Parse(dateLayout, r.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidDateFormat)
		}
	}
	return start, end, nil
}
