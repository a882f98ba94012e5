package httperr

import "errors"

// Business error codes shared between the scheduling core and the HTTP layer.
// All of them are expected, user-facing outcomes, never process failures.
const (
	CodeOutOfWindow     = "out_of_window"
	CodeNotOnTheHour    = "not_on_the_hour"
	CodeOffDay          = "off_day"
	CodeOutsideHours    = "outside_hours"
	CodeSlotTaken       = "slot_taken"
	CodeTooFar          = "too_far"
	CodeOwnerNotFound   = "owner_not_found"
	CodeInviteeNotFound = "invitee_not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" for any other
// error.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
