package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "failed to bind request parameters",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid authentication token",
	ErrForbidden:       "insufficient permissions",
	ErrTooManyRequests: "too many requests",

	// Accounts
	ErrAccountNotFound:      "account not found",
	ErrAccountAlreadyExists: "email already registered",
	ErrPasswordIncorrect:    "invalid credentials",
	ErrSocietyCodeInvalid:   "society code not recognised",

	// Billing
	ErrBillNotFound:     "bill not found",
	ErrResidentNotOwned: "resident belongs to a different society",
	ErrFundNotFound:     "society fund not found",

	// Bookings
	ErrBookingNotFound:  "booking not found",
	ErrBookingConflict:  "facility already booked for that slot",
	ErrBookingDecided:   "booking has already been decided",
	ErrFacilityNotFound: "facility not found",

	// Polls
	ErrPollNotFound:      "poll not found",
	ErrPollClosed:        "poll is closed",
	ErrPollChoiceInvalid: "choice must be option1 or option2",

	// Password reset
	ErrOTPInvalid:  "invalid or expired OTP",
	ErrOTPDelivery: "failed to deliver OTP",

	// Community
	ErrNoticeNotFound:    "notice not found",
	ErrComplaintNotFound: "complaint not found",
	ErrVisitorNotFound:   "visitor entry not found",
	ErrContactNotFound:   "emergency contact not found",

	// Infrastructure
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
	ErrMail:           "mail delivery error",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Common
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrForbidden:       StatusForbidden,
	ErrTooManyRequests: StatusTooManyRequests,

	// Accounts
	ErrAccountNotFound:      StatusNotFound,
	ErrAccountAlreadyExists: StatusBadRequest,
	ErrPasswordIncorrect:    StatusUnauthorized,
	ErrSocietyCodeInvalid:   StatusNotFound,

	// Billing
	ErrBillNotFound:     StatusNotFound,
	ErrResidentNotOwned: StatusForbidden,
	ErrFundNotFound:     StatusNotFound,

	// Bookings
	ErrBookingNotFound:  StatusNotFound,
	ErrBookingConflict:  StatusConflict,
	ErrBookingDecided:   StatusConflict,
	ErrFacilityNotFound: StatusNotFound,

	// Polls
	ErrPollNotFound:      StatusNotFound,
	ErrPollClosed:        StatusConflict,
	ErrPollChoiceInvalid: StatusBadRequest,

	// Password reset
	ErrOTPInvalid:  StatusUnauthorized,
	ErrOTPDelivery: StatusInternalServerError,

	// Community
	ErrNoticeNotFound:    StatusNotFound,
	ErrComplaintNotFound: StatusNotFound,
	ErrVisitorNotFound:   StatusNotFound,
	ErrContactNotFound:   StatusNotFound,

	// Infrastructure
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
	ErrMail:           StatusInternalServerError,
}

// GetMessage returns the message for an error code
func GetMessage(errorCode int) string {
	if msg, ok := codeMessageMap[errorCode]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
