package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: malformed request.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: authentication required or failed.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access denied.
	StatusForbidden = 403
	// StatusNotFound - 404: resource does not exist.
	StatusNotFound = 404
	// StatusConflict - 409: state conflict.
	StatusConflict = 409
	// StatusInternalServerError - 500: server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: OK.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrForbidden - 403: insufficient role.
	ErrForbidden
	// ErrTooManyRequests - 429: rate limited.
	ErrTooManyRequests
)

// Account error codes (101xxx).
const (
	// ErrAccountNotFound - 404: account does not exist.
	ErrAccountNotFound int = iota + 101000
	// ErrAccountAlreadyExists - 400: email already registered.
	ErrAccountAlreadyExists
	// ErrPasswordIncorrect - 401: wrong credentials.
	ErrPasswordIncorrect
	// ErrSocietyCodeInvalid - 404: society join code does not resolve.
	ErrSocietyCodeInvalid
)

// Billing error codes (102xxx).
const (
	// ErrBillNotFound - 404: bill does not exist.
	ErrBillNotFound int = iota + 102000
	// ErrResidentNotOwned - 403: resident belongs to another society.
	ErrResidentNotOwned
	// ErrFundNotFound - 404: society fund missing.
	ErrFundNotFound
)

// Booking error codes (103xxx).
const (
	// ErrBookingNotFound - 404: booking does not exist.
	ErrBookingNotFound int = iota + 103000
	// ErrBookingConflict - 409: slot already confirmed.
	ErrBookingConflict
	// ErrBookingDecided - 409: booking already decided.
	ErrBookingDecided
	// ErrFacilityNotFound - 404: facility does not exist in this society.
	ErrFacilityNotFound
)

// Poll error codes (104xxx).
const (
	// ErrPollNotFound - 404: poll does not exist.
	ErrPollNotFound int = iota + 104000
	// ErrPollClosed - 409: poll no longer accepts votes.
	ErrPollClosed
	// ErrPollChoiceInvalid - 400: choice must be option1 or option2.
	ErrPollChoiceInvalid
)

// Password reset error codes (105xxx).
const (
	// ErrOTPInvalid - 401: OTP wrong, expired or already used.
	ErrOTPInvalid int = iota + 105000
	// ErrOTPDelivery - 500: OTP could not be delivered.
	ErrOTPDelivery
)

// Community error codes (106xxx).
const (
	// ErrNoticeNotFound - 404: notice does not exist.
	ErrNoticeNotFound int = iota + 106000
	// ErrComplaintNotFound - 404: complaint does not exist.
	ErrComplaintNotFound
	// ErrVisitorNotFound - 404: visitor entry does not exist.
	ErrVisitorNotFound
	// ErrContactNotFound - 404: emergency contact does not exist.
	ErrContactNotFound
)

// Infrastructure error codes (107xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 107000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
	// ErrMail - 500: mail delivery error.
	ErrMail
)
