package apperror

// AppError carries the HTTP status a domain error maps to, so transport
// code never has to re-classify business failures.
type AppError struct {
	Code    int    // HTTP status code (404, 403, 409, ...)
	Message string // user-facing message
	Err     error  // underlying cause, if any (not exposed to clients)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates an AppError around an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
