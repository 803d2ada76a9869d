package apperror

// AppError carries an HTTP status code alongside a user-facing message.
// Domain packages declare their failure modes once as sentinel values and
// handlers hand them to response.Error for rendering.
type AppError struct {
	Code    int    // HTTP status code
	Message string // safe to show to the client
	Err     error  // underlying cause, never exposed
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

// Wrap creates an AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
