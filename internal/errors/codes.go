package errors

// Code classifies an error for the console layer
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeNotFound           Code = "NOT_FOUND"
	CodeCanceled           Code = "CANCELED"
	CodeInternal           Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Retryable reports whether an error with this code comes from user input
// that can be corrected by answering the same prompt again.
func (c Code) Retryable() bool {
	switch c {
	case CodeInvalidArgument, CodeOutOfRange, CodeFailedPrecondition:
		return true
	default:
		return false
	}
}
