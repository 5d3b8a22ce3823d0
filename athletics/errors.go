package athletics

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown Code = "UNKNOWN"

	// Event setup errors
	CodeEventNameEmpty       Code = "EVENT_NAME_EMPTY"
	CodeEventKindInvalid     Code = "EVENT_KIND_INVALID"
	CodeEventKindUnsupported Code = "EVENT_KIND_UNSUPPORTED"
	CodeEventNotFound        Code = "EVENT_NOT_FOUND"

	// Recorder errors
	CodeLaneOutOfRange    Code = "LANE_OUT_OF_RANGE"
	CodeAthleteOutOfRange Code = "ATHLETE_OUT_OF_RANGE"
	CodeAttemptOutOfRange Code = "ATTEMPT_OUT_OF_RANGE"
	CodeStatusInvalid     Code = "STATUS_INVALID"
)

var (
	ErrEventNameEmpty       = New(CodeEventNameEmpty, "event name is required")
	ErrEventKindInvalid     = New(CodeEventKindInvalid, "event kind is invalid")
	ErrEventKindUnsupported = New(CodeEventKindUnsupported, "event kind has no live recorder")
	ErrEventNotFound        = New(CodeEventNotFound, "event not found")
	ErrLaneOutOfRange       = New(CodeLaneOutOfRange, "lane index out of range")
	ErrAthleteOutOfRange    = New(CodeAthleteOutOfRange, "athlete index out of range")
	ErrAttemptOutOfRange    = New(CodeAttemptOutOfRange, "attempt index out of range")
	ErrStatusInvalid        = New(CodeStatusInvalid, "result status is invalid")
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Internal message (for logs)
	Metadata map[string]string // Additional context for user-facing messages
	Cause    error             // Wrapped underlying error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error carrying metadata for message templating.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}
