package levelgenerr

import "fmt"

// Kind categorizes an engine error for machine-readable dispatch by callers.
type Kind int

const (
	// OutOfBounds marks a point access outside the grid's fixed dimensions.
	OutOfBounds Kind = iota
	// SizeMismatch marks a deserialised grid with the wrong width/height.
	SizeMismatch
	// CorruptData marks a deserialised grid whose cell payload has the
	// wrong byte count or fails base64 decoding.
	CorruptData
	// SchemaViolation marks a LevelPlan or RefineRequest that fails
	// required-field or numeric-range checks on ingestion.
	SchemaViolation
	// GenerationExhausted marks a generator that failed every attempt.
	GenerationExhausted
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case OutOfBounds:
		return "OutOfBounds"
	case SizeMismatch:
		return "SizeMismatch"
	case CorruptData:
		return "CorruptData"
	case SchemaViolation:
		return "SchemaViolation"
	case GenerationExhausted:
		return "GenerationExhausted"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the concrete error type returned for every Kind in this package.
// Reasons carries diagnostic strings for kinds that accumulate more than one
// cause (GenerationExhausted surfaces the last attempt's validator reasons).
type Error struct {
	Kind    Kind
	Msg     string
	Reasons []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Reasons) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Msg, e.Reasons)
}

// Is makes errors.Is(err, levelgenerr.Sentinel(kind)) match any *Error of
// the same Kind, including one wrapped with fmt.Errorf("%w"). The target
// must itself be an *Error; any other target never matches.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WithReasons constructs an *Error of the given kind carrying diagnostic
// reasons, used by GenerationExhausted to surface the last attempt's
// validator report.
func WithReasons(kind Kind, msg string, reasons []string) *Error {
	return &Error{Kind: kind, Msg: msg, Reasons: reasons}
}

// Sentinel returns a zero-value *Error of the given kind, suitable as a
// comparison target for errors.Is.
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}
