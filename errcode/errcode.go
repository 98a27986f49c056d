package errcode

// Code is a stable error identifier for failures the adapters themselves
// report. It is a string newtype, comparable, allocation-free, and implements
// error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	Unsupported   Code = "unsupported"    // not representable in the other family
	WouldBlock    Code = "would_block"    // non-blocking call has no progress to report
	InvalidParams Code = "invalid_params" // e.g. a 10-bit address on a 7-bit bus
	WriteZero     Code = "write_zero"     // stream accepted no bytes

	Error Code = "error" // generic fallback
)

// E keeps an operation name and a cause next to a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.Unsupported) match an *E carrying that code.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Unsupportedf builds the construction-time error returned when an inner value
// lacks the capability an adapter needs.
func Unsupportedf(op, msg string) error {
	return &E{C: Unsupported, Op: op, Msg: msg}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
