package bead

// DecodeError indicates the input payload is not a valid bead array
// (malformed JSON, missing field, wrong type). It is fatal to the single
// call that produced it and is never retried.
type DecodeError struct {
	Cause error
}

// Error returns a human-readable message including the underlying cause.
func (e *DecodeError) Error() string {
	return "decoding bead snapshot: " + e.Cause.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// EncodeError indicates an internal result could not be serialized. For
// well-formed internal data this should not occur; when it does, treat it
// as a programming-invariant violation, not an input problem.
type EncodeError struct {
	Cause error
}

func (e *EncodeError) Error() string {
	return "encoding analysis result: " + e.Cause.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}
