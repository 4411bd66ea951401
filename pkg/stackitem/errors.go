package stackitem

import "errors"

// Kind classifies a codec failure, matching the "kind: NotSupported" wording
// used by spec §4.2/§7.
type Kind string

const (
	// KindNotSupported covers cycles and InteropHandle values encountered
	// while serializing.
	KindNotSupported Kind = "NotSupported"
	// KindSizeExceeded covers MAX_ITEM_SIZE/MAX_ARRAY_SIZE violations.
	KindSizeExceeded Kind = "SizeExceeded"
	// KindMalformed covers truncated or structurally invalid input.
	KindMalformed Kind = "Malformed"
)

// Error is a codec failure tagged with its Kind, so callers can distinguish
// "cycle/unserializable" from "too big" from "corrupt bytes" per spec §7.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newErr(kind Kind, msg string) error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}
