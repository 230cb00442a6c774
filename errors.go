package search

import (
	"errors"
	"fmt"
)

// Kind classifies the errors the index can raise. Callers branch on Kind
// with IsKind (errors.As) rather than comparing sentinel values or
// error strings.
type Kind int

const (
	// KindInvalidArgument covers a duplicate or negative document id
	// passed to AddDocument, a stop-word containing a control character,
	// and SetStopWords called after the first document was added.
	// Ratings are not validated.
	KindInvalidArgument Kind = iota
	// KindInvalidText covers a document body containing a token with
	// control characters, or a body that is empty after stop-word removal.
	KindInvalidText
	// KindInvalidQuery covers a malformed query token: "-", "--foo",
	// a control character, or an empty candidate after stripping "-".
	KindInvalidQuery
	// KindOutOfRange covers MatchDocument called with an id that is not
	// in the id registry.
	KindOutOfRange
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInvalidText:
		return "invalid_text"
	case KindInvalidQuery:
		return "invalid_query"
	case KindOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// Error is the error type the index's operations return on failure
// (Document.UnmarshalBinary returns a plain error instead). It carries
// a Kind so callers can branch with errors.As instead of comparing
// error strings.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a *Error of the given kind, unwrapping
// any wrapping errors.Is/As chain along the way.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
