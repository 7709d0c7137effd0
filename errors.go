package json

import "fmt"

// Kind identifies the category of a ParseError, per the error taxonomy
// a caller needs to branch on. The message is for humans; the Kind is
// the contract.
type Kind int

const (
	// NoJson means the input contained only whitespace, or was empty.
	NoJson Kind = iota
	// MultipleRoots means Parse saw more than one top-level value.
	MultipleRoots
	// InvalidChar means a non-ASCII byte appeared where it isn't allowed.
	InvalidChar
	// ControlChar means a raw ASCII control byte appeared outside a string.
	ControlChar
	// EndedInsideStructure means the input ended with an unclosed { or [.
	EndedInsideStructure
	// EndedInsideQuote means the input ended inside an open quoted string.
	EndedInsideQuote
	// UnexpectedChar means a byte wasn't acceptable in the current context.
	UnexpectedChar
	// TabNewlineCRInsideQuotes means a raw \t, \n or \r appeared in a string.
	TabNewlineCRInsideQuotes
	// ControlCharInsideQuotes means some other control byte appeared in a string.
	ControlCharInsideQuotes
	// InvalidEscapeChar means \ was followed by a byte that isn't a valid escape.
	InvalidEscapeChar
	// InvalidKey means a non-string value was used as an object key (lenient mode).
	InvalidKey
	// NotAKeywordOrNumber means strict mode saw an unquoted token that
	// is neither a keyword (null/true/false) nor a number.
	NotAKeywordOrNumber
)

var kindStrings = [...]string{
	"no JSON value found",
	"multiple root values",
	"invalid character",
	"control character outside string",
	"unexpected end of input inside object or array",
	"unexpected end of input inside string",
	"unexpected character",
	"raw tab, newline, or carriage return inside string",
	"control character inside string",
	"invalid escape sequence",
	"non-string object key",
	"token is not a keyword or number",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStrings) {
		return "unknown parse error"
	}
	return kindStrings[k]
}

// ParseError describes why a parse attempt failed, with enough
// positional context for a caller to point a user at the problem.
type ParseError struct {
	Kind   Kind
	Msg    string
	Line   int // 1-based
	Offset int // 0-based byte offset into the input
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("json: %s at line %d, offset %d: %s", e.Kind, e.Line, e.Offset, e.Msg)
}

// Is lets callers write errors.Is(err, SomeKind) by comparing against a
// bare Kind wrapped in a ParseError with no message or position.
func (e *ParseError) Is(target error) bool {
	other, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// ErrKind constructs a sentinel ParseError carrying only a Kind, suitable
// for use with errors.Is(err, json.ErrKind(SomeKind)).
func ErrKind(k Kind) error {
	return &ParseError{Kind: k}
}
