package domain

import "errors"

// ErrorKind mirrors the engine's error value categories.
type ErrorKind int

const (
	// ErrorCommon is the engine's generic error category.
	ErrorCommon ErrorKind = iota
	// ErrorRange corresponds to a range error.
	ErrorRange
	// ErrorReference corresponds to a reference error.
	ErrorReference
	// ErrorSyntax corresponds to a syntax error.
	ErrorSyntax
	// ErrorType corresponds to a type error.
	ErrorType
	// ErrorURI corresponds to a URI error.
	ErrorURI
)

// String returns the engine-facing name of the error category.
func (k ErrorKind) String() string {
	switch k {
	case ErrorRange:
		return "RangeError"
	case ErrorReference:
		return "ReferenceError"
	case ErrorSyntax:
		return "SyntaxError"
	case ErrorType:
		return "TypeError"
	case ErrorURI:
		return "URIError"
	default:
		return "Error"
	}
}

// resolveErrorKinds maps resolution failures to the engine error value the
// host resolve hook reports. Load failures are deliberately reported as
// syntax-category errors rather than a distinct "module not found" category:
// consuming test suites expect module resolution problems to surface as an
// error thrown at parse time. Change the mapping here if that compatibility
// shim is no longer wanted.
var resolveErrorKinds = []struct {
	sentinel error
	kind     ErrorKind
	message  string // empty means the error's own message is used
}{
	{ErrSourceNotFound, ErrorSyntax, "Module file not found"},
	{ErrSourceRead, ErrorSyntax, "Module file not found"},
	{ErrBaseUnresolvable, ErrorCommon, "Out of memory"},
	{ErrParse, ErrorSyntax, ""},
}

// MapResolveError translates a resolution failure into the error category and
// message of the engine error value reported to the calling script.
func MapResolveError(err error) (ErrorKind, string) {
	for _, entry := range resolveErrorKinds {
		if !errors.Is(err, entry.sentinel) {
			continue
		}
		if entry.message != "" {
			return entry.kind, entry.message
		}
		return entry.kind, err.Error()
	}
	return ErrorCommon, err.Error()
}
