package script

import (
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/zerr"
)

// scanModule extracts static import specifiers from module source. It
// understands the top-level dependency forms:
//
//	import x from "spec"
//	import "spec"
//	export ... from "spec"
//
// String literals and comments are skipped so specifiers inside them are not
// collected. The scanner validates just enough to reject sources that cannot
// be modules: an unterminated string literal is a parse error.
func scanModule(source []byte) ([]string, error) {
	var requests []string

	i := 0
	n := len(source)
	for i < n {
		c := source[i]

		switch {
		case c == '/' && i+1 < n && source[i+1] == '/':
			for i < n && source[i] != '\n' {
				i++
			}

		case c == '/' && i+1 < n && source[i+1] == '*':
			i += 2
			for i+1 < n && !(source[i] == '*' && source[i+1] == '/') {
				i++
			}
			if i+1 >= n {
				return nil, zerr.Wrap(domain.ErrParse, "unterminated comment")
			}
			i += 2

		case c == '"' || c == '\'':
			_, end, err := scanString(source, i)
			if err != nil {
				return nil, err
			}
			i = end

		case isIdentStart(c):
			start := i
			for i < n && isIdentPart(source[i]) {
				i++
			}
			word := string(source[start:i])
			if word != "import" && word != "export" {
				continue
			}

			spec, next, found, err := scanDependencyClause(source, i)
			if err != nil {
				return nil, err
			}
			if found {
				requests = append(requests, spec)
			}
			i = next

		default:
			i++
		}
	}

	return requests, nil
}

// scanDependencyClause reads forward from the end of an import/export keyword
// and returns the specifier of its "from"-clause, or the directly imported
// specifier. found is false for clauses without a specifier, such as
// `export const x = 1`.
func scanDependencyClause(source []byte, pos int) (spec string, next int, found bool, err error) {
	i := skipSpace(source, pos)
	n := len(source)

	// import "spec"
	if i < n && (source[i] == '"' || source[i] == '\'') {
		lit, end, err := scanString(source, i)
		if err != nil {
			return "", 0, false, err
		}
		return lit, end, true, nil
	}

	// Walk to the end of the clause looking for `from "spec"`. A semicolon or
	// a fresh import/export keyword ends the clause.
	for i < n {
		c := source[i]
		switch {
		case c == ';' || c == '"' || c == '\'':
			return "", i, false, nil
		case isIdentStart(c):
			start := i
			for i < n && isIdentPart(source[i]) {
				i++
			}
			word := string(source[start:i])
			if word == "from" {
				j := skipSpace(source, i)
				if j >= n || (source[j] != '"' && source[j] != '\'') {
					return "", 0, false, zerr.Wrap(domain.ErrParse, "expected module specifier after 'from'")
				}
				lit, end, err := scanString(source, j)
				if err != nil {
					return "", 0, false, err
				}
				return lit, end, true, nil
			}
			if word == "import" || word == "export" {
				return "", start, false, nil
			}
		default:
			i++
		}
	}

	return "", i, false, nil
}

// scanString reads the string literal starting at pos (which must hold the
// opening quote) and returns its contents and the index just past the closing
// quote.
func scanString(source []byte, pos int) (lit string, next int, err error) {
	quote := source[pos]
	i := pos + 1
	n := len(source)
	var buf []byte

	for i < n {
		c := source[i]
		switch c {
		case quote:
			return string(buf), i + 1, nil
		case '\\':
			if i+1 >= n {
				return "", 0, zerr.Wrap(domain.ErrParse, "unterminated string literal")
			}
			buf = append(buf, source[i+1])
			i += 2
		case '\n':
			return "", 0, zerr.Wrap(domain.ErrParse, "unterminated string literal")
		default:
			buf = append(buf, c)
			i++
		}
	}

	return "", 0, zerr.Wrap(domain.ErrParse, "unterminated string literal")
}

func skipSpace(source []byte, pos int) int {
	for pos < len(source) {
		switch source[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
