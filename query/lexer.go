package query

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

type kind int

const (
	kindEOF kind = iota
	kindWord
	kindString
	kindEq
	kindNeq
	kindNot
	kindAnd
	kindOr
	kindLParen
	kindRParen
)

func (k kind) String() string {
	switch k {
	case kindEOF:
		return "end of expression"
	case kindWord:
		return "word"
	case kindString:
		return "string"
	case kindEq:
		return "'='"
	case kindNeq:
		return "'!='"
	case kindNot:
		return "'not'"
	case kindAnd:
		return "'and'"
	case kindOr:
		return "'or'"
	case kindLParen:
		return "'('"
	case kindRParen:
		return "')'"
	default:
		return "unknown"
	}
}

type token struct {
	kind kind
	text string
	pos  int
}

func lex(expr string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			tokens = append(tokens, token{kind: kindLParen, text: "(", pos: i})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: kindRParen, text: ")", pos: i})
			i++
		case c == '=':
			tokens = append(tokens, token{kind: kindEq, text: "=", pos: i})
			i++
		case c == '!':
			if strings.HasPrefix(expr[i:], "!=") {
				tokens = append(tokens, token{kind: kindNeq, text: "!=", pos: i})
				i += 2
				continue
			}
			tokens = append(tokens, token{kind: kindNot, text: "!", pos: i})
			i++
		case strings.HasPrefix(expr[i:], "&&"):
			tokens = append(tokens, token{kind: kindAnd, text: "&&", pos: i})
			i += 2
		case strings.HasPrefix(expr[i:], "||"):
			tokens = append(tokens, token{kind: kindOr, text: "||", pos: i})
			i += 2
		case c == '"':
			s, n, err := lexString(expr[i:])
			if err != nil {
				return nil, errors.Wrapf(err, "at offset %d", i)
			}
			tokens = append(tokens, token{kind: kindString, text: s, pos: i})
			i += n
		case isWordByte(c):
			start := i
			for i < len(expr) && isWordByte(expr[i]) {
				i++
			}
			word := expr[start:i]
			tokens = append(tokens, token{kind: keyword(word), text: word, pos: start})
		default:
			return nil, errors.Wrapf(ErrSyntax, "at offset %d: unexpected character %q", i, c)
		}
	}
	return append(tokens, token{kind: kindEOF, pos: len(expr)}), nil
}

// lexString reads a double-quoted string with backslash escapes and
// returns its value and the number of bytes consumed.
func lexString(s string) (string, int, error) {
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 == len(s) {
				return "", 0, errors.Wrap(ErrSyntax, "unterminated string")
			}
			i++
			b.WriteByte(s[i])
		case '"':
			return b.String(), i + 1, nil
		default:
			b.WriteByte(s[i])
		}
	}
	return "", 0, errors.Wrap(ErrSyntax, "unterminated string")
}

func keyword(word string) kind {
	switch strings.ToLower(word) {
	case "and":
		return kindAnd
	case "or":
		return kindOr
	case "not":
		return kindNot
	default:
		return kindWord
	}
}

func isWordByte(c byte) bool {
	return c == '_' || c == '-' || c == '.' || c == ':' || c >= 0x80 ||
		unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c))
}
