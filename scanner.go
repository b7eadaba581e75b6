package jsondec

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/cybergodev/jsondec/internal"
)

// scanner converts input text into a stream of typed tokens. String-boundary
// and escape handling use explicit per-character state, so string content
// containing brackets, the word null, or escaped quotes is never mistaken
// for structure.
type scanner struct {
	data   string
	pos    int
	config *Config
}

func newScanner(data string, config *Config) *scanner {
	return &scanner{data: data, config: config}
}

// next returns the next token, skipping whitespace and, when enabled,
// comments. At end of input it returns a tkEOF token with a nil error.
func (s *scanner) next() (token, error) {
	if err := s.skipSpace(); err != nil {
		return token{}, err
	}
	if s.pos >= len(s.data) {
		return token{kind: tkEOF, offset: s.pos}, nil
	}

	off := s.pos
	c := s.data[s.pos]

	switch c {
	case '{':
		s.pos++
		return token{kind: tkBeginObject, offset: off, str: "{"}, nil
	case '}':
		s.pos++
		return token{kind: tkEndObject, offset: off, str: "}"}, nil
	case '[':
		s.pos++
		return token{kind: tkBeginArray, offset: off, str: "["}, nil
	case ']':
		s.pos++
		return token{kind: tkEndArray, offset: off, str: "]"}, nil
	case ',':
		s.pos++
		return token{kind: tkComma, offset: off, str: ","}, nil
	case ':':
		s.pos++
		return token{kind: tkColon, offset: off, str: ":"}, nil
	case '"':
		s.pos++
		val, err := s.scanString(off)
		if err != nil {
			return token{}, err
		}
		return token{kind: tkString, offset: off, str: val}, nil
	}

	if c == '-' || internal.IsDigit(c) {
		return s.scanNumber(off)
	}
	if internal.IsWordChar(c) {
		return s.scanIdent(off), nil
	}

	return token{}, s.syntaxErrorf(off, "invalid character %q looking for beginning of value", rune(c))
}

// skipSpace advances past whitespace and, when AllowComments is set, past
// // line comments and /* */ block comments.
func (s *scanner) skipSpace() error {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if internal.IsSpace(c) {
			s.pos++
			continue
		}
		if c == '/' && s.config.AllowComments {
			if err := s.skipComment(); err != nil {
				return err
			}
			continue
		}
		break
	}
	return nil
}

// skipComment consumes one comment starting at s.pos (which holds '/').
func (s *scanner) skipComment() error {
	off := s.pos
	if s.pos+1 >= len(s.data) {
		return s.syntaxErrorf(off, "invalid character '/' looking for beginning of value")
	}

	switch s.data[s.pos+1] {
	case '/':
		// Line comment: runs to end of line or end of input
		s.pos += 2
		for s.pos < len(s.data) && s.data[s.pos] != '\n' {
			s.pos++
		}
		return nil
	case '*':
		s.pos += 2
		if end := strings.Index(s.data[s.pos:], "*/"); end >= 0 {
			s.pos += end + 2
			return nil
		}
		s.pos = len(s.data)
		return s.unexpectedEnd(off, "unterminated block comment")
	default:
		return s.syntaxErrorf(off, "invalid character '/' looking for beginning of value")
	}
}

// scanString decodes the string literal whose opening quote has already been
// consumed. start is the offset of the opening quote. The fast path returns
// a zero-copy slice of the input when the literal contains no escapes.
func (s *scanner) scanString(start int) (string, error) {
	i := s.pos
	for i < len(s.data) {
		c := s.data[i]
		if c == '"' {
			val := s.data[s.pos:i]
			s.pos = i + 1
			return val, nil
		}
		if c == '\\' {
			break
		}
		if c < 0x20 {
			return "", s.syntaxErrorf(i, "invalid control character %q in string literal", rune(c))
		}
		i++
	}
	if i >= len(s.data) {
		return "", s.unexpectedEnd(start, "unterminated string literal")
	}

	// Slow path: locate the closing quote with explicit escape state, then
	// decode the raw body in one pass.
	j := i
	escaped := false
	for j < len(s.data) {
		c := s.data[j]
		if escaped {
			escaped = false
			j++
			continue
		}
		switch {
		case c == '\\':
			escaped = true
		case c == '"':
			body := s.data[s.pos:j]
			val, err := decodeStringBody(body, s.config.StrictMode)
			if err != nil {
				if ee, ok := err.(*escapeError); ok {
					return "", s.syntaxErrorf(s.pos+ee.rel, "%s", ee.msg)
				}
				return "", err
			}
			s.pos = j + 1
			return val, nil
		case c < 0x20:
			return "", s.syntaxErrorf(j, "invalid control character %q in string literal", rune(c))
		}
		j++
	}
	return "", s.unexpectedEnd(start, "unterminated string literal")
}

// scanNumber collects a maximal run of number characters starting at off and
// validates it against the RFC 8259 number grammar.
func (s *scanner) scanNumber(off int) (token, error) {
	i := s.pos
	if s.data[i] == '-' {
		i++
	}
	for i < len(s.data) && internal.IsNumberChar(s.data[i]) {
		i++
	}

	lit := s.data[s.pos:i]
	if !internal.IsValidJSONNumber(lit) {
		return token{}, s.syntaxErrorf(off, "invalid number literal %q", lit)
	}
	s.pos = i
	return token{kind: tkNumber, offset: off, str: lit}, nil
}

// scanIdent collects a bare word and classifies the three JSON keywords.
// Anything else is a tkIdent, rejected later by the parser with an error
// naming the word.
func (s *scanner) scanIdent(off int) token {
	i := s.pos
	for i < len(s.data) && internal.IsWordChar(s.data[i]) {
		i++
	}
	word := s.data[s.pos:i]
	s.pos = i

	switch word {
	case "true":
		return token{kind: tkTrue, offset: off, str: word}
	case "false":
		return token{kind: tkFalse, offset: off, str: word}
	case "null":
		return token{kind: tkNull, offset: off, str: word}
	default:
		return token{kind: tkIdent, offset: off, str: word}
	}
}

func (s *scanner) syntaxErrorf(off int, format string, args ...any) error {
	line, col := lineCol(s.data, off)
	return &SyntaxError{
		Msg:    fmt.Sprintf(format, args...),
		Offset: int64(off),
		Line:   line,
		Column: col,
		Err:    ErrInvalidJSON,
	}
}

func (s *scanner) unexpectedEnd(off int, msg string) error {
	line, col := lineCol(s.data, off)
	return &SyntaxError{
		Msg:    msg,
		Offset: int64(off),
		Line:   line,
		Column: col,
		Err:    ErrUnexpectedEnd,
	}
}

// lineCol computes the 1-based line and byte column of offset off in s
func lineCol(s string, off int) (line, col int) {
	if off > len(s) {
		off = len(s)
	}
	line = 1 + strings.Count(s[:off], "\n")
	if idx := strings.LastIndexByte(s[:off], '\n'); idx >= 0 {
		col = off - idx
	} else {
		col = off + 1
	}
	return line, col
}

// escapeError reports a defect inside a string body at a relative offset,
// converted by the caller into a SyntaxError with an absolute position.
type escapeError struct {
	rel int
	msg string
}

func (e *escapeError) Error() string {
	return e.msg
}

// decodeStringBody resolves the escape sequences in the raw body of a string
// literal (the text between the quotes). Callers guarantee the body contains
// no unescaped quote and no trailing lone backslash. \uXXXX escapes are
// decoded to code points, surrogate pairs combined, and the result re-encoded
// as UTF-8 bytes. Escaped forward slashes are normalized to bare slashes.
func decodeStringBody(raw string, strict bool) (string, error) {
	buf := make([]byte, 0, len(raw))

	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '\\' {
			buf = append(buf, c)
			i++
			continue
		}

		i++
		if i >= len(raw) {
			return "", &escapeError{rel: i - 1, msg: "truncated escape sequence"}
		}

		switch raw[i] {
		case '"':
			buf = append(buf, '"')
			i++
		case '\\':
			buf = append(buf, '\\')
			i++
		case '/':
			buf = append(buf, '/')
			i++
		case 'b':
			buf = append(buf, '\b')
			i++
		case 'f':
			buf = append(buf, '\f')
			i++
		case 'n':
			buf = append(buf, '\n')
			i++
		case 'r':
			buf = append(buf, '\r')
			i++
		case 't':
			buf = append(buf, '\t')
			i++
		case 'u':
			r, consumed, err := decodeUnicodeEscape(raw[i-1:], strict)
			if err != nil {
				err.rel += i - 1
				return "", err
			}
			buf = utf8.AppendRune(buf, r)
			i += consumed - 1
		default:
			return "", &escapeError{
				rel: i - 1,
				msg: fmt.Sprintf("invalid escape sequence '\\%c'", raw[i]),
			}
		}
	}
	return string(buf), nil
}

// decodeUnicodeEscape decodes one \uXXXX escape at the start of raw,
// combining a following low-surrogate escape when present. It returns the
// decoded rune and the number of bytes consumed from raw.
func decodeUnicodeEscape(raw string, strict bool) (rune, int, *escapeError) {
	r := parseHex4(raw[2:])
	if r < 0 {
		return 0, 0, &escapeError{rel: 0, msg: "invalid unicode escape sequence"}
	}
	if !utf16.IsSurrogate(r) {
		return r, 6, nil
	}

	// High surrogate: try to combine with an immediately following \uXXXX
	if len(raw) >= 12 && raw[6] == '\\' && raw[7] == 'u' {
		if r2 := parseHex4(raw[8:]); r2 >= 0 {
			if dec := utf16.DecodeRune(r, r2); dec != unicode.ReplacementChar {
				return dec, 12, nil
			}
		}
	}

	if strict {
		return 0, 0, &escapeError{rel: 0, msg: "unpaired surrogate in unicode escape sequence"}
	}
	return unicode.ReplacementChar, 6, nil
}

// parseHex4 parses four hexadecimal digits at the start of s, returning -1
// if s is too short or contains a non-hex character.
func parseHex4(s string) rune {
	if len(s) < 4 {
		return -1
	}
	var r rune
	for i := 0; i < 4; i++ {
		v := internal.HexValue(s[i])
		if v < 0 {
			return -1
		}
		r = r<<4 | rune(v)
	}
	return r
}
