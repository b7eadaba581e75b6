package jsondec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybergodev/jsondec/internal"
)

// StreamDecoder reads and decodes JSON values from an input stream. It
// supports both whole-value decoding with Decode and token-level iteration
// with Token/More.
type StreamDecoder struct {
	r         io.Reader
	buf       *bufio.Reader
	config    *Config
	useNumber bool
	offset    int64
}

// NewStreamDecoder returns a stream decoder reading from r with the default
// configuration.
func NewStreamDecoder(r io.Reader) *StreamDecoder {
	return NewStreamDecoderWithConfig(r, DefaultConfig())
}

// NewStreamDecoderWithConfig returns a stream decoder with a custom
// configuration. The config is cloned and clamped.
func NewStreamDecoderWithConfig(r io.Reader, config *Config) *StreamDecoder {
	cfg := config.Clone()
	cfg.Validate()
	return &StreamDecoder{
		r:      r,
		buf:    bufio.NewReaderSize(r, DefaultBufferSize),
		config: cfg,
	}
}

// UseNumber makes the token stream and Decode report numbers as Number
// instead of int64/float64.
func (dec *StreamDecoder) UseNumber() {
	dec.useNumber = true
}

// Buffered returns a reader over the data remaining in the decoder's buffer
func (dec *StreamDecoder) Buffered() io.Reader {
	return dec.buf
}

// InputOffset returns the number of bytes consumed from the underlying reader
func (dec *StreamDecoder) InputOffset() int64 {
	return dec.offset
}

// More reports whether there is another value in the current array or
// object, or another top-level value in the stream.
func (dec *StreamDecoder) More() bool {
	b, err := dec.peekNonSpace()
	if err != nil {
		return false
	}
	return b != ']' && b != '}'
}

// Decode reads the next complete JSON value from the stream and returns its
// value tree, applying the same semantics and limits as Decoder.Decode.
func (dec *StreamDecoder) Decode() (any, error) {
	raw, err := dec.readValue()
	if err != nil {
		return nil, err
	}

	cfg := dec.config
	if dec.useNumber && !cfg.PreserveNumbers {
		cfg = cfg.Clone()
		cfg.PreserveNumbers = true
	}
	return newParser(string(raw), cfg, nil).decode()
}

// Token returns the next token in the input stream: Delim for the four
// structural characters, or a decoded scalar value. Commas and colons are
// elided. At the end of the stream it returns nil, io.EOF.
func (dec *StreamDecoder) Token() (Token, error) {
	for {
		b, err := dec.readByte()
		if err != nil {
			return nil, err
		}

		if internal.IsSpace(b) || b == ':' || b == ',' {
			continue
		}
		if b == '/' && dec.config.AllowComments {
			if err := dec.skipComment(); err != nil {
				return nil, err
			}
			continue
		}
		return dec.parseToken(b)
	}
}

// parseToken parses a single token starting with the given byte
func (dec *StreamDecoder) parseToken(b byte) (Token, error) {
	switch b {
	case '{':
		return Delim('{'), nil
	case '}':
		return Delim('}'), nil
	case '[':
		return Delim('['), nil
	case ']':
		return Delim(']'), nil
	case '"':
		return dec.readString()
	case 't':
		if err := dec.expectLiteral("rue", "true"); err != nil {
			return nil, err
		}
		return true, nil
	case 'f':
		if err := dec.expectLiteral("alse", "false"); err != nil {
			return nil, err
		}
		return false, nil
	case 'n':
		if err := dec.expectLiteral("ull", "null"); err != nil {
			return nil, err
		}
		return nil, nil
	default:
		if b == '-' || internal.IsDigit(b) {
			return dec.readNumber(b)
		}
		return nil, &SyntaxError{
			Msg:    fmt.Sprintf("invalid character %q looking for beginning of value", rune(b)),
			Offset: dec.offset - 1,
			Err:    ErrInvalidJSON,
		}
	}
}

// readByte reads one byte, tracking the stream offset
func (dec *StreamDecoder) readByte() (byte, error) {
	b, err := dec.buf.ReadByte()
	if err == nil {
		dec.offset++
	}
	return b, err
}

func (dec *StreamDecoder) unreadByte() {
	if dec.buf.UnreadByte() == nil {
		dec.offset--
	}
}

// peekNonSpace consumes whitespace (and comments, when enabled) and peeks
// at the next byte without consuming it.
func (dec *StreamDecoder) peekNonSpace() (byte, error) {
	for {
		b, err := dec.buf.Peek(1)
		if err != nil {
			return 0, err
		}
		if internal.IsSpace(b[0]) {
			dec.readByte()
			continue
		}
		if b[0] == '/' && dec.config.AllowComments {
			dec.readByte()
			if err := dec.skipComment(); err != nil {
				return 0, err
			}
			continue
		}
		return b[0], nil
	}
}

// skipComment consumes a comment whose leading '/' has been read
func (dec *StreamDecoder) skipComment() error {
	start := dec.offset - 1
	b, err := dec.readByte()
	if err != nil {
		return dec.commentError(start, err)
	}

	switch b {
	case '/':
		for {
			b, err := dec.readByte()
			if err == io.EOF || (err == nil && b == '\n') {
				return nil
			}
			if err != nil {
				return err
			}
		}
	case '*':
		var prev byte
		for {
			b, err := dec.readByte()
			if err != nil {
				return dec.commentError(start, err)
			}
			if prev == '*' && b == '/' {
				return nil
			}
			prev = b
		}
	default:
		return &SyntaxError{
			Msg:    "invalid character '/' looking for beginning of value",
			Offset: start,
			Err:    ErrInvalidJSON,
		}
	}
}

func (dec *StreamDecoder) commentError(start int64, err error) error {
	if err == io.EOF {
		return &SyntaxError{
			Msg:    "unterminated comment",
			Offset: start,
			Err:    ErrUnexpectedEnd,
		}
	}
	return err
}

// readString reads a string literal whose opening quote has been consumed
// and resolves its escapes.
func (dec *StreamDecoder) readString() (string, error) {
	start := dec.offset - 1
	var raw []byte
	escaped := false

	for {
		b, err := dec.readByte()
		if err != nil {
			if err == io.EOF {
				return "", &SyntaxError{
					Msg:    "unterminated string literal",
					Offset: start,
					Err:    ErrUnexpectedEnd,
				}
			}
			return "", err
		}

		if escaped {
			escaped = false
			raw = append(raw, b)
			continue
		}
		switch {
		case b == '\\':
			escaped = true
			raw = append(raw, b)
		case b == '"':
			val, err := decodeStringBody(string(raw), dec.config.StrictMode)
			if err != nil {
				if ee, ok := err.(*escapeError); ok {
					return "", &SyntaxError{
						Msg:    ee.msg,
						Offset: start + 1 + int64(ee.rel),
						Err:    ErrInvalidJSON,
					}
				}
				return "", err
			}
			return val, nil
		case b < 0x20:
			return "", &SyntaxError{
				Msg:    fmt.Sprintf("invalid control character %q in string literal", rune(b)),
				Offset: dec.offset - 1,
				Err:    ErrInvalidJSON,
			}
		default:
			raw = append(raw, b)
		}
	}
}

// readNumber reads a number literal whose first byte has been consumed
func (dec *StreamDecoder) readNumber(first byte) (Token, error) {
	start := dec.offset - 1
	lit := []byte{first}

	for {
		b, err := dec.buf.Peek(1)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if !internal.IsNumberChar(b[0]) {
			break
		}
		actual, _ := dec.readByte()
		lit = append(lit, actual)
	}

	numStr := string(lit)
	if !internal.IsValidJSONNumber(numStr) {
		return nil, &SyntaxError{
			Msg:    fmt.Sprintf("invalid number literal %q", numStr),
			Offset: start,
			Err:    ErrInvalidJSON,
		}
	}

	if dec.useNumber || dec.config.PreserveNumbers {
		return Number(numStr), nil
	}

	if !strings.ContainsAny(numStr, ".eE") {
		if v, err := strconv.ParseInt(numStr, 10, 64); err == nil {
			return v, nil
		}
	}
	v, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return nil, &SyntaxError{
			Msg:    fmt.Sprintf("invalid number literal %q", numStr),
			Offset: start,
			Err:    ErrInvalidJSON,
		}
	}
	return v, nil
}

// expectLiteral consumes the remaining bytes of a keyword literal
func (dec *StreamDecoder) expectLiteral(rest, literal string) error {
	for i := 0; i < len(rest); i++ {
		b, err := dec.readByte()
		if err != nil {
			if err == io.EOF {
				return &SyntaxError{
					Msg:    fmt.Sprintf("unexpected end of input in literal %s", literal),
					Offset: dec.offset,
					Err:    ErrUnexpectedEnd,
				}
			}
			return err
		}
		if b != rest[i] {
			return &SyntaxError{
				Msg:    fmt.Sprintf("invalid character %q in literal %s", rune(b), literal),
				Offset: dec.offset - 1,
				Err:    ErrInvalidJSON,
			}
		}
	}
	return nil
}

// readValue reads one complete raw JSON value from the stream, tracking
// string and escape state so brackets inside string content never affect
// container depth.
func (dec *StreamDecoder) readValue() ([]byte, error) {
	var buf bytes.Buffer

	// Find the first significant character to determine the value shape
	var first byte
	for {
		b, err := dec.readByte()
		if err != nil {
			return nil, err
		}
		if internal.IsSpace(b) {
			continue
		}
		if b == '/' && dec.config.AllowComments {
			if err := dec.skipComment(); err != nil {
				return nil, err
			}
			continue
		}
		first = b
		buf.WriteByte(b)
		break
	}

	switch first {
	case '"':
		return dec.readRawString(&buf)
	case '{', '[':
		return dec.readRawContainer(&buf)
	default:
		return dec.readRawPrimitive(&buf)
	}
}

// readRawString reads the rest of a string value verbatim
func (dec *StreamDecoder) readRawString(buf *bytes.Buffer) ([]byte, error) {
	start := dec.offset - 1
	escaped := false

	for {
		b, err := dec.readByte()
		if err != nil {
			if err == io.EOF {
				return nil, &SyntaxError{
					Msg:    "unterminated string literal",
					Offset: start,
					Err:    ErrUnexpectedEnd,
				}
			}
			return nil, err
		}
		buf.WriteByte(b)

		if escaped {
			escaped = false
			continue
		}
		switch b {
		case '\\':
			escaped = true
		case '"':
			return bytes.Clone(buf.Bytes()), nil
		}
	}
}

// readRawContainer reads a balanced object or array verbatim
func (dec *StreamDecoder) readRawContainer(buf *bytes.Buffer) ([]byte, error) {
	start := dec.offset - 1
	depth := 1
	inString := false
	escaped := false

	for {
		b, err := dec.readByte()
		if err != nil {
			if err == io.EOF {
				return nil, &SyntaxError{
					Msg:    "unterminated container",
					Offset: start,
					Err:    ErrUnexpectedEnd,
				}
			}
			return nil, err
		}
		buf.WriteByte(b)

		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch b {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch b {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return bytes.Clone(buf.Bytes()), nil
			}
		}
	}
}

// readRawPrimitive reads a number or keyword up to the next delimiter
func (dec *StreamDecoder) readRawPrimitive(buf *bytes.Buffer) ([]byte, error) {
	for {
		b, err := dec.readByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		if internal.IsSpace(b) || b == ',' || b == '}' || b == ']' {
			dec.unreadByte()
			break
		}
		buf.WriteByte(b)
	}
	return bytes.Clone(buf.Bytes()), nil
}
