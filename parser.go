package jsondec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cybergodev/jsondec/internal"
)

// parser builds the value tree directly from the scanner's token stream via
// recursive descent. Objects become map[string]any, arrays []any, and
// scalars their natural Go types. There is no intermediate representation
// between tokens and values.
type parser struct {
	sc       *scanner
	config   *Config
	interner *internal.Intern
	tok      token
	depth    int
}

func newParser(data string, config *Config, interner *internal.Intern) *parser {
	return &parser{
		sc:       newScanner(data, config),
		config:   config,
		interner: interner,
	}
}

// decode parses exactly one top-level value and requires the remainder of
// the input to be whitespace (or comments, when enabled).
func (p *parser) decode() (any, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind != tkEOF {
		return nil, p.sc.syntaxErrorf(p.tok.offset, "unexpected %s after top-level value", p.tok.describe())
	}

	return value, nil
}

// advance fetches the next token into p.tok
func (p *parser) advance() error {
	tok, err := p.sc.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// parseValue parses the value starting at the current token
func (p *parser) parseValue() (any, error) {
	switch p.tok.kind {
	case tkString:
		return p.tok.str, nil
	case tkNumber:
		return p.convertNumber(p.tok)
	case tkTrue:
		return true, nil
	case tkFalse:
		return false, nil
	case tkNull:
		return nil, nil
	case tkBeginObject:
		return p.parseObject()
	case tkBeginArray:
		return p.parseArray()
	case tkIdent:
		// A bare word where a value belongs means the input was not JSON,
		// e.g. {"a": undefined_token}. Name the word in the error.
		line, col := lineCol(p.sc.data, p.tok.offset)
		return nil, &SyntaxError{
			Msg:    fmt.Sprintf("invalid value: %s", p.tok.str),
			Offset: int64(p.tok.offset),
			Line:   line,
			Column: col,
			Err:    ErrInvalidValue,
		}
	case tkEOF:
		return nil, p.sc.unexpectedEnd(p.tok.offset, "unexpected end of input looking for value")
	default:
		return nil, p.sc.syntaxErrorf(p.tok.offset, "unexpected %s looking for beginning of value", p.tok.describe())
	}
}

// parseObject parses an object whose '{' is the current token
func (p *parser) parseObject() (map[string]any, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()

	open := p.tok.offset
	obj := make(map[string]any)

	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind == tkEndObject {
		return obj, nil
	}

	for {
		if p.tok.kind != tkString {
			if p.tok.kind == tkEOF {
				return nil, p.sc.unexpectedEnd(open, "unterminated object")
			}
			return nil, p.sc.syntaxErrorf(p.tok.offset, "expected object key string, got %s", p.tok.describe())
		}
		key := p.tok.str
		if p.interner != nil {
			key = p.interner.Intern(key)
		}
		keyOffset := p.tok.offset

		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind != tkColon {
			if p.tok.kind == tkEOF {
				return nil, p.sc.unexpectedEnd(open, "unterminated object")
			}
			return nil, p.sc.syntaxErrorf(p.tok.offset, "expected ':' after object key, got %s", p.tok.describe())
		}

		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		if _, exists := obj[key]; exists && p.config.StrictMode {
			line, col := lineCol(p.sc.data, keyOffset)
			return nil, &SyntaxError{
				Msg:    fmt.Sprintf("duplicate object key %q", key),
				Offset: int64(keyOffset),
				Line:   line,
				Column: col,
				Err:    ErrDuplicateKey,
			}
		}
		obj[key] = value
		if len(obj) > p.config.MaxObjectKeys {
			return nil, newKeyLimitError("decode", p.config.MaxObjectKeys)
		}

		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.tok.kind {
		case tkComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tkEndObject:
			return obj, nil
		case tkEOF:
			return nil, p.sc.unexpectedEnd(open, "unterminated object")
		default:
			return nil, p.sc.syntaxErrorf(p.tok.offset, "expected ',' or '}' after object value, got %s", p.tok.describe())
		}
	}
}

// parseArray parses an array whose '[' is the current token
func (p *parser) parseArray() ([]any, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()

	open := p.tok.offset
	arr := make([]any, 0)

	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind == tkEndArray {
		return arr, nil
	}

	for {
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
		if len(arr) > p.config.MaxArrayElements {
			return nil, newElementLimitError("decode", p.config.MaxArrayElements)
		}

		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.tok.kind {
		case tkComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tkEndArray:
			return arr, nil
		case tkEOF:
			return nil, p.sc.unexpectedEnd(open, "unterminated array")
		default:
			return nil, p.sc.syntaxErrorf(p.tok.offset, "expected ',' or ']' after array element, got %s", p.tok.describe())
		}
	}
}

// push enforces the nesting depth limit on entry to a container
func (p *parser) push() error {
	p.depth++
	if p.depth > p.config.MaxNestingDepth {
		return newDepthLimitError("decode", p.depth, p.config.MaxNestingDepth)
	}
	return nil
}

func (p *parser) pop() {
	p.depth--
}

// convertNumber turns a number token into int64 when the literal is integral
// and fits, float64 otherwise, or Number verbatim when PreserveNumbers is set.
func (p *parser) convertNumber(tok token) (any, error) {
	lit := tok.str

	if p.config.PreserveNumbers {
		return Number(lit), nil
	}

	if !strings.ContainsAny(lit, ".eE") {
		if v, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return v, nil
		}
	}

	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, p.sc.syntaxErrorf(tok.offset, "invalid number literal %q", lit)
	}
	return v, nil
}
