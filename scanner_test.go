package jsondec

import (
	"errors"
	"strings"
	"testing"
)

// scanAll drains the scanner, returning every token up to and including EOF
func scanAll(t *testing.T, input string, config *Config) []token {
	t.Helper()

	sc := newScanner(input, config)
	var tokens []token
	for {
		tok, err := sc.next()
		if err != nil {
			t.Fatalf("next() failed on %q: %v", input, err)
		}
		tokens = append(tokens, tok)
		if tok.kind == tkEOF {
			return tokens
		}
	}
}

func TestScannerTokenStream(t *testing.T) {
	input := `{"a": [1, true, null], "b": -2.5}`
	expected := []tokenKind{
		tkBeginObject, tkString, tkColon, tkBeginArray,
		tkNumber, tkComma, tkTrue, tkComma, tkNull, tkEndArray,
		tkComma, tkString, tkColon, tkNumber, tkEndObject, tkEOF,
	}

	tokens := scanAll(t, input, DefaultConfig())
	if len(tokens) != len(expected) {
		t.Fatalf("got %d tokens; want %d", len(tokens), len(expected))
	}
	for i, kind := range expected {
		if tokens[i].kind != kind {
			t.Errorf("token %d: got kind %v; want %v", i, tokens[i].kind, kind)
		}
	}
}

func TestScannerStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"escaped quote", `"a\"b"`, `a"b`},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"trailing backslash", `"a[b]\\"`, `a[b]\`},
		{"escaped slash normalized", `"\/"`, "/"},
		{"bare slash", `"a/b"`, "a/b"},
		{"control escapes", `"\b\f\n\r\t"`, "\b\f\n\r\t"},
		{"unicode escape", `"\u00B5"`, "µ"},
		{"unicode escape uppercase hex", `"\u00DF"`, "ß"},
		{"surrogate pair", `"\uD83D\uDE00"`, "\U0001F600"},
		{"lone high surrogate", `"\uD83D"`, "�"},
		{"lone low surrogate", `"\uDE00x"`, "�x"},
		{"structural text stays literal", `"[null]"`, "[null]"},
		{"embedded json text", `"{\"name\": \"val\"}"`, `{"name": "val"}`},
		{"raw marker characters", `"@a@b@"`, "@a@b@"},
		{"multibyte passthrough", `"héllo, 世界"`, "héllo, 世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := newScanner(tt.input, DefaultConfig())
			tok, err := sc.next()
			if err != nil {
				t.Fatalf("next() failed: %v", err)
			}
			if tok.kind != tkString {
				t.Fatalf("got kind %v; want tkString", tok.kind)
			}
			if tok.str != tt.expected {
				t.Errorf("got %q; want %q", tok.str, tt.expected)
			}
		})
	}
}

func TestScannerStringErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
	}{
		{"unterminated", `"abc`, ErrUnexpectedEnd},
		{"unterminated after escape", `"abc\"`, ErrUnexpectedEnd},
		{"invalid escape", `"a\x"`, ErrInvalidJSON},
		{"truncated unicode escape", `"\u00"`, ErrInvalidJSON},
		{"non-hex unicode escape", `"\uZZZZ"`, ErrInvalidJSON},
		{"raw newline", "\"a\nb\"", ErrInvalidJSON},
		{"raw tab", "\"a\tb\"", ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := newScanner(tt.input, DefaultConfig())
			_, err := sc.next()
			if err == nil {
				t.Fatalf("next() succeeded on %q; want error", tt.input)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("got error %v; want sentinel %v", err, tt.sentinel)
			}
		})
	}
}

func TestScannerStrictSurrogates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrictMode = true

	sc := newScanner(`"\uD83D"`, cfg)
	if _, err := sc.next(); err == nil {
		t.Error("lone surrogate accepted in strict mode")
	}

	sc = newScanner(`"\uD83D\uDE00"`, cfg)
	tok, err := sc.next()
	if err != nil {
		t.Fatalf("valid surrogate pair rejected in strict mode: %v", err)
	}
	if tok.str != "\U0001F600" {
		t.Errorf("got %q; want %q", tok.str, "\U0001F600")
	}
}

func TestScannerNumbers(t *testing.T) {
	valid := []string{"0", "-0", "123", "-4.5", "0.001", "1e10", "1E-2", "2.5e+3"}
	for _, lit := range valid {
		sc := newScanner(lit, DefaultConfig())
		tok, err := sc.next()
		if err != nil {
			t.Errorf("next() failed on %q: %v", lit, err)
			continue
		}
		if tok.kind != tkNumber || tok.str != lit {
			t.Errorf("scanning %q: got kind %v str %q", lit, tok.kind, tok.str)
		}
	}

	invalid := []string{"-", "01", "1.", ".5", "1e", "1e+", "--1", "1.2.3"}
	for _, lit := range invalid {
		sc := newScanner(lit, DefaultConfig())
		if _, err := sc.next(); err == nil {
			t.Errorf("next() accepted invalid number %q", lit)
		}
	}
}

func TestScannerKeywordsAndIdents(t *testing.T) {
	tests := []struct {
		input string
		kind  tokenKind
	}{
		{"true", tkTrue},
		{"false", tkFalse},
		{"null", tkNull},
		{"nullish", tkIdent},
		{"True", tkIdent},
		{"undefined_token", tkIdent},
	}

	for _, tt := range tests {
		sc := newScanner(tt.input, DefaultConfig())
		tok, err := sc.next()
		if err != nil {
			t.Fatalf("next() failed on %q: %v", tt.input, err)
		}
		if tok.kind != tt.kind {
			t.Errorf("scanning %q: got kind %v; want %v", tt.input, tok.kind, tt.kind)
		}
	}
}

func TestScannerComments(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowComments = true

	tests := []struct {
		name  string
		input string
	}{
		{"line comment before value", "// header\n123"},
		{"line comment after value", "123 // trailing"},
		{"block comment", "/* note */ 123"},
		{"block comment with stars", "/* ** * */ 123"},
		{"multiline block comment", "/* a\nb\nc */ 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scanAll(t, tt.input, cfg)
			if tokens[0].kind != tkNumber || tokens[0].str != "123" {
				t.Errorf("got first token %v %q; want number 123", tokens[0].kind, tokens[0].str)
			}
			if tokens[len(tokens)-1].kind != tkEOF {
				t.Errorf("stream did not end with EOF")
			}
		})
	}

	t.Run("unterminated block comment", func(t *testing.T) {
		sc := newScanner("/* open", cfg)
		if _, err := sc.next(); !errors.Is(err, ErrUnexpectedEnd) {
			t.Errorf("got %v; want ErrUnexpectedEnd", err)
		}
	})

	t.Run("comments disabled", func(t *testing.T) {
		sc := newScanner("// c\n1", DefaultConfig())
		if _, err := sc.next(); !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("got %v; want ErrInvalidJSON", err)
		}
	})

	t.Run("slashes inside strings are content", func(t *testing.T) {
		sc := newScanner(`"http://example.com"`, cfg)
		tok, err := sc.next()
		if err != nil {
			t.Fatalf("next() failed: %v", err)
		}
		if tok.str != "http://example.com" {
			t.Errorf("got %q; want the URL intact", tok.str)
		}
	})
}

func TestLineCol(t *testing.T) {
	input := "{\n  \"a\": 1,\n  \"b\": x\n}"
	idx := strings.IndexByte(input, 'x')

	line, col := lineCol(input, idx)
	if line != 3 {
		t.Errorf("line = %d; want 3", line)
	}
	if col != 8 {
		t.Errorf("col = %d; want 8", col)
	}

	line, col = lineCol("abc", 0)
	if line != 1 || col != 1 {
		t.Errorf("start of input: got %d:%d; want 1:1", line, col)
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	sc := newScanner("   \n  ?", DefaultConfig())
	_, err := sc.next()
	if err == nil {
		t.Fatal("scanner accepted '?'")
	}

	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("got %T; want *SyntaxError", err)
	}
	if syntaxErr.Offset != 6 {
		t.Errorf("Offset = %d; want 6", syntaxErr.Offset)
	}
	if syntaxErr.Line != 2 || syntaxErr.Column != 3 {
		t.Errorf("position = %d:%d; want 2:3", syntaxErr.Line, syntaxErr.Column)
	}
}
