package jsondec

// tokenKind identifies a lexical token produced by the scanner
type tokenKind int

const (
	tkEOF tokenKind = iota
	tkBeginObject       // {
	tkEndObject         // }
	tkBeginArray        // [
	tkEndArray          // ]
	tkComma             // ,
	tkColon             // :
	tkString            // "..." with escapes resolved
	tkNumber            // number literal, verbatim
	tkTrue              // true
	tkFalse             // false
	tkNull              // null
	tkIdent             // bare word; always rejected by the parser, kept so the error can name it
)

var tokenKindNames = [...]string{
	tkEOF:         "end of input",
	tkBeginObject: "'{'",
	tkEndObject:   "'}'",
	tkBeginArray:  "'['",
	tkEndArray:    "']'",
	tkComma:       "','",
	tkColon:       "':'",
	tkString:      "string",
	tkNumber:      "number",
	tkTrue:        "'true'",
	tkFalse:       "'false'",
	tkNull:        "'null'",
	tkIdent:       "identifier",
}

// token is a single lexical unit. For tkString, str holds the decoded value;
// for tkNumber and tkIdent it holds the literal text.
type token struct {
	kind   tokenKind
	offset int
	str    string
}

// describe renders a token for error messages
func (t token) describe() string {
	switch t.kind {
	case tkString:
		return "string"
	case tkNumber, tkIdent:
		return "'" + t.str + "'"
	default:
		return tokenKindNames[t.kind]
	}
}

// Token holds a value of one of these types, mirroring the token stream of
// StreamDecoder:
//
//   - Delim, for the four structural delimiters { } [ ]
//   - bool, for true and false
//   - int64, float64 or Number, for numbers
//   - string, for string values
//   - nil, for null
type Token any

// Delim is a JSON structural delimiter appearing in a StreamDecoder token
// stream: one of { } [ ].
type Delim rune

func (d Delim) String() string {
	return string(d)
}
