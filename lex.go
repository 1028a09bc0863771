package mathexpr

import (
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	val  float64
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal.
	tokenNum
	// tokenConst is an identifier resolved to a named constant.
	tokenConst
	// tokenFunc is an identifier resolved to a function name.
	tokenFunc
	// tokenOp is a binary or unary operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenSep is the function argument separator.
	tokenSep
	// tokenBang is the postfix factorial marker.
	tokenBang
	// tokenPercent is the postfix percent marker.
	tokenPercent
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenConst:
		return "Const"
	case tokenFunc:
		return "Func"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenSep:
		return "Sep"
	case tokenBang:
		return "Bang"
	case tokenPercent:
		return "Percent"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// glyphs maps Unicode math symbols commonly produced by calculator keypads
// to their ASCII spellings.
var glyphs = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"−", "-",
	"π", "PI",
	"√", "sqrt",
	"∛", "cbrt",
)

// normalize maps keypad glyphs to ASCII and strips all whitespace. Token
// positions refer to columns in the normalized text.
func normalize(src string) string {
	src = glyphs.Replace(src)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, src)
}

// tokenize scans a raw expression into a token sequence ending in an EOF
// token. Identifiers resolve case-insensitively against the constant table
// and then against funcs; anything else is a LexError. Characters matching
// no token class are skipped and returned separately so that callers can
// surface them as warnings.
func tokenize(src string, funcs map[string]Func) (toks, skipped []lexToken, err error) {
	rs := []rune(normalize(src))
	i := 0
	for i < len(rs) {
		r := rs[i]
		col := i + 1
		switch {
		case '0' <= r && r <= '9', r == '.':
			tok, w, err := scanNum(rs[i:], col)
			if err != nil {
				return toks, skipped, err
			}
			toks = append(toks, tok)
			i += w
		case unicode.IsLetter(r):
			tok, w, err := scanIdent(rs[i:], col, funcs)
			if err != nil {
				return toks, skipped, err
			}
			toks = append(toks, tok)
			i += w
		case strings.ContainsRune("+-*/^", r):
			toks = append(toks, lexToken{text: string(r), kind: tokenOp, pos: col})
			i++
		case r == '(':
			toks = append(toks, lexToken{text: "(", kind: tokenOpen, pos: col})
			i++
		case r == ')':
			toks = append(toks, lexToken{text: ")", kind: tokenClose, pos: col})
			i++
		case r == ',':
			toks = append(toks, lexToken{text: ",", kind: tokenSep, pos: col})
			i++
		case r == '!':
			toks = append(toks, lexToken{text: "!", kind: tokenBang, pos: col})
			i++
		case r == '%':
			toks = append(toks, lexToken{text: "%", kind: tokenPercent, pos: col})
			i++
		default:
			// Stray characters are dropped, not rejected. Validate reports
			// them as warnings.
			skipped = append(skipped, lexToken{text: string(r), pos: col})
			i++
		}
	}
	toks = append(toks, lexToken{kind: tokenEOF, pos: len(rs) + 1})
	return toks, skipped, nil
}

// scanNum scans a numeric literal at the start of rs. Leading-dot and
// trailing-dot decimals are accepted. An e/E exponent marker is consumed
// only when digits follow it, so "2e" lexes as the number 2 followed by the
// identifier e.
func scanNum(rs []rune, col int) (lexToken, int, error) {
	i := 0
	dig, dot := false, false
	for i < len(rs) {
		r := rs[i]
		if '0' <= r && r <= '9' {
			dig = true
			i++
			continue
		}
		if r == '.' && !dot {
			dot = true
			i++
			continue
		}
		break
	}
	if !dig {
		return lexToken{}, 0, &LexError{Text: string(rs[:i]), Kind: "number", Col: col}
	}
	if i < len(rs) && (rs[i] == 'e' || rs[i] == 'E') {
		j := i + 1
		if j < len(rs) && (rs[j] == '+' || rs[j] == '-') {
			j++
		}
		if j < len(rs) && '0' <= rs[j] && rs[j] <= '9' {
			for j < len(rs) && '0' <= rs[j] && rs[j] <= '9' {
				j++
			}
			i = j
		}
	}
	text := string(rs[:i])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return lexToken{}, 0, &LexError{Text: text, Kind: "number", Col: col}
	}
	return lexToken{text: text, kind: tokenNum, val: v, pos: col}, i, nil
}

// scanIdent scans a maximal alphanumeric run and resolves it to a constant
// or function token.
func scanIdent(rs []rune, col int, funcs map[string]Func) (lexToken, int, error) {
	i := 0
	for i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i])) {
		i++
	}
	text := string(rs[:i])
	name := strings.ToLower(text)
	if _, ok := constants[name]; ok {
		return lexToken{text: name, kind: tokenConst, pos: col}, i, nil
	}
	if funcs[name] != nil {
		return lexToken{text: name, kind: tokenFunc, pos: col}, i, nil
	}
	return lexToken{}, 0, &LexError{Text: text, Kind: "identifier", Col: col}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the offending token text.
	Text string
	// Kind is the type of token being scanned, "number" or "identifier".
	Kind string
	// Col is the 1-based rune column of the token in the normalized input.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "identifier" {
		return errpos(err.Col, "unknown identifier "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
