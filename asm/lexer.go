package asm

import (
	"strconv"
	"unicode"
)

// lexer holds the scan state of a single source line.
type lexer struct {
	runes  []rune
	pos    int
	col    int
	lineno int
	tokens []Token
}

// Lex turns one line of source text into tokens, ending with TOKEN_EOL.
// A subroutine declaration (`name:`) is consumed without producing a token.
func Lex(line string, lineno int) (tokens []Token, err error) {
	lx := &lexer{runes: []rune(line), col: 1, lineno: lineno}

	for lx.pos < len(lx.runes) {
		c := lx.runes[lx.pos]
		start, col := lx.pos, lx.col

		switch {
		case c == ';':
			lx.pos = len(lx.runes)
			continue
		case c == '\t':
			lx.pos++
			lx.col += 4
			continue
		case unicode.IsSpace(c):
			lx.next()
			continue
		case c == ',':
			lx.next()
			lx.emit(Token{Kind: TOKEN_COMMA}, start, col)
		case c == '%':
			err = lx.lexRegister(start, col)
		case c == '#':
			err = lx.lexLiteral(start, col)
		case c == '$':
			err = lx.lexAddress(start, col)
		case c == '&':
			err = lx.lexPointer(start, col)
		case c == '@':
			err = lx.lexCall(start, col)
		case c == '.':
			err = lx.lexLabel(start, col)
		case c == '\'':
			err = lx.lexChar(start, col)
		case isIdentStart(c):
			lx.lexIdent(start, col)
		default:
			err = ErrCharUnknown
		}

		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Col: col, Line: line, Err: err}
			return
		}
	}

	lx.emit(Token{Kind: TOKEN_EOL}, lx.pos, lx.col)
	tokens = lx.tokens

	return
}

func isIdentStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdent(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// peek returns the current rune, or 0 at end of line.
func (lx *lexer) peek() rune {
	if lx.pos >= len(lx.runes) {
		return 0
	}
	return lx.runes[lx.pos]
}

func (lx *lexer) next() (c rune) {
	c = lx.peek()
	if lx.pos < len(lx.runes) {
		lx.pos++
		lx.col++
	}
	return
}

// run consumes runes while accept is true.
func (lx *lexer) run(accept func(rune) bool) string {
	start := lx.pos
	for lx.pos < len(lx.runes) && accept(lx.runes[lx.pos]) {
		lx.next()
	}
	return string(lx.runes[start:lx.pos])
}

// number consumes an optionally negative decimal number.
func (lx *lexer) number(signed bool) (value int, ok bool) {
	text := ""
	if signed && lx.peek() == '-' {
		text = string(lx.next())
	}
	digits := lx.run(isDigit)
	if len(digits) == 0 {
		return
	}
	value, err := strconv.Atoi(text + digits)
	ok = err == nil
	return
}

func (lx *lexer) emit(tok Token, start, col int) {
	tok.Raw = string(lx.runes[start:lx.pos])
	tok.LineNo = lx.lineno
	tok.Col = col
	lx.tokens = append(lx.tokens, tok)
}

func (lx *lexer) lexRegister(start, col int) (err error) {
	lx.next()
	if c := lx.next(); c != 'r' && c != 'R' {
		return ErrRegisterSyntax
	}
	value, ok := lx.number(false)
	if !ok {
		return ErrRegisterSyntax
	}
	lx.emit(Token{Kind: TOKEN_REGISTER, Value: value}, start, col)
	return
}

func (lx *lexer) lexLiteral(start, col int) (err error) {
	lx.next()
	value, ok := lx.number(true)
	if !ok {
		return ErrLiteralSyntax
	}
	if value < -128 || value > 127 {
		return ErrLiteralRange
	}
	lx.emit(Token{Kind: TOKEN_LITERAL, Value: value}, start, col)
	return
}

func (lx *lexer) lexAddress(start, col int) (err error) {
	lx.next()
	value, ok := lx.number(false)
	if !ok {
		return ErrAddressSyntax
	}
	if value <= 0 || value >= 512 {
		return ErrAddressRange
	}
	lx.emit(Token{Kind: TOKEN_MEM_ADDR, Value: value}, start, col)
	return
}

func (lx *lexer) lexPointer(start, col int) (err error) {
	lx.next()
	kind := TOKEN_REG_PTR
	switch lx.next() {
	case 'r', 'R':
	case '$':
		kind = TOKEN_MEM_PTR
	default:
		return ErrPointerSyntax
	}
	value, ok := lx.number(false)
	if !ok {
		return ErrPointerSyntax
	}
	lx.emit(Token{Kind: kind, Value: value}, start, col)
	return
}

func (lx *lexer) lexCall(start, col int) (err error) {
	lx.next()
	name := lx.run(isIdent)
	if len(name) == 0 {
		return ErrSubroutineSyntax
	}
	lx.emit(Token{Kind: TOKEN_SR_CALL, Text: name}, start, col)
	return
}

func (lx *lexer) lexLabel(start, col int) (err error) {
	lx.next()
	name := lx.run(isIdent)
	if len(name) == 0 {
		return ErrLabelSyntax
	}
	lx.emit(Token{Kind: TOKEN_LABEL, Text: "." + name}, start, col)
	return
}

var charEscape = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'0':  0,
	'\\': '\\',
	'\'': '\'',
}

func (lx *lexer) lexChar(start, col int) (err error) {
	lx.next()
	if lx.pos >= len(lx.runes) {
		return ErrCharUnterminated
	}
	c := lx.next()
	switch c {
	case '\'':
		return ErrCharEmpty
	case '\\':
		if lx.pos >= len(lx.runes) {
			return ErrCharUnterminated
		}
		escaped, ok := charEscape[lx.next()]
		if !ok {
			return ErrCharUnknown
		}
		c = escaped
	}
	if lx.peek() != '\'' {
		lx.run(func(r rune) bool { return r != '\'' })
		if lx.pos >= len(lx.runes) {
			return ErrCharUnterminated
		}
		return ErrCharLong
	}
	lx.next()
	if c > 127 {
		return ErrLiteralRange
	}
	lx.emit(Token{Kind: TOKEN_LITERAL, Value: int(c)}, start, col)
	return
}

func (lx *lexer) lexIdent(start, col int) {
	name := lx.run(isIdent)
	if lx.peek() == ':' {
		lx.next()
		return
	}
	lx.emit(Token{Kind: TOKEN_IDENT, Text: name}, start, col)
}
