package asm

import (
	"github.com/ezrec/belle/isa"
)

// TokenKind is the tag of a lexed token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_IDENT    = TokenKind(0) // ident
	TOKEN_REGISTER = TokenKind(1) // register
	TOKEN_LITERAL  = TokenKind(2) // literal
	TOKEN_MEM_ADDR = TokenKind(3) // memaddr
	TOKEN_REG_PTR  = TokenKind(4) // regptr
	TOKEN_MEM_PTR  = TokenKind(5) // memptr
	TOKEN_SR_CALL  = TokenKind(6) // srcall
	TOKEN_LABEL    = TokenKind(7) // label
	TOKEN_COMMA    = TokenKind(8) // comma
	TOKEN_EOL      = TokenKind(9) // eol
)

// Token is one lexed element of a source line.
type Token struct {
	Kind   TokenKind
	Value  int    // Numeric value of registers, literals, addresses and pointers.
	Text   string // Name of an identifier, label or subroutine.
	Raw    string // Source text of the token.
	LineNo int
	Col    int
}

// IsOperand returns true if the token can be an instruction operand.
func (tok Token) IsOperand() bool {
	switch tok.Kind {
	case TOKEN_REGISTER, TOKEN_LITERAL, TOKEN_MEM_ADDR, TOKEN_REG_PTR, TOKEN_MEM_PTR, TOKEN_SR_CALL:
		return true
	}
	return false
}

// ArgKind returns the operand kind the token encodes as. Subroutine
// references encode as direct memory addresses.
func (tok Token) ArgKind() isa.ArgKind {
	switch tok.Kind {
	case TOKEN_REGISTER:
		return isa.ARG_REGISTER
	case TOKEN_LITERAL:
		return isa.ARG_LITERAL
	case TOKEN_MEM_ADDR, TOKEN_SR_CALL:
		return isa.ARG_MEM_ADDR
	case TOKEN_REG_PTR:
		return isa.ARG_REG_PTR
	case TOKEN_MEM_PTR:
		return isa.ARG_MEM_PTR
	}
	return isa.ARG_NONE
}

// Argument converts an operand token, looking up subroutine references in
// the symbol table.
func (tok Token) Argument(symbols *Symbols) (arg isa.Argument, err error) {
	arg.Kind = tok.ArgKind()
	arg.Value = tok.Value
	if tok.Kind == TOKEN_SR_CALL {
		addr, ok := symbols.Lookup(tok.Text)
		if !ok {
			err = ErrSymbolMissing(tok.Text)
			return
		}
		arg.Value = addr
	}
	return
}
