package asm

import (
	"errors"
	"strings"

	"github.com/ezrec/belle/isa"
)

// describe names the operand shape of an opcode for diagnostics.
func describe(shape isa.Shape) string {
	var parts []string
	for _, kinds := range [][]isa.ArgKind{shape.Arg1, shape.Arg2}[:shape.MaxArgs] {
		var names []string
		for _, kind := range kinds {
			names = append(names, kind.String())
		}
		parts = append(parts, strings.Join(names, "|"))
	}
	if len(parts) == 0 {
		return shape.Expects()
	}
	return shape.Expects() + " (" + strings.Join(parts, ", ") + ")"
}

// Verify checks the operand count, the operand kinds and the numeric
// ranges of an instruction's operand tokens. Subroutine references are
// range checked once resolved, by the encoder.
func Verify(op isa.Op, args []Token, lineno int) (err error) {
	shape := op.Shape()

	defer func() {
		if err != nil {
			err = &ErrVerify{Mnemonic: op.String(), Expects: describe(shape), LineNo: lineno, Err: err}
		}
	}()

	if len(args) < shape.MinArgs || len(args) > shape.MaxArgs {
		err = isa.ErrArity
		return
	}

	for n, tok := range args {
		tag := isa.ErrOpcodeArg1
		if n == 1 {
			tag = isa.ErrOpcodeArg2
		}

		kind := tok.ArgKind()
		if !shape.Allows(n, kind) || (tok.Kind == TOKEN_SR_CALL && !op.IsJump()) {
			err = errors.Join(tag, isa.ErrArgKind)
			return
		}
		if tok.Kind == TOKEN_SR_CALL {
			continue
		}

		low, high := shape.Limit(n, kind)
		if tok.Value < low || tok.Value > high {
			err = errors.Join(tag, isa.ErrArgRange)
			return
		}
	}

	return
}
