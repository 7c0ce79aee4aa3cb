package isa

import (
	"fmt"
	"strings"
)

// Directive is the code of a loader directive word.
type Directive int

//go:generate go tool stringer -linecomment -type=Directive
const (
	DIR_START = Directive(1) // .start
	DIR_SSP   = Directive(2) // .ssp
	DIR_SBP   = Directive(3) // .sbp
)

// DIRECTIVE_PAYLOAD_MAX is the largest payload of a directive word.
const DIRECTIVE_PAYLOAD_MAX = 0x1ff

// LookupDirective returns the directive for a label such as ".start".
func LookupDirective(label string) (dir Directive, ok bool) {
	label = strings.ToLower(label)
	if !strings.HasPrefix(label, ".") {
		label = "." + label
	}
	for _, d := range []Directive{DIR_START, DIR_SSP, DIR_SBP} {
		if d.String() == label {
			return d, true
		}
	}
	return
}

// MakeDirective creates a directive word.
func MakeDirective(dir Directive, payload int) (word uint16, err error) {
	if dir < DIR_START || dir > DIR_SBP {
		err = ErrDirectiveInvalid
		return
	}
	if payload < 0 || payload > DIRECTIVE_PAYLOAD_MAX {
		err = ErrArgRange
		return
	}
	word = (uint16(dir) << 9) | uint16(payload)
	return
}

// DirectiveDecode returns the directive held in a word, if it is one.
func DirectiveDecode(word uint16) (dir Directive, payload int, ok bool) {
	code := Directive(word >> 9)
	if code < DIR_START || code > DIR_SBP {
		return
	}
	return code, int(word & DIRECTIVE_PAYLOAD_MAX), true
}

// DirectiveString returns the assembly text of a directive word.
func DirectiveString(dir Directive, payload int) string {
	return fmt.Sprintf("%v $%d", dir, payload)
}
