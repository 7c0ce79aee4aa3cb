package asm

import (
	"errors"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// Symbols is the symbol table produced by Resolve.
type Symbols struct {
	Start    int            // Load address, from .start.
	HasStart bool           // Set if a .start directive was found.
	Table    map[string]int // Map of subroutine names to absolute addresses.
}

// Lookup returns the address of a subroutine.
func (sym *Symbols) Lookup(name string) (addr int, ok bool) {
	if sym == nil {
		return
	}
	addr, ok = sym.Table[name]
	return
}

// Names returns the subroutine names in address order.
func (sym *Symbols) Names() []string {
	names := slices.Collect(maps.Keys(sym.Table))
	slices.SortFunc(names, func(a, b string) int {
		if d := sym.Table[a] - sym.Table[b]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	return names
}

var declRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*):(.*)$`)

// Resolve makes two passes over the source lines. The first finds the
// load address from the single `.start $N` directive. The second assigns
// each declared subroutine the address of the first instruction that
// follows its declaration.
func Resolve(lines []Line) (sym *Symbols, err error) {
	sym = &Symbols{Table: make(map[string]int)}

	var line Line
	defer func() {
		if err == nil {
			return
		}
		var serr *ErrSyntax
		if errors.As(err, &serr) {
			serr.File = line.File
		} else {
			err = &ErrSyntax{File: line.File, LineNo: line.LineNo, Line: line.Text, Err: err}
		}
		sym = nil
	}()

	// Pass 1: load address.
	for _, line = range lines {
		text := strings.TrimSpace(stripComment(line.Text))
		if !isStart(text) {
			continue
		}
		var tokens []Token
		tokens, err = Lex(text, line.LineNo)
		if err != nil {
			return
		}
		if len(tokens) != 3 || tokens[1].Kind != TOKEN_MEM_ADDR {
			err = ErrStartSyntax
			return
		}
		if sym.HasStart {
			err = ErrStartDuplicate
			return
		}
		sym.HasStart = true
		sym.Start = tokens[1].Value
	}

	// Pass 2: subroutine addresses. Only an instruction advances the
	// counter; declarations and directives occupy no address.
	counter := sym.Start
	for _, line = range lines {
		text := strings.TrimSpace(stripComment(line.Text))
		for {
			match := declRe.FindStringSubmatch(text)
			if match == nil {
				break
			}
			name := match[1]
			if _, ok := sym.Table[name]; ok {
				err = ErrSymbolDuplicate
				return
			}
			sym.Table[name] = counter
			text = strings.TrimSpace(match[2])
		}
		if len(text) == 0 {
			continue
		}
		var tokens []Token
		tokens, err = Lex(line.Text, line.LineNo)
		if err != nil {
			return
		}
		if tokens[0].Kind == TOKEN_IDENT {
			counter++
		}
	}

	return
}

// isStart returns true if the text is a .start directive.
func isStart(text string) bool {
	if len(text) < len(".start") || !strings.EqualFold(text[:len(".start")], ".start") {
		return false
	}
	rest := text[len(".start"):]
	return len(rest) == 0 || !isIdent(rune(rest[0]))
}
