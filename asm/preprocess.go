package asm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Line is one source line after preprocessing, with its origin.
type Line struct {
	File   string
	LineNo int
	Text   string
}

// Preprocessor expands `#include "path"` lines, `.equ NAME VALUE`
// equates and compile-time `$(...)` expressions.
type Preprocessor struct {
	Verbose bool     // If set, verbosely logs the preprocessor actions.
	FS      fs.FS    // File system that #include paths are opened from.
	Include []string // Directories searched for #include paths.

	Equate map[string]string // Map of equates.

	stack []string // Files being expanded, outermost first.
}

// Define defines a new equate or redefines an existing equate.
func (pp *Preprocessor) Define(equ string, value string) {
	if pp.Equate == nil {
		pp.Equate = map[string]string{equ: value}
	} else {
		pp.Equate[equ] = value
	}
}

var includeRe = regexp.MustCompile(`^#include\s+"([^"]+)"\s*(;.*)?$`)

// Process reads a source stream and returns the expanded lines.
func (pp *Preprocessor) Process(name string, input io.Reader) (lines []Line, err error) {
	if pp.Equate == nil {
		pp.Equate = make(map[string]string)
	}
	pp.Equate["LINENO"] = "0"
	pp.stack = []string{path.Clean(name)}

	return pp.process(name, input)
}

func (pp *Preprocessor) process(name string, input io.Reader) (lines []Line, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err == nil {
			return
		}
		var serr *ErrSyntax
		if !errors.As(err, &serr) {
			err = &ErrSyntax{File: name, LineNo: lineno, Line: text, Err: err}
		}
	}()

	for scanner.Scan() {
		text = scanner.Text()
		lineno++

		if pp.Verbose {
			logrus.WithField("component", "asm").Infof("%v:%v: %v", name, lineno, text)
		}

		trimmed := strings.TrimSpace(text)
		if strings.HasPrefix(trimmed, "#include") {
			var included []Line
			included, err = pp.include(name, trimmed)
			if err != nil {
				return
			}
			lines = append(lines, included...)
			continue
		}

		pp.Equate["LINENO"] = strconv.Itoa(lineno)

		// .equ NAME VALUE
		words := strings.Fields(stripComment(trimmed))
		if len(words) > 0 && words[0] == ".equ" {
			if len(words) < 3 {
				err = ErrEquateSyntax
				return
			}
			if _, ok := pp.Equate[words[1]]; ok {
				err = ErrEquateDuplicate
				return
			}
			var value string
			value, err = pp.expand(strings.Join(words[2:], " "))
			if err != nil {
				return
			}
			pp.Equate[words[1]] = value
			continue
		}

		var expanded string
		expanded, err = pp.expand(text)
		if err != nil {
			return
		}

		lines = append(lines, Line{File: name, LineNo: lineno, Text: expanded})
	}

	err = scanner.Err()

	return
}

// include expands an `#include "path"` line. The path is looked up next to
// the including file, then in each include directory.
func (pp *Preprocessor) include(current string, line string) (lines []Line, err error) {
	match := includeRe.FindStringSubmatch(line)
	if match == nil {
		err = ErrIncludeSyntax
		return
	}
	if pp.FS == nil {
		err = fmt.Errorf("%w: %v", ErrIncludeMissing, match[1])
		return
	}

	candidates := []string{path.Join(path.Dir(current), match[1])}
	for _, dir := range pp.Include {
		candidates = append(candidates, path.Join(dir, match[1]))
	}

	for _, name := range candidates {
		if slices.Contains(pp.stack, name) {
			err = fmt.Errorf("%w: %v", ErrIncludeCycle, name)
			return
		}

		var file fs.File
		file, err = pp.FS.Open(name)
		if err != nil {
			continue
		}

		if pp.Verbose {
			logrus.WithField("component", "asm").Infof("include %v", name)
		}

		pp.stack = append(pp.stack, name)
		lines, err = pp.process(name, file)
		pp.stack = pp.stack[:len(pp.stack)-1]
		file.Close()
		return
	}

	err = fmt.Errorf("%w: %v", ErrIncludeMissing, match[1])
	return
}

var wordRe = regexp.MustCompile(`'(?:\\.|[^'\\])*'|[@.%&]?[A-Za-z_][A-Za-z0-9_]*`)

// expand evaluates the $(...) expressions of a line, then substitutes
// equates. Subroutine names, labels, registers and character literals are
// never substituted.
func (pp *Preprocessor) expand(line string) (out string, err error) {
	for {
		start := strings.Index(line, "$(")
		if start < 0 {
			break
		}
		depth := 0
		end := -1
		for n := start + 1; n < len(line); n++ {
			switch line[n] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				end = n
				break
			}
		}
		if end < 0 {
			err = ErrParseExpression(line[start+2:])
			return
		}
		var value int64
		value, err = pp.parenEval(line[start+2 : end])
		if err != nil {
			return
		}
		line = line[:start] + strconv.FormatInt(value, 10) + line[end+1:]
	}

	out = wordRe.ReplaceAllStringFunc(line, func(word string) string {
		if strings.ContainsAny(word[:1], "'@.%&") {
			return word
		}
		equate, ok := pp.Equate[word]
		if ok {
			return equate
		}
		return word
	})

	return
}

// parenEval does compile-time $(...) evaluations
func (pp *Preprocessor) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range pp.Equate {
		v, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// stripComment removes a trailing `;` comment, honoring character literals.
func stripComment(text string) string {
	quoted := false
	for n := 0; n < len(text); n++ {
		switch text[n] {
		case '\\':
			if quoted {
				n++
			}
		case '\'':
			quoted = !quoted
		case ';':
			if !quoted {
				return text[:n]
			}
		}
	}
	return text
}
