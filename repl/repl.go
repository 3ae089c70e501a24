/*
File    : loxy/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Lox interpreter.
Each line the user enters is scanned, parsed, resolved and interpreted
against a single Interpreter instance that persists for the life of the
session, so variables and functions declared on one line remain visible
on the next.
*/
package repl

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/loxy/interp"
	"github.com/akashmaji946/loxy/lexer"
	"github.com/akashmaji946/loxy/parser"
	"github.com/akashmaji946/loxy/report"
	"github.com/akashmaji946/loxy/resolver"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// lineSource is the minimal line-reading contract Start needs, satisfied
// both by *readline.Instance (history, arrow-key editing — used on a real
// stdin session) and by the bufio fallback used for any other stream,
// such as a TCP connection handed in by the server command.
type lineSource interface {
	Readline() (string, error)
	SaveHistory(string) error
	Close() error
}

// scannerLineSource adapts a bufio.Scanner to lineSource for streams that
// are not the process's own stdin (readline always drives the real
// terminal regardless of what it's told, so it cannot be pointed at an
// arbitrary net.Conn).
type scannerLineSource struct {
	scanner *bufio.Scanner
	writer  io.Writer
	prompt  string
}

func (s *scannerLineSource) Readline() (string, error) {
	io.WriteString(s.writer, s.prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *scannerLineSource) SaveHistory(string) error { return nil }
func (s *scannerLineSource) Close() error             { return nil }

// Color definitions for REPL output, matched to role rather than to any
// one message: blue for decoration, yellow for echoed expression results,
// red for errors, green for the startup banner, cyan for informational
// text.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a single interactive session's configuration.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner, version, author, separator
// line, license and prompt text.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Loxy!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop and writes all output to writer. It returns
// when the input stream is exhausted or the user types ".exit".
//
// When reader is the process's own stdin, input goes through readline
// for command history and line editing. Any other stream — notably a
// net.Conn handed in by the server command — reads through a plain
// line-buffered scanner instead, since readline always drives the
// controlling terminal and cannot be redirected to an arbitrary stream.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	var rl lineSource
	if reader == io.Reader(os.Stdin) {
		inst, err := readline.New(r.Prompt)
		if err != nil {
			redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
			return
		}
		rl = inst
	} else {
		rl = &scannerLineSource{scanner: bufio.NewScanner(reader), writer: writer, prompt: r.Prompt}
	}
	defer rl.Close()

	rep := report.NewReporter(writer)
	interpreter := interp.New(writer, rep)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		rep.Reset()
		r.evalLine(writer, line, rep, interpreter)
	}
}

// evalLine runs one line of source through the scan/parse/resolve/
// interpret pipeline. Compile errors are reported by the scanner/parser/
// resolver themselves (via rep); runtime errors never terminate the
// session.
func (r *Repl) evalLine(writer io.Writer, line string, rep *report.Reporter, interpreter *interp.Interpreter) {
	tokens := lexer.NewScanner(line, rep).ScanTokens()
	stmts := parser.NewParser(tokens, rep).Parse()
	if rep.HadError() {
		return
	}

	locals := resolver.NewResolver(rep).Resolve(stmts)
	if rep.HadError() {
		return
	}
	interpreter.SetLocals(locals)

	if v, echoed := interpreter.InterpretREPL(stmts); echoed && !v.IsNil() {
		yellowColor.Fprintf(writer, "%s\n", v.String())
	}
}
