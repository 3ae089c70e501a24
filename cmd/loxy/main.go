/*
File    : loxy/cmd/loxy/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Loxy interpreter. It supports:
1. REPL Mode (default): interactive Read-Eval-Print Loop
2. File Mode: execute a single Lox source file
3. Server Mode: a TCP REPL server, one independent interpreter per
   connection

The interpreter runs a scan → parse → resolve → interpret pipeline; the
resolver only runs if scanning and parsing reported no errors, and the
interpreter only runs if resolution reported none.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/loxy/interp"
	"github.com/akashmaji946/loxy/lexer"
	"github.com/akashmaji946/loxy/parser"
	"github.com/akashmaji946/loxy/report"
	"github.com/akashmaji946/loxy/repl"
	"github.com/akashmaji946/loxy/resolver"
	"github.com/fatih/color"
)

// VERSION is the current version of the Loxy interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 ██       ▄▄▄       ▄▄▄▄▄   ▀██▀   ▀██▀
 ██      ▒████▄    ▓█████▄    ██   ▓▒
 ██      ▒██  ▀█▄  ▒██▒ ▄██     ██▓▒
 ██▓     ░██▄▄▄▄██ ▒██░█▀        ▒██▒
 ▓████▒   ▓█   ▓██▒░▓█  ▀█▓       ▒██▒
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) >= 2 && os.Args[1] == "server" {
		if len(os.Args) != 3 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: lox server <port>\n")
			os.Exit(64)
		}
		startServer(os.Args[2])
		return
	}

	if len(os.Args) > 2 {
		fmt.Println("Usage: lox [script]")
		os.Exit(64)
	}

	if len(os.Args) == 2 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Loxy - a tree-walking interpreter for Lox")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  lox                    Start interactive REPL mode")
	fmt.Println("  lox <path-to-script>   Execute a Lox script")
	fmt.Println("  lox server <port>      Start a REPL server on the given port")
	fmt.Println("  lox --help             Display this help message")
	fmt.Println("  lox --version          Display version information")
}

func showVersion() {
	cyanColor.Println("Loxy - a tree-walking interpreter for Lox")
	fmt.Printf("Version: %s\n", VERSION)
	fmt.Printf("License: %s\n", LICENSE)
	fmt.Printf("Author : %s\n", AUTHOR)
}

// runFile reads fileName, runs it through the full pipeline, and exits
// 0 on success, 65 on a scan/parse/resolve error, or 70 on a runtime error.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", fileName, err)
		os.Exit(64)
	}

	rep := report.NewReporter(os.Stdout)

	tokens := lexer.NewScanner(string(source), rep).ScanTokens()
	stmts := parser.NewParser(tokens, rep).Parse()
	if rep.HadError() {
		os.Exit(65)
	}

	locals := resolver.NewResolver(rep).Resolve(stmts)
	if rep.HadError() {
		os.Exit(65)
	}

	interpreter := interp.New(os.Stdout, rep)
	interpreter.SetLocals(locals)
	interpreter.Interpret(stmts)

	if rep.HadRuntimeError() {
		os.Exit(70)
	}
}

// startServer listens on port and hands each accepted connection its own
// REPL session with an independent Interpreter and Environment chain —
// interpreter state is never shared across connections.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Loxy REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}
