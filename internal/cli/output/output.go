package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	white  = "\033[37m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolInfo    = "*"
	SymbolArrow   = "->"
)

// Stdout and Stderr receive the Print* messages. Warnings and errors go to Stderr so that
// rendered manifests on stdout stay parseable.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func paint(text string, codes ...string) string {
	if !ColorsEnabled() {
		return text
	}
	prefix := ""
	for _, code := range codes {
		prefix += code
	}
	return prefix + text + reset
}

func Dim(text string) string     { return paint(text, dim) }
func Success(text string) string { return paint(text, green) }
func Error(text string) string   { return paint(text, red) }
func Warning(text string) string { return paint(text, yellow) }
func Info(text string) string    { return paint(text, cyan) }
func Header(text string) string  { return paint(text, bold, white) }

func PrintHeader(text string) {
	fmt.Fprintln(Stdout, Header(text))
}

func PrintSuccess(message string) {
	fmt.Fprintf(Stdout, "%s %s\n", Success(SymbolSuccess), Success(message))
}

func PrintError(message string) {
	fmt.Fprintf(Stderr, "%s %s\n", Error(SymbolError), Error(message))
}

func PrintWarning(message string) {
	fmt.Fprintf(Stderr, "%s %s\n", Warning(SymbolWarning), Warning(message))
}

func PrintInfo(message string) {
	fmt.Fprintf(Stdout, "%s %s\n", Info(SymbolInfo), Info(message))
}

// PrintStep prints an indented step of the current operation
func PrintStep(message string) {
	fmt.Fprintf(Stdout, "  %s %s\n", SymbolArrow, message)
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
