// Package ui provides colored terminal output helpers for the brp-extras CLI.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrorOptions configures a formatted error message.
type ErrorOptions struct {
	Context      string
	Problem      string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

// FormatError creates a standardized error message with suggestions and help
// commands.
//
// Example output:
//
//	✗ TYPE NOT FOUND: game::Plyer
//
//	   Did you mean: game::Player?
//
//	   → See all types: brp-extras types
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	header := color.New(color.FgRed, color.Bold)
	if opts.NoColor {
		header.DisableColor()
	}
	if opts.Context != "" {
		header.Fprintf(&b, "✗ %s: %s\n", strings.ToUpper(opts.Context), opts.Problem)
	} else {
		header.Fprintf(&b, "✗ %s\n", opts.Problem)
	}

	if len(opts.Suggestions) > 0 {
		yellow := color.New(color.FgYellow)
		if opts.NoColor {
			yellow.DisableColor()
		}
		b.WriteString("\n")
		yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	if len(opts.HelpCommands) > 0 {
		cyan := color.New(color.FgCyan)
		if opts.NoColor {
			cyan.DisableColor()
		}
		b.WriteString("\n")
		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// WriteError writes a formatted error message to the writer.
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// FormatSuccess creates a success message.
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to the writer.
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// TypeNotFoundError creates a standardized type-not-found error message.
func TypeNotFoundError(typeName string, suggestions []string, noColor bool) string {
	return FormatError(ErrorOptions{
		Context:     "TYPE NOT FOUND",
		Problem:     fmt.Sprintf("Cannot find type '%s' in the registry.", typeName),
		Suggestions: suggestions,
		HelpCommands: []string{
			"See all types: brp-extras types",
			"Get help: brp-extras discover --help",
		},
		NoColor: noColor,
	})
}
