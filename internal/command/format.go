package command

import "strings"

// FormatCommandLine renders cmd as a single line for logs and display.
// The result is never executed or parsed back; Runner always receives the
// argument vector itself.
func FormatCommandLine(cmd Command) string {
	parts := make([]string, 0, len(cmd.Args)+1)
	parts = append(parts, QuoteArg(cmd.Name))
	for _, arg := range cmd.Args {
		parts = append(parts, QuoteArg(arg))
	}
	return strings.Join(parts, " ")
}

// QuoteArg wraps value in double quotes when it contains a space or a quote,
// escaping embedded double quotes with a backslash.
func QuoteArg(value string) string {
	if !strings.ContainsAny(value, ` "'`) {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
}
