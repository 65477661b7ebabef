// Package render prints bridge results for humans and for host programs.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/livingtool/ltbridge/internal/bridge"
)

// Text writes resp in a readable form. Colors are only used when w is a
// terminal that supports them and NO_COLOR is unset.
func Text(w io.Writer, resp *bridge.Response) error {
	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true)
	faint := r.NewStyle().Faint(true)

	var status string
	if resp.Success {
		status = r.NewStyle().Foreground(lipgloss.Color("2")).Render(fmt.Sprintf("✔ exit %d", resp.ExitCode))
	} else {
		status = r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Render(fmt.Sprintf("✘ exit %d", resp.ExitCode))
	}

	var b strings.Builder
	// Values are written unstyled so tabs and newlines in them survive.
	b.WriteString(header.Render("$") + " " + resp.CommandLine + "\n")
	if resp.CombinedOutput != "" {
		b.WriteString(resp.CombinedOutput)
		if !strings.HasSuffix(resp.CombinedOutput, "\n") {
			b.WriteString("\n")
		}
	}
	b.WriteString(status + "\n")
	b.WriteString(faint.Render("project:") + " " + resp.ProjectPath + "\n")
	b.WriteString(faint.Render("workdir:") + " " + resp.WorkingDirectory + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Location writes where invocations would run.
func Location(w io.Writer, loc *bridge.Location) error {
	_, err := fmt.Fprintf(w, "install dir: %s\nproject:     %s\nworkdir:     %s\n",
		loc.InstallDir, loc.ProjectPath, loc.DefaultWorkingDirectory)
	return err
}
