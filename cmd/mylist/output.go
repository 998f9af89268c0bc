package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// printSummary writes the result lines. Styling is dropped when w is not
// a terminal.
func printSummary(w io.Writer, count int, csvPath, viewerPath string) {
	r := lipgloss.NewRenderer(w)
	ok := r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Render("[OK]")
	path := r.NewStyle().Foreground(lipgloss.Color("12"))

	fmt.Fprintf(w, "%s Items: %d\n", ok, count)
	fmt.Fprintf(w, "%s CSV: %s\n", ok, path.Render(csvPath))
	fmt.Fprintf(w, "%s Viewer: %s\n", ok, path.Render(viewerPath))
}
