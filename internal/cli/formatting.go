package cli

import (
	"os"
	"strings"
	"sync"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

var templateFuncsOnce sync.Once

// initTemplateFormatting adds custom formatting functions to Cobra templates.
// Cobra keeps them globally, so they are registered once per process.
func initTemplateFormatting() {
	templateFuncsOnce.Do(func() {
		cobra.AddTemplateFuncs(template.FuncMap{
			"bold":      formatBold,
			"boldUpper": formatBoldUpper,
		})
	})
}
