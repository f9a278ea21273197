package output

import (
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/seekwe/smart-npm/pkg/output/styles"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Guide is the data of the remediation guide
type Guide struct {
	Manager        string
	Wrapper        string
	EntryPoint     string
	WrapperPath    string
	ShellRC        string
	LegacyVersion  string
	LegacyRegistry string
	Err            error
}

// Reason is the failure text shown in the first line
func (g Guide) Reason() string {
	if g.Err == nil {
		return "unknown error"
	}
	return g.Err.Error()
}

// Notifier writes operator messages
type Notifier struct {
	w         io.Writer
	styles    *styles.Registry
	templates *template.Template
}

// NewNotifier creates a Notifier for w. Color is only used when w is a
// terminal.
func NewNotifier(w io.Writer) *Notifier {
	return newNotifier(w, !isTerminal(w))
}

// NewPlainNotifier creates a Notifier that never emits color
func NewPlainNotifier(w io.Writer) *Notifier {
	return newNotifier(w, true)
}

func newNotifier(w io.Writer, noColor bool) *Notifier {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	n := &Notifier{w: w, styles: styles.New(r)}
	n.templates = template.Must(template.New("").
		Funcs(template.FuncMap{"style": n.styles.Render}).
		ParseFS(templatesFS, "templates/*.tmpl"))
	return n
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RenameSucceeded reports a completed rename
func (n *Notifier) RenameSucceeded(from, to string) {
	n.rename("Success", from, to)
}

// RenameFailed reports a rename that could not be done
func (n *Notifier) RenameFailed(from, to string) {
	n.rename("Error", from, to)
}

func (n *Notifier) rename(kind, from, to string) {
	fmt.Fprintf(n.w, "\n%s rename: %s => %s\n\n",
		n.styles.Render(kind, kind),
		n.styles.Render("Path", from),
		n.styles.Render("Path", to))
}

// Remediation prints the manual steps that get the wrapper in place
func (n *Notifier) Remediation(g Guide) {
	fmt.Fprintln(n.w)
	if err := n.templates.ExecuteTemplate(n.w, "remediation.tmpl", g); err != nil {
		// a broken template must not hide the failure itself
		fmt.Fprintf(n.w, "Failed to create the new %s entry point: %s\n", g.Manager, g.Reason())
	}
	fmt.Fprintln(n.w)
}

// Line prints one line of text in the named style
func (n *Notifier) Line(style, format string, args ...interface{}) {
	fmt.Fprintln(n.w, n.styles.Render(style, fmt.Sprintf(format, args...)))
}

// Style exposes the style registry for callers composing their own lines
func (n *Notifier) Style(name, text string) string {
	return n.styles.Render(name, text)
}
