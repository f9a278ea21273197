package styles_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/seekwe/smart-npm/pkg/output/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	return r
}

func TestEmbeddedStyles(t *testing.T) {
	reg := styles.New(asciiRenderer())

	for _, name := range []string{"Success", "Error", "Warning", "Heading", "Path", "Code", "Muted", "Item"} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, reg.Has(name), "style %s should exist", name)
		})
	}
}

func TestRender_Ascii(t *testing.T) {
	reg := styles.New(asciiRenderer())

	assert.Equal(t, "/usr/local/bin/npm", reg.Render("Path", "/usr/local/bin/npm"))
	assert.Equal(t, "  step", reg.Render("Item", "step"))
	assert.Equal(t, "no style", reg.Render("Missing", "no style"))
}

func TestRender_Color(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	reg := styles.New(r)

	out := reg.Render("Error", "boom")
	assert.Contains(t, out, "boom")
	assert.NotEqual(t, "boom", out, "expected ANSI sequences around the text")
}

func TestFromData(t *testing.T) {
	reg, err := styles.FromData(asciiRenderer(), []byte(`
colors:
  brand:
    light: "#000000"
    dark: "#ffffff"
styles:
  Brand:
    bold: true
    foreground: brand
    background: unknown
`))
	require.NoError(t, err)
	assert.True(t, reg.Has("Brand"))
	assert.False(t, reg.Has("Error"))

	_, err = styles.FromData(asciiRenderer(), []byte("styles: [not, a, map"))
	assert.Error(t, err)
}
