package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// gray stands in for colors that have no hex form, such as ANSI indexes.
var gray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Blend mixes two colors in HCL space; t=0 yields from, t=1 yields to.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	return lipgloss.Color(toColorful(from).BlendHcl(toColorful(to), t).Clamped().Hex())
}

// Gradient returns size colors spread evenly from from to to. The end
// colors are returned unchanged.
func Gradient(size int, from, to lipgloss.Color) []lipgloss.Color {
	if size <= 0 {
		return nil
	}
	if size == 1 {
		return []lipgloss.Color{from}
	}
	out := make([]lipgloss.Color, size)
	out[0], out[size-1] = from, to
	for i := 1; i < size-1; i++ {
		out[i] = Blend(from, to, float64(i)/float64(size-1))
	}
	return out
}

// ApplyGradient renders text with a horizontal color gradient, one color per
// grapheme cluster.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, lipgloss.NewStyle(), from, to)
}

// ApplyBoldGradient is ApplyGradient in bold.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, lipgloss.NewStyle().Bold(true), from, to)
}

func applyGradient(text string, base lipgloss.Style, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var b strings.Builder
	for i, c := range Gradient(len(clusters), from, to) {
		b.WriteString(base.Foreground(c).Render(clusters[i]))
	}
	return b.String()
}

func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return gray
}
