// Package banner renders a terminal-typing banner as an animated SVG.
//
// The banner draws a terminal window with traffic-light buttons and
// types its lines character by character using staggered SMIL opacity
// animations, finishing with a blinking block cursor. Like the board
// renderer, the output is a plain string with no scripting.
package banner

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/pacgrid/pacgrid/pkg/path"
	"github.com/pacgrid/pacgrid/pkg/render/theme"
)

const (
	fontFamily = `'SF Mono', 'Cascadia Code', Menlo, monospace`

	fontSize   = 13.0
	charWidth  = fontSize * 0.602 // monospace advance
	lineHeight = 22.0

	chromeH  = 28.0 // title bar height
	padX     = 16.0
	padY     = 14.0
	minWidth = 320.0

	// blinkDur is the cursor blink period once typing completes.
	blinkDur = "1s"
)

// DefaultCharStep is the typing delay between characters.
const DefaultCharStep = 80 * time.Millisecond

// Option configures the banner renderer.
type Option func(*renderer)

// WithTheme sets the color theme. Defaults to github-dark.
func WithTheme(t theme.Theme) Option { return func(r *renderer) { r.theme = t } }

// WithCharStep overrides the per-character typing delay.
func WithCharStep(d time.Duration) Option { return func(r *renderer) { r.charStep = d } }

// WithPrompt overrides the shell prompt prefix. Default "$ ".
func WithPrompt(p string) Option { return func(r *renderer) { r.prompt = p } }

type renderer struct {
	theme    theme.Theme
	charStep time.Duration
	prompt   string
}

// Render emits the animated banner for the given terminal lines.
// Empty input produces a single blinking prompt.
func Render(lines []string, opts ...Option) []byte {
	r := renderer{theme: theme.GitHubDark(), charStep: DefaultCharStep, prompt: "$ "}
	for _, opt := range opts {
		opt(&r)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}

	width := r.frameWidth(lines)
	height := chromeH + padY*2 + float64(len(lines))*lineHeight

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" font-family="%s" font-size="%s">`+"\n",
		num(width), num(height), num(width), num(height), fontFamily, num(fontSize))
	buf.WriteString("  <title>Terminal</title>\n")
	r.writeChrome(&buf, width, height)

	elapsed := time.Duration(0)
	for i, line := range lines {
		elapsed = r.writeLine(&buf, i, line, elapsed)
	}
	r.writeCursor(&buf, lines, elapsed)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// frameWidth sizes the window to the longest line.
func (r *renderer) frameWidth(lines []string) float64 {
	longest := 0
	for _, l := range lines {
		if n := len([]rune(r.prompt + l)); n > longest {
			longest = n
		}
	}
	w := padX*2 + float64(longest+1)*charWidth
	if w < minWidth {
		w = minWidth
	}
	return w
}

// writeChrome draws the window body and title bar.
func (r *renderer) writeChrome(buf *bytes.Buffer, width, height float64) {
	t := r.theme
	fmt.Fprintf(buf, `  <rect width="%s" height="%s" rx="8" fill="%s" stroke="%s"/>`+"\n",
		num(width), num(height), t.Background, t.Palette[0])
	for i, c := range []string{"#ff5f57", "#febc2e", "#28c840"} {
		fmt.Fprintf(buf, `  <circle cx="%s" cy="%s" r="6" fill="%s"/>`+"\n",
			num(padX+float64(i)*20), num(chromeH/2), c)
	}
}

// writeLine types one line: the prompt appears when the line starts,
// then each character fades in at its own offset. Returns the elapsed
// offset after the line finishes.
func (r *renderer) writeLine(buf *bytes.Buffer, idx int, line string, elapsed time.Duration) time.Duration {
	t := r.theme
	y := chromeH + padY + float64(idx)*lineHeight + fontSize

	fmt.Fprintf(buf, `  <text x="%s" y="%s" fill="%s" xml:space="preserve">`+"\n", num(padX), num(y), t.Text)
	fmt.Fprintf(buf, `    <tspan fill="%s" opacity="0">%s<set attributeName="opacity" to="1" begin="%s"/></tspan>`+"\n",
		t.Palette[3], escapeXML(r.prompt), path.Seconds(elapsed))

	for _, c := range line {
		elapsed += r.charStep
		fmt.Fprintf(buf, `    <tspan opacity="0">%s<set attributeName="opacity" to="1" begin="%s"/></tspan>`+"\n",
			escapeXML(string(c)), path.Seconds(elapsed))
	}
	buf.WriteString("  </text>\n")

	// A beat between lines, as if the command ran.
	return elapsed + 4*r.charStep
}

// writeCursor parks a blinking block cursor after the last line once
// typing has finished.
func (r *renderer) writeCursor(buf *bytes.Buffer, lines []string, done time.Duration) {
	last := lines[len(lines)-1]
	x := padX + float64(len([]rune(r.prompt+last)))*charWidth
	y := chromeH + padY + float64(len(lines)-1)*lineHeight + 2

	begin := path.Seconds(done)
	fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s" opacity="0">`+"\n",
		num(x), num(y), num(charWidth), num(fontSize+2), r.theme.Text)
	fmt.Fprintf(buf, `    <animate attributeName="opacity" values="1;1;0;0" dur="%s" begin="%s" repeatCount="indefinite"/>`+"\n",
		blinkDur, begin)
	buf.WriteString("  </rect>\n")
}

// num formats a coordinate with up to two decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
