// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Progress rewrites a single terminal line after every file. Colours are
// only emitted when w is a terminal. Write errors are dropped.
type Progress struct {
	w      io.Writer
	target int
	dirty  bool

	count   lipgloss.Style
	rate    lipgloss.Style
	percent lipgloss.Style
}

// NewProgress writes to w and names targetRate as the destination rate.
func NewProgress(w io.Writer, targetRate int) *Progress {
	r := lipgloss.NewRenderer(w)

	return &Progress{
		w:       w,
		target:  targetRate,
		count:   r.NewStyle().Foreground(lipgloss.Color("#4ECDC4")),
		rate:    r.NewStyle().Foreground(lipgloss.Color("#6C757D")),
		percent: r.NewStyle().Foreground(lipgloss.Color("#95E1A3")),
	}
}

// Report shows file i of n (1-based). srcRate <= 0 means the rate is
// unknown, as for files that failed to decode.
func (p *Progress) Report(i, n, srcRate int) {
	if p == nil || p.w == nil || n <= 0 {
		return
	}

	src := "?"
	if srcRate > 0 {
		src = fmt.Sprint(srcRate)
	}
	pct := float64(i) / float64(n) * 100

	_, _ = fmt.Fprintf(p.w, "\rResampling file %s from %s to %s | %s completed",
		p.count.Render(fmt.Sprintf("%d/%d", i, n)),
		p.rate.Render(src+" Hz"),
		p.rate.Render(fmt.Sprintf("%d Hz", p.target)),
		p.percent.Render(fmt.Sprintf("%.3f%%", pct)),
	)
	p.dirty = true
}

// Done ends the progress line, if one was written.
func (p *Progress) Done() {
	if p == nil || p.w == nil || !p.dirty {
		return
	}
	_, _ = fmt.Fprintln(p.w)
	p.dirty = false
}
