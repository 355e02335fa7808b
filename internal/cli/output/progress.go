package output

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRedrawInterval is the minimum time between progress redraws.
const DefaultRedrawInterval = 100 * time.Millisecond

// ProgressBar displays benchmark iteration progress.
type ProgressBar struct {
	w       io.Writer
	title   string
	total   int
	current int
	width   int
	redraw  *rate.Sometimes
	mu      sync.Mutex
}

// NewProgressBar creates a new progress bar. Redraws are throttled to
// DefaultRedrawInterval except for the first and the final update.
func NewProgressBar(w io.Writer, title string) *ProgressBar {
	return &ProgressBar{
		w:      w,
		title:  title,
		width:  40,
		redraw: &rate.Sometimes{First: 1, Interval: DefaultRedrawInterval},
	}
}

// Update records progress. It has the signature of service.ProgressFunc.
func (p *ProgressBar) Update(current, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = current
	p.total = total
	if total > 0 && current >= total {
		p.render()
		return
	}
	p.redraw.Do(p.render)
}

// Finish completes the progress bar and moves to a new line.
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.total
	p.render()
	fmt.Fprintln(p.w)
}

func (p *ProgressBar) render() {
	if p.total <= 0 {
		fmt.Fprintf(p.w, "\r%s %d", p.title, p.current)
		return
	}

	percent := float64(p.current) / float64(p.total)
	if percent > 1 {
		percent = 1
	}

	filled := int(float64(p.width) * percent)
	empty := p.width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)

	fmt.Fprintf(p.w, "\r%s [%s] %3.0f%% (%d/%d)",
		p.title,
		bar,
		percent*100,
		p.current,
		p.total,
	)
}
