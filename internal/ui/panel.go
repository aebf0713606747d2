package ui

import (
	"fmt"
	"image"

	"mad-life/internal/core"
)

// Status is the loop state shown by the overlay.
type Status interface {
	Running() bool
	Rate() float64
	Generation() int
	Population() int
}

// Panel is the loop surface the HUD reads and adjusts.
type Panel interface {
	core.ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterSetter
}

// FPSLabel formats the frame-rate counter.
func FPSLabel(fps float64) string {
	return fmt.Sprintf("%.0f FPS", fps)
}

// StatusLine summarizes the loop in one line.
func StatusLine(s Status) string {
	state := "paused"
	if s.Running() {
		state = "running"
	}
	return fmt.Sprintf("%s  %.0f gen/s  gen %d  pop %d", state, s.Rate(), s.Generation(), s.Population())
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 20
	controlsTop    = panelPadding + headerBaseline + 14
)

// controlRow holds the hit boxes of one adjustable control.
type controlRow struct {
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// layoutControls stacks n control rows in a panel of the given width.
func layoutControls(width, n int) []controlRow {
	rows := make([]controlRow, n)
	for i := range rows {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		rows[i] = controlRow{top: top, minusRect: minusRect, plusRect: plusRect}
	}
	return rows
}

// adjust returns the value one step from current in direction, and whether
// that differs from current once clamped.
func adjust(ctrl core.ParameterControl, current, direction int) (int, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := ctrl.Clamp(current + direction*step)
	return target, target != current
}

// hitControl finds the control and direction under (x, y), in panel space.
func hitControl(rows []controlRow, x, y int) (index, direction int, ok bool) {
	p := image.Pt(x, y)
	for i, row := range rows {
		if p.In(row.minusRect) {
			return i, -1, true
		}
		if p.In(row.plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}
