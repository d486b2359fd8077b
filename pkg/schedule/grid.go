package schedule

// Window is the part of the day shown on the calendar grid, in minutes since
// midnight.
type Window struct {
	Start int
	End   int
}

// DefaultWindow spans 08:00 to 20:00.
var DefaultWindow = Window{Start: 8 * 60, End: 20 * 60}

// RowMinutes is the height of one calendar row.
const RowMinutes = 30

// GridPosition places a slot in the window. Both values are percentages of
// the window's span.
type GridPosition struct {
	Top    float64
	Height float64
}

// Bottom is the percentage at which the slot ends.
func (p GridPosition) Bottom() float64 {
	return p.Top + p.Height
}

// Minutes returns the window span.
func (w Window) Minutes() int {
	return w.End - w.Start
}

// RawPosition applies the proportional layout with no clamping: a slot that
// starts before the window gets a negative top, one that ends after it runs
// past 100.
func (w Window) RawPosition(startTime, endTime string) GridPosition {
	span := float64(w.Minutes())
	if span <= 0 {
		return GridPosition{}
	}

	start := TimeToMinutes(startTime)
	end := TimeToMinutes(endTime)
	return GridPosition{
		Top:    float64(start-w.Start) / span * 100,
		Height: float64(end-start) / span * 100,
	}
}

// Position is RawPosition clamped to the window: top and bottom stay within
// [0, 100] and the height is never negative. A slot entirely outside the
// window gets zero height.
func (w Window) Position(startTime, endTime string) GridPosition {
	raw := w.RawPosition(startTime, endTime)

	top := clampPercent(raw.Top)
	bottom := clampPercent(raw.Bottom())
	if bottom < top {
		bottom = top
	}
	return GridPosition{Top: top, Height: bottom - top}
}

// Visible reports whether any part of the range falls inside the window.
func (w Window) Visible(startTime, endTime string) bool {
	return w.Position(startTime, endTime).Height > 0
}

// Rows returns the label of every RowMinutes row in the window,
// e.g. "08:00", "08:30", ... "19:30" for the default window.
func (w Window) Rows() []string {
	var rows []string
	for m := w.Start; m < w.End; m += RowMinutes {
		rows = append(rows, MinutesToTime(m))
	}
	return rows
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
