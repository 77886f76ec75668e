package menu

// Measurer reports the rendered size of a string.
type Measurer interface {
	Measure(s string) (w, h float64)
}

// Rect is a row's hit area in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Row is one laid-out item: the whole row (glyphs included) is the hit
// area, Label is the label's box for the underline.
type Row struct {
	Item  Item
	Rect  Rect
	Label Rect
	Left  Rect
	Right Rect
}

// Layout arranges items as a centred column.
type Layout struct {
	Rows []Row
}

// Metrics are the spacing constants of the column.
type Metrics struct {
	PaddingY float64 // vertical padding inside a row
	Gap      float64 // between glyph and label
	RowGap   float64 // between rows
}

func DefaultMetrics() Metrics {
	return Metrics{PaddingY: 8, Gap: 4, RowGap: 4}
}

// NewLayout stacks items downward from top, centring each row on centerX.
// Rows are only as wide as their content.
func NewLayout(items []Item, m Measurer, met Metrics, centerX, top float64) Layout {
	rows := make([]Row, 0, len(items))
	y := top
	for _, it := range items {
		lw, lh := m.Measure(it.Label())
		gw, gh := m.Measure(it.LeftGlyph)
		rw, rh := m.Measure(it.RightGlyph)
		h := max(lh, gh, rh) + 2*met.PaddingY
		w := gw + met.Gap + lw + met.Gap + rw
		x := centerX - w/2

		rows = append(rows, Row{
			Item:  it,
			Rect:  Rect{X: x, Y: y, W: w, H: h},
			Left:  Rect{X: x, Y: y + met.PaddingY, W: gw, H: gh},
			Label: Rect{X: x + gw + met.Gap, Y: y + met.PaddingY, W: lw, H: lh},
			Right: Rect{X: x + gw + met.Gap + lw + met.Gap, Y: y + met.PaddingY, W: rw, H: rh},
		})
		y += h + met.RowGap
	}
	return Layout{Rows: rows}
}

// Height is the total height of the column.
func (l Layout) Height() float64 {
	if len(l.Rows) == 0 {
		return 0
	}
	first, last := l.Rows[0].Rect, l.Rows[len(l.Rows)-1].Rect
	return last.Y + last.H - first.Y
}

// HitTest returns the id of the row under (x, y).
func (l Layout) HitTest(x, y float64) (string, bool) {
	for _, r := range l.Rows {
		if r.Rect.Contains(x, y) {
			return r.Item.ID(), true
		}
	}
	return "", false
}
