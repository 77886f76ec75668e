package menu

import (
	"time"

	"github.com/pranavpatil1/homepage/internal/mathutil"
)

// Events receives hover transitions as the pointer moves between items.
type Events interface {
	PointerEnter(item Item)
	PointerLeave(item Item)
}

// Menu tracks hover state and per-item transition progress.
type Menu struct {
	items  []Item
	hover  Hover
	fade   map[string]float64
	events Events
}

// New returns a menu over items. events may be nil.
func New(items []Item, events Events) *Menu {
	m := &Menu{
		items:  items,
		fade:   make(map[string]float64, len(items)),
		events: events,
	}
	for _, it := range items {
		m.fade[it.ID()] = 0
	}
	return m
}

func (m *Menu) Items() []Item {
	return m.items
}

func (m *Menu) Hover() Hover {
	return m.hover
}

// Hovered returns the hovered item, if any.
func (m *Menu) Hovered() (Item, bool) {
	id, ok := m.hover.Current()
	if !ok {
		return Item{}, false
	}
	return m.item(id)
}

// Pointer feeds the item currently under the pointer (ok=false for none)
// and turns changes into leave/enter events.
func (m *Menu) Pointer(id string, ok bool) {
	cur, hovered := m.hover.Current()
	if hovered == ok && cur == id {
		return
	}
	if hovered {
		m.hover.Leave()
		if it, found := m.item(cur); found && m.events != nil {
			m.events.PointerLeave(it)
		}
	}
	if !ok {
		return
	}
	it, found := m.item(id)
	if !found {
		return
	}
	m.hover.Enter(id)
	if m.events != nil {
		m.events.PointerEnter(it)
	}
}

// GlyphsVisible reports whether the decorative glyphs of id are shown.
func (m *Menu) GlyphsVisible(id string) bool {
	return m.hover.Active(id)
}

// Update moves every item's transition toward its hover target.
func (m *Menu) Update(dt time.Duration) {
	step := float64(dt) / float64(TransitionDuration)
	for _, it := range m.items {
		id := it.ID()
		f := m.fade[id]
		if m.hover.Active(id) {
			f += step
		} else {
			f -= step
		}
		m.fade[id] = mathutil.Clamp01(f)
	}
}

// Fade is the transition progress of id in [0, 1]: glyph opacity,
// underline fraction and highlight colour mix.
func (m *Menu) Fade(id string) float64 {
	return m.fade[id]
}

func (m *Menu) item(id string) (Item, bool) {
	for _, it := range m.items {
		if it.ID() == id {
			return it, true
		}
	}
	return Item{}, false
}
