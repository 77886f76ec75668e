package menu

import (
	"testing"
	"time"
)

type recorder struct {
	log []string
}

func (r *recorder) PointerEnter(it Item) { r.log = append(r.log, "enter:"+it.ID()) }
func (r *recorder) PointerLeave(it Item) { r.log = append(r.log, "leave:"+it.ID()) }

func TestDefaultItems(t *testing.T) {
	items := DefaultItems()
	want := []string{"start", "blog", "projects", "about", "quit"}
	if len(items) != len(want) {
		t.Fatalf("items = %d, want %d", len(items), len(want))
	}
	for i, it := range items {
		if it.ID() != want[i] {
			t.Fatalf("item %d = %q, want %q", i, it.ID(), want[i])
		}
		if it.LeftGlyph == "" || it.LeftGlyph != it.RightGlyph {
			t.Fatalf("item %q glyphs = %q/%q", it.ID(), it.LeftGlyph, it.RightGlyph)
		}
	}
	if items[4].Label() != "QUIT" {
		t.Fatalf("label = %q, want QUIT", items[4].Label())
	}
}

func TestExternal(t *testing.T) {
	tests := []struct {
		href string
		want bool
	}{
		{"/start", false},
		{"about", false},
		{"https://github.com/pranavpatil1", true},
		{"http://example.com/x", true},
		{"mailto:someone@example.com", false},
		{"https://", false},
		{"%zz", false},
	}
	for _, tt := range tests {
		if got := (Item{Href: tt.href}).External(); got != tt.want {
			t.Errorf("External(%q) = %v, want %v", tt.href, got, tt.want)
		}
	}
}

func TestHoverEnterLeave(t *testing.T) {
	var h Hover
	if _, ok := h.Current(); ok {
		t.Fatal("zero Hover has an item")
	}
	h.Enter("blog")
	if id, ok := h.Current(); !ok || id != "blog" {
		t.Fatalf("Current = %q, %v; want blog", id, ok)
	}
	if !h.Active("blog") || h.Active("start") {
		t.Fatal("Active does not track the hovered item")
	}
	h.Leave()
	if _, ok := h.Current(); ok || h.Active("blog") {
		t.Fatal("Leave did not clear the hover")
	}
}

func TestPointerEventsAndGlyphVisibility(t *testing.T) {
	rec := &recorder{}
	m := New(DefaultItems(), rec)

	m.Pointer("blog", true)
	m.Pointer("blog", true)
	for _, it := range m.Items() {
		if got, want := m.GlyphsVisible(it.ID()), it.ID() == "blog"; got != want {
			t.Fatalf("GlyphsVisible(%q) = %v, want %v", it.ID(), got, want)
		}
	}

	m.Pointer("about", true)
	m.Pointer("", false)
	m.Pointer("", false)
	for _, it := range m.Items() {
		if m.GlyphsVisible(it.ID()) {
			t.Fatalf("glyphs of %q visible with no hover", it.ID())
		}
	}

	want := []string{"enter:blog", "leave:blog", "enter:about", "leave:about"}
	if len(rec.log) != len(want) {
		t.Fatalf("events = %v, want %v", rec.log, want)
	}
	for i := range want {
		if rec.log[i] != want[i] {
			t.Fatalf("events = %v, want %v", rec.log, want)
		}
	}
}

func TestPointerUnknownItemClearsHover(t *testing.T) {
	m := New(DefaultItems(), nil)
	m.Pointer("start", true)
	m.Pointer("nope", true)
	if _, ok := m.Hovered(); ok {
		t.Fatal("unknown item left a hover behind")
	}
}

func TestHovered(t *testing.T) {
	m := New(DefaultItems(), nil)
	m.Pointer("projects", true)
	it, ok := m.Hovered()
	if !ok || it.Href != "/projects" {
		t.Fatalf("Hovered = %+v, %v", it, ok)
	}
}

func TestFadeTransitions(t *testing.T) {
	m := New(DefaultItems(), nil)
	m.Pointer("start", true)

	m.Update(TransitionDuration / 2)
	if f := m.Fade("start"); f < 0.49 || f > 0.51 {
		t.Fatalf("fade after half transition = %v, want 0.5", f)
	}
	if m.Fade("blog") != 0 {
		t.Fatalf("unhovered fade = %v, want 0", m.Fade("blog"))
	}

	m.Update(time.Second)
	if m.Fade("start") != 1 {
		t.Fatalf("fade = %v, want clamped to 1", m.Fade("start"))
	}

	m.Pointer("", false)
	m.Update(TransitionDuration / 4)
	if f := m.Fade("start"); f < 0.74 || f > 0.76 {
		t.Fatalf("fade after leave = %v, want 0.75", f)
	}
	m.Update(time.Second)
	if m.Fade("start") != 0 {
		t.Fatalf("fade = %v, want 0", m.Fade("start"))
	}
}

func TestNavigator(t *testing.T) {
	var opened []string
	n := NewNavigator(func(it Item) { opened = append(opened, it.Href) })
	items := DefaultItems()

	n.Navigate(items[1])
	if n.Route() != "/blog" {
		t.Fatalf("route = %q, want /blog", n.Route())
	}
	n.Navigate(items[4])
	if n.Route() != "/blog" {
		t.Fatalf("external navigation changed route to %q", n.Route())
	}
	if len(opened) != 1 || opened[0] != "https://github.com/pranavpatil1" {
		t.Fatalf("opened = %v", opened)
	}
	n.Back()
	if n.Route() != "" {
		t.Fatalf("route after Back = %q", n.Route())
	}

	NewNavigator(nil).Navigate(items[4])
}
