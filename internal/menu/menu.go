// Package menu holds the title-screen navigation: a fixed list of
// destinations, the single hovered-item state and the hover transitions.
package menu

import (
	"net/url"
	"strings"
	"time"
)

// TransitionDuration is how long glyph, underline and colour transitions
// take to complete.
const TransitionDuration = 300 * time.Millisecond

// Item is one navigation destination.
type Item struct {
	Text       string
	Href       string
	LeftGlyph  string
	RightGlyph string
}

// ID identifies the item within a menu.
func (i Item) ID() string { return i.Text }

// Label is the text as displayed.
func (i Item) Label() string { return strings.ToUpper(i.Text) }

// External reports whether Href leaves the site (absolute http/https URL).
func (i Item) External() bool {
	u, err := url.Parse(i.Href)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// DefaultItems is the title screen menu.
func DefaultItems() []Item {
	return []Item{
		{Text: "start", Href: "/start", LeftGlyph: "✧", RightGlyph: "✧"},
		{Text: "blog", Href: "/blog", LeftGlyph: "❧", RightGlyph: "❧"},
		{Text: "projects", Href: "/projects", LeftGlyph: "✦", RightGlyph: "✦"},
		{Text: "about", Href: "/about", LeftGlyph: "❈", RightGlyph: "❈"},
		{Text: "quit", Href: "https://github.com/pranavpatil1", LeftGlyph: "✕", RightGlyph: "✕"},
	}
}

// Hover is the optional identifier of the item under the pointer.
type Hover struct {
	id  string
	set bool
}

// Enter records a pointer-enter on id.
func (h *Hover) Enter(id string) {
	h.id, h.set = id, true
}

// Leave clears the hover on pointer-leave.
func (h *Hover) Leave() {
	h.id, h.set = "", false
}

func (h Hover) Current() (string, bool) {
	return h.id, h.set
}

// Active reports whether id is the hovered item.
func (h Hover) Active(id string) bool {
	return h.set && h.id == id
}
