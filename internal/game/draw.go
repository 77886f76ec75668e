package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pranavpatil1/homepage/internal/config"
	"github.com/pranavpatil1/homepage/internal/glow"
)

var (
	backgroundColor = mustHex(config.BackgroundHex)
	textColor       = mustHex("#ffffff")
	highlightColor  = mustHex(config.HighlightHex)
)

// backdrop caches the rendered glow for the current options and size.
type backdrop struct {
	opts   glow.Options
	img    *ebiten.Image
	w, h   int
	failed bool
}

func (b *backdrop) invalidate() {
	if b.img != nil {
		b.img.Deallocate()
	}
	b.img = nil
	b.failed = false
}

func (b *backdrop) draw(screen *ebiten.Image, w, h int, log *slog.Logger) {
	if w <= 0 || h <= 0 || b.failed {
		return
	}
	if b.img == nil || b.w != w || b.h != h {
		rgba, err := glow.Render(b.opts, w, h, config.GlowScale)
		if err != nil {
			// no backdrop rather than no page
			log.Error("render backdrop", "err", err)
			b.failed = true
			return
		}
		if b.img != nil {
			b.img.Deallocate()
		}
		b.img = ebiten.NewImageFromImage(rgba)
		b.w, b.h = w, h
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	sb := b.img.Bounds()
	op.GeoM.Scale(float64(w)/float64(sb.Dx()), float64(h)/float64(sb.Dy()))
	screen.DrawImage(b.img, op)
}

func titleHeight(f text.Face) float64 {
	_, h := text.Measure(strings.ToUpper(config.TitleText), f, 0)
	return h * config.TitleStretch
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	title := strings.ToUpper(config.TitleText)
	w, _ := text.Measure(title, g.fonts.title, 0)

	op := &text.DrawOptions{}
	op.GeoM.Scale(1, config.TitleStretch)
	op.GeoM.Translate(float64(g.width)/2-w/2, g.titleY)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, title, g.fonts.title, op)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	tracking := config.MenuTracking * config.MenuSize
	for _, row := range g.layout.Rows {
		id := row.Item.ID()
		f := g.menu.Fade(id)
		c := blend(textColor, highlightColor, f, 1)

		g.drawTracked(screen, row.Item.LeftGlyph, row.Left.X, row.Left.Y, tracking, blend(textColor, highlightColor, f, f))
		g.drawTracked(screen, row.Item.Label(), row.Label.X, row.Label.Y, tracking, c)
		g.drawTracked(screen, row.Item.RightGlyph, row.Right.X, row.Right.Y, tracking, blend(textColor, highlightColor, f, f))

		if f > 0 {
			under := row.Label
			vector.DrawFilledRect(screen,
				float32(under.X), float32(under.Y+under.H+4),
				float32(under.W*f), 1,
				highlightColor, false)
		}
	}
}

// drawTracked draws s rune by rune with extra spacing after each rune.
func (g *Game) drawTracked(screen *ebiten.Image, s string, x, y, tracking float64, c color.Color) {
	if _, _, _, a := c.RGBA(); a == 0 {
		return
	}
	for _, r := range s {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, string(r), g.fonts.menu, op)
		x += text.Advance(string(r), g.fonts.menu) + tracking
	}
}

// drawPage renders an internal destination.
func (g *Game) drawPage(screen *ebiten.Image, route string) {
	heading := strings.ToUpper(strings.TrimPrefix(route, "/"))
	hw, hh := text.Measure(heading, g.fonts.title, 0)

	op := &text.DrawOptions{}
	op.GeoM.Scale(0.5, 0.5*config.TitleStretch)
	op.GeoM.Translate(float64(g.width)/2-hw/4, float64(g.height)/2-hh)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, heading, g.fonts.title, op)

	hint := "PRESS ESC TO RETURN"
	tracking := config.MenuTracking * config.MenuSize
	w, _ := trackedMeasurer{face: g.fonts.menu, tracking: tracking}.Measure(hint)
	g.drawTracked(screen, hint, float64(g.width)/2-w/2, float64(g.height)/2+hh/2, tracking, blend(textColor, highlightColor, 1, 0.8))
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	frames := uint64(0)
	count := 0
	if g.particles != nil {
		frames = g.particles.Frames()
		count = len(g.particles.Particles())
	}
	hovered := "-"
	if id, ok := g.menu.Hover().Current(); ok {
		hovered = id
	}
	msg := fmt.Sprintf("fps %.1f  tps %.1f  up %s\nparticles %d  frames %d  pending %d\nsize %dx%d  hover %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), formatDuration(g.clock.Now()-g.startedAt),
		count, frames, g.sched.Pending(),
		g.width, g.height, hovered)
	ebitenutil.DebugPrintAt(screen, msg, 12, 12)
}
