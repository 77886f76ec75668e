// Package game hosts the title screen on ebiten: it owns the window-sized
// surfaces, drives the frame scheduler and routes pointer input to the menu.
package game

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pranavpatil1/homepage/internal/anim"
	"github.com/pranavpatil1/homepage/internal/browser"
	"github.com/pranavpatil1/homepage/internal/config"
	"github.com/pranavpatil1/homepage/internal/logging"
	"github.com/pranavpatil1/homepage/internal/menu"
	"github.com/pranavpatil1/homepage/internal/particle"
	"github.com/pranavpatil1/homepage/internal/sound"
)

// Options configure a Game.
type Options struct {
	Config *config.Config
	// Reload returns a fresh configuration; bound to the R key.
	Reload func() (*config.Config, error)
	Log    *slog.Logger
	// Level, when set, follows log_level on reload.
	Level *slog.LevelVar
	Clock anim.Clock
	Rand  *rand.Rand
}

type Game struct {
	cfg    *config.Config
	reload func() (*config.Config, error)
	log    *slog.Logger
	level  *slog.LevelVar
	clock  anim.Clock
	rand   *rand.Rand

	fonts *fonts
	sched *anim.Scheduler

	// viewport-sized state
	width, height int
	canvas        canvas
	particles     *particle.Session
	backdrop      backdrop
	layout        menu.Layout
	titleY        float64

	menu      *menu.Menu
	nav       *menu.Navigator
	sound     *sound.Player
	launcher  *browser.Launcher
	debug     bool
	startedAt time.Duration
}

func New(opts Options) (*Game, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = anim.NewSystemClock()
	}

	f, err := loadFonts(opts.Config.FontPath)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      opts.Config,
		reload:   opts.Reload,
		log:      opts.Log,
		level:    opts.Level,
		clock:    opts.Clock,
		rand:     opts.Rand,
		fonts:    f,
		sched:    anim.NewScheduler(),
		sound:    sound.NewPlayer(opts.Config.Sound, opts.Log),
		launcher: browser.NewLauncher(opts.Config.ConfirmExternal, opts.Log),
		debug:    opts.Config.Debug,
	}
	g.backdrop.opts = g.cfg.GlowOptions()
	g.menu = menu.New(menu.DefaultItems(), hoverEvents{g})
	g.nav = menu.NewNavigator(func(it menu.Item) {
		g.log.Info("external navigation", "item", it.ID(), "url", it.Href)
		g.launcher.Launch(it.Href)
	})
	g.startedAt = g.clock.Now()
	if g.cfg.Sound {
		g.sound.Open()
	}
	return g, nil
}

// hoverEvents plays the chime on pointer-enter.
type hoverEvents struct{ g *Game }

func (h hoverEvents) PointerEnter(it menu.Item) {
	h.g.log.Debug("hover", "item", it.ID())
	h.g.sound.Play()
}

func (h hoverEvents) PointerLeave(menu.Item) {}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reloadConfig()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.nav.Route() != "" {
			g.nav.Back()
		} else {
			return ebiten.Termination
		}
	}

	if g.nav.Route() == "" {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		x, y := ebiten.CursorPosition()
		g.menu.Pointer(g.layout.HitTest(float64(x), float64(y)))

		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if it, ok := g.menu.Hovered(); ok {
				g.nav.Navigate(it)
			}
		}
	} else {
		g.menu.Pointer("", false)
	}

	g.menu.Update(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sched.Tick(g.clock.Now())

	screen.Fill(backgroundColor)
	g.backdrop.draw(screen, g.width, g.height, g.log)
	g.canvas.draw(screen)

	if route := g.nav.Route(); route != "" {
		g.drawPage(screen, route)
	} else {
		g.drawTitle(screen)
		g.drawMenu(screen)
	}
	if g.debug {
		g.drawDebug(screen)
	}
}

// Layout keeps the logical screen equal to the window so every layer
// covers the full viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(w, h int) {
	g.log.Debug("viewport resized", "width", w, "height", h)
	g.width, g.height = w, h
	g.canvas.resize(w, h)
	g.backdrop.invalidate()
	g.relayout()

	// the first size makes the surface ready; later sizes keep the particles
	if g.particles == nil {
		g.startParticles()
	}
}

func (g *Game) relayout() {
	m := trackedMeasurer{face: g.fonts.menu, tracking: config.MenuTracking * config.MenuSize}
	metrics := menu.DefaultMetrics()

	titleH := titleHeight(g.fonts.title)
	probe := menu.NewLayout(g.menu.Items(), m, metrics, 0, 0)
	total := titleH + config.HeaderGap + probe.Height()
	top := (float64(g.height) - total) / 2

	g.titleY = top
	g.layout = menu.NewLayout(g.menu.Items(), m, metrics, float64(g.width)/2, top+titleH+config.HeaderGap)
}

// startParticles replaces any running particle session with a fresh one.
func (g *Game) startParticles() {
	if g.particles != nil {
		g.particles.Cancel()
	}
	g.canvas.Clear()
	g.particles = particle.NewSession(g.cfg.ParticleOptions(), &g.canvas, g.rand)
	g.particles.Start(g.sched)
	g.log.Debug("particle session started", "count", len(g.particles.Particles()))
}

func (g *Game) reloadConfig() {
	if g.reload == nil {
		return
	}
	cfg, err := g.reload()
	if err != nil {
		g.log.Error("reload config", "err", err)
		return
	}
	if err := cfg.Sanitize(); err != nil {
		g.log.Warn("config has invalid values, using defaults for them", "err", err)
	}
	g.apply(cfg)
	g.log.Info("config reloaded")
}

// apply switches to cfg, restarting only what changed.
func (g *Game) apply(cfg *config.Config) {
	old := g.cfg
	g.cfg = cfg

	if g.particles != nil && !g.particles.Options().Equal(cfg.ParticleOptions()) {
		g.startParticles()
	}
	if cfg.GlowOptions() != old.GlowOptions() {
		g.backdrop.opts = cfg.GlowOptions()
		g.backdrop.invalidate()
	}
	g.sound.SetEnabled(cfg.Sound)
	if cfg.Sound {
		g.sound.Open()
	}
	if cfg.ConfirmExternal != old.ConfirmExternal {
		g.launcher = browser.NewLauncher(cfg.ConfirmExternal, g.log)
	}
	if cfg.LogLevel != old.LogLevel && g.level != nil {
		lvl, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			g.log.Warn("keeping log level", "err", err)
		} else {
			g.level.Set(lvl)
		}
	}
	if cfg.FontPath != old.FontPath {
		f, err := loadFonts(cfg.FontPath)
		if err != nil {
			g.log.Error("keeping current fonts", "err", err)
		} else {
			g.fonts = f
			g.relayout()
		}
	}
	g.debug = cfg.Debug
}

// Close stops the particle loop.
func (g *Game) Close() {
	if g.particles != nil {
		g.particles.Cancel()
	}
}
