package browser

import (
	"context"
	"log/slog"
	"time"
)

// OpenTimeout bounds how long the platform opener may run.
const OpenTimeout = 30 * time.Second

// Launcher opens destinations off the render loop, optionally asking for
// confirmation first. Results are only logged.
type Launcher struct {
	confirm bool
	log     *slog.Logger

	// overridable in tests
	ask  func(string) (bool, error)
	open func(context.Context, string) error
	goFn func(func())
}

func NewLauncher(confirm bool, log *slog.Logger) *Launcher {
	if log == nil {
		log = slog.Default()
	}
	return &Launcher{
		confirm: confirm,
		log:     log,
		ask:     Confirm,
		open:    Open,
		goFn:    func(f func()) { go f() },
	}
}

// Launch starts opening rawURL in the background.
func (l *Launcher) Launch(rawURL string) {
	if err := Check(rawURL); err != nil {
		l.log.Warn("refusing to open destination", "url", rawURL, "err", err)
		return
	}
	l.goFn(func() {
		if l.confirm {
			ok, err := l.ask(rawURL)
			if err != nil {
				l.log.Error("confirmation dialog failed", "url", rawURL, "err", err)
				return
			}
			if !ok {
				l.log.Debug("external navigation declined", "url", rawURL)
				return
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), OpenTimeout)
		defer cancel()
		if err := l.open(ctx, rawURL); err != nil {
			l.log.Error("open external destination", "url", rawURL, "err", err)
			return
		}
		l.log.Info("opened external destination", "url", rawURL)
	})
}
