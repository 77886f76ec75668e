// Package browser opens external destinations in the system browser.
package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/ncruces/zenity"
)

// ErrScheme rejects destinations that are not absolute http(s) URLs.
var ErrScheme = errors.New("browser: only http and https destinations can be opened")

// Command returns the platform command that opens rawURL.
func Command(goos, rawURL string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	case "darwin":
		return "open", []string{rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}

// Check validates rawURL for opening.
func Check(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScheme, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrScheme, rawURL)
	}
	return nil
}

// Open launches the system browser on rawURL and waits for the opener to
// exit.
func Open(ctx context.Context, rawURL string) error {
	if err := Check(rawURL); err != nil {
		return err
	}
	name, args := Command(runtime.GOOS, rawURL)
	if err := exec.CommandContext(ctx, name, args...).Run(); err != nil {
		return fmt.Errorf("browser: %s: %w", name, err)
	}
	return nil
}

// Confirm asks whether to leave for rawURL. Dismissing the dialog counts
// as "no".
func Confirm(rawURL string) (bool, error) {
	err := zenity.Question(
		"Open "+rawURL+" in your browser?",
		zenity.Title("Leaving pranav://"),
		zenity.OKLabel("Open"),
		zenity.CancelLabel("Stay"),
		zenity.QuestionIcon,
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
