package browser

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		url string
		ok  bool
	}{
		{"https://github.com/pranavpatil1", true},
		{"http://example.com", true},
		{"/start", false},
		{"file:///etc/passwd", false},
		{"javascript:alert(1)", false},
		{"https://", false},
		{"%zz", false},
	}
	for _, tt := range tests {
		err := Check(tt.url)
		if tt.ok && err != nil {
			t.Errorf("Check(%q) = %v, want nil", tt.url, err)
		}
		if !tt.ok && !errors.Is(err, ErrScheme) {
			t.Errorf("Check(%q) = %v, want ErrScheme", tt.url, err)
		}
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos, name string
		args       int
	}{
		{"linux", "xdg-open", 1},
		{"freebsd", "xdg-open", 1},
		{"darwin", "open", 1},
		{"windows", "rundll32", 2},
	}
	for _, tt := range tests {
		name, args := Command(tt.goos, "https://x.test")
		if name != tt.name || len(args) != tt.args || args[len(args)-1] != "https://x.test" {
			t.Errorf("Command(%q) = %s %v", tt.goos, name, args)
		}
	}
}

func TestOpenRejectsBadScheme(t *testing.T) {
	if err := Open(context.Background(), "ftp://x.test"); !errors.Is(err, ErrScheme) {
		t.Fatalf("Open err = %v, want ErrScheme", err)
	}
}

func newTestLauncher(confirm bool) (*Launcher, *[]string) {
	var opened []string
	l := NewLauncher(confirm, slog.New(slog.NewTextHandler(io.Discard, nil)))
	l.goFn = func(f func()) { f() }
	l.open = func(_ context.Context, u string) error {
		opened = append(opened, u)
		return nil
	}
	return l, &opened
}

func TestLauncherConfirmation(t *testing.T) {
	tests := []struct {
		name    string
		confirm bool
		answer  bool
		askErr  error
		opens   int
	}{
		{"no confirmation", false, false, nil, 1},
		{"accepted", true, true, nil, 1},
		{"declined", true, false, nil, 0},
		{"dialog error", true, true, errors.New("no display"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, opened := newTestLauncher(tt.confirm)
			asked := 0
			l.ask = func(string) (bool, error) { asked++; return tt.answer, tt.askErr }

			l.Launch("https://github.com/pranavpatil1")
			if len(*opened) != tt.opens {
				t.Fatalf("opened %d times, want %d", len(*opened), tt.opens)
			}
			if tt.confirm != (asked == 1) {
				t.Fatalf("asked %d times with confirm=%v", asked, tt.confirm)
			}
		})
	}
}

func TestLauncherRejectsInternalRoutes(t *testing.T) {
	l, opened := newTestLauncher(false)
	ran := false
	l.goFn = func(f func()) { ran = true; f() }
	l.Launch("/about")
	if ran || len(*opened) != 0 {
		t.Fatal("internal route was launched")
	}
}
