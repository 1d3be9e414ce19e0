// Package webnav wraps the platform boundaries for opening links in the
// user's browser, deep-link navigation with a timed web fallback, and
// cooperative delays.
package webnav

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"sync/atomic"
	"time"
)

// fallbackDelay is how long the deep-link attempt gets before the web URL
// is tried instead.
const fallbackDelay = 2 * time.Second

const profileWebBase = "https://www.facebook.com/"

// OpenFunc hands a URL to the operating system. It exists so tests can
// observe navigation without launching a browser.
type OpenFunc func(ctx context.Context, target string) error

// Navigator opens URLs through the platform browser.
type Navigator struct {
	open          OpenFunc
	fallbackDelay time.Duration
}

// NewNavigator creates a Navigator using the platform opener.
func NewNavigator() *Navigator {
	return &Navigator{open: systemOpen, fallbackDelay: fallbackDelay}
}

// NewNavigatorWithOpener creates a Navigator with a custom opener and
// fallback delay.
func NewNavigatorWithOpener(open OpenFunc, delay time.Duration) *Navigator {
	return &Navigator{open: open, fallbackDelay: delay}
}

// OpenNewTab opens rawURL in the user's browser. Only http and https URLs
// are accepted; anything else never reaches the OS opener.
func (n *Navigator) OpenNewTab(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("webnav: only http and https urls can be opened")
	}
	return n.open(ctx, rawURL)
}

// OpenProfile navigates to a social profile, preferring the native app
// deep link. The web fallback is scheduled unconditionally and fires after
// the configured delay; it is a no-op when the deep link already
// succeeded. No cancellation token is exposed, the timer always runs.
func (n *Navigator) OpenProfile(ctx context.Context, profileID string) {
	var done atomic.Bool

	if err := n.open(ctx, "fb://profile/"+profileID); err == nil {
		done.Store(true)
	}

	time.AfterFunc(n.fallbackDelay, func() {
		if done.Load() {
			return
		}
		_ = n.open(context.Background(), profileWebBase+profileID)
	})
}

// Sleep blocks for d or until ctx is cancelled, returning the context
// error in the latter case.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func systemOpen(ctx context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", target)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", target)
	}
	return cmd.Start()
}
