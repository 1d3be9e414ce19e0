package webnav

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingOpener collects opened URLs and fails for schemes in failOn.
type recordingOpener struct {
	mu     sync.Mutex
	opened []string
	failOn string
}

func (r *recordingOpener) open(_ context.Context, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn != "" && len(target) >= len(r.failOn) && target[:len(r.failOn)] == r.failOn {
		return errors.New("no handler")
	}
	r.opened = append(r.opened, target)
	return nil
}

func (r *recordingOpener) urls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.opened))
	copy(out, r.opened)
	return out
}

func TestOpenNewTab_WhenSchemeIsWeb_ShouldHandURLToOpener(t *testing.T) {
	rec := &recordingOpener{}
	nav := NewNavigatorWithOpener(rec.open, time.Millisecond)

	err := nav.OpenNewTab(context.Background(), "https://example.com/page")

	assert.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/page"}, rec.urls())
}

func TestOpenNewTab_WhenSchemeIsNotWeb_ShouldRejectBeforeOpening(t *testing.T) {
	rec := &recordingOpener{}
	nav := NewNavigatorWithOpener(rec.open, time.Millisecond)

	for _, raw := range []string{"ftp://example.com", "javascript:alert(1)", "file:///etc/passwd"} {
		err := nav.OpenNewTab(context.Background(), raw)

		assert.Error(t, err, "url %q", raw)
	}
	assert.Empty(t, rec.urls())
}

func TestOpenProfile_WhenDeepLinkSucceeds_ShouldSkipWebFallback(t *testing.T) {
	rec := &recordingOpener{}
	nav := NewNavigatorWithOpener(rec.open, 10*time.Millisecond)

	nav.OpenProfile(context.Background(), "12345")
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, []string{"fb://profile/12345"}, rec.urls())
}

func TestOpenProfile_WhenDeepLinkFails_ShouldFallBackToWebAfterDelay(t *testing.T) {
	rec := &recordingOpener{failOn: "fb://"}
	nav := NewNavigatorWithOpener(rec.open, 10*time.Millisecond)

	nav.OpenProfile(context.Background(), "12345")

	assert.Empty(t, rec.urls())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{profileWebBase + "12345"}, rec.urls())
}

func TestSleep_WhenDurationElapses_ShouldReturnNil(t *testing.T) {
	err := Sleep(context.Background(), time.Millisecond)

	assert.NoError(t, err)
}

func TestSleep_WhenContextCancelled_ShouldReturnEarlyWithError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Sleep(ctx, time.Minute)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
