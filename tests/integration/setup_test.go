package integration

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"habitstore"
	"habitstore/internal/liveset"
)

// openTestApp opens a full application stack backed by a SQLite file in a
// per-test temp directory.
func openTestApp(t *testing.T) *habitstore.App {
	t.Helper()

	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "habitstore.db"))
	t.Setenv("LOCALE", "en")

	app, err := habitstore.Open()
	if err != nil {
		t.Fatalf("failed to open app: %v", err)
	}
	t.Cleanup(app.Close)
	return app
}

// batchObserver collects change batches delivered to a subscription.
type batchObserver struct {
	mu      sync.Mutex
	batches [][]liveset.Op
	errs    []error
}

func (o *batchObserver) Changes(ops []liveset.Op) {
	o.mu.Lock()
	o.batches = append(o.batches, ops)
	o.mu.Unlock()
}

func (o *batchObserver) QueryFailed(err error) {
	o.mu.Lock()
	o.errs = append(o.errs, err)
	o.mu.Unlock()
}

func (o *batchObserver) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.batches)
}

// await blocks until the observer has received at least n batches.
func (o *batchObserver) await(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if o.count() >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d batches, have %d", n, o.count())
}
