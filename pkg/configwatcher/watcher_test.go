package configwatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"talent_bridge_backend/internal/config"

	"github.com/stretchr/testify/require"
)

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	plans := filepath.Join(dir, "plans")
	path := filepath.Join(dir, "config.yaml")
	write := func(url string) {
		body := "upstream:\n  save_url: " + url + "\nstorage:\n  local_path: " + plans + "\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	write("http://one.test/save")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan string, 4)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, dir, func(cfg *config.Config) {
			got <- cfg.Upstream.SaveURL
		})
	}()

	// give the watcher time to register
	time.Sleep(200 * time.Millisecond)
	write("http://two.test/save")

	select {
	case url := <-got:
		require.Equal(t, "http://two.test/save", url)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
