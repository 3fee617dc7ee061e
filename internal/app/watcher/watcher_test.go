package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"logview/internal/app/bus"
	"logview/internal/app/errors"
	"logview/internal/app/session"
	"logview/internal/config"
	"logview/internal/config/logger"
)

func writeConfig(t *testing.T, path string, polling bool) {
	t.Helper()

	content := "version: 1\npolling:\n  enabled: false\n"
	if polling {
		content = "version: 1\npolling:\n  enabled: true\n"
	}

	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func Test_NewWatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, err := NewWatcher(filepath.Join(t.TempDir(), config.ConfigFile), session.NewMockSession(ctrl), bus.NoOp(), config.LoadFile, logger.NewNopLogger())
	require.NoError(t, err)
	assert.NotNil(t, w)

	w.Close()
	w.Close()
}

func Test_Watcher_EnablesPollingOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFile)
	writeConfig(t, path, false)

	enabled := make(chan bool, 1)

	s := session.NewMockSession(ctrl)
	s.EXPECT().Polling().Return(false).AnyTimes()
	s.EXPECT().SetPolling(true).Do(func(v bool) { enabled <- v }).Times(1)

	b := bus.New(10, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := b.Subscribe(ctx)

	w, err := NewWatcher(path, s, b, config.LoadFile, logger.NewNopLogger())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Start(ctx))

	writeConfig(t, path, true)

	select {
	case v := <-enabled:
		assert.True(t, v)
	case <-time.After(3 * time.Second):
		t.Fatal("polling was not enabled")
	}

	seen := make(map[bus.MessageType]bool)
	timeout := time.After(time.Second)

loop:
	for !seen[bus.EventConfigReloaded] {
		select {
		case msg := <-events:
			seen[msg.Type] = true
		case <-timeout:
			break loop
		}
	}

	assert.True(t, seen[bus.EventWatchStarted])
	assert.True(t, seen[bus.EventConfigReloaded])
}

func Test_Watcher_UnchangedPollingIsLeftAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), config.ConfigFile)
	writeConfig(t, path, false)

	loaded := make(chan struct{}, 4)

	s := session.NewMockSession(ctrl)
	s.EXPECT().Polling().Return(false).AnyTimes()

	load := func(p string) (*config.Config, error) {
		defer func() { loaded <- struct{}{} }()
		return config.LoadFile(p)
	}

	w, err := NewWatcher(path, s, bus.NoOp(), load, logger.NewNopLogger())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Start(context.Background()))

	writeConfig(t, path, false)

	select {
	case <-loaded:
	case <-time.After(3 * time.Second):
		t.Fatal("config was not reloaded")
	}
}

func Test_Watcher_IgnoresInvalidConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), config.ConfigFile)
	writeConfig(t, path, false)

	attempted := make(chan struct{}, 4)

	s := session.NewMockSession(ctrl)

	load := func(p string) (*config.Config, error) {
		attempted <- struct{}{}
		return nil, errors.ErrInvalidConfig
	}

	w, err := NewWatcher(path, s, bus.NoOp(), load, logger.NewNopLogger())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Start(context.Background()))

	writeConfig(t, path, true)

	select {
	case <-attempted:
	case <-time.After(3 * time.Second):
		t.Fatal("reload was not attempted")
	}
}

func Test_Watcher_IgnoresOtherFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFile)
	writeConfig(t, path, false)

	attempted := make(chan struct{}, 4)

	load := func(p string) (*config.Config, error) {
		attempted <- struct{}{}
		return config.LoadFile(p)
	}

	w, err := NewWatcher(path, session.NewMockSession(ctrl), bus.NoOp(), load, logger.NewNopLogger())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".logview.yaml.swp"), []byte("x"), 0600))

	select {
	case <-attempted:
		t.Fatal("unrelated files must not trigger a reload")
	case <-time.After(config.WatchDebounce + 200*time.Millisecond):
	}
}

func Test_Watcher_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), config.ConfigFile)
	writeConfig(t, path, false)

	attempted := make(chan struct{}, 4)

	load := func(p string) (*config.Config, error) {
		attempted <- struct{}{}
		return config.LoadFile(p)
	}

	w, err := NewWatcher(path, session.NewMockSession(ctrl), bus.NoOp(), load, logger.NewNopLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))

	cancel()
	time.Sleep(50 * time.Millisecond)

	writeConfig(t, path, true)

	select {
	case <-attempted:
		t.Fatal("reload after stop")
	case <-time.After(config.WatchDebounce + 200*time.Millisecond):
	}
}
