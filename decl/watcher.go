package decl

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Watcher polls a workspace's root directory and rescans declaration files
// whose modification time changed.
type Watcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time
	onChange     func(path string)
}

func NewWatcher(w *Workspace, interval time.Duration, onChange func(path string)) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &Watcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		pollInterval: interval,
		modTimes:     make(map[string]time.Time),
		onChange:     onChange,
	}
}

func (w *Watcher) Start() {
	go w.run()
}

func (w *Watcher) Stop() {
	close(w.stopCh)
}

func (w *Watcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *Watcher) scan() {
	current := make(map[string]bool)

	filepath.Walk(w.workspace.RootDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.workspace.RootDir() && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != Ext {
			return nil
		}
		current[path] = true
		if prev, ok := w.modTimes[path]; ok && prev.Equal(info.ModTime()) {
			return nil
		}
		w.modTimes[path] = info.ModTime()
		if err := w.workspace.ScanFile(path); err != nil {
			w.workspace.log.Warningf("rescan %s: %s", path, err)
			return nil
		}
		w.changed(path)
		return nil
	})

	for path := range w.modTimes {
		if !current[path] {
			delete(w.modTimes, path)
			w.workspace.RemoveFile(path)
			w.changed(path)
		}
	}
}

func (w *Watcher) changed(path string) {
	if w.onChange != nil {
		w.onChange(path)
	}
}
