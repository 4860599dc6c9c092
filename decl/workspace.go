package decl

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
)

// Ext is the file extension of declaration files.
const Ext = ".decl"

// Workspace holds the parsed declaration files below a root directory.
type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
	log     commonlog.Logger
}

type FileInfo struct {
	Path    string
	Content []byte
	Decls   *File
}

func NewWorkspace(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
		log:     commonlog.GetLogger("combi.decl"),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// ScanAll parses every declaration file below the root directory.
func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == Ext {
			if err := w.ScanFile(path); err != nil {
				w.log.Warningf("scan %s: %s", path, err)
			}
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return w.UpdateFile(path, content)
}

// UpdateFile replaces the content of path and parses it again.
func (w *Workspace) UpdateFile(path string, content []byte) error {
	f, err := Parse(bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	w.log.Debugf("parsed %s: %d fields, %d problems", path, len(f.Fields), len(f.Problems))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = &FileInfo{
		Path:    path,
		Content: content,
		Decls:   f,
	}
	return nil
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Paths returns the paths of all known files, sorted.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Types returns every type name used in the workspace, sorted and without
// duplicates.
func (w *Workspace) Types() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	set := make(map[string]bool)
	for _, fi := range w.files {
		for _, typ := range fi.Decls.Types() {
			set[typ] = true
		}
	}
	types := make([]string, 0, len(set))
	for typ := range set {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Problems returns the problems of every file that has any, keyed by path.
func (w *Workspace) Problems() map[string][]Problem {
	w.mu.RLock()
	defer w.mu.RUnlock()
	problems := make(map[string][]Problem)
	for path, fi := range w.files {
		if len(fi.Decls.Problems) > 0 {
			problems[path] = fi.Decls.Problems
		}
	}
	return problems
}
