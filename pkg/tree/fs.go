package tree

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// SymlinkFs extends afero.Fs with the lstat/readlink operations the walker
// needs. afero.OsFs satisfies it natively.
type SymlinkFs interface {
	afero.Fs
	LstatIfPossible(name string) (os.FileInfo, bool, error)
	ReadlinkIfPossible(name string) (string, error)
}

var errNoSymlinkSupport = errors.New("filesystem does not support symlinks")

// basicSymlinkFs adapts a plain afero.Fs: lstat degrades to stat and
// readlink always fails, so every entry looks like a regular file or
// directory.
type basicSymlinkFs struct {
	afero.Fs
}

func (b *basicSymlinkFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	info, err := b.Stat(name)
	return info, false, err
}

func (b *basicSymlinkFs) ReadlinkIfPossible(name string) (string, error) {
	return "", errNoSymlinkSupport
}

func asSymlinkFs(fs afero.Fs) SymlinkFs {
	if sf, ok := fs.(SymlinkFs); ok {
		return sf
	}
	return &basicSymlinkFs{Fs: fs}
}

// TestSymlinkFs layers fake symlinks over an afero.Fs for tests. A
// registered path lstats as a symlink and readlinks to its target; all other
// operations pass through.
type TestSymlinkFs struct {
	afero.Fs
	mu       sync.RWMutex
	symlinks map[string]string
}

// NewTestSymlinkFs wraps fs with an empty symlink table.
func NewTestSymlinkFs(fs afero.Fs) *TestSymlinkFs {
	return &TestSymlinkFs{
		Fs:       fs,
		symlinks: make(map[string]string),
	}
}

// Symlink registers a fake symlink at path pointing at target. A placeholder
// entry is written through so directory listings include the link.
func (t *TestSymlinkFs) Symlink(target, path string) error {
	t.mu.Lock()
	t.symlinks[path] = target
	t.mu.Unlock()
	return afero.WriteFile(t.Fs, path, nil, 0o777)
}

func (t *TestSymlinkFs) target(name string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	target, ok := t.symlinks[name]
	return target, ok
}

func (t *TestSymlinkFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if _, ok := t.target(name); ok {
		return &symlinkInfo{name: filepath.Base(name)}, true, nil
	}
	info, err := t.Stat(name)
	return info, true, err
}

func (t *TestSymlinkFs) ReadlinkIfPossible(name string) (string, error) {
	if target, ok := t.target(name); ok {
		return target, nil
	}
	return "", errNoSymlinkSupport
}

// Stat follows registered symlinks so the walker can resolve their targets.
func (t *TestSymlinkFs) Stat(name string) (os.FileInfo, error) {
	if target, ok := t.target(name); ok {
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(name), target)
		}
		return t.Stat(target)
	}
	return t.Fs.Stat(name)
}

// symlinkInfo is the lstat result for a fake symlink.
type symlinkInfo struct {
	name string
}

func (s *symlinkInfo) Name() string       { return s.name }
func (s *symlinkInfo) Size() int64        { return 0 }
func (s *symlinkInfo) Mode() os.FileMode  { return os.ModeSymlink | 0o777 }
func (s *symlinkInfo) ModTime() time.Time { return time.Time{} }
func (s *symlinkInfo) IsDir() bool        { return false }
func (s *symlinkInfo) Sys() interface{}   { return nil }
