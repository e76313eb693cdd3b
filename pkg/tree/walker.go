/*
Package tree builds an in-memory tree of filesystem nodes via a depth-first
walk with filtering, depth limiting, symlink handling, and optional size
aggregation.

The walk is synchronous and single-threaded. Per-entry failures are absorbed:
an unreadable directory becomes a childless node, an unreadable entry is
omitted, and only a missing or non-directory root fails the whole walk.

Basic usage:

	walker := tree.NewWalker(tree.Config{
		MaxDepth:       tree.UnlimitedDepth,
		IgnorePatterns: []string{"*.log"},
	}, afero.NewOsFs(), log)

	root, err := walker.Walk(ctx, "/path/to/dir")
*/
package tree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/time/rate"

	"github.com/teatonedev/nicetree/pkg/logger"
)

// Walker performs filesystem traversals. It is safe for concurrent Walk
// calls: all mutable traversal state lives in a per-call session.
type Walker struct {
	cfg Config
	fs  SymlinkFs
	log logger.Logger
}

// NewWalker builds a Walker over the given filesystem.
func NewWalker(cfg Config, fs afero.Fs, log logger.Logger) *Walker {
	return &Walker{
		cfg: cfg,
		fs:  asSymlinkFs(fs),
		log: log,
	}
}

// walkSession holds the state of one Walk call: the cycle guard shared
// across the whole traversal and the optional fs-operation throttle.
type walkSession struct {
	w       *Walker
	visited map[string]struct{}
	limiter *rate.Limiter
}

// Walk traverses the filesystem under root and returns the resulting tree.
// It fails with ErrPathNotFound or ErrNotDirectory on a bad root; a nil node
// with a nil error means the root itself was filtered out.
func (w *Walker) Walk(ctx context.Context, root string) (*Node, error) {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	w.log.WithFields(logger.Fields{
		"root":     root,
		"maxDepth": w.cfg.MaxDepth,
		"patterns": w.cfg.IgnorePatterns,
		"follow":   w.cfg.FollowSymlinks,
	}).Debug("starting walk")

	info, err := w.fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	session := &walkSession{
		w:       w,
		visited: make(map[string]struct{}),
	}
	if w.cfg.RateLimit > 0 {
		session.limiter = rate.NewLimiter(rate.Limit(w.cfg.RateLimit), 1)
	}

	// The root Stat above already followed any symlink, so the root is
	// walked as a plain directory of its resolved kind.
	node := session.walkEntry(ctx, root, info, 0)

	w.log.WithFields(logger.Fields{
		"root":     root,
		"produced": node != nil,
	}).Debug("walk finished")

	return node, nil
}

// walkEntry produces the node for one entry, or nil when the entry is depth-
// pruned or filtered. info must be the lstat result for path.
func (s *walkSession) walkEntry(ctx context.Context, path string, info os.FileInfo, depth int) *Node {
	if s.w.cfg.MaxDepth != UnlimitedDepth && depth > s.w.cfg.MaxDepth {
		return nil
	}

	name := filepath.Base(path)
	if s.w.ignored(name) {
		return nil
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return s.walkSymlink(ctx, path, name, depth)
	}

	if info.IsDir() {
		node := &Node{Name: name, Path: path, IsDir: true}
		// Directories register their identity so a symlink back into an
		// already-walked directory is caught on first sight.
		s.visited[nodeIdentity(path, info)] = struct{}{}
		node.Children = s.listChildren(ctx, path, depth)
		if s.w.cfg.ShowSize {
			node.Size = childrenSize(node.Children)
		}
		return node
	}

	node := &Node{Name: name, Path: path}
	if s.w.cfg.ShowSize {
		node.Size = info.Size()
	}
	return node
}

// walkSymlink handles a symbolic link entry. Unfollowed, unresolvable, and
// cyclic links all collapse to the same non-recursing leaf; size stays 0
// regardless of the target.
func (s *walkSession) walkSymlink(ctx context.Context, path, name string, depth int) *Node {
	node := &Node{
		Name:       name,
		Path:       path,
		IsSymlink:  true,
		LinkTarget: s.displayTarget(path),
	}

	if !s.w.cfg.FollowSymlinks {
		return node
	}

	targetPath, targetInfo, err := s.resolveTarget(ctx, path)
	if err != nil {
		s.w.log.WithFields(logger.Fields{
			"path":  path,
			"error": err.Error(),
		}).Debug("symlink not followed")
		return node
	}

	id := nodeIdentity(targetPath, targetInfo)
	if _, seen := s.visited[id]; seen {
		s.w.log.WithFields(logger.Fields{
			"path":   path,
			"target": targetPath,
		}).Debug("symlink cycle detected")
		return node
	}
	s.visited[id] = struct{}{}

	if targetInfo.IsDir() {
		node.IsDir = true
		node.Children = s.listChildren(ctx, targetPath, depth)
	}
	return node
}

// listChildren reads a directory and walks each surviving entry. The result
// is sorted exactly once, after all children are collected, so a failed
// sibling never perturbs the ordering of the rest.
func (s *walkSession) listChildren(ctx context.Context, dirPath string, depth int) []*Node {
	s.throttle(ctx)

	entries, err := afero.ReadDir(s.w.fs, dirPath)
	if err != nil {
		// Permission denied or transient I/O error: the directory stays in
		// the tree as a childless node and the walk continues.
		s.w.log.WithFields(logger.Fields{
			"path":  dirPath,
			"error": err.Error(),
		}).Debug("directory not readable")
		return nil
	}

	var children []*Node
	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		childPath := filepath.Join(dirPath, entry.Name())
		s.throttle(ctx)
		info, _, err := s.w.fs.LstatIfPossible(childPath)
		if err != nil {
			// Unreadable entry: omitted, never fatal.
			continue
		}

		if child := s.walkEntry(ctx, childPath, info, depth+1); child != nil {
			children = append(children, child)
		}
	}

	sortChildren(children)
	return children
}

// displayTarget resolves a symlink target to an absolute path for display
// only. Empty means unresolvable; the renderer substitutes its circular
// marker.
func (s *walkSession) displayTarget(path string) string {
	target, err := s.w.fs.ReadlinkIfPossible(path)
	if err != nil {
		return ""
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target)
}

// resolveTarget resolves a symlink target for traversal: the absolute target
// path plus its followed stat result.
func (s *walkSession) resolveTarget(ctx context.Context, path string) (string, os.FileInfo, error) {
	target, err := s.w.fs.ReadlinkIfPossible(path)
	if err != nil {
		return "", nil, err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	target = filepath.Clean(target)

	s.throttle(ctx)
	info, err := s.w.fs.Stat(target)
	if err != nil {
		return "", nil, err
	}
	return target, info, nil
}

func (s *walkSession) throttle(ctx context.Context) {
	if s.limiter != nil {
		_ = s.limiter.Wait(ctx)
	}
}

// ignored applies the hidden-file marker and the configured glob patterns to
// an entry's base name.
func (w *Walker) ignored(name string) bool {
	if !w.cfg.ShowHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, pattern := range w.cfg.IgnorePatterns {
		n, p := name, pattern
		if !w.cfg.CaseSensitive {
			n = strings.ToLower(n)
			p = strings.ToLower(p)
		}
		if ok, err := filepath.Match(p, n); err == nil && ok {
			return true
		}
	}
	return false
}

// sortChildren orders directories before files, then case-insensitive by
// name within each kind.
func sortChildren(children []*Node) {
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].IsDir != children[j].IsDir {
			return children[i].IsDir
		}
		return strings.ToLower(children[i].Name) < strings.ToLower(children[j].Name)
	})
}

func childrenSize(children []*Node) int64 {
	var total int64
	for _, child := range children {
		total += child.Size
	}
	return total
}
