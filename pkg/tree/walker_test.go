package tree

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teatonedev/nicetree/pkg/logger"
)

func setupFS(t *testing.T, files map[string]string) *TestSymlinkFs {
	t.Helper()

	fs := NewTestSymlinkFs(afero.NewMemMapFs())
	for path := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func walk(t *testing.T, cfg Config, fs afero.Fs, root string) *Node {
	t.Helper()

	node, err := NewWalker(cfg, fs, logger.Nop()).Walk(context.Background(), root)
	require.NoError(t, err)
	return node
}

func childNames(node *Node) []string {
	names := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		names = append(names, child.Name)
	}
	return names
}

func findChild(node *Node, name string) *Node {
	for _, child := range node.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

func TestWalkOrdering(t *testing.T) {
	fs := setupFS(t, map[string]string{
		"/root/b.txt":       "b",
		"/root/a.txt":       "a",
		"/root/zeta/z.txt":  "z",
		"/root/Alpha/x.txt": "x",
	})

	root := walk(t, Config{MaxDepth: UnlimitedDepth, CaseSensitive: true}, fs, "/root")
	require.NotNil(t, root)

	// Directories first, then files, case-insensitive within each kind.
	assert.Equal(t, []string{"Alpha", "zeta", "a.txt", "b.txt"}, childNames(root))
	assert.True(t, root.IsDir)
}

func TestWalkMaxDepth(t *testing.T) {
	fs := setupFS(t, map[string]string{
		"/root/d1/d2/d3/deep.txt": "x",
		"/root/top.txt":           "y",
	})

	tests := []struct {
		name     string
		maxDepth int
		verify   func(*testing.T, *Node)
	}{
		{
			name:     "depth zero keeps only the root",
			maxDepth: 0,
			verify: func(t *testing.T, root *Node) {
				assert.Empty(t, root.Children)
			},
		},
		{
			name:     "depth one prunes grandchildren",
			maxDepth: 1,
			verify: func(t *testing.T, root *Node) {
				assert.Equal(t, []string{"d1", "top.txt"}, childNames(root))
				assert.Empty(t, findChild(root, "d1").Children)
			},
		},
		{
			name:     "unlimited keeps everything",
			maxDepth: UnlimitedDepth,
			verify: func(t *testing.T, root *Node) {
				d2 := findChild(findChild(root, "d1"), "d2")
				require.NotNil(t, d2)
				assert.Equal(t, []string{"d3"}, childNames(d2))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := walk(t, Config{MaxDepth: tt.maxDepth, CaseSensitive: true}, fs, "/root")
			require.NotNil(t, root)
			tt.verify(t, root)
		})
	}
}

func TestWalkHiddenEntries(t *testing.T) {
	fs := setupFS(t, map[string]string{
		"/root/.hidden.txt":    "h",
		"/root/.config/hc.txt": "c",
		"/root/visible.txt":    "v",
	})

	cfg := Config{MaxDepth: UnlimitedDepth, CaseSensitive: true}
	root := walk(t, cfg, fs, "/root")
	assert.Equal(t, []string{"visible.txt"}, childNames(root))

	cfg.ShowHidden = true
	root = walk(t, cfg, fs, "/root")
	assert.Equal(t, []string{".config", ".hidden.txt", "visible.txt"}, childNames(root))
}

func TestWalkHiddenRootFiltered(t *testing.T) {
	fs := setupFS(t, map[string]string{"/data/.secret/f.txt": "x"})

	root := walk(t, Config{MaxDepth: UnlimitedDepth, CaseSensitive: true}, fs, "/data/.secret")
	assert.Nil(t, root)
}

func TestWalkIgnorePatterns(t *testing.T) {
	tests := []struct {
		name          string
		patterns      []string
		caseSensitive bool
		want          []string
	}{
		{
			name:          "extension glob excludes matches",
			patterns:      []string{"*.txt"},
			caseSensitive: true,
			want:          []string{"sub", "b.md"},
		},
		{
			name:          "directory pattern drops whole subtree",
			patterns:      []string{"sub"},
			caseSensitive: true,
			want:          []string{"a.txt", "b.md"},
		},
		{
			name:          "case sensitive pattern misses other case",
			patterns:      []string{"*.TXT"},
			caseSensitive: true,
			want:          []string{"sub", "a.txt", "b.md"},
		},
		{
			name:          "case insensitive pattern matches other case",
			patterns:      []string{"*.TXT"},
			caseSensitive: false,
			want:          []string{"sub", "b.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := setupFS(t, map[string]string{
				"/root/a.txt":     "a",
				"/root/b.md":      "b",
				"/root/sub/c.txt": "c",
			})

			root := walk(t, Config{
				MaxDepth:       UnlimitedDepth,
				IgnorePatterns: tt.patterns,
				CaseSensitive:  tt.caseSensitive,
			}, fs, "/root")
			assert.Equal(t, tt.want, childNames(root))
		})
	}
}

func TestWalkSymlinkNotFollowed(t *testing.T) {
	fs := setupFS(t, map[string]string{"/root/target.txt": "data"})
	require.NoError(t, fs.Symlink("/root/target.txt", "/root/link"))

	root := walk(t, Config{MaxDepth: UnlimitedDepth, ShowSize: true, CaseSensitive: true}, fs, "/root")

	link := findChild(root, "link")
	require.NotNil(t, link)
	assert.True(t, link.IsSymlink)
	assert.False(t, link.IsDir)
	assert.Empty(t, link.Children)
	assert.Zero(t, link.Size)
	assert.Equal(t, "/root/target.txt", link.LinkTarget)
}

func TestWalkSymlinkCycle(t *testing.T) {
	fs := setupFS(t, map[string]string{"/root/a/f.txt": "x"})
	require.NoError(t, fs.Symlink("/root/a", "/root/a/loop"))

	root := walk(t, Config{
		MaxDepth:       UnlimitedDepth,
		FollowSymlinks: true,
		CaseSensitive:  true,
	}, fs, "/root")

	a := findChild(root, "a")
	require.NotNil(t, a)
	loop := findChild(a, "loop")
	require.NotNil(t, loop)
	assert.True(t, loop.IsSymlink)
	assert.False(t, loop.IsDir)
	assert.Empty(t, loop.Children)
	assert.Zero(t, loop.Size)
}

func TestWalkSymlinkFollowedIntoDirectory(t *testing.T) {
	fs := setupFS(t, map[string]string{
		"/shared/data/f.txt": "x",
		"/root/own.txt":      "y",
	})
	require.NoError(t, fs.Symlink("/shared/data", "/root/link"))

	root := walk(t, Config{
		MaxDepth:       UnlimitedDepth,
		FollowSymlinks: true,
		CaseSensitive:  true,
	}, fs, "/root")

	link := findChild(root, "link")
	require.NotNil(t, link)
	assert.True(t, link.IsSymlink)
	assert.True(t, link.IsDir)
	assert.Equal(t, []string{"f.txt"}, childNames(link))
}

func TestWalkBrokenSymlink(t *testing.T) {
	fs := setupFS(t, map[string]string{"/root/real.txt": "x"})
	require.NoError(t, fs.Symlink("/root/missing", "/root/dangling"))

	root := walk(t, Config{
		MaxDepth:       UnlimitedDepth,
		FollowSymlinks: true,
		CaseSensitive:  true,
	}, fs, "/root")

	dangling := findChild(root, "dangling")
	require.NotNil(t, dangling)
	assert.True(t, dangling.IsSymlink)
	assert.False(t, dangling.IsDir)
	assert.Empty(t, dangling.Children)
}

// denyOpenFs fails Open on one path so directory listings there error out.
type denyOpenFs struct {
	SymlinkFs
	deny string
}

func (d *denyOpenFs) Open(name string) (afero.File, error) {
	if name == d.deny {
		return nil, os.ErrPermission
	}
	return d.SymlinkFs.Open(name)
}

func TestWalkUnreadableDirectory(t *testing.T) {
	base := setupFS(t, map[string]string{
		"/root/secret/s.txt": "s",
		"/root/open/o.txt":   "o",
	})
	fs := &denyOpenFs{SymlinkFs: base, deny: "/root/secret"}

	root := walk(t, Config{MaxDepth: UnlimitedDepth, CaseSensitive: true}, fs, "/root")

	secret := findChild(root, "secret")
	require.NotNil(t, secret)
	assert.True(t, secret.IsDir)
	assert.Empty(t, secret.Children)

	// Siblings are unaffected.
	open := findChild(root, "open")
	require.NotNil(t, open)
	assert.Equal(t, []string{"o.txt"}, childNames(open))
}

func TestWalkSizeAggregation(t *testing.T) {
	fs := setupFS(t, map[string]string{
		"/root/x":   strings.Repeat("a", 100),
		"/root/d/y": strings.Repeat("b", 50),
	})

	root := walk(t, Config{MaxDepth: UnlimitedDepth, ShowSize: true, CaseSensitive: true}, fs, "/root")

	d := findChild(root, "d")
	require.NotNil(t, d)
	assert.Equal(t, int64(50), d.Size)
	assert.Equal(t, int64(100), findChild(root, "x").Size)
	assert.Equal(t, int64(150), root.Size)

	stats := Collect(root)
	assert.Equal(t, Stats{Dirs: 2, Files: 2, TotalSize: 150}, stats)
}

func TestWalkSizeDisabled(t *testing.T) {
	fs := setupFS(t, map[string]string{"/root/x": strings.Repeat("a", 100)})

	root := walk(t, Config{MaxDepth: UnlimitedDepth, CaseSensitive: true}, fs, "/root")
	assert.Zero(t, root.Size)
	assert.Zero(t, findChild(root, "x").Size)
}

func TestWalkRootErrors(t *testing.T) {
	fs := setupFS(t, map[string]string{"/root/file.txt": "x"})
	walker := NewWalker(Config{MaxDepth: UnlimitedDepth, CaseSensitive: true}, fs, logger.Nop())

	_, err := walker.Walk(context.Background(), "/missing")
	assert.ErrorIs(t, err, ErrPathNotFound)

	_, err = walker.Walk(context.Background(), "/root/file.txt")
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestCollectIdempotent(t *testing.T) {
	fs := setupFS(t, map[string]string{
		"/root/a.txt":     strings.Repeat("a", 10),
		"/root/sub/b.txt": strings.Repeat("b", 20),
	})

	root := walk(t, Config{MaxDepth: UnlimitedDepth, ShowSize: true, CaseSensitive: true}, fs, "/root")

	first := Collect(root)
	second := Collect(root)
	assert.Equal(t, first, second)
	assert.Equal(t, Stats{Dirs: 2, Files: 2, TotalSize: 30}, first)
}

func TestWalkRateLimited(t *testing.T) {
	fs := setupFS(t, map[string]string{
		"/root/a.txt": "a",
		"/root/b.txt": "b",
	})

	// A generous limit must not change the result, only pace it.
	root := walk(t, Config{MaxDepth: UnlimitedDepth, CaseSensitive: true, RateLimit: 1000}, fs, "/root")
	assert.Equal(t, []string{"a.txt", "b.txt"}, childNames(root))
}
