package tree

// Node is one filesystem entry in the generated tree.
type Node struct {
	// Name is the base name of the entry.
	Name string

	// Path is the absolute path the entry was reached through. It is used
	// for symlink resolution and size queries, never rendered directly.
	Path string

	// IsDir reports whether the entry behaves as a directory in the tree.
	// A symlink has IsDir set only when it was followed and resolved to a
	// directory; unfollowed and cyclic symlinks are plain leaves.
	IsDir bool

	// IsSymlink reports whether the entry itself is a symbolic link.
	IsSymlink bool

	// Size is the aggregate byte size: a file's own size, the recursive sum
	// of contained file sizes for a directory, and always 0 for symlinks.
	// Zero when size tracking is disabled or the stat failed.
	Size int64

	// LinkTarget is the display resolution of a symlink target (absolute,
	// best effort). Empty for non-symlinks and when resolution failed.
	LinkTarget string

	// Children is sorted directories-first, then case-insensitive by name.
	// Empty for files and unfollowed symlinks.
	Children []*Node
}

// UnlimitedDepth disables depth limiting.
const UnlimitedDepth = -1

// Config controls a walk.
type Config struct {
	// MaxDepth is the deepest level to produce, counted from 0 at the root.
	// UnlimitedDepth (-1) means no limit. The root is always produced.
	MaxDepth int

	// IgnorePatterns are glob patterns (*, ?, bracket sets) matched against
	// entry base names. A match excludes the entry and its whole subtree.
	IgnorePatterns []string

	// ShowHidden includes entries whose name starts with a dot.
	ShowHidden bool

	// FollowSymlinks recurses into symlink targets, guarded against cycles.
	FollowSymlinks bool

	// ShowSize stats files and aggregates directory sizes.
	ShowSize bool

	// CaseSensitive controls ignore-pattern matching. When false, both name
	// and pattern are lowercased before matching.
	CaseSensitive bool

	// RateLimit caps filesystem operations per second. 0 means unlimited.
	RateLimit int
}

// Stats are aggregate counts over a completed tree.
type Stats struct {
	Dirs      int
	Files     int
	TotalSize int64
}
