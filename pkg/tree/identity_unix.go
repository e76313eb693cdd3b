//go:build unix

package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// nodeIdentity keys the cycle guard. Device+inode pairs survive renames and
// alternate paths to the same directory; filesystems that do not expose them
// (in-memory test fs) fall back to the cleaned path.
func nodeIdentity(path string, info os.FileInfo) string {
	if st, ok := info.Sys().(*syscall.Stat_t); ok && st != nil {
		return fmt.Sprintf("%d:%d", st.Dev, st.Ino)
	}
	return filepath.Clean(path)
}
