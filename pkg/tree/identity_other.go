//go:build !unix

package tree

import (
	"os"
	"path/filepath"
)

// nodeIdentity keys the cycle guard. Without device+inode information the
// cleaned path is the best stable identity available.
func nodeIdentity(path string, _ os.FileInfo) string {
	return filepath.Clean(path)
}
