package output

import (
	"fmt"
	"strings"

	"github.com/teatonedev/nicetree/pkg/tree"
	"github.com/teatonedev/nicetree/pkg/util"
)

// FormatStatistics renders the aggregate summary block printed after the
// tree: a separator line, the directory and file counts, and, when size
// tracking is on, the total expressed in megabytes regardless of magnitude.
func FormatStatistics(stats tree.Stats, showSize bool) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("=", 40))
	fmt.Fprintf(&b, "\nDirectories: %d", stats.Dirs)
	fmt.Fprintf(&b, "\nFiles: %d", stats.Files)
	if showSize {
		fmt.Fprintf(&b, "\nTotal Size: %s", util.FormatMegabytes(stats.TotalSize))
	}
	return b.String()
}
