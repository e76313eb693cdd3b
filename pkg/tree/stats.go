package tree

// Collect aggregates directory/file counts and the total byte size over a
// completed tree in a single traversal. It never mutates the tree, so
// repeated calls yield identical results.
//
// Directory nodes already carry the recursive sum of their files, so the
// total accumulates non-directory nodes only; counting directory aggregates
// too would double every file.
func Collect(root *Node) Stats {
	var stats Stats
	walkStats(root, &stats)
	return stats
}

func walkStats(node *Node, stats *Stats) {
	if node == nil {
		return
	}

	if node.IsDir {
		stats.Dirs++
	} else {
		stats.Files++
		stats.TotalSize += node.Size
	}

	for _, child := range node.Children {
		walkStats(child, stats)
	}
}
