package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/teatonedev/nicetree/pkg/tree"
)

// jsonNode mirrors one tree node in the structured encodings. Key order is
// fixed by field order; children is always present, empty for leaves.
type jsonNode struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Symlink  bool        `json:"symlink"`
	Size     int64       `json:"size"`
	Children []*jsonNode `json:"children"`
}

func (f *formatter) formatJSON(node *tree.Node) (string, error) {
	if node == nil {
		return "{}", nil
	}

	data, err := json.MarshalIndent(toJSONNode(node), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f *formatter) formatYAML(node *tree.Node) (string, error) {
	if node == nil {
		return "{}\n", nil
	}

	data, err := yaml.Marshal(toJSONNode(node))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func toJSONNode(node *tree.Node) *jsonNode {
	kind := "file"
	if node.IsDir {
		kind = "directory"
	}

	out := &jsonNode{
		Name:     node.Name,
		Type:     kind,
		Symlink:  node.IsSymlink,
		Size:     node.Size,
		Children: make([]*jsonNode, 0, len(node.Children)),
	}
	for _, child := range node.Children {
		out.Children = append(out.Children, toJSONNode(child))
	}
	return out
}
