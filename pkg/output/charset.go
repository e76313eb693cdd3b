package output

import "runtime"

// Charset selects the glyphs used for the tree encoding.
type Charset string

const (
	// CharsetAuto picks unicode everywhere except Windows.
	CharsetAuto    Charset = "auto"
	CharsetUnicode Charset = "unicode"
	CharsetASCII   Charset = "ascii"
)

// Valid reports whether the charset is one of the known selections.
func (c Charset) Valid() bool {
	switch c {
	case CharsetAuto, CharsetUnicode, CharsetASCII, "":
		return true
	}
	return false
}

// glyphSet is one fixed set of tree-drawing strings.
type glyphSet struct {
	branch string // connector for a node with following siblings
	last   string // connector for the final sibling
	pipe   string // continuation for a non-last ancestor
	blank  string // padding for a last ancestor
}

var (
	unicodeGlyphs = glyphSet{branch: "├── ", last: "└── ", pipe: "│   ", blank: "    "}
	asciiGlyphs   = glyphSet{branch: "+-- ", last: "\\-- ", pipe: "|   ", blank: "    "}
)

func (c Charset) glyphs() glyphSet {
	switch c {
	case CharsetUnicode:
		return unicodeGlyphs
	case CharsetASCII:
		return asciiGlyphs
	default:
		if runtime.GOOS == "windows" {
			return asciiGlyphs
		}
		return unicodeGlyphs
	}
}
