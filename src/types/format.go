package types

import (
	"fmt"
	"strings"
)

// Format identifies one of the supported 3D interchange formats.
// Values are canonical lowercase; older data revisions used mixed casing
// (e.g. "glTF") which ParseFormat folds away at the loading boundary.
type Format string

const (
	FormatFBX  Format = "fbx"
	FormatOBJ  Format = "obj"
	FormatGLTF Format = "gltf"
	FormatGLB  Format = "glb"
)

// AllFormats returns the supported formats in display order.
func AllFormats() []Format {
	return []Format{FormatFBX, FormatOBJ, FormatGLTF, FormatGLB}
}

// ParseFormat maps a raw format identifier (any casing) to its canonical value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fbx":
		return FormatFBX, nil
	case "obj":
		return FormatOBJ, nil
	case "gltf":
		return FormatGLTF, nil
	case "glb":
		return FormatGLB, nil
	}
	return "", fmt.Errorf("unknown format %q (supported: fbx, obj, gltf, glb)", s)
}

// ParseFormats maps a list of raw identifiers, rejecting the whole list on the
// first unknown entry.
func ParseFormats(raw []string) ([]Format, error) {
	out := make([]Format, 0, len(raw))
	for _, s := range raw {
		f, err := ParseFormat(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
