package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// LoadTextureTable loads atlas textures in slot order. The returned slice is
// the texture-handle table Draw consumes: indexed by a drawable's texture
// index.
func LoadTextureTable(paths []string) ([]uint32, error) {
	table := make([]uint32, len(paths))
	for i, path := range paths {
		texture, _, _, err := LoadTexture(path)
		if err != nil {
			ReleaseTextureTable(table[:i])
			return nil, fmt.Errorf("atlas slot %d: %v", i, err)
		}
		table[i] = texture
	}
	return table, nil
}

// ReleaseTextureTable deletes every texture in the table.
func ReleaseTextureTable(table []uint32) {
	for _, texture := range table {
		gl.DeleteTextures(1, &texture)
	}
}
