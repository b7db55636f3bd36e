package component

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Sprite is how the top-down renderer draws an entity: a filled disc.
type Sprite struct {
	Color  color.RGBA
	Radius float64
}

// ColorByName looks up an SVG colour name, falling back to white.
func ColorByName(name string) color.RGBA {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.White
}

var SpriteComponent = NewComponent[Sprite]()
