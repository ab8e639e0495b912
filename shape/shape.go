// Package shape names the primitives the wall can be mapped onto and how many facets each has.
package shape

import (
	"fmt"
	"strings"

	"github.com/facetwall/facetwall/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Shape is a wall primitive.
type Shape struct {
	Name   string
	Facets int
	// Description is shown in help output.
	Description string
}

var presets = []Shape{
	{Name: "cube", Facets: 6, Description: "six square faces"},
	{Name: "sphere", Facets: 20, Description: "icosahedron, twenty triangles"},
	{Name: "wheel", Facets: 12, Description: "twelve slices around a hub"},
	{Name: "panel", Facets: 4, Description: "flat two by two grid"},
}

// Presets returns every known shape.
func Presets() []Shape {
	return append([]Shape(nil), presets...)
}

// Names returns the names of every known shape.
func Names() []string {
	return lo.Map(presets, func(s Shape, _ int) string { return s.Name })
}

// Parse looks up a shape by name.
func Parse(name string) (Shape, error) {
	s, ok := lo.Find(presets, func(s Shape) bool {
		return strings.EqualFold(s.Name, strings.TrimSpace(name))
	})
	if !ok {
		return Shape{}, fmt.Errorf("unknown shape %q, expected one of: %s", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// WithFacets overrides the facet count. Zero or less keeps the shape's own.
func (s Shape) WithFacets(n int) Shape {
	if n > 0 {
		s.Facets = n
	}
	return s
}

func (s Shape) String() string {
	return fmt.Sprintf("%s (%d facets)", s.Name, s.Facets)
}

// FromConfig resolves wall.shape and wall.facets.
func FromConfig() (Shape, error) {
	s, err := Parse(viper.GetString(key.WallShape))
	if err != nil {
		return Shape{}, err
	}
	return s.WithFacets(viper.GetInt(key.WallFacets)), nil
}
