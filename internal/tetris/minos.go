package tetris

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// VariantTetromino is the classic seven piece set
	VariantTetromino = "tetromino"
	// VariantPentomino is the eighteen one-sided pentominoes
	VariantPentomino = "pentomino"
)

// ErrUnknownVariant is returned for a catalog name that does not exist
var ErrUnknownVariant = errors.New("unknown variant")

// Catalog is an immutable, ordered set of shapes
type Catalog struct {
	name   string
	shapes []*Shape
}

// Kick offsets of the Super Rotation System, with y growing downward.
var (
	kicksJLSTZ = KickTable{
		{0, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{1, 0}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{1, 2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{2, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{2, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{3, 2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{3, 0}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{0, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	}

	kicksI = KickTable{
		{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	}

	kicksNone = KickTable{}
)

var catalogs = map[string]*Catalog{
	VariantTetromino: newTetrominoes(),
	VariantPentomino: newPentominoes(),
}

func newTetrominoes() *Catalog {
	return &Catalog{
		name: VariantTetromino,
		shapes: []*Shape{
			NewShape("I", 4, ColorCyan, kicksI, Point{0, 1}, Point{1, 1}, Point{2, 1}, Point{3, 1}),
			NewShape("J", 3, ColorBlue, kicksJLSTZ, Point{0, 0}, Point{0, 1}, Point{1, 1}, Point{2, 1}),
			NewShape("L", 3, ColorOrange, kicksJLSTZ, Point{2, 0}, Point{0, 1}, Point{1, 1}, Point{2, 1}),
			NewShape("O", 2, ColorYellow, kicksNone, Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1}),
			NewShape("S", 3, ColorGreen, kicksJLSTZ, Point{1, 0}, Point{2, 0}, Point{0, 1}, Point{1, 1}),
			NewShape("T", 3, ColorMagenta, kicksJLSTZ, Point{1, 0}, Point{0, 1}, Point{1, 1}, Point{2, 1}),
			NewShape("Z", 3, ColorRed, kicksJLSTZ, Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{2, 1}),
		},
	}
}

// newPentominoes builds the one-sided pentominoes. The three and four wide
// boxes reuse the JLSTZ kicks, the long I uses the I kicks and X never needs one.
func newPentominoes() *Catalog {
	return &Catalog{
		name: VariantPentomino,
		shapes: []*Shape{
			NewShape("F", 3, ColorOrange, kicksJLSTZ, Point{1, 0}, Point{2, 0}, Point{0, 1}, Point{1, 1}, Point{1, 2}),
			NewShape("F'", 3, ColorGold, kicksJLSTZ, Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{2, 1}, Point{1, 2}),
			NewShape("I", 5, ColorCyan, kicksI, Point{0, 2}, Point{1, 2}, Point{2, 2}, Point{3, 2}, Point{4, 2}),
			NewShape("L", 4, ColorBlue, kicksJLSTZ, Point{3, 0}, Point{0, 1}, Point{1, 1}, Point{2, 1}, Point{3, 1}),
			NewShape("J", 4, ColorNavy, kicksJLSTZ, Point{0, 0}, Point{0, 1}, Point{1, 1}, Point{2, 1}, Point{3, 1}),
			NewShape("N", 4, ColorGreen, kicksJLSTZ, Point{2, 0}, Point{3, 0}, Point{0, 1}, Point{1, 1}, Point{2, 1}),
			NewShape("N'", 4, ColorGreen2, kicksJLSTZ, Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{2, 1}, Point{3, 1}),
			NewShape("P", 3, ColorPink, kicksJLSTZ, Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1}, Point{0, 2}),
			NewShape("P'", 3, ColorViolet, kicksJLSTZ, Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1}, Point{1, 2}),
			NewShape("T", 3, ColorMagenta, kicksJLSTZ, Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{1, 1}, Point{1, 2}),
			NewShape("U", 3, ColorYellow, kicksJLSTZ, Point{0, 0}, Point{2, 0}, Point{0, 1}, Point{1, 1}, Point{2, 1}),
			NewShape("V", 3, ColorTeal, kicksJLSTZ, Point{0, 0}, Point{0, 1}, Point{0, 2}, Point{1, 2}, Point{2, 2}),
			NewShape("W", 3, ColorPurple, kicksJLSTZ, Point{0, 0}, Point{0, 1}, Point{1, 1}, Point{1, 2}, Point{2, 2}),
			NewShape("X", 3, ColorWhite, kicksNone, Point{1, 0}, Point{0, 1}, Point{1, 1}, Point{2, 1}, Point{1, 2}),
			NewShape("Y", 4, ColorSilver, kicksJLSTZ, Point{2, 0}, Point{0, 1}, Point{1, 1}, Point{2, 1}, Point{3, 1}),
			NewShape("Y'", 4, ColorOlive, kicksJLSTZ, Point{1, 0}, Point{0, 1}, Point{1, 1}, Point{2, 1}, Point{3, 1}),
			NewShape("Z", 3, ColorRed, kicksJLSTZ, Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{1, 2}, Point{2, 2}),
			NewShape("S", 3, ColorMaroon, kicksJLSTZ, Point{1, 0}, Point{2, 0}, Point{1, 1}, Point{0, 2}, Point{1, 2}),
		},
	}
}

// Tetrominoes returns the seven piece catalog
func Tetrominoes() *Catalog {
	return catalogs[VariantTetromino]
}

// Pentominoes returns the pentomino catalog
func Pentominoes() *Catalog {
	return catalogs[VariantPentomino]
}

// CatalogByName looks up a catalog by variant name
func CatalogByName(name string) (*Catalog, error) {
	catalog, ok := catalogs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownVariant, name, Variants())
	}
	return catalog, nil
}

// Variants returns the sorted catalog names
func Variants() []string {
	names := maps.Keys(catalogs)
	slices.Sort(names)
	return names
}

// Name returns the variant name of the catalog
func (catalog *Catalog) Name() string {
	return catalog.name
}

// Len returns the number of shapes in the catalog
func (catalog *Catalog) Len() int {
	return len(catalog.shapes)
}

// Shapes returns the shapes in catalog order
func (catalog *Catalog) Shapes() []*Shape {
	return slices.Clone(catalog.shapes)
}

// Shape finds a shape by name
func (catalog *Catalog) Shape(name string) (*Shape, bool) {
	index := slices.IndexFunc(catalog.shapes, func(shape *Shape) bool {
		return shape.name == name
	})
	if index < 0 {
		return nil, false
	}
	return catalog.shapes[index], true
}

// MaxSize returns the largest bounding box side in the catalog
func (catalog *Catalog) MaxSize() int {
	size := 0
	for _, shape := range catalog.shapes {
		if shape.size > size {
			size = shape.size
		}
	}
	return size
}
