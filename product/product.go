// Package product is a small catalog of named, coloured, sized products
// used to exercise specifications, filters and queries.
package product

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Color of a product.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

var colorNames = []string{"red", "green", "blue"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
	return colorNames[c]
}

// ParseColor reads a color name, ignoring case.
func ParseColor(s string) (Color, error) {
	i, err := parseEnum(colorNames, s)
	if err != nil {
		return 0, errors.Wrap(err, "color")
	}
	return Color(i), nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Size of a product.
type Size int

const (
	Small Size = iota
	Medium
	Large
	Yuge
)

var sizeNames = []string{"small", "medium", "large", "yuge"}

func (s Size) String() string {
	if s < 0 || int(s) >= len(sizeNames) {
		return "Size(" + strconv.Itoa(int(s)) + ")"
	}
	return sizeNames[s]
}

// ParseSize reads a size name, ignoring case.
func ParseSize(s string) (Size, error) {
	i, err := parseEnum(sizeNames, s)
	if err != nil {
		return 0, errors.Wrap(err, "size")
	}
	return Size(i), nil
}

func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Size) UnmarshalText(text []byte) error {
	v, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Product is an item of the catalog.
type Product struct {
	Name  string `json:"name" yaml:"name"`
	Color Color  `json:"color" yaml:"color"`
	Size  Size   `json:"size" yaml:"size"`
}

// New creates a product. The name is required.
func New(name string, color Color, size Size) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return Product{}, ErrNameEmpty
	}
	return Product{Name: name, Color: color, Size: size}, nil
}

func parseEnum(names []string, s string) (int, error) {
	for i, name := range names {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return i, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownValue, "%q, want one of %s", s, strings.Join(names, ", "))
}
