package product

import (
	"github.com/go-leo/spec-filter/query"
	"github.com/go-leo/spec-filter/specification"
)

var (
	_ specification.Specification[Product] = ColorSpecification{}
	_ specification.Specification[Product] = SizeSpecification{}
	_ specification.Specification[Product] = NameSpecification{}
)

// ColorSpecification is satisfied by products of one color.
type ColorSpecification struct {
	color Color
}

func NewColorSpecification(color Color) ColorSpecification {
	return ColorSpecification{color: color}
}

func (spec ColorSpecification) IsSatisfiedBy(p Product) bool {
	return p.Color == spec.color
}

func (spec ColorSpecification) String() string {
	return "color=" + spec.color.String()
}

// SizeSpecification is satisfied by products of one size.
type SizeSpecification struct {
	size Size
}

func NewSizeSpecification(size Size) SizeSpecification {
	return SizeSpecification{size: size}
}

func (spec SizeSpecification) IsSatisfiedBy(p Product) bool {
	return p.Size == spec.size
}

func (spec SizeSpecification) String() string {
	return "size=" + spec.size.String()
}

// NameSpecification is satisfied by the products with exactly this name.
type NameSpecification struct {
	name string
}

func NewNameSpecification(name string) NameSpecification {
	return NameSpecification{name: name}
}

func (spec NameSpecification) IsSatisfiedBy(p Product) bool {
	return p.Name == spec.name
}

func (spec NameSpecification) String() string {
	return "name=" + spec.name
}

// Registry returns a query registry knowing the name, color and size attributes.
func Registry() *query.Registry[Product] {
	r := query.NewRegistry[Product]()
	_ = r.Register("name", func(value string) (specification.Specification[Product], error) {
		return NewNameSpecification(value), nil
	})
	_ = r.Register("color", func(value string) (specification.Specification[Product], error) {
		c, err := ParseColor(value)
		if err != nil {
			return nil, err
		}
		return NewColorSpecification(c), nil
	})
	_ = r.Register("size", func(value string) (specification.Specification[Product], error) {
		s, err := ParseSize(value)
		if err != nil {
			return nil, err
		}
		return NewSizeSpecification(s), nil
	})
	return r
}
