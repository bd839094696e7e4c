package product

import (
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Catalog is an ordered list of products.
type Catalog struct {
	products []Product
}

type document struct {
	Products []Product `json:"products" yaml:"products"`
}

// NewCatalog keeps products in the given order. Every product needs a name.
func NewCatalog(products ...Product) (*Catalog, error) {
	for i, p := range products {
		if _, err := New(p.Name, p.Color, p.Size); err != nil {
			return nil, errors.Wrapf(err, "product %d", i)
		}
	}
	return &Catalog{products: slices.Clone(products)}, nil
}

// Demo returns the apple, tree and house catalog.
func Demo() *Catalog {
	return &Catalog{products: []Product{
		{Name: "Apple", Color: Green, Size: Small},
		{Name: "Tree", Color: Green, Size: Large},
		{Name: "House", Color: Blue, Size: Large},
	}}
}

// All yields the products in catalog order.
func (c *Catalog) All() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range c.products {
			if !yield(p) {
				return
			}
		}
	}
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Find returns the first product called name.
func (c *Catalog) Find(name string) (Product, bool) {
	i := slices.IndexFunc(c.products, func(p Product) bool { return p.Name == name })
	if i < 0 {
		return Product{}, false
	}
	return c.products[i], true
}

// Load reads a catalog file. The format follows the extension: .json, .yaml or .yml.
func Load(path string) (*Catalog, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open catalog %s", path)
	}
	defer f.Close()

	catalog, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "load catalog %s", path)
	}
	return catalog, nil
}

// Decode reads a {"products": [...]} document in the given format.
func Decode(r io.Reader, format string) (*Catalog, error) {
	var doc document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "decode json")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "decode yaml")
		}
	default:
		return nil, errors.Wrapf(ErrFormat, "%q", format)
	}
	return NewCatalog(doc.Products...)
}

// Encode writes the catalog as a document Decode can read back.
func (c *Catalog) Encode(w io.Writer, format string) error {
	doc := document{Products: c.products}
	if doc.Products == nil {
		doc.Products = []Product{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(doc), "encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	default:
		return errors.Wrapf(ErrFormat, "%q", format)
	}
}

func formatOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrFormat, "extension %q of %s", ext, path)
	}
}
