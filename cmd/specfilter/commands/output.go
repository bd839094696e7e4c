package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	"github.com/go-leo/spec-filter/internal/config"
	"github.com/go-leo/spec-filter/product"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type result struct {
	Query         string            `json:"query"`
	Specification string            `json:"specification,omitempty"`
	Products      []product.Product `json:"products"`
}

func render(w io.Writer, output string, res result) error {
	if output == config.OutputJSON {
		if res.Products == nil {
			res.Products = []product.Product{}
		}
		return errors.Wrap(json.NewEncoder(w).Encode(res), "encode result")
	}

	if _, err := fmt.Fprintf(w, "%s:\n", res.Query); err != nil {
		return err
	}
	if res.Specification != "" {
		if _, err := fmt.Fprintf(w, "  as %s\n", res.Specification); err != nil {
			return err
		}
	}
	if len(res.Products) == 0 {
		_, err := fmt.Fprintln(w, "  no products")
		return err
	}
	for _, p := range res.Products {
		if _, err := fmt.Fprintf(w, "  - %s (%s, %s)\n", p.Name, p.Color, p.Size); err != nil {
			return err
		}
	}
	return nil
}
