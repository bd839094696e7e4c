package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/go-leo/spec-filter/decorator"
	"github.com/go-leo/spec-filter/filter"
	"github.com/go-leo/spec-filter/product"
	"github.com/go-leo/spec-filter/specification"
)

var errNoCatalog = errors.New("no catalog given")

func newFilterCommand(a *app) *cobra.Command {
	var (
		expr    string
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Print the catalog products matching a query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.config.Catalog
			if path == "" {
				return errors.WithHint(errNoCatalog, "pass --catalog or set catalog in the config file")
			}
			catalog, err := product.Load(path)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("catalog", path).Int("products", catalog.Len()).Msg("catalog loaded")
			return a.run(cmd, catalog, expr, explain)
		},
	}
	cmd.Flags().String("catalog", "", "catalog file (.json, .yaml or .yml)")
	cmd.Flags().StringVarP(&expr, "query", "q", "", "query expression")
	cmd.Flags().BoolVar(&explain, "explain", false, "print how the query was understood")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

// run filters catalog with expr and writes the result in the configured output format.
func (a *app) run(cmd *cobra.Command, catalog *product.Catalog, expr string, explain bool) error {
	spec, err := product.Registry().Parse(expr)
	if err != nil {
		return errors.Wrapf(err, "query %q", expr)
	}

	counter := &decorator.Counter[product.Product]{}
	evaluated := decorator.Chain[product.Product](spec, counter, decorator.Logging[product.Product](a.logger.Logger))

	seq, err := filter.Filter(catalog.All(), evaluated)
	if err != nil {
		return err
	}
	var matches []product.Product
	for p := range seq {
		matches = append(matches, p)
	}

	a.logger.Info().
		Str("query", expr).
		Int64("evaluated", counter.Evaluated()).
		Int64("matched", counter.Satisfied()).
		Msg("catalog filtered")

	res := result{Query: expr, Products: matches}
	if explain {
		res.Specification = specification.Describe(spec)
	}
	return render(cmd.OutOrStdout(), a.config.Output, res)
}
