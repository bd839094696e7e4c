package commands

import (
	"github.com/spf13/cobra"

	"github.com/go-leo/spec-filter/product"
)

var demoQueries = []string{
	"color=green",
	"color=blue and size=large",
}

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Filter the built-in apple, tree and house catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, q := range demoQueries {
				if err := a.run(cmd, product.Demo(), q, true); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
