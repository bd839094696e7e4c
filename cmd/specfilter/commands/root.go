// Package commands holds the specfilter command tree.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-leo/spec-filter/internal/config"
	"github.com/go-leo/spec-filter/internal/logger"
)

// app is what every subcommand needs once flags are parsed.
type app struct {
	config *config.Config
	logger logger.Logger
}

// NewRootCommand builds the specfilter command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	var configFile string

	root := &cobra.Command{
		Use:   "specfilter",
		Short: "Filter product catalogs with composable specifications",
		Long: `specfilter selects the products of a catalog that satisfy a query.

Queries combine attribute tests with and, or and not:

  color=green
  color=blue and size=large
  (size=large or color=red) and name!="House"

Examples:
  specfilter demo
  specfilter filter --catalog products.yaml --query 'color=green'
  specfilter filter --catalog products.json --query 'size=large' --output json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(configFile)
			if err != nil {
				return err
			}
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			a.config = cfg
			a.logger = logger.NewWithWriter(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML configuration file")
	flags.String("log-level", "", "log level: trace, debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")
	flags.StringP("output", "o", "", "output format: text or json")

	root.AddCommand(newFilterCommand(a), newDemoCommand(a))
	return root
}

// bindFlags lets flags set on the command line override every other source.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
		config.KeyOutput:    "output",
		config.KeyCatalog:   "catalog",
	}
	for key, name := range bindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}
