package main

import (
	"maps"

	theme "github.com/dangdungcntt/go-theme"
	"github.com/spf13/cobra"
)

var (
	flagSet    []string
	flagParams string
)

var renderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Render a template of the active theme to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		params, err := renderParams(flagParams, flagSet)
		if err != nil {
			return err
		}
		e, _ := newEngine(cfg)
		return e.RenderTo(cmd.OutOrStdout(), args[0], params)
	},
}

func init() {
	renderCmd.Flags().StringArrayVar(&flagSet, "set", nil, "template parameter as key=value (repeatable)")
	renderCmd.Flags().StringVar(&flagParams, "params", "", "YAML file of template parameters")
}

// renderParams loads the params file, then applies --set values over it.
func renderParams(file string, set []string) (theme.Params, error) {
	params := theme.Params{}
	if file != "" {
		p, err := theme.LoadParams(file)
		if err != nil {
			return nil, err
		}
		maps.Copy(params, p)
	}
	overrides, err := theme.ParseSetArgs(set)
	if err != nil {
		return nil, err
	}
	maps.Copy(params, overrides)
	return params, nil
}
