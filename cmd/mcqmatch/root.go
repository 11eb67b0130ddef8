package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BurntSushi/torsmatch/cmd/util"
)

type app struct {
	v    *viper.Viper
	opts util.Options
}

func newRootCommand() *cobra.Command {
	a := &app{v: util.NewViper()}
	var configPath string

	root := &cobra.Command{
		Use:   "mcqmatch",
		Short: "Find fragments of structures with similar torsion angles.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			opts, err := util.LoadOptions(a.v, configPath)
			if err != nil {
				return err
			}
			if err := util.SetupLogging(opts.LogLevel, opts.LogFormat); err != nil {
				return err
			}
			a.opts = opts
			return nil
		},
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "",
		"A YAML file with default values for any option.")
	pf.String("log-level", "warn", "One of debug, info, warn or error.")
	pf.String("log-format", "console", "One of console or json.")

	root.AddCommand(newAlignCommand(a), newAnglesCommand())
	return root
}
