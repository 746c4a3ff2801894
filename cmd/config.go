package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/coin/core/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration coin is built with.",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the compiled-in configuration.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.Default().Marshal()
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a configuration file.",
	Long:  `Validate a configuration file. A directory is taken to hold a config.yaml.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if _, err := config.Load(args[0]); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configCheckCmd)
}
