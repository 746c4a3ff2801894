package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/coin/commands"
	"github.com/josephlewis42/coin/core/shell"
)

// builtinsCmd lists what the interpreter handles itself and what the
// playground provides.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtins and the playground programs.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var builtins []string

		for path := range commands.AllCommands {
			builtins = append(builtins, path)
		}

		for name := range shell.AllBuiltins {
			builtins = append(builtins, "shell:"+name)
		}

		sort.Strings(builtins)

		for _, v := range builtins {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
