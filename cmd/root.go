package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/coin/core/config"
	"github.com/josephlewis42/coin/core/logger"
	"github.com/josephlewis42/coin/core/shell"
	"github.com/josephlewis42/coin/core/vos"
)

// rootCmd runs the interpreter when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "coin",
	Short: "A minimal interactive command interpreter",
	Long: `coin reads a line, splits it on spaces and runs it. It knows four
builtins: exit, cd, "echo $?" and !!. Everything else is looked up in a fixed
list of directories and run with a fixed environment.

Arguments that don't name a subcommand are ignored.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		return runInterpreter(cmd, vos.HostOS{}, vos.NewVIOAdapter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()), logger.NewNopLogger().Sessionless())
	},
}

// runInterpreter runs a session until exit or the end of input. SIGINT
// abandons the line being typed instead of killing the process.
func runInterpreter(cmd *cobra.Command, virtOS vos.VOS, files vos.VIO, events *logger.SessionLogger) error {
	appLogger := log.New(cmd.ErrOrStderr(), "[coin] ", 0)

	interrupts := shell.NewInterruptFlag()
	stop := shell.CatchInterrupts(interrupts)
	defer stop()

	session := shell.NewSession(
		virtOS,
		config.Default(),
		files,
		shell.WithLogger(appLogger),
		shell.WithEvents(events),
		shell.WithInterrupts(interrupts),
	)
	session.Run()
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
