package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/coin/core/logger"
	"github.com/josephlewis42/coin/core/vos"
)

// traceCmd runs the interpreter and appends its events to a file.
var traceCmd = &cobra.Command{
	Use:   "trace EVENTS.jsonl",
	Short: "Run the interpreter and log every command to a file.",
	Long: `Run the interpreter on the host like coin does and append one JSON
object per handled line to EVENTS.jsonl. See "coin events report".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		fd, err := os.OpenFile(args[0], os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer fd.Close()

		events := logger.NewJSONLinesLogRecorder(fd).NewSession()
		files := vos.NewVIOAdapter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		return runInterpreter(cmd, vos.HostOS{}, files, events)
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
