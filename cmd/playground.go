package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/coin/commands"
	"github.com/josephlewis42/coin/core/config"
	"github.com/josephlewis42/coin/core/logger"
	"github.com/josephlewis42/coin/core/ttylog"
	"github.com/josephlewis42/coin/core/vos"
)

var recordPath string

// newPlaygroundOS builds an in-memory OS with every program in commands
// installed.
func newPlaygroundOS(cfg *config.Configuration) (*vos.MemOS, error) {
	memOS := vos.NewMemOS(afero.NewMemMapFs())
	if err := commands.Install(memOS); err != nil {
		return nil, err
	}

	vfs := memOS.Fs()
	for _, dir := range []string{cfg.Home, "/tmp", "/etc"} {
		if err := vfs.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	if err := afero.WriteFile(vfs, "/etc/hostname", []byte("playground\n"), 0644); err != nil {
		return nil, err
	}

	return memOS, nil
}

// playgroundCmd runs the interpreter over an in-memory OS for testing.
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Run the interpreter over an in-memory OS.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		playgroundLogger := log.New(cmd.ErrOrStderr(), "[playground] ", 0)

		memOS, err := newPlaygroundOS(config.Default())
		if err != nil {
			return err
		}

		logFd, err := os.CreateTemp("", "coin-playground-*.jsonl")
		if err != nil {
			return err
		}
		defer logFd.Close()
		events := logger.NewJSONLinesLogRecorder(logFd).NewSession()

		playgroundLogger.Printf("Logging to: file://%s\n", logFd.Name())
		playgroundLogger.Printf("See logs with: coin events report %s\n", logFd.Name())
		playgroundLogger.Printf("Programs: %s\n", strings.Join(programNames(memOS), " "))
		playgroundLogger.Println(strings.Repeat("=", 80))

		var files vos.VIO = vos.NewVIOAdapter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		if recordPath != "" {
			castFd, err := os.Create(recordPath)
			if err != nil {
				return err
			}
			defer castFd.Close()

			files = ttylog.NewRecorder(files, ttylog.NewAsciicastLogSink(castFd))
			playgroundLogger.Printf("Recording to: %s\n", recordPath)
		}

		if err := runInterpreter(cmd, memOS, files, events); err != nil {
			return err
		}

		fmt.Fprintln(cmd.ErrOrStderr())
		playgroundLogger.Printf("Session %s ended\n", events.SessionID())
		return nil
	},
}

func programNames(memOS *vos.MemOS) []string {
	var names []string
	for _, p := range memOS.Programs() {
		if strings.HasPrefix(p, "/bin/") {
			names = append(names, strings.TrimPrefix(p, "/bin/"))
		}
	}
	return names
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
	playgroundCmd.Flags().StringVar(&recordPath, "record", "", "record the session to an asciicast file")
}
