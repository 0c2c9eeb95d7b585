package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/definition"
	"github.com/comalice/fsmx/internal/cli"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive shell on the machine",
	Long:  `Loads and validates the definition, then reads commands from stdin. Type 'help' for the command list.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := definition.LoadFile(definitionPath)
		if err != nil {
			return err
		}

		m, err := fsmx.New(def, fsmx.WithLogger(logger))
		if err != nil {
			return err
		}
		logger.Info("machine loaded", "file", definitionPath, "initial", string(m.Initial()), "states", len(m.States()))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sh := cli.NewShell(m, cmd.InOrStdin(), cmd.OutOrStdout(),
			cli.WithPrompt(cfg.Prompt),
			cli.WithShellLogger(logger),
		)
		if err := sh.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
