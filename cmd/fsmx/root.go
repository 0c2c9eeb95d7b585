package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/comalice/fsmx/internal/cli"
	"github.com/comalice/fsmx/internal/logging"
)

var (
	cfg    cli.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fsmx",
	Short: "fsmx drives a finite-state machine from a YAML or JSON definition",
	Long: `fsmx loads a state table (initial state plus per-state transitions) and lets you
trigger events, jump between states and walk the undo/redo history.

Defaults come from the environment (FSMX_DEFINITION, FSMX_LOG_LEVEL, FSMX_PROMPT),
optionally loaded from a .env file in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(os.Stderr, cfg.LogLevel)
		if !cmd.Flags().Changed("file") {
			definitionPath = cfg.Definition
		}
		return nil
	},
}

var definitionPath string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	var err error
	cfg, err = cli.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&definitionPath, "file", "f", "", "definition file (.yaml, .yml or .json); defaults to $FSMX_DEFINITION")
}
