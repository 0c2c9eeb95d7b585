package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/fsmx/definition"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the definition for consistency",
	Long:  `Reports a missing initial state and transitions that lead to undeclared states.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := definition.LoadFile(definitionPath)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d states, initial %q\n", definitionPath, def.States.Len(), def.Initial)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
