package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/definition"
)

var statesCmd = &cobra.Command{
	Use:   "states [event]",
	Short: "List declared states, or those that handle an event",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := definition.LoadFile(definitionPath)
		if err != nil {
			return err
		}
		m, err := fsmx.New(def)
		if err != nil {
			return err
		}

		var event fsmx.EventID
		if len(args) == 1 {
			event = fsmx.EventID(args[0])
		}
		for _, id := range m.StatesFor(event) {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statesCmd)
}
