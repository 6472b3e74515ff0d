package main

import (
	"encoding/json"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

type componentStatus struct {
	Type  string `json:"type"`
	State any    `json:"state"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the internal state of the store as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, p := loadPresenter(cmd, newTerminalView())
		defer store.Close()

		var out []componentStatus
		for _, c := range append(store.Components(), introspection.Introspectable(p)) {
			s := componentStatus{State: c.State()}
			if comp, ok := c.(introspection.Component); ok {
				s.Type = comp.ComponentType()
			}
			out = append(out, s)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
