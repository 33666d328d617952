package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreamware/strand/internal/analyzer"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <string>",
		Short: "Analyze one string offline and print its properties as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props := analyzer.Analyze(args[0])
			out, err := json.MarshalIndent(props, "", "  ")
			if err != nil {
				return fmt.Errorf("encode properties: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
