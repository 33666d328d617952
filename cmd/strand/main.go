// Package main implements the strand command line interface.
//
// strand is a small HTTP service that stores strings, computes derived
// properties for each (length, palindrome check, unique characters, word
// count, SHA-256 fingerprint, character frequency), and serves
// retrieval/filtering over them, including a toy natural-language filter.
//
// Commands:
//
//	strand serve              - run the HTTP server
//	strand analyze <string>   - analyze one string offline and print JSON
//
// Storage is in-memory only; a restart clears all entries.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "strand",
		Short:         "String analysis HTTP service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAnalyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
