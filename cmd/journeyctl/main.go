// Command journeyctl checks and explores journey files without opening a
// window.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var journeyFile string

var rootCmd = &cobra.Command{
	Use:          "journeyctl",
	Short:        "Inspect and walk journey files from the terminal",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&journeyFile, "journey", "j", "", "journey file (default: embedded journey.yaml)")
	rootCmd.AddCommand(validateCmd, sampleCmd, walkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
