package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ranger",
	Short: "ranger simulates the thrust of solid rocket motors",
	Long:  `ranger steps a solid rocket motor along its thrust curve and exports the thrust samples.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "really verbose (esp. for configuration)")
	rootCmd.AddCommand(simulateCmd, summaryCmd)
}
