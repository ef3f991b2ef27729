package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/technik/ranger"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <profile>",
	Short: "Print the impulse class and figures of a thrust curve file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := ranger.LoadProfile(args[0])
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		fmt.Fprintln(cmd.OutOrStdout(), ranger.Summarize(name, p))
		return nil
	},
}
