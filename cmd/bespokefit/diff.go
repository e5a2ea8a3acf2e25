package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openforcefield/bespoke-fit/forcefield"
)

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Show what changed between two force-field files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldFF, err := forcefield.LoadFile(args[0])
		if err != nil {
			return fmt.Errorf("loading %s: %w", args[0], err)
		}
		newFF, err := forcefield.LoadFile(args[1])
		if err != nil {
			return fmt.Errorf("loading %s: %w", args[1], err)
		}
		diff, err := forcefield.Diff(oldFF, newFF)
		if err != nil {
			return err
		}
		if diff == "" {
			fmt.Println("force fields are identical")
			return nil
		}
		fmt.Print(diff)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
