package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/openforcefield/bespoke-fit/forcefield"
	"github.com/openforcefield/bespoke-fit/smirks"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <forcefield>",
	Short: "Print a force field's parameter handlers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ff, err := forcefield.LoadFile(args[0])
		if err != nil {
			return fmt.Errorf("loading force field: %w", err)
		}
		printForceField(ff)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func printForceField(ff *forcefield.ForceField) {
	header := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	names := ff.HandlerNames()
	sort.Strings(names)
	for _, name := range names {
		handler, _ := ff.Handler(name)
		header.Printf("%s (%d parameters)\n", name, handler.Len())
		for _, rec := range handler.Records() {
			fmt.Printf("  %s %s",
				runewidth.FillRight(rec.ID(), 6),
				runewidth.FillRight(rec.Smirks(), 40))
			dim.Printf("  %s\n", formatValues(rec))
		}
		fmt.Println()
	}
}

func formatValues(rec *forcefield.ParameterRecord) string {
	fields := rec.Fields()
	keys := make([]string, 0, len(fields))
	for key := range fields {
		if key == smirks.FieldSmirks {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := ""
	for i, key := range keys {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%s", key, fields[key])
	}
	return out
}
