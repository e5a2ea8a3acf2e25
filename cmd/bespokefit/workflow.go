package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openforcefield/bespoke-fit/workflow"
)

var workflowCmd = &cobra.Command{
	Use:   "workflow [template]",
	Short: "Print a pre-built collection workflow's stages",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(strings.Join(workflow.TemplateNames(), "\n"))
			return nil
		}
		stages, err := workflow.Template(args[0])
		if err != nil {
			return err
		}
		header := color.New(color.FgCyan, color.Bold)
		header.Printf("%s (%d stages)\n", args[0], len(stages))
		for i, stage := range stages {
			fmt.Printf("  %d. %s (%s, %s)\n", i+1, stage.Method, stage.Precedence, stage.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workflowCmd)
}
