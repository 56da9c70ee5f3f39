package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/styled"
)

var tagsCmd = &cobra.Command{
	Use:   "tags [prefix]",
	Short: "List the tag names that have shorthand constructors",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		styled.RegisterTags(getStringsWithFallback("tag", "tags", nil)...)

		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}

		out := cmd.OutOrStdout()
		for _, name := range styled.Tags() {
			if strings.HasPrefix(name, prefix) {
				fmt.Fprintln(out, name)
			}
		}
		return nil
	},
}

func init() {
	tagsCmd.Flags().StringSlice("tag", nil, "Register additional tag names")
}
