package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/styled"
)

var hashCmd = &cobra.Command{
	Use:   "hash <host> [tokens...]",
	Short: "Print the class name of a definition",
	Long: `Print the identifier a definition of host with the given tokens gets.

Each token argument is a string token. With --json, every token argument
is parsed as JSON instead and keeps its key order.`,
	Example: `  styled hash h1 "text-5xl font-bold"
  styled hash --json button '{"sm":"text-sm","md":"text-lg"}'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHash,
}

func init() {
	hashCmd.Flags().Bool("json", false, "Parse token arguments as JSON")
	hashCmd.Flags().Bool("selector", false, "Print the identifier as a class selector")
}

func runHash(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	selector, _ := cmd.Flags().GetBool("selector")

	tokens, err := hashTokens(args[1:], asJSON)
	if err != nil {
		return err
	}

	def := styled.With(styled.Binding{}).New(args[0], tokens...)
	if selector {
		fmt.Fprintln(cmd.OutOrStdout(), def.String())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), def.ID())
	return nil
}

func hashTokens(args []string, asJSON bool) ([]styled.Token, error) {
	tokens := make([]styled.Token, len(args))
	for i, arg := range args {
		if !asJSON {
			tokens[i] = arg
			continue
		}
		if !json.Valid([]byte(arg)) {
			return nil, fmt.Errorf("token %d is not valid JSON: %s", i+1, arg)
		}
		tokens[i] = json.RawMessage(arg)
	}
	return tokens, nil
}
