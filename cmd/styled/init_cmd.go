package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	configFile  = ".styled.yaml"
	exampleFile = "components.styled.yaml"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .styled.yaml config file",
	Long: `Create a .styled.yaml configuration file in the current directory with sensible defaults.
With --example, also create a components.styled.yaml definitions file to start from.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		example, _ := cmd.Flags().GetBool("example")

		if err := writeFile(cmd, configFile, defaultConfig, force); err != nil {
			return err
		}
		if example {
			return writeFile(cmd, exampleFile, exampleComponents, force)
		}
		return nil
	},
}

func writeFile(cmd *cobra.Command, path, content string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

const defaultConfig = `# styled configuration
# Docs: https://github.com/yacobolo/styled

# Shared settings
verbose: false
log:
  level: warn              # debug | info | warn | error

# Additional tag names with shorthand constructors
tags: []

# Render settings
render:
  root: .
  include:
    - "**/*.styled.yaml"
    - "**/*.styled.yml"
  components: []           # empty = all
  css: true
  stats: false
  stats-top: 5
  hash-tags: false
  format: text             # text | json
`

const exampleComponents = `# Components rendered by "styled render".
components:
  - name: Title
    host: h1
    tokens: ["text-5xl font-bold"]
    example: {children: Hello}

  - name: Button
    host: button
    tokens:
      - px-4 py-2 rounded-md
      - {sm: text-sm, md: text-lg}
      - {when: primary, then: "bg-purple-600 text-white", else: bg-gray-200}
    defaults: {type: button}
    example: {primary: true, children: Save}

  - name: LinkButton
    host: "@Button"
    tokens: [underline]
    example: {as: a, href: "/docs", children: Docs}
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
	initCmd.Flags().Bool("example", false, "Also create an example definitions file")
}
