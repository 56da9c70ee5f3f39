package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/styled/internal/report"
)

const testComponents = `
components:
  - name: Title
    host: h1
    tokens: ["text-5xl font-bold"]
    example: {children: Hello}
  - name: Button
    host: button
    tokens:
      - px-4 py-2
      - {when: primary, then: bg-purple-600, else: bg-gray-200}
    defaults: {type: button}
    example: {children: Save}
`

// execute runs the root command with fresh configuration and flags.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetKoanf()
	resetFlags(rootCmd)
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

func writeComponents(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ui.styled.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testComponents), 0644))
	return path
}

func TestRenderCommand(t *testing.T) {
	path := writeComponents(t)

	out, err := execute(t, "render", path, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)

	assert.Contains(t, out, "Title Styled(h1) .tw-f55wom")
	assert.Contains(t, out, `<h1 class="tw-f55wom text-5xl font-bold">Hello</h1>`)
	assert.Contains(t, out, `type="button">Save</button>`)
	assert.Contains(t, out, "bg-gray-200")
	assert.Contains(t, out, "Generated CSS")
	assert.Contains(t, out, ".font-bold{font-weight:700}")
	assert.Contains(t, out, "2 components")
	assert.NotContains(t, out, "Stylesheet Statistics")
}

func TestRenderCommand_Flags(t *testing.T) {
	path := writeComponents(t)

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "component filter",
			args:     []string{"--component", "Button"},
			contains: []string{"Button", "1 component,"},
			excludes: []string{"<h1"},
		},
		{
			name:     "no css",
			args:     []string{"--css=false"},
			contains: []string{"<h1"},
			excludes: []string{"Generated CSS"},
		},
		{
			name:     "statistics",
			args:     []string{"--stats", "--stats-top", "1"},
			contains: []string{"Stylesheet Statistics", "Declarations:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render", path}, tt.args...)
			out, err := execute(t, args...)
			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRenderCommand_JSON(t *testing.T) {
	out, err := execute(t, "render", writeComponents(t), "--format", "json", "--stats")
	require.NoError(t, err)

	var result report.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.Summary.Components)
	require.Len(t, result.Components, 2)
	assert.Equal(t, "Title", result.Components[0].Name)
	assert.Equal(t, ".tw-f55wom", result.Components[0].Selector)
	assert.Equal(t, `<h1 class="tw-f55wom text-5xl font-bold">Hello</h1>`, result.Components[0].Markup)
	assert.Len(t, result.Rules, result.Summary.Rules)
	require.NotNil(t, result.Stats)
	assert.Equal(t, result.Summary.Rules, result.Stats.Rules)

	_, err = execute(t, "render", writeComponents(t), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRenderCommand_Quiet(t *testing.T) {
	out, err := execute(t, "render", writeComponents(t), "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderCommand_ConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".styled.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("render:\n  css: false\n"), 0644))
	path := writeComponents(t)

	out, err := execute(t, "render", path, "--config", configPath)
	require.NoError(t, err)
	assert.NotContains(t, out, "Generated CSS")

	out, err = execute(t, "render", path, "--config", configPath, "--css")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated CSS")
}

func TestRenderCommand_Discovery(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ui"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ui", "a.styled.yaml"), []byte(testComponents), 0644))

	out, err := execute(t, "render", "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "2 components")

	_, err = execute(t, "render", "--root", t.TempDir())
	require.ErrorIs(t, err, errNoDefinitions)
}

func TestRenderCommand_Errors(t *testing.T) {
	_, err := execute(t, "render", writeComponents(t), "--component", "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown component "Nope"`)

	_, err = execute(t, "render", filepath.Join(t.TempDir(), "missing.styled.yaml"))
	require.Error(t, err)

	_, err = execute(t, "render", writeComponents(t), "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestHashCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "string tokens", args: []string{"hash", "h1", "text-5xl font-bold"}, want: "tw-f55wom\n"},
		{name: "single token", args: []string{"hash", "h1", "x"}, want: "tw-zr20ac\n"},
		{name: "selector", args: []string{"hash", "--selector", "span", "text-sm"}, want: ".tw-oog4p9\n"},
		{name: "json list", args: []string{"hash", "--json", "h1", `["text-5xl font-bold"]`}, want: "tw-1ywwrkz\n"},
		{name: "json keeps key order", args: []string{"hash", "--json", "button", `{"sm":"text-sm","md":"text-lg"}`}, want: "tw-7ofjto\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestHashCommand_Errors(t *testing.T) {
	_, err := execute(t, "hash", "--json", "h1", "{not json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")

	_, err = execute(t, "hash")
	require.Error(t, err)
}

func TestTagsCommand(t *testing.T) {
	out, err := execute(t, "tags", "h")
	require.NoError(t, err)
	assert.Contains(t, out, "h1\n")
	assert.Contains(t, out, "header\n")
	assert.NotContains(t, out, "div")

	out, err = execute(t, "tags", "--tag", "x-widget", "x-")
	require.NoError(t, err)
	assert.Equal(t, "x-widget\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "styled dev\n", out)
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "styled")

	_, err = execute(t, "completion", "tcsh")
	require.Error(t, err)
}
