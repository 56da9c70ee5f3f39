// Package catalog loads styled definitions from YAML files.
//
// A definitions file lists components:
//
//	components:
//	  - name: Title
//	    host: h1
//	    tokens: ["text-5xl font-bold"]
//	  - name: Button
//	    host: button
//	    tokens:
//	      - px-4 py-2
//	      - {sm: text-sm, md: text-lg}
//	      - {when: primary, then: bg-purple-600, else: bg-gray-200}
//	    defaults: {type: button}
//	  - name: Link
//	    host: "@Button"
//	    tokens: [underline]
//
// A host starting with "@" composes another component of the catalog.
package catalog

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// File is a decoded definitions file.
type File struct {
	Path       string      `yaml:"-"`
	Components []Component `yaml:"components" validate:"required,min=1"`
}

// Component is one definition in a file.
type Component struct {
	Name     string         `yaml:"name" validate:"required,component_name"`
	Host     string         `yaml:"host" validate:"required,host"`
	Tokens   []any          `yaml:"tokens"`
	Defaults map[string]any `yaml:"defaults"`
	// Example holds properties the command line renders the component with.
	Example map[string]any `yaml:"example"`

	line int
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads, decodes and validates the definitions file at path.
func Load(path string) (*File, error) {
	// #nosec G304 - path comes from the command line or discovery
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DefinitionError{Path: path, Message: "cannot read file", Err: err}
	}
	return Parse(path, data)
}

// Parse decodes and validates a definitions file.
func Parse(path string, data []byte) (*File, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &DefinitionError{Path: path, Line: extractLine(err), Message: err.Error(), Err: err}
	}

	file := &File{Path: path}
	if err := root.Decode(file); err != nil {
		return nil, &DefinitionError{Path: path, Line: extractLine(err), Message: err.Error(), Err: err}
	}
	recordLines(&root, file)

	if err := Validate(file); err != nil {
		return nil, err
	}
	return file, nil
}

// recordLines remembers where each component starts for error messages.
func recordLines(root *yaml.Node, file *File) {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return
	}
	doc := root.Content[0]
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "components" || doc.Content[i+1].Kind != yaml.SequenceNode {
			continue
		}
		for j, item := range doc.Content[i+1].Content {
			if j < len(file.Components) {
				file.Components[j].line = item.Line
			}
		}
	}
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

// Line returns the line the component starts on, or 0.
func (c Component) Line() int { return c.line }

// Ref returns the referenced component name for "@Name" hosts.
func (c Component) Ref() (string, bool) {
	if len(c.Host) > 1 && c.Host[0] == '@' {
		return c.Host[1:], true
	}
	return "", false
}

func (c Component) String() string {
	return fmt.Sprintf("%s(%s)", c.Name, c.Host)
}
