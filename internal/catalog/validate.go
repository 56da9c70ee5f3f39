package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/yacobolo/styled"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	componentNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	customElementPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			return componentNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("host", func(fl validator.FieldLevel) bool {
			return validHost(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// validHost accepts vocabulary tags, custom elements and "@Name" references.
func validHost(host string) bool {
	if name, ok := strings.CutPrefix(host, "@"); ok {
		return componentNamePattern.MatchString(name)
	}
	return styled.IsTag(host) || customElementPattern.MatchString(host)
}

// Validate checks the schema of file, the uniqueness of component names and
// the shape of every token. References are checked when a catalog is built.
func Validate(file *File) error {
	if file == nil {
		return &DefinitionError{Message: "definitions file is nil"}
	}

	v := validatorInstance()
	if err := v.Struct(file); err != nil {
		return convertValidationError(file.Path, Component{}, err)
	}

	seen := make(map[string]bool, len(file.Components))
	for i, c := range file.Components {
		if err := v.Struct(c); err != nil {
			if c.Name == "" {
				c.Name = fmt.Sprintf("components[%d]", i)
			}
			return convertValidationError(file.Path, c, err)
		}
		if seen[c.Name] {
			return &DefinitionError{Path: file.Path, Line: c.line, Component: c.Name, Message: "duplicate component name"}
		}
		seen[c.Name] = true

		for j, raw := range c.Tokens {
			if _, err := convertToken(raw); err != nil {
				return &DefinitionError{
					Path:      file.Path,
					Line:      c.line,
					Component: c.Name,
					Field:     fmt.Sprintf("tokens[%d]", j),
					Message:   err.Error(),
					Err:       err,
				}
			}
		}
	}
	return nil
}

func convertValidationError(path string, c Component, err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := strings.ToLower(fe.Field())
		return &DefinitionError{
			Path:      path,
			Line:      c.line,
			Component: c.Name,
			Field:     field,
			Message:   fmt.Sprintf("failed validation for tag '%s' (value %q)", fe.Tag(), fmt.Sprint(fe.Value())),
			Err:       err,
		}
	}
	return &DefinitionError{Path: path, Line: c.line, Component: c.Name, Message: err.Error(), Err: err}
}
