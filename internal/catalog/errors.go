package catalog

import "fmt"

// DefinitionError reports a problem in a definitions file.
type DefinitionError struct {
	Path      string
	Line      int
	Component string
	Field     string
	Message   string
	Err       error
}

func (e *DefinitionError) Error() string {
	if e == nil {
		return ""
	}

	location := e.Path
	if e.Line > 0 {
		location = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}

	subject := e.Component
	if e.Field != "" {
		if subject != "" {
			subject += "."
		}
		subject += e.Field
	}

	switch {
	case location != "" && subject != "":
		return fmt.Sprintf("%s: %s: %s", location, subject, e.Message)
	case location != "":
		return fmt.Sprintf("%s: %s", location, e.Message)
	case subject != "":
		return fmt.Sprintf("%s: %s", subject, e.Message)
	default:
		return e.Message
	}
}

// Unwrap exposes the underlying error.
func (e *DefinitionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
