package timeline

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// New builds the model for the requested variant. The props are a tagged
// union: exactly the option set matching Variant must be set, and options
// for the other mode must be nil.
func New(props Props) (tea.Model, error) {
	switch props.Variant {
	case VariantStory:
		if props.Story == nil {
			return nil, fmt.Errorf("story variant requires story options")
		}
		if props.Feed != nil {
			return nil, fmt.Errorf("story variant cannot carry feed options")
		}
		return NewStory(*props.Story), nil

	case VariantFeed:
		if props.Feed == nil {
			return nil, fmt.Errorf("feed variant requires feed options")
		}
		if props.Story != nil {
			return nil, fmt.Errorf("feed variant cannot carry story options")
		}
		return NewFeed(*props.Feed), nil

	case "":
		return nil, fmt.Errorf("variant is required")

	default:
		return nil, fmt.Errorf("unknown variant %q", props.Variant)
	}
}
