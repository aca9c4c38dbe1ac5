package timeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/marcus/retro/internal/dateparse"
	"github.com/marcus/retro/internal/models"
)

var errTitleRequired = errors.New("o título é obrigatório")

// FormMode represents the mode of the composer form
type FormMode string

const (
	FormModeCreate FormMode = "create"
	FormModeEdit   FormMode = "edit"
)

// FormState holds the state for the event composer form
type FormState struct {
	Mode    FormMode
	Form    *huh.Form
	EventID string // For edit mode - the event being edited

	// Bound form values
	Title       string
	Date        string // Free text, resolved through dateparse on submit
	Description string
	Location    string
	Tags        string // Comma-separated
	Gallery     string // Comma-separated URLs
	Milestone   bool
}

// NewFormState creates a new form state for composing an event
func NewFormState(mode FormMode) *FormState {
	state := &FormState{
		Mode: mode,
		Date: "hoje",
	}
	state.buildForm()
	return state
}

// NewFormStateForEdit creates a form state populated with existing event data
func NewFormStateForEdit(event *models.Event) *FormState {
	state := &FormState{
		Mode:        FormModeEdit,
		EventID:     event.ID,
		Title:       event.Title,
		Date:        event.Date,
		Description: event.Description,
		Location:    event.Location,
		Tags:        strings.Join(event.Tags, ", "),
		Gallery:     strings.Join(event.Gallery, ", "),
		Milestone:   event.IsMilestone,
	}
	state.buildForm()
	return state
}

// buildForm constructs the huh.Form based on current state
func (fs *FormState) buildForm() {
	titleStr := "Novo capítulo"
	if fs.Mode == FormModeEdit {
		titleStr = "Editar capítulo: " + fs.EventID
	}

	group := huh.NewGroup(
		huh.NewInput().
			Title("Título").
			Value(&fs.Title).
			Placeholder("Nosso primeiro encontro...").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errTitleRequired
				}
				return nil
			}),
		huh.NewInput().
			Title("Data").
			Value(&fs.Date).
			Placeholder("2024-02-14, hoje, ontem, -2w, sexta").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return nil
				}
				if _, err := dateparse.ParseInput(s); err != nil {
					return fmt.Errorf("data não reconhecida: %s", s)
				}
				return nil
			}),
		huh.NewText().
			Title("Descrição").
			Value(&fs.Description).
			Placeholder("Conte como foi...").
			Lines(3),
		huh.NewInput().
			Title("Local").
			Value(&fs.Location).
			Placeholder("São Paulo, SP"),
		huh.NewInput().
			Title("Tags").
			Value(&fs.Tags).
			Placeholder("viagem, aniversário, ..."),
		huh.NewInput().
			Title("Galeria").
			Value(&fs.Gallery).
			Placeholder("foto1.jpg, foto2.jpg"),
		huh.NewConfirm().
			Title("Marco").
			Description("Marcos ganham destaque na linha do tempo").
			Value(&fs.Milestone),
	).Title(titleStr)

	fs.Form = huh.NewForm(group)
	fs.Form.WithTheme(huh.ThemeDracula())
}

// ToEvent converts form values to an Event model. The date field is
// resolved through the flexible parser so keywords and offsets land as a
// concrete date.
func (fs *FormState) ToEvent() *models.Event {
	date := strings.TrimSpace(fs.Date)
	if date != "" {
		if resolved, err := dateparse.ParseInput(date); err == nil {
			date = resolved
		}
	}

	gallery := parseList(fs.Gallery)
	event := &models.Event{
		ID:          fs.EventID,
		Title:       strings.TrimSpace(fs.Title),
		Date:        date,
		Description: fs.Description,
		Location:    strings.TrimSpace(fs.Location),
		Tags:        parseList(fs.Tags),
		Gallery:     gallery,
		IsMilestone: fs.Milestone,
	}
	if len(gallery) > 0 {
		event.CoverURL = gallery[0]
	}
	return event
}

// parseList parses a comma-separated string into a slice of trimmed strings
func parseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
