package interactive

import (
	"context"
	"errors"
	"fmt"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/chores/internal/config/colors"
	"github.com/thenoetrevino/chores/internal/models"
	"github.com/thenoetrevino/chores/internal/types"
)

// HuhPrompter prompts on the terminal with huh forms
type HuhPrompter struct {
	theme huh.Theme
}

// NewHuhPrompter creates a prompter styled with the given color scheme
func NewHuhPrompter(scheme colors.ColorScheme) *HuhPrompter {
	return &HuhPrompter{theme: Theme(scheme)}
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// ValidateDate is the date input validator
func ValidateDate(s string) error {
	_, err := models.ParseDate(s)
	return err
}

func (p *HuhPrompter) Date(ctx context.Context, def string) (string, error) {
	date := def
	err := p.run(ctx, huh.NewInput().
		Title("Date:").
		Description(models.DateFormatHint).
		Placeholder(def).
		Validate(ValidateDate).
		Value(&date))
	return date, err
}

func (p *HuhPrompter) Person(ctx context.Context, persons []models.Person, def types.PersonID) (models.Person, error) {
	options := make([]huh.Option[int], len(persons))
	selected := 0
	for i, person := range persons {
		options[i] = huh.NewOption(person.String(), i)
		if person.ID == def {
			selected = i
		}
	}

	err := p.run(ctx, huh.NewSelect[int]().
		Title("Person:").
		Options(options...).
		Value(&selected))
	if err != nil {
		return models.Person{}, err
	}
	return persons[selected], nil
}

func (p *HuhPrompter) Chore(ctx context.Context, chores []models.Chore) (models.Chore, error) {
	options := make([]huh.Option[int], len(chores))
	for i, chore := range chores {
		options[i] = huh.NewOption(chore.String(), i)
	}

	selected := 0
	err := p.run(ctx, huh.NewSelect[int]().
		Title("Chore:").
		Options(options...).
		Value(&selected))
	if err != nil {
		return models.Chore{}, err
	}
	return chores[selected], nil
}

func (p *HuhPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	ok := true
	err := p.run(ctx, huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&ok))
	if err != nil {
		return false, fmt.Errorf("confirmation: %w", err)
	}
	return ok, nil
}

// Theme builds a huh theme from a color scheme
func Theme(scheme colors.ColorScheme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color(scheme.Accent)
		success := lipgloss.Color(scheme.Success)
		subtle := lipgloss.Color(scheme.Subtle)
		normal := lipgloss.Color(scheme.Normal)
		errorColor := lipgloss.Color(scheme.Error)

		t.Focused.Base = t.Focused.Base.BorderForeground(accent)
		t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color(scheme.Title)).Bold(true)
		t.Focused.Description = t.Focused.Description.Foreground(subtle)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorColor)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorColor)
		t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
		t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(success)
		t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(normal)
		t.Focused.FocusedButton = t.Focused.FocusedButton.
			Foreground(lipgloss.Color(scheme.SelectedBg)).
			Background(accent).
			Bold(true)
		t.Focused.BlurredButton = t.Focused.BlurredButton.
			Foreground(normal).
			Background(lipgloss.Color(scheme.SelectedBg))
		t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(errorColor)
		t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

		return t
	})
}
