package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"activityBoard/internal/lib/flash"
	"activityBoard/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var (
	indexTmpl   = template.Must(template.ParseFS(templatesFS, "templates/base.html", "templates/index.html"))
	confirmTmpl = template.Must(template.ParseFS(templatesFS, "templates/base.html", "templates/confirm.html"))
)

type Participant struct {
	Email     string
	RemoveURL string
}

type Card struct {
	Name         string
	Description  string
	Schedule     string
	Capacity     string
	Participants []Participant
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// SignupForm holds values to prefill the signup form with.
type SignupForm struct {
	Email    string
	Activity string
}

type Page struct {
	Cards          []Card
	Options        []Option
	LoadError      string
	NoParticipants string
	Form           SignupForm
	Flash          *flash.Message
}

type ConfirmPage struct {
	Activity string
	Email    string
	Prompt   string
	Action   string
}

// DisplayActivities builds one card per activity, in roster order.
func DisplayActivities(roster models.Roster) []Card {
	cards := make([]Card, 0, len(roster))

	for _, a := range roster {
		participants := make([]Participant, 0, len(a.Participants))
		for _, email := range a.Participants {
			participants = append(participants, Participant{
				Email:     email,
				RemoveURL: ConfirmURL(a.Name, email),
			})
		}

		cards = append(cards, Card{
			Name:         a.Name,
			Description:  a.Description,
			Schedule:     a.Schedule,
			Capacity:     a.Capacity(),
			Participants: participants,
		})
	}

	return cards
}

// PopulateActivityDropdown returns the select options after the placeholder.
// The list is rebuilt on every call.
func PopulateActivityDropdown(roster models.Roster, selected string) []Option {
	options := make([]Option, 0, len(roster))

	for _, name := range roster.Names() {
		options = append(options, Option{
			Value:    name,
			Label:    name,
			Selected: name == selected,
		})
	}

	return options
}

func NewPage(roster models.Roster, form SignupForm, msg *flash.Message) Page {
	return Page{
		Cards:          DisplayActivities(roster),
		Options:        PopulateActivityDropdown(roster, form.Activity),
		NoParticipants: NoParticipantsText,
		Form:           form,
		Flash:          msg,
	}
}

// NewErrorPage is the page shown when the roster could not be loaded.
func NewErrorPage(form SignupForm, msg *flash.Message) Page {
	return Page{
		LoadError:      LoadFailedText,
		NoParticipants: NoParticipantsText,
		Form:           form,
		Flash:          msg,
	}
}

func NewConfirmPage(activity, email string) ConfirmPage {
	return ConfirmPage{
		Activity: activity,
		Email:    email,
		Prompt:   ConfirmPrompt(activity, email),
		Action:   UnregisterURL(activity),
	}
}

func RenderPage(w io.Writer, page Page) error {
	if err := indexTmpl.ExecuteTemplate(w, "index.html", page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	return nil
}

func RenderConfirm(w io.Writer, page ConfirmPage) error {
	if err := confirmTmpl.ExecuteTemplate(w, "confirm.html", page); err != nil {
		return fmt.Errorf("failed to render confirmation: %w", err)
	}

	return nil
}

func UnregisterURL(activity string) string {
	return "/activities/" + url.PathEscape(activity) + "/unregister"
}

func ConfirmURL(activity, email string) string {
	return UnregisterURL(activity) + "?" + url.Values{"email": {email}}.Encode()
}
