package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldToggle
	fieldChoice
	fieldButton
)

// actionID identifies what a button triggers when activated.
type actionID int

const (
	actionNone actionID = iota
	actionRefreshAccount
	actionSaveGeneral
	actionSaveTelegram
	actionSubmitBuy
	actionSubmitSell
	actionPing
	actionCheckToken
	actionIssueToken
)

// field is one row of a form: a text input, a toggle, an enumerated
// choice, or a button.
type field struct {
	key     string
	label   string
	kind    fieldKind
	input   textinput.Model
	on      bool
	choices []string
	choice  int
	action  actionID
}

func textField(key, label, value string) field {
	ti := textinput.New()
	ti.SetValue(value)
	ti.CharLimit = 48
	ti.Width = 20
	ti.Prompt = ""
	return field{key: key, label: label, kind: fieldText, input: ti}
}

func toggleField(key, label string, on bool) field {
	return field{key: key, label: label, kind: fieldToggle, on: on}
}

func choiceField(key, label string, choices []string, selected string) field {
	f := field{key: key, label: label, kind: fieldChoice, choices: choices}
	for i, c := range choices {
		if c == selected {
			f.choice = i
		}
	}
	return f
}

func buttonField(label string, action actionID) field {
	return field{label: label, kind: fieldButton, action: action}
}

func (f *field) selected() string {
	if len(f.choices) == 0 {
		return ""
	}
	return f.choices[f.choice]
}

// form is an ordered field list with one focused row.
type form struct {
	fields []field
	focus  int
}

func newForm(fields ...field) *form {
	f := &form{fields: fields}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) {
	for j := range f.fields {
		f.fields[j].input.Blur()
	}
	f.focus = i
	if f.fields[i].kind == fieldText {
		f.fields[i].input.Focus()
	}
}

func (f *form) get(key string) *field {
	for i := range f.fields {
		if f.fields[i].key == key {
			return &f.fields[i]
		}
	}
	return nil
}

func (f *form) value(key string) string {
	if fl := f.get(key); fl != nil {
		return fl.input.Value()
	}
	return ""
}

func (f *form) setValue(key, value string) {
	if fl := f.get(key); fl != nil {
		fl.input.SetValue(value)
	}
}

// update routes a key to the form. It returns a command for the focused
// text input and, when a button was activated, the button's action.
func (f *form) update(msg tea.KeyMsg) (tea.Cmd, actionID) {
	switch msg.String() {
	case "up", "shift+tab":
		f.setFocus((f.focus + len(f.fields) - 1) % len(f.fields))
		return nil, actionNone
	case "down", "tab":
		f.setFocus((f.focus + 1) % len(f.fields))
		return nil, actionNone
	}

	current := &f.fields[f.focus]
	switch current.kind {
	case fieldToggle:
		if msg.String() == " " || msg.String() == "enter" {
			current.on = !current.on
		}
		return nil, actionNone
	case fieldChoice:
		switch msg.String() {
		case "left":
			current.choice = (current.choice + len(current.choices) - 1) % len(current.choices)
		case "right", " ", "enter":
			current.choice = (current.choice + 1) % len(current.choices)
		}
		return nil, actionNone
	case fieldButton:
		if msg.String() == " " || msg.String() == "enter" {
			return nil, current.action
		}
		return nil, actionNone
	default:
		var cmd tea.Cmd
		current.input, cmd = current.input.Update(msg)
		return cmd, actionNone
	}
}

func (f *form) view() string {
	rows := make([]string, 0, len(f.fields))
	for i := range f.fields {
		rows = append(rows, f.renderField(i))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (f *form) renderField(i int) string {
	fl := &f.fields[i]

	cursor := "  "
	if i == f.focus {
		cursor = focusStyle.Render("> ")
	}

	switch fl.kind {
	case fieldToggle:
		mark := "[ ]"
		if fl.on {
			mark = "[x]"
		}
		return cursor + labelStyle.Render(fl.label) + valueStyle.Render(mark)
	case fieldChoice:
		return cursor + labelStyle.Render(fl.label) + valueStyle.Render("< "+fl.selected()+" >")
	case fieldButton:
		label := "[ " + fl.label + " ]"
		if i == f.focus {
			return cursor + focusStyle.Render(label)
		}
		return cursor + valueStyle.Render(label)
	default:
		return cursor + labelStyle.Render(fl.label) + fl.input.View()
	}
}
