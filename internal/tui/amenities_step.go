package tui

import (
	"sort"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/fjordhomes/listing-composer/internal/codec"
	"github.com/fjordhomes/listing-composer/internal/listing"
	"github.com/fjordhomes/listing-composer/internal/schema"
)

// AmenitiesDoneMsg signals that the amenities step is complete.
type AmenitiesDoneMsg struct{}

// amenitiesPane enumerates the focus zones of the step.
const (
	paneAmenities = iota
	paneLocalForm
	paneLocalList
)

// AmenitiesStep toggles property amenities and collects nearby local
// amenities with travel distances. Both lists live in the draft as encoded
// strings and are only ever written through the codec.
type AmenitiesStep struct {
	draft *listing.Draft

	amenities []string
	cursor    int
	pane      int

	localCats  []string
	catCursor  int
	nameInput  textinput.Model
	distInput  textinput.Model
	formFocus  int // 0=category, 1=name, 2=distance
	listCursor int
	errMsg     string

	width  int
	height int
}

func newAmenitiesStep(d *listing.Draft) *AmenitiesStep {
	return &AmenitiesStep{
		draft:     d,
		amenities: schema.Amenities(d.Category),
		localCats: schema.LocalAmenityCategories(),
		nameInput: newInput("e.g. Achimota School"),
		distInput: newInput("minutes away, e.g. 5"),
	}
}

// Init implements stepComponent.
func (s *AmenitiesStep) Init() tea.Cmd {
	// Category may have changed since construction
	s.amenities = schema.Amenities(s.draft.Category)
	if s.cursor >= len(s.amenities) {
		s.cursor = 0
	}
	s.pane = paneAmenities
	s.nameInput.Blur()
	s.distInput.Blur()
	return nil
}

// SetSize implements stepComponent.
func (s *AmenitiesStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	w := width/2 - 4
	if w < 24 {
		w = 24
	}
	s.nameInput.SetWidth(w)
	s.distInput.SetWidth(w)
}

// Update implements stepComponent.
func (s *AmenitiesStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyPressMsg)
	if !isKey {
		return s.forwardToForm(msg)
	}

	if keyMsg.String() == "tab" {
		s.errMsg = ""
		s.pane = (s.pane + 1) % 3
		s.nameInput.Blur()
		s.distInput.Blur()
		if s.pane == paneLocalForm {
			s.formFocus = 0
		}
		return nil
	}

	switch s.pane {
	case paneAmenities:
		return s.updateAmenities(keyMsg)
	case paneLocalForm:
		return s.updateLocalForm(msg, keyMsg)
	default:
		return s.updateLocalList(keyMsg)
	}
}

func (s *AmenitiesStep) updateAmenities(keyMsg tea.KeyPressMsg) tea.Cmd {
	switch keyMsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.amenities)-1 {
			s.cursor++
		}
	case " ", "space":
		name := s.amenities[s.cursor]
		selected := codec.AmenityMap(s.draft.PropertyAmenities)[name]
		s.draft.PropertyAmenities = codec.ToggleAmenity(s.draft.PropertyAmenities, name, !selected)
	case "enter":
		return func() tea.Msg { return AmenitiesDoneMsg{} }
	}
	return nil
}

func (s *AmenitiesStep) updateLocalForm(msg tea.Msg, keyMsg tea.KeyPressMsg) tea.Cmd {
	switch keyMsg.String() {
	case "up", "k":
		if s.formFocus == 0 && s.catCursor > 0 {
			s.catCursor--
			return nil
		}
	case "down", "j":
		if s.formFocus == 0 && s.catCursor < len(s.localCats)-1 {
			s.catCursor++
			return nil
		}
	case "enter":
		if s.formFocus < 2 {
			s.formFocus++
			s.nameInput.Blur()
			s.distInput.Blur()
			if s.formFocus == 1 {
				return s.nameInput.Focus()
			}
			return s.distInput.Focus()
		}
		encoded, err := codec.AddLocalAmenity(s.draft.LocalAmenities,
			s.localCats[s.catCursor], s.nameInput.Value(), s.distInput.Value())
		if err != nil {
			s.errMsg = err.Error()
			return nil
		}
		s.draft.LocalAmenities = encoded
		s.errMsg = ""
		s.nameInput.SetValue("")
		s.distInput.SetValue("")
		s.formFocus = 0
		s.nameInput.Blur()
		s.distInput.Blur()
		return nil
	}
	return s.forwardToForm(msg)
}

func (s *AmenitiesStep) forwardToForm(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.formFocus {
	case 1:
		s.nameInput, cmd = s.nameInput.Update(msg)
	case 2:
		s.distInput, cmd = s.distInput.Update(msg)
	}
	return cmd
}

func (s *AmenitiesStep) updateLocalList(keyMsg tea.KeyPressMsg) tea.Cmd {
	keys := s.localKeys()
	switch keyMsg.String() {
	case "up", "k":
		if s.listCursor > 0 {
			s.listCursor--
		}
	case "down", "j":
		if s.listCursor < len(keys)-1 {
			s.listCursor++
		}
	case "d", "backspace":
		if s.listCursor < len(keys) {
			s.draft.LocalAmenities = codec.RemoveKey(s.draft.LocalAmenities, keys[s.listCursor])
			if s.listCursor > 0 {
				s.listCursor--
			}
		}
	case "enter":
		return func() tea.Msg { return AmenitiesDoneMsg{} }
	}
	return nil
}

func (s *AmenitiesStep) localKeys() []string {
	m := codec.LocalAmenityMap(s.draft.LocalAmenities)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// View implements stepComponent.
func (s *AmenitiesStep) View() string {
	selected := codec.AmenityMap(s.draft.PropertyAmenities)
	local := codec.LocalAmenityMap(s.draft.LocalAmenities)

	var b strings.Builder
	b.WriteString(styleLabel.Render("Amenities"))
	b.WriteString("\n")
	for i, name := range s.amenities {
		mark := "[ ]"
		if selected[name] {
			mark = "[x]"
		}
		line := mark + " " + name
		if s.pane == paneAmenities && i == s.cursor {
			line = styleSelected.Render("> " + line)
		} else {
			line = styleUnselected.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleLabel.Render("Nearby"))
	b.WriteString("\n")
	catLine := s.localCats[s.catCursor]
	if s.pane == paneLocalForm && s.formFocus == 0 {
		catLine = styleSelected.Render("> " + catLine + " (↑↓ to change)")
	} else {
		catLine = styleUnselected.Render("  " + catLine)
	}
	b.WriteString(catLine)
	b.WriteString("\n")
	b.WriteString(s.nameInput.View())
	b.WriteString("\n")
	b.WriteString(s.distInput.View())
	b.WriteString("\n")

	keys := s.localKeys()
	for i, k := range keys {
		line := k + " · " + local[k] + " min"
		if s.pane == paneLocalList && i == s.listCursor {
			line = styleSelected.Render("> " + line)
		} else {
			line = styleUnselected.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString(styleError.Render("✗ " + s.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHintBar("space", "toggle", "tab", "switch pane", "d", "remove", "enter", "continue"))
	return b.String()
}
