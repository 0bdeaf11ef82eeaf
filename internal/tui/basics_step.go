package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/fjordhomes/listing-composer/internal/listing"
	"github.com/fjordhomes/listing-composer/internal/schema"
)

// BasicsDoneMsg signals that a category and need have been chosen.
type BasicsDoneMsg struct{}

// BasicsStep picks the listing category, then the need that goes with it.
// Changing category resets the need, since the valid needs depend on it.
type BasicsStep struct {
	draft *listing.Draft

	categories []listing.Category
	needs      []listing.Need
	catCursor  int
	needCursor int
	onNeeds    bool // false while choosing category
	width      int
	height     int
}

func newBasicsStep(d *listing.Draft) *BasicsStep {
	s := &BasicsStep{
		draft:      d,
		categories: schema.Categories(d.Type),
	}
	for i, c := range s.categories {
		if c == d.Category {
			s.catCursor = i
		}
	}
	s.refreshNeeds()
	return s
}

func (s *BasicsStep) refreshNeeds() {
	s.needs = schema.Needs(s.draft.Type, s.categories[s.catCursor])
	s.needCursor = 0
	for i, n := range s.needs {
		if n == s.draft.Need {
			s.needCursor = i
		}
	}
}

// Init implements stepComponent.
func (s *BasicsStep) Init() tea.Cmd {
	s.onNeeds = false
	return nil
}

// SetSize implements stepComponent.
func (s *BasicsStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Update implements stepComponent.
func (s *BasicsStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if s.onNeeds {
			if s.needCursor > 0 {
				s.needCursor--
			}
		} else if s.catCursor > 0 {
			s.catCursor--
			s.refreshNeeds()
		}
	case "down", "j":
		if s.onNeeds {
			if s.needCursor < len(s.needs)-1 {
				s.needCursor++
			}
		} else if s.catCursor < len(s.categories)-1 {
			s.catCursor++
			s.refreshNeeds()
		}
	case "enter":
		if !s.onNeeds {
			s.draft.SetCategory(s.categories[s.catCursor])
			s.refreshNeeds()
			s.onNeeds = true
			return nil
		}
		s.draft.SetNeed(s.needs[s.needCursor])
		return func() tea.Msg { return BasicsDoneMsg{} }
	case "tab":
		s.onNeeds = !s.onNeeds
	}

	return nil
}

// View implements stepComponent.
func (s *BasicsStep) View() string {
	var b strings.Builder

	b.WriteString(styleLabel.Render("Category"))
	b.WriteString("\n")
	for i, c := range s.categories {
		line := "  " + string(c)
		if i == s.catCursor && !s.onNeeds {
			line = styleSelected.Render("> " + string(c))
		} else if c == s.draft.Category {
			line = styleChecked.Render("✓ " + string(c))
		} else {
			line = styleUnselected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleLabel.Render("Need"))
	b.WriteString("\n")
	for i, n := range s.needs {
		line := "  " + string(n)
		if i == s.needCursor && s.onNeeds {
			line = styleSelected.Render("> " + string(n))
		} else if n == s.draft.Need {
			line = styleChecked.Render("✓ " + string(n))
		} else {
			line = styleUnselected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHintBar("↑↓", "navigate", "enter", "select", "esc", "quit"))
	return b.String()
}
