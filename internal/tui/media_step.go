package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/fjordhomes/listing-composer/internal/codec"
	"github.com/fjordhomes/listing-composer/internal/listing"
	"github.com/fjordhomes/listing-composer/internal/media"
)

// MediaDoneMsg signals that the FAQ and media step is complete.
type MediaDoneMsg struct{}

const (
	paneFAQ = iota
	paneFAQList
	paneFiles
)

// MediaStep collects FAQ entries and attaches media files. The cover image
// gets a preview handle through the registry; replacing the cover releases
// the old handle.
type MediaStep struct {
	draft    *listing.Draft
	registry *media.Registry

	pane     int
	question textinput.Model
	answer   textinput.Model
	onAnswer bool
	faqCur   int

	fields     []string
	fieldCur   int
	pathInput  textinput.Model
	itemCur    int
	onItems    bool
	lastErr    string
	lastNotice string

	width  int
	height int
}

func newMediaStep(d *listing.Draft, reg *media.Registry) *MediaStep {
	fields := []string{media.FieldDisplayImage, media.FieldDisplayImages}
	if d.Type == listing.TypeProperty {
		fields = append(fields, media.FieldFloorPlans, media.FieldSitePlans, media.FieldDocumentation)
	}
	return &MediaStep{
		draft:     d,
		registry:  reg,
		fields:    fields,
		question:  newInput("question"),
		answer:    newInput("answer"),
		pathInput: newInput("path to a file"),
	}
}

// Init implements stepComponent.
func (s *MediaStep) Init() tea.Cmd {
	s.pane = paneFAQ
	s.onAnswer = false
	s.answer.Blur()
	s.pathInput.Blur()
	return s.question.Focus()
}

// SetSize implements stepComponent.
func (s *MediaStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	w := width/2 - 4
	if w < 24 {
		w = 24
	}
	s.question.SetWidth(w)
	s.answer.SetWidth(w)
	s.pathInput.SetWidth(w)
}

// Update implements stepComponent.
func (s *MediaStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyPressMsg)
	if !isKey {
		return s.forward(msg)
	}

	if keyMsg.String() == "tab" {
		s.lastErr = ""
		s.lastNotice = ""
		s.pane = (s.pane + 1) % 3
		s.question.Blur()
		s.answer.Blur()
		s.pathInput.Blur()
		switch s.pane {
		case paneFAQ:
			s.onAnswer = false
			return s.question.Focus()
		case paneFiles:
			s.onItems = false
			return s.pathInput.Focus()
		}
		return nil
	}

	switch s.pane {
	case paneFAQ:
		return s.updateFAQ(msg, keyMsg)
	case paneFAQList:
		return s.updateFAQList(keyMsg)
	default:
		return s.updateFiles(msg, keyMsg)
	}
}

func (s *MediaStep) updateFAQ(msg tea.Msg, keyMsg tea.KeyPressMsg) tea.Cmd {
	if keyMsg.String() == "enter" {
		if !s.onAnswer {
			s.onAnswer = true
			s.question.Blur()
			return s.answer.Focus()
		}
		encoded, err := codec.AppendFAQ(s.draft.FAQ, s.question.Value(), s.answer.Value())
		if err != nil {
			s.lastErr = err.Error()
			return nil
		}
		s.draft.FAQ = encoded
		s.lastErr = ""
		s.question.SetValue("")
		s.answer.SetValue("")
		s.onAnswer = false
		s.answer.Blur()
		return s.question.Focus()
	}
	return s.forward(msg)
}

func (s *MediaStep) updateFAQList(keyMsg tea.KeyPressMsg) tea.Cmd {
	faqs := codec.FAQs(s.draft.FAQ)
	switch keyMsg.String() {
	case "up", "k":
		if s.faqCur > 0 {
			s.faqCur--
		}
	case "down", "j":
		if s.faqCur < len(faqs)-1 {
			s.faqCur++
		}
	case "d", "backspace":
		if s.faqCur < len(faqs) {
			s.draft.FAQ = codec.RemoveFAQ(s.draft.FAQ, faqs[s.faqCur].Question)
			if s.faqCur > 0 {
				s.faqCur--
			}
		}
	case "enter":
		return func() tea.Msg { return MediaDoneMsg{} }
	}
	return nil
}

func (s *MediaStep) updateFiles(msg tea.Msg, keyMsg tea.KeyPressMsg) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+n":
		s.fieldCur = (s.fieldCur + 1) % len(s.fields)
		s.itemCur = 0
		s.lastErr = ""
		s.lastNotice = ""
		return nil
	case "ctrl+l":
		// Jump between the path input and the item list
		s.onItems = !s.onItems
		if s.onItems {
			s.pathInput.Blur()
			return nil
		}
		return s.pathInput.Focus()
	case "enter":
		if s.onItems {
			return func() tea.Msg { return MediaDoneMsg{} }
		}
		return s.attach()
	case "d":
		if s.onItems {
			items := s.registry.Items(s.field())
			if s.itemCur < len(items) {
				it := items[s.itemCur]
				id := it.Name
				if it.IsRemote() {
					id = it.Remote
				}
				if s.field() == media.FieldDisplayImage {
					s.registry.ClearCover()
				} else {
					s.registry.Remove(s.field(), id)
				}
				if s.itemCur > 0 {
					s.itemCur--
				}
			}
			return nil
		}
	}
	if s.onItems {
		return s.updateItemCursor(keyMsg)
	}
	return s.forward(msg)
}

func (s *MediaStep) updateItemCursor(keyMsg tea.KeyPressMsg) tea.Cmd {
	items := s.registry.Items(s.field())
	switch keyMsg.String() {
	case "up", "k":
		if s.itemCur > 0 {
			s.itemCur--
		}
	case "down", "j":
		if s.itemCur < len(items)-1 {
			s.itemCur++
		}
	}
	return nil
}

func (s *MediaStep) field() string {
	return s.fields[s.fieldCur]
}

func (s *MediaStep) attach() tea.Cmd {
	path := strings.TrimSpace(s.pathInput.Value())
	if path == "" {
		s.lastErr = "enter a file path first"
		return nil
	}

	if s.field() == media.FieldDisplayImage {
		s.registry.SetCover(path)
		s.lastNotice = "cover set"
	} else {
		added, skipped := s.registry.AddFiles(s.field(), path)
		if added == 0 && len(skipped) > 0 {
			s.lastErr = skipped[0] + " is already attached"
			return nil
		}
		s.lastNotice = "attached"
	}
	s.lastErr = ""
	s.pathInput.SetValue("")
	return nil
}

func (s *MediaStep) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case s.pane == paneFAQ && !s.onAnswer:
		s.question, cmd = s.question.Update(msg)
	case s.pane == paneFAQ:
		s.answer, cmd = s.answer.Update(msg)
	case s.pane == paneFiles && !s.onItems:
		s.pathInput, cmd = s.pathInput.Update(msg)
	}
	return cmd
}

// View implements stepComponent.
func (s *MediaStep) View() string {
	var b strings.Builder

	b.WriteString(styleLabel.Render("FAQ"))
	b.WriteString("\n")
	b.WriteString(s.question.View())
	b.WriteString("\n")
	b.WriteString(s.answer.View())
	b.WriteString("\n")
	for i, f := range codec.FAQs(s.draft.FAQ) {
		line := "Q: " + f.Question
		if s.pane == paneFAQList && i == s.faqCur {
			line = styleSelected.Render("> " + line)
		} else {
			line = styleUnselected.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleLabel.Render("Media: " + s.field()))
	b.WriteString(styleDim.Render("  (ctrl+n switches field, ctrl+l list)"))
	b.WriteString("\n")
	b.WriteString(s.pathInput.View())
	b.WriteString("\n")
	for i, it := range s.registry.Items(s.field()) {
		name := it.Name
		if it.IsRemote() {
			name += styleDim.Render(" (uploaded)")
		}
		if s.pane == paneFiles && s.onItems && i == s.itemCur {
			b.WriteString(styleSelected.Render("> " + name))
		} else {
			b.WriteString(styleUnselected.Render("  " + name))
		}
		b.WriteString("\n")
	}

	if handle := s.registry.CoverPreview(); handle != "" {
		b.WriteString(styleDim.Render("cover preview " + handle))
		b.WriteString("\n")
	}

	if s.lastErr != "" {
		b.WriteString(styleError.Render("✗ " + s.lastErr))
		b.WriteString("\n")
	}
	if s.lastNotice != "" {
		b.WriteString(styleChecked.Render("✓ " + s.lastNotice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHintBar("tab", "switch pane", "d", "remove", "enter", "add / continue"))
	return b.String()
}
