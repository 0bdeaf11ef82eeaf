package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/fjordhomes/listing-composer/internal/codec"
	"github.com/fjordhomes/listing-composer/internal/listing"
	"github.com/fjordhomes/listing-composer/internal/schema"
)

// FeaturesDoneMsg signals that the features step is complete.
type FeaturesDoneMsg struct{}

const (
	panePlans = iota
	paneEntry
	paneEntryList
)

// FeaturesStep toggles payment plans and collects the type's free-text
// collections: key features for every type, video links for properties,
// what's included for add-ons and body paragraphs for resources.
type FeaturesStep struct {
	draft *listing.Draft

	plans      []string
	planCursor int
	pane       int

	// Which collection the entry input feeds, cycled with "c".
	collections []string
	colIndex    int
	entry       textinput.Model
	rationale   textinput.Model
	onRationale bool
	listCursor  int
	errMsg      string

	width  int
	height int
}

const (
	colKeyFeatures   = "Key features"
	colVideoLinks    = "Video links"
	colWhatsIncluded = "What's included"
	colParagraphs    = "Paragraphs"
)

func newFeaturesStep(d *listing.Draft) *FeaturesStep {
	cols := []string{colKeyFeatures}
	switch d.Type {
	case listing.TypeProperty:
		cols = append(cols, colVideoLinks)
	case listing.TypeAddon:
		cols = append(cols, colWhatsIncluded)
	case listing.TypeResource:
		cols = append(cols, colParagraphs)
	}

	s := &FeaturesStep{
		draft:       d,
		collections: cols,
		entry:       newInput("add an entry"),
		rationale:   newInput("why this add-on is worth it"),
	}
	s.rationale.SetValue(d.Rationale)
	return s
}

// Init implements stepComponent.
func (s *FeaturesStep) Init() tea.Cmd {
	// Plans depend on the pair chosen in the first step
	s.plans = schema.PaymentPlans(s.draft.Category, s.draft.Need)
	if s.planCursor >= len(s.plans) {
		s.planCursor = 0
	}
	s.pane = panePlans
	s.entry.Blur()
	s.rationale.Blur()
	return nil
}

// SetSize implements stepComponent.
func (s *FeaturesStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	w := width/2 - 4
	if w < 24 {
		w = 24
	}
	s.entry.SetWidth(w)
	s.rationale.SetWidth(w)
}

func (s *FeaturesStep) collection() string {
	return s.collections[s.colIndex]
}

func (s *FeaturesStep) entries() []string {
	switch s.collection() {
	case colVideoLinks:
		return codec.Texts(s.draft.VideoLinks)
	case colWhatsIncluded:
		return codec.Texts(s.draft.WhatsIncluded)
	case colParagraphs:
		return s.draft.Paragraphs
	default:
		return codec.Texts(s.draft.KeyFeatures)
	}
}

// Update implements stepComponent.
func (s *FeaturesStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyPressMsg)
	if !isKey {
		return s.forwardEntry(msg)
	}

	switch keyMsg.String() {
	case "tab":
		s.errMsg = ""
		s.pane = (s.pane + 1) % 3
		s.entry.Blur()
		s.rationale.Blur()
		if s.pane == paneEntry {
			return s.entry.Focus()
		}
		return nil
	case "ctrl+r":
		if s.draft.Type == listing.TypeAddon {
			s.onRationale = !s.onRationale
			if s.onRationaleFocus() {
				s.entry.Blur()
				return s.rationale.Focus()
			}
			s.rationale.Blur()
		}
		return nil
	}

	switch s.pane {
	case panePlans:
		return s.updatePlans(keyMsg)
	case paneEntry:
		return s.updateEntry(msg, keyMsg)
	default:
		return s.updateList(keyMsg)
	}
}

func (s *FeaturesStep) onRationaleFocus() bool {
	return s.onRationale && s.draft.Type == listing.TypeAddon
}

func (s *FeaturesStep) updatePlans(keyMsg tea.KeyPressMsg) tea.Cmd {
	switch keyMsg.String() {
	case "up", "k":
		if s.planCursor > 0 {
			s.planCursor--
		}
	case "down", "j":
		if s.planCursor < len(s.plans)-1 {
			s.planCursor++
		}
	case " ", "space":
		plan := s.plans[s.planCursor]
		chosen := contains(codec.Options(s.draft.PaymentOptions), plan)
		s.draft.PaymentOptions = codec.ToggleOption(s.draft.PaymentOptions, plan, !chosen)
	case "enter":
		return func() tea.Msg { return FeaturesDoneMsg{} }
	}
	return nil
}

func (s *FeaturesStep) updateEntry(msg tea.Msg, keyMsg tea.KeyPressMsg) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+n":
		s.colIndex = (s.colIndex + 1) % len(s.collections)
		s.listCursor = 0
		s.errMsg = ""
		return nil
	case "enter":
		if s.onRationaleFocus() {
			s.draft.Rationale = s.rationale.Value()
			return nil
		}
		return s.addEntry()
	}
	return s.forwardEntry(msg)
}

func (s *FeaturesStep) addEntry() tea.Cmd {
	text := s.entry.Value()
	var err error
	switch s.collection() {
	case colVideoLinks:
		s.draft.VideoLinks, err = codec.AppendVideoLink(s.draft.VideoLinks, text)
	case colWhatsIncluded:
		s.draft.WhatsIncluded, err = codec.AppendText(s.draft.WhatsIncluded, text)
	case colParagraphs:
		if strings.TrimSpace(text) == "" {
			err = &codec.ValidationError{Msg: "enter some text first"}
		} else {
			s.draft.Paragraphs = append(s.draft.Paragraphs, strings.TrimSpace(text))
		}
	default:
		s.draft.KeyFeatures, err = codec.AppendText(s.draft.KeyFeatures, text)
	}
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	s.entry.SetValue("")
	return nil
}

func (s *FeaturesStep) forwardEntry(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.onRationaleFocus() {
		s.rationale, cmd = s.rationale.Update(msg)
		s.draft.Rationale = s.rationale.Value()
		return cmd
	}
	if s.pane == paneEntry {
		s.entry, cmd = s.entry.Update(msg)
	}
	return cmd
}

func (s *FeaturesStep) updateList(keyMsg tea.KeyPressMsg) tea.Cmd {
	entries := s.entries()
	switch keyMsg.String() {
	case "up", "k":
		if s.listCursor > 0 {
			s.listCursor--
		}
	case "down", "j":
		if s.listCursor < len(entries)-1 {
			s.listCursor++
		}
	case "d", "backspace":
		if s.listCursor < len(entries) {
			s.removeEntry(entries[s.listCursor])
			if s.listCursor > 0 {
				s.listCursor--
			}
		}
	case "enter":
		return func() tea.Msg { return FeaturesDoneMsg{} }
	}
	return nil
}

func (s *FeaturesStep) removeEntry(text string) {
	switch s.collection() {
	case colVideoLinks:
		s.draft.VideoLinks = codec.RemoveText(s.draft.VideoLinks, text)
	case colWhatsIncluded:
		s.draft.WhatsIncluded = codec.RemoveText(s.draft.WhatsIncluded, text)
	case colParagraphs:
		out := make([]string, 0, len(s.draft.Paragraphs))
		for _, p := range s.draft.Paragraphs {
			if p != text {
				out = append(out, p)
			}
		}
		s.draft.Paragraphs = out
	default:
		s.draft.KeyFeatures = codec.RemoveText(s.draft.KeyFeatures, text)
	}
}

// View implements stepComponent.
func (s *FeaturesStep) View() string {
	chosen := codec.Options(s.draft.PaymentOptions)

	var b strings.Builder
	b.WriteString(styleLabel.Render("Payment plans"))
	b.WriteString("\n")
	for i, plan := range s.plans {
		mark := "[ ]"
		if contains(chosen, plan) {
			mark = "[x]"
		}
		line := mark + " " + plan
		if s.pane == panePlans && i == s.planCursor {
			line = styleSelected.Render("> " + line)
		} else {
			line = styleUnselected.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleLabel.Render(s.collection()))
	if len(s.collections) > 1 {
		b.WriteString(styleDim.Render("  (ctrl+n switches collection)"))
	}
	b.WriteString("\n")
	b.WriteString(s.entry.View())
	b.WriteString("\n")

	for i, e := range s.entries() {
		line := e
		if s.pane == paneEntryList && i == s.listCursor {
			line = styleSelected.Render("> " + line)
		} else {
			line = styleUnselected.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if s.draft.Type == listing.TypeAddon {
		b.WriteString("\n")
		b.WriteString(styleLabel.Render("Rationale"))
		b.WriteString(styleDim.Render("  (ctrl+r to edit)"))
		b.WriteString("\n")
		b.WriteString(s.rationale.View())
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString(styleError.Render("✗ " + s.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHintBar("space", "toggle plan", "tab", "switch pane", "d", "remove", "enter", "continue"))
	return b.String()
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
