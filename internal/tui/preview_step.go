package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/fjordhomes/listing-composer/internal/codec"
	"github.com/fjordhomes/listing-composer/internal/listing"
	"github.com/fjordhomes/listing-composer/internal/media"
	"github.com/fjordhomes/listing-composer/internal/submit"
)

// SubmitRequestedMsg asks the wizard to submit the draft.
type SubmitRequestedMsg struct{}

// PreviewStep shows the finished draft and submits it on confirmation. It
// runs the same validation the pipeline will, so problems surface before
// any request is made.
type PreviewStep struct {
	draft    *listing.Draft
	registry *media.Registry
	mapPane  *MapPane
	width    int
	height   int
}

func newPreviewStep(d *listing.Draft, reg *media.Registry, mp *MapPane) *PreviewStep {
	return &PreviewStep{draft: d, registry: reg, mapPane: mp}
}

// Init implements stepComponent.
func (s *PreviewStep) Init() tea.Cmd { return nil }

// SetSize implements stepComponent.
func (s *PreviewStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Update implements stepComponent.
func (s *PreviewStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "enter" {
		return func() tea.Msg { return SubmitRequestedMsg{} }
	}
	return nil
}

// View implements stepComponent.
func (s *PreviewStep) View() string {
	d := s.draft

	var b strings.Builder
	row := func(label, value string) {
		if value == "" {
			value = styleDim.Render("(empty)")
		}
		b.WriteString(styleLabel.Render(fmt.Sprintf("%-14s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Title", d.Title)
	row("Subtitle", d.Subtitle)
	row("Category", string(d.Category))
	row("Need", string(d.Need))
	row("Price", trimZero(d.Price))
	row("City", d.Location.City)
	if d.Location.Latitude != "" {
		row("Coordinates", d.Location.Latitude+", "+d.Location.Longitude)
	}

	if plans := codec.Options(d.PaymentOptions); len(plans) > 0 {
		row("Payment", strings.Join(plans, ", "))
	}
	if features := codec.Texts(d.KeyFeatures); len(features) > 0 {
		row("Features", strings.Join(features, ", "))
	}
	if faqs := codec.FAQs(d.FAQ); len(faqs) > 0 {
		row("FAQ", fmt.Sprintf("%d entries", len(faqs)))
	}

	var files int
	for _, field := range []string{
		media.FieldDisplayImage, media.FieldDisplayImages,
		media.FieldFloorPlans, media.FieldSitePlans, media.FieldDocumentation,
	} {
		files += len(s.registry.Items(field))
	}
	row("Media", fmt.Sprintf("%d files", files))

	if d.Type == listing.TypeResource {
		row("Paragraphs", fmt.Sprintf("%d", len(d.Paragraphs)))
	}

	b.WriteString("\n")
	if err := submit.Validate(d); err != nil {
		b.WriteString(styleError.Render("✗ " + err.Error()))
		b.WriteString("\n")
		b.WriteString(styleDim.Render("go back with esc to fill these in"))
	} else if d.EditMode() {
		b.WriteString(styleChecked.Render("Ready. Enter updates the listing."))
	} else {
		b.WriteString(styleChecked.Render("Ready. Enter publishes the listing."))
	}

	b.WriteString("\n\n")
	b.WriteString(renderHintBar("enter", "submit", "esc", "back"))
	return b.String()
}
