// Package tui is the terminal wizard for composing and editing listings.
// It follows the step sequence from the schema package, holds one draft for
// the life of the program, and submits it from the preview step.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	lipglossv2 "charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/fjordhomes/listing-composer/internal/geocode"
	"github.com/fjordhomes/listing-composer/internal/listing"
	"github.com/fjordhomes/listing-composer/internal/media"
	"github.com/fjordhomes/listing-composer/internal/schema"
	"github.com/fjordhomes/listing-composer/internal/submit"
	"github.com/fjordhomes/listing-composer/internal/wizard"
)

// Outcome reports how the wizard ended.
type Outcome struct {
	Submitted bool
	Created   bool
}

// stepComponent is one page of the wizard.
type stepComponent interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
}

// coordsResolvedMsg carries coordinates from the geocode resolver's
// background goroutine into the update loop.
type coordsResolvedMsg struct {
	Coords geocode.Coords
}

// submitDoneMsg reports the result of a submission attempt.
type submitDoneMsg struct {
	Created bool
	Err     error
}

// Model is the main BubbleTea model for the listing wizard.
type Model struct {
	draft    *listing.Draft
	registry *media.Registry
	pipeline *submit.Pipeline
	ctrl     *wizard.Controller
	resolver *geocode.Resolver
	mapPane  *MapPane
	send     func(tea.Msg)

	steps []stepComponent

	width     int
	height    int
	cancelled bool
	outcome   Outcome
	errMsg    string
}

// New creates the wizard model over an in-progress draft.
func New(d *listing.Draft, reg *media.Registry, p *submit.Pipeline, gc *geocode.Client) *Model {
	mapPane := NewMapPane()
	m := &Model{
		draft:    d,
		registry: reg,
		pipeline: p,
		ctrl:     wizard.New(schema.Steps(d.Type)),
		mapPane:  mapPane,
	}
	m.resolver = geocode.NewResolver(gc, mapPane, func(c geocode.Coords) {
		if m.send != nil {
			m.send(coordsResolvedMsg{Coords: c})
		}
	})
	m.steps = m.buildSteps()
	return m
}

// Run runs the wizard to completion and reports how it ended.
func Run(d *listing.Draft, reg *media.Registry, p *submit.Pipeline) (*Outcome, error) {
	m := New(d, reg, p, geocode.NewClient())

	prog := tea.NewProgram(m)
	m.send = prog.Send

	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wm, ok := final.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if wm.cancelled {
		return &Outcome{}, nil
	}
	return &wm.outcome, nil
}

// buildSteps maps the schema step sequence to UI components. The sequence
// depends on the listing type, so components are looked up by step name.
func (m *Model) buildSteps() []stepComponent {
	var comps []stepComponent
	for _, s := range m.ctrl.Steps() {
		switch s.Name {
		case "Type & Category":
			comps = append(comps, newBasicsStep(m.draft))
		case "Details & Location":
			comps = append(comps, newDetailsStep(m.draft, m.resolver, m.mapPane))
		case "Amenities":
			comps = append(comps, newAmenitiesStep(m.draft))
		case "Features":
			comps = append(comps, newFeaturesStep(m.draft))
		case "FAQ & Media":
			comps = append(comps, newMediaStep(m.draft, m.registry))
		case "Preview":
			comps = append(comps, newPreviewStep(m.draft, m.registry, m.mapPane))
		}
	}
	return comps
}

func (m *Model) active() stepComponent {
	return m.steps[m.ctrl.Active()]
}

// Init initializes the wizard model.
func (m *Model) Init() tea.Cmd {
	return m.active().Init()
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "esc":
			if m.ctrl.Submitting() {
				return m, nil
			}
			if m.ctrl.AtStart() {
				m.cancelled = true
				return m, tea.Quit
			}
			m.ctrl.Back()
			m.errMsg = ""
			return m, m.active().Init()
		case "ctrl+s":
			if err := m.ctrl.Skip(m.ctrl.Active()); err != nil {
				return m, nil
			}
			return m, m.active().Init()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sizeSteps()
		return m, nil

	case coordsResolvedMsg:
		m.draft.Location.Latitude = msg.Coords.LatString()
		m.draft.Location.Longitude = msg.Coords.LonString()
		return m, nil

	case BasicsDoneMsg, DetailsDoneMsg, AmenitiesDoneMsg, FeaturesDoneMsg, MediaDoneMsg:
		m.ctrl.Next()
		m.errMsg = ""
		return m, m.active().Init()

	case SubmitRequestedMsg:
		if !m.ctrl.BeginSubmit() {
			return m, nil
		}
		m.errMsg = ""
		return m, m.submitCmd()

	case submitDoneMsg:
		m.ctrl.EndSubmit()
		if msg.Err != nil {
			m.errMsg = submit.UserMessage(msg.Err)
			return m, nil
		}
		m.outcome = Outcome{Submitted: true, Created: msg.Created}
		return m, tea.Quit
	}

	return m, m.active().Update(msg)
}

// submitCmd runs the submission pipeline off the update loop. The draft is
// left untouched on failure so the user can correct and retry.
func (m *Model) submitCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		res, err := m.pipeline.Submit(ctx, m.draft, m.registry)
		if err != nil {
			return submitDoneMsg{Err: err}
		}
		return submitDoneMsg{Created: res.Created}
	}
}

func (m *Model) sizeSteps() {
	contentWidth := m.width - 10
	contentHeight := m.height - 10
	if contentWidth < 40 {
		contentWidth = 40
	}
	if contentHeight < 10 {
		contentHeight = 10
	}
	for _, s := range m.steps {
		s.SetSize(contentWidth, contentHeight)
	}
}

// View renders the wizard UI.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	steps := m.ctrl.Steps()
	active := m.ctrl.Active()

	title := fmt.Sprintf("%s Listing - Step %d of %d: %s",
		titleCase(string(m.draft.Type)), active+1, len(steps), steps[active].Name)
	if m.draft.EditMode() {
		title = fmt.Sprintf("Edit %s - Step %d of %d: %s",
			titleCase(string(m.draft.Type)), active+1, len(steps), steps[active].Name)
	}

	body := styleTitle.Render(title) + "\n\n" + m.active().View()

	if steps[active].Optional {
		body += "\n\n" + styleOptional.Render("optional step: ctrl+s skips it")
	}
	if m.ctrl.Submitting() {
		body += "\n\n" + styleLabel.Render("Submitting…")
	}
	if m.errMsg != "" {
		body += "\n\n" + styleError.Render("✗ "+m.errMsg)
	}

	content := stylePanel.Render(body)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipglossv2.NewLayer(canvas.Render())
	return view
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
