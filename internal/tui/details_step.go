package tui

import (
	"context"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/fjordhomes/listing-composer/internal/geocode"
	"github.com/fjordhomes/listing-composer/internal/listing"
	"github.com/fjordhomes/listing-composer/internal/schema"
)

// DetailsDoneMsg signals that the details step is complete.
type DetailsDoneMsg struct{}

// detailField is one labeled input bound to a draft field. bind runs on
// every change so the draft always mirrors the inputs.
type detailField struct {
	label string
	input textinput.Model
	bind  func(string)
}

// DetailsStep edits the descriptive fields and the location. Typing in the
// address field drives the geocode resolver, which pins the map and fills
// the draft's coordinates.
type DetailsStep struct {
	draft    *listing.Draft
	resolver *geocode.Resolver
	mapPane  *MapPane

	fields []detailField
	focus  int
	width  int
	height int
}

func newDetailsStep(d *listing.Draft, r *geocode.Resolver, mp *MapPane) *DetailsStep {
	s := &DetailsStep{draft: d, resolver: r, mapPane: mp}
	s.fields = s.buildFields()
	return s
}

func (s *DetailsStep) buildFields() []detailField {
	d := s.draft
	ctx := context.Background()

	text := func(label, placeholder, initial string, bind func(string)) detailField {
		in := newInput(placeholder)
		in.SetValue(initial)
		return detailField{label: label, input: in, bind: bind}
	}

	fields := []detailField{
		text("Title", "listing title", d.Title, func(v string) { d.Title = v }),
		text("Subtitle", "short tagline", d.Subtitle, func(v string) { d.Subtitle = v }),
		text("Summary", "one paragraph summary", d.Summary, func(v string) { d.Summary = v }),
		text("Description", "full description", d.Description, func(v string) { d.Description = v }),
		text("General info", "anything buyers should know", d.GeneralInfo, func(v string) { d.GeneralInfo = v }),
		text("Price", "0.00", trimZero(d.Price), func(v string) {
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				d.Price = f
			}
		}),
	}

	if schema.HasSpecs(d.Type, d.Category) {
		fields = append(fields,
			text("Size (sqm)", "0", trimZero(d.Size), bindFloat(&d.Size)),
			text("Bedrooms", "0", trimZeroInt(d.Bedrooms), bindInt(&d.Bedrooms)),
			text("Bathrooms", "0", trimZeroInt(d.Bathrooms), bindInt(&d.Bathrooms)),
			text("Parking", "0", trimZeroInt(d.Parking), bindInt(&d.Parking)),
		)
	}
	if schema.HasPlotCount(d.Category) {
		fields = append(fields,
			text("Size (sqm)", "0", trimZero(d.Size), bindFloat(&d.Size)),
			text("Total plots", "0", trimZeroInt(d.TotalPlots), bindInt(&d.TotalPlots)),
		)
	}
	if schema.HasOccupancy(d.Need) {
		fields = append(fields,
			text("Occupancy", "0", trimZeroInt(d.Occupancy), bindInt(&d.Occupancy)))
	}
	if d.Type == listing.TypeResource {
		fields = append(fields,
			text("Reading time (min)", "0", trimZeroInt(d.ReadingTime), bindInt(&d.ReadingTime)))
	}

	fields = append(fields,
		text("Country code", "gh", d.Location.Country, func(v string) {
			d.Location.Country = strings.ToUpper(strings.TrimSpace(v))
			if len(d.Location.Country) == 2 {
				s.resolver.SetCountry(ctx, d.Location.Country, d.Location.HasAddress())
			}
		}),
		text("City", "city or town", d.Location.City, func(v string) { d.Location.City = v }),
		text("Street", "street address", d.Location.Street, func(v string) { d.Location.Street = v }),
		text("Region", "region or state", d.Location.Region, func(v string) { d.Location.Region = v }),
		text("Postcode", "postcode", d.Location.Postcode, func(v string) { d.Location.Postcode = v }),
		text("Digital address", "GA-123-4567", d.Location.DigitalAddress, func(v string) { d.Location.DigitalAddress = v }),
		text("Find on map", "address, or paste a map link", "", func(v string) {
			s.resolver.LocationInput(ctx, v, d.Location.Country)
		}),
	)

	return fields
}

// Init implements stepComponent.
func (s *DetailsStep) Init() tea.Cmd {
	s.focus = 0
	for i := range s.fields {
		s.fields[i].input.Blur()
	}
	return s.fields[0].input.Focus()
}

// SetSize implements stepComponent.
func (s *DetailsStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	w := width/2 - 4
	if w < 24 {
		w = 24
	}
	for i := range s.fields {
		s.fields[i].input.SetWidth(w)
	}
}

// Update implements stepComponent.
func (s *DetailsStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab", "enter":
			if keyMsg.String() == "enter" && s.focus == len(s.fields)-1 {
				return func() tea.Msg { return DetailsDoneMsg{} }
			}
			return s.moveFocus(1)
		case "shift+tab":
			return s.moveFocus(-1)
		case "ctrl+p":
			// Drop the pin at the current map center
			s.resolver.ClickPin(s.mapPane.Center())
			return nil
		}
	}

	var cmd tea.Cmd
	f := &s.fields[s.focus]
	f.input, cmd = f.input.Update(msg)
	f.bind(f.input.Value())
	return cmd
}

func (s *DetailsStep) moveFocus(delta int) tea.Cmd {
	s.fields[s.focus].input.Blur()
	s.focus = (s.focus + delta + len(s.fields)) % len(s.fields)
	return s.fields[s.focus].input.Focus()
}

// View implements stepComponent.
func (s *DetailsStep) View() string {
	var b strings.Builder
	for i := range s.fields {
		label := s.fields[i].label
		if i == s.focus {
			b.WriteString(styleSelected.Render(label))
		} else {
			b.WriteString(styleLabel.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(s.fields[i].input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.mapPane.View())
	b.WriteString("\n\n")
	b.WriteString(renderHintBar("tab", "next field", "ctrl+p", "pin at center", "enter", "continue", "esc", "back"))
	return b.String()
}

func bindFloat(dst *float64) func(string) {
	return func(v string) {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			*dst = f
		}
	}
}

func bindInt(dst *int) func(string) {
	return func(v string) {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}

func trimZero(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func trimZeroInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
