// Package submit validates a finished draft and turns it into the multipart
// request the listings backend accepts.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"strconv"
	"strings"

	"github.com/fjordhomes/listing-composer/internal/client"
	"github.com/fjordhomes/listing-composer/internal/listing"
	"github.com/fjordhomes/listing-composer/internal/media"
	"github.com/fjordhomes/listing-composer/internal/schema"
)

// ValidationError is a draft problem the user must correct before any
// request is built: missing required fields, or a category/need pairing the
// schema does not allow. No partial submission is attempted.
type ValidationError struct {
	Missing []string
	Msg     string
}

func (e *ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Validate checks draft completeness before any request is built. It
// requires a title, category, need, city and a positive price, and that the
// category/need pairing is one the schema allows.
func Validate(d *listing.Draft) error {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if d.Category == "" {
		missing = append(missing, "category")
	}
	if d.Need == "" {
		missing = append(missing, "need")
	}
	if strings.TrimSpace(d.Location.City) == "" {
		missing = append(missing, "city")
	}
	if d.Price <= 0 {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	if !schema.AllowedPair(d.Type, d.Category, d.Need) {
		return &ValidationError{
			Msg: fmt.Sprintf("need %q is not valid for category %q", d.Need, d.Category),
		}
	}
	return nil
}

// Result reports a completed submission.
type Result struct {
	Created bool // false means an existing listing was updated
}

// Pipeline submits drafts to the listings backend.
type Pipeline struct {
	api *client.Client
}

// New creates a submission pipeline over the backend client.
func New(api *client.Client) *Pipeline {
	return &Pipeline{api: api}
}

// Submit validates the draft, serializes it with its media into one
// multipart request, and sends it: POST to create when no listing id is
// present, PUT to edit when one is. On success the caller closes the wizard
// and discards the draft; on any failure the draft is left intact for
// correction.
func (p *Pipeline) Submit(ctx context.Context, d *listing.Draft, reg *media.Registry) (*Result, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}

	body, contentType, err := BuildForm(d, reg)
	if err != nil {
		return nil, fmt.Errorf("building submission: %w", err)
	}

	if d.EditMode() {
		if err := p.api.UpdateListing(ctx, body, contentType); err != nil {
			return nil, err
		}
		return &Result{Created: false}, nil
	}

	if err := p.api.CreateListing(ctx, body, contentType); err != nil {
		return nil, err
	}
	return &Result{Created: true}, nil
}

// UserMessage renders a submission error for display: backend field errors
// verbatim, anything transport-level as a generic retryable notice.
func UserMessage(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return "the server rejected the listing: " + apiErr.Error()
	}
	return "could not reach the server; check your connection and try again"
}

// BuildForm serializes the draft and its media registry into a multipart
// body, returning the body and its content type.
func BuildForm(d *listing.Draft, reg *media.Registry) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]string{
		"listingType":       string(d.Type),
		"title":             d.Title,
		"subtitle":          d.Subtitle,
		"category":          string(d.Category),
		"serviceLocation":   d.Location.City,
		"summary":           d.Summary,
		"price":             formatFloat(d.Price),
		"description":       d.Description,
		"status":            d.Status,
		"need":              string(d.Need),
		"generalInfo":       d.GeneralInfo,
		"propertyAmenities": d.PropertyAmenities,
		"localAmenities":    d.LocalAmenities,
		"paymentOptions":    d.PaymentOptions,
		"keyFeatures":       d.KeyFeatures,
		"faq":               d.FAQ,
	}

	if d.EditMode() {
		fields["listingId"] = d.ListingID
	}

	if schema.HasSpecs(d.Type, d.Category) {
		fields["size"] = formatFloat(d.Size)
		fields["bedrooms"] = strconv.Itoa(d.Bedrooms)
		fields["bathrooms"] = strconv.Itoa(d.Bathrooms)
		fields["parking"] = strconv.Itoa(d.Parking)
	}
	if schema.HasPlotCount(d.Category) {
		fields["size"] = formatFloat(d.Size)
		fields["totalPlots"] = strconv.Itoa(d.TotalPlots)
	}
	if schema.HasOccupancy(d.Need) {
		fields["occupancy"] = strconv.Itoa(d.Occupancy)
	}

	loc, err := marshalLocation(d.Location)
	if err != nil {
		return nil, "", err
	}
	fields["location"] = loc

	switch d.Type {
	case listing.TypeProperty:
		fields["videoLinks"] = d.VideoLinks
	case listing.TypeResource:
		fields["readingTime"] = strconv.Itoa(d.ReadingTime)
	case listing.TypeAddon:
		fields["whatsIncluded"] = d.WhatsIncluded
		fields["rationale"] = d.Rationale
	}

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", name, err)
		}
	}

	if d.Type == listing.TypeResource {
		for _, para := range d.Paragraphs {
			if err := w.WriteField("paragraphs", para); err != nil {
				return nil, "", fmt.Errorf("writing paragraph: %w", err)
			}
		}
	}

	if err := attachMedia(w, d, reg); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing form: %w", err)
	}

	return buf, w.FormDataContentType(), nil
}

// attachMedia writes the file parts. Only newly selected local files are
// uploaded; remote references already live server-side and are never
// re-attached.
func attachMedia(w *multipart.Writer, d *listing.Draft, reg *media.Registry) error {
	if reg == nil {
		return nil
	}

	if cover := reg.Cover(); cover != nil && !cover.IsRemote() {
		if err := attachFile(w, media.FieldDisplayImage, *cover); err != nil {
			return err
		}
	}

	for _, it := range reg.LocalFiles(media.FieldDisplayImages) {
		if err := attachFile(w, media.FieldDisplayImages, it); err != nil {
			return err
		}
	}

	if d.Type == listing.TypeProperty {
		for _, field := range []string{media.FieldFloorPlans, media.FieldSitePlans, media.FieldDocumentation} {
			for _, it := range reg.LocalFiles(field) {
				if err := attachFile(w, field, it); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func attachFile(w *multipart.Writer, field string, it media.Item) error {
	f, err := os.Open(it.Path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", it.Path, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, it.Name)
	if err != nil {
		return fmt.Errorf("creating part %s: %w", field, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copying %s: %w", it.Name, err)
	}
	return nil
}

func marshalLocation(l listing.Location) (string, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("serializing location: %w", err)
	}
	return string(b), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
