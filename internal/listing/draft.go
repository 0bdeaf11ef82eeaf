package listing

import (
	"github.com/fjordhomes/listing-composer/internal/codec"
)

// Draft is the single in-memory listing being composed. One draft exists per
// wizard session; it is created when the wizard opens and discarded when it
// closes. Mode (create vs edit) is fixed at construction: a non-empty
// ListingID means edit.
//
// The collection fields suffixed "encoded" hold JSON strings in the form the
// backend expects. They are written only through the codec package, so the
// string form is always valid JSON.
type Draft struct {
	ListingID string
	Type      Type
	Category  Category
	Need      Need

	Title       string
	Subtitle    string
	Summary     string
	Description string
	GeneralInfo string
	Status      string

	Price      float64
	Size       float64
	Bedrooms   int
	Bathrooms  int
	Parking    int
	TotalPlots int
	Occupancy  int

	// Resource-only fields.
	ReadingTime int
	Paragraphs  []string

	// Addon-only field.
	Rationale string

	Location Location

	// Encoded collection fields.
	PropertyAmenities string // {"name": true}
	LocalAmenities    string // {"category:name": "minutes"}
	PaymentOptions    string // ["label"]
	KeyFeatures       string // ["text"]
	WhatsIncluded     string // ["text"]
	FAQ               string // [{"question","answer"}]
	VideoLinks        string // ["url"]
}

// New creates a draft in create mode with fresh defaults for the given type.
func New(t Type) *Draft {
	return &Draft{
		Type:              t,
		Status:            StatusUnpublished,
		PropertyAmenities: codec.EmptyObject,
		LocalAmenities:    codec.EmptyObject,
		PaymentOptions:    codec.EmptyArray,
		KeyFeatures:       codec.EmptyArray,
		WhatsIncluded:     codec.EmptyArray,
		FAQ:               codec.EmptyArray,
		VideoLinks:        codec.EmptyArray,
	}
}

// EditMode returns true if the draft updates an existing listing.
func (d *Draft) EditMode() bool {
	return d.ListingID != ""
}

// SetCategory changes the category and clears the need and every
// need-dependent selection. Options picked under the previous category/need
// pairing would otherwise survive as stale, now-invalid combinations.
func (d *Draft) SetCategory(c Category) {
	if d.Category == c {
		return
	}
	d.Category = c
	d.Need = ""
	d.PaymentOptions = codec.EmptyArray
	d.PropertyAmenities = codec.EmptyObject
}

// SetNeed records the transaction intent. Compatibility with the category is
// checked at submission, not here.
func (d *Draft) SetNeed(n Need) {
	d.Need = n
}
