package listing

import (
	"github.com/fjordhomes/listing-composer/internal/codec"
)

// Record is a listing as returned by GET /listings/getById/{id}/{type}.
// It seeds edit-mode drafts.
type Record struct {
	ID          string   `json:"_id"`
	ListingType string   `json:"listingType"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Category    string   `json:"category"`
	Need        string   `json:"need"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	GeneralInfo string   `json:"generalInfo"`
	Status      string   `json:"status"`
	Price       float64  `json:"price"`
	Size        float64  `json:"size"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Parking     int      `json:"parking"`
	TotalPlots  int      `json:"totalPlots"`
	Occupancy   int      `json:"occupancy"`
	ReadingTime int      `json:"readingTime"`
	Paragraphs  []string `json:"paragraphs"`
	Rationale   string   `json:"rationale"`

	Location Location `json:"location"`

	PropertyAmenities string `json:"propertyAmenities"`
	LocalAmenities    string `json:"localAmenities"`
	PaymentOptions    string `json:"paymentOptions"`
	KeyFeatures       string `json:"keyFeatures"`
	WhatsIncluded     string `json:"whatsIncluded"`
	FAQ               string `json:"faq"`
	VideoLinks        string `json:"videoLinks"`

	// Remote media references, already persisted server-side.
	DisplayImage  string   `json:"displayImage"`
	DisplayImages []string `json:"displayImages"`
	FloorPlans    []string `json:"floorPlans"`
	SitePlans     []string `json:"sitePlans"`
	Documentation []string `json:"documentation"`
}

// Hydrate builds an edit-mode draft from a fetched listing. Encoded fields
// coming back from the backend are normalized so a malformed value degrades
// to its empty default instead of poisoning the session.
func Hydrate(rec *Record) *Draft {
	d := &Draft{
		ListingID:   rec.ID,
		Type:        Type(rec.ListingType),
		Category:    Category(rec.Category),
		Need:        Need(rec.Need),
		Title:       rec.Title,
		Subtitle:    rec.Subtitle,
		Summary:     rec.Summary,
		Description: rec.Description,
		GeneralInfo: rec.GeneralInfo,
		Status:      rec.Status,
		Price:       rec.Price,
		Size:        rec.Size,
		Bedrooms:    rec.Bedrooms,
		Bathrooms:   rec.Bathrooms,
		Parking:     rec.Parking,
		TotalPlots:  rec.TotalPlots,
		Occupancy:   rec.Occupancy,
		ReadingTime: rec.ReadingTime,
		Paragraphs:  append([]string(nil), rec.Paragraphs...),
		Rationale:   rec.Rationale,
		Location:    rec.Location,

		PropertyAmenities: codec.EnsureObject(rec.PropertyAmenities),
		LocalAmenities:    codec.EnsureObject(rec.LocalAmenities),
		PaymentOptions:    codec.EnsureArray(rec.PaymentOptions),
		KeyFeatures:       codec.EnsureArray(rec.KeyFeatures),
		WhatsIncluded:     codec.EnsureArray(rec.WhatsIncluded),
		FAQ:               codec.EnsureArray(rec.FAQ),
		VideoLinks:        codec.EnsureArray(rec.VideoLinks),
	}
	if d.Status == "" {
		d.Status = StatusUnpublished
	}
	return d
}
