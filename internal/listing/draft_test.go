package listing

import (
	"testing"

	"github.com/fjordhomes/listing-composer/internal/codec"
)

func TestNewDefaults(t *testing.T) {
	d := New(TypeProperty)

	if d.EditMode() {
		t.Error("new draft should not be in edit mode")
	}
	if d.Status != StatusUnpublished {
		t.Errorf("status = %q, want %q", d.Status, StatusUnpublished)
	}
	if d.PropertyAmenities != codec.EmptyObject {
		t.Errorf("propertyAmenities = %q, want empty object", d.PropertyAmenities)
	}
	if d.LocalAmenities != codec.EmptyObject {
		t.Errorf("localAmenities = %q, want empty object", d.LocalAmenities)
	}
	for name, encoded := range map[string]string{
		"paymentOptions": d.PaymentOptions,
		"keyFeatures":    d.KeyFeatures,
		"whatsIncluded":  d.WhatsIncluded,
		"faq":            d.FAQ,
		"videoLinks":     d.VideoLinks,
	} {
		if encoded != codec.EmptyArray {
			t.Errorf("%s = %q, want empty array", name, encoded)
		}
	}
}

func TestSetCategoryResetsDependentState(t *testing.T) {
	d := New(TypeProperty)
	d.SetCategory(CategoryResidential)
	d.SetNeed(NeedRent)
	d.PaymentOptions = codec.ToggleOption(d.PaymentOptions, "Monthly", true)
	d.PropertyAmenities = codec.ToggleAmenity(d.PropertyAmenities, "Garage", true)

	d.SetCategory(CategoryLand)

	if d.Need != "" {
		t.Errorf("need = %q after category change, want empty", d.Need)
	}
	if d.PaymentOptions != codec.EmptyArray {
		t.Errorf("paymentOptions = %q, want reset", d.PaymentOptions)
	}
	if d.PropertyAmenities != codec.EmptyObject {
		t.Errorf("propertyAmenities = %q, want reset", d.PropertyAmenities)
	}
}

func TestSetCategorySameIsNoop(t *testing.T) {
	d := New(TypeProperty)
	d.SetCategory(CategoryResidential)
	d.SetNeed(NeedBuy)
	d.PaymentOptions = codec.ToggleOption(d.PaymentOptions, "Mortgage", true)

	d.SetCategory(CategoryResidential)

	if d.Need != NeedBuy {
		t.Errorf("need = %q, want %q", d.Need, NeedBuy)
	}
	if d.PaymentOptions == codec.EmptyArray {
		t.Error("paymentOptions reset on a no-op category change")
	}
}

func TestValidType(t *testing.T) {
	for _, valid := range []Type{TypeProperty, TypeService, TypeResource, TypeAddon} {
		if !ValidType(valid) {
			t.Errorf("ValidType(%q) = false", valid)
		}
	}
	if ValidType("warehouse") {
		t.Error(`ValidType("warehouse") = true`)
	}
}

func TestHasAddress(t *testing.T) {
	var l Location
	if l.HasAddress() {
		t.Error("empty location should not have an address")
	}
	l.City = "Accra"
	if !l.HasAddress() {
		t.Error("location with a city should have an address")
	}
}

func TestHydrate(t *testing.T) {
	rec := &Record{
		ID:          "abc123",
		ListingType: "property",
		Title:       "Sunny villa",
		Category:    "Residential",
		Need:        "Buy",
		Price:       250000,
		Location:    Location{City: "Accra", Country: "GH"},

		PropertyAmenities: `{"Garage":true}`,
		LocalAmenities:    "not json",
		PaymentOptions:    `["Mortgage"]`,
		KeyFeatures:       "",
		WhatsIncluded:     "null",
		FAQ:               `[{"question":"Q","answer":"A"}]`,
		VideoLinks:        `{}`,
	}

	d := Hydrate(rec)

	if !d.EditMode() {
		t.Error("hydrated draft should be in edit mode")
	}
	if d.ListingID != "abc123" || d.Type != TypeProperty {
		t.Errorf("identity fields: %q %q", d.ListingID, d.Type)
	}
	if d.Status != StatusUnpublished {
		t.Errorf("missing status should default to %q, got %q", StatusUnpublished, d.Status)
	}

	// Valid encodings survive; malformed ones degrade to empty defaults
	if d.PropertyAmenities != `{"Garage":true}` {
		t.Errorf("propertyAmenities = %q", d.PropertyAmenities)
	}
	if d.LocalAmenities != codec.EmptyObject {
		t.Errorf("localAmenities = %q, want empty object", d.LocalAmenities)
	}
	if d.KeyFeatures != codec.EmptyArray {
		t.Errorf("keyFeatures = %q, want empty array", d.KeyFeatures)
	}
	if d.WhatsIncluded != codec.EmptyArray {
		t.Errorf("whatsIncluded = %q, want empty array", d.WhatsIncluded)
	}
	if d.VideoLinks != codec.EmptyArray {
		t.Errorf("videoLinks = %q, want empty array", d.VideoLinks)
	}
	if d.FAQ != `[{"question":"Q","answer":"A"}]` {
		t.Errorf("faq = %q", d.FAQ)
	}
}
