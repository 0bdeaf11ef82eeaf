package codec

import (
	"testing"
)

func TestEnsureObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"valid object", `{"Pool":true}`, `{"Pool":true}`},
		{"empty string", "", "{}"},
		{"garbage", "not json", "{}"},
		{"null", "null", "{}"},
		{"array not object", "[]", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureObject(tt.in); got != tt.want {
				t.Errorf("EnsureObject(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEnsureArray(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"valid array", `["a"]`, `["a"]`},
		{"empty string", "", "[]"},
		{"garbage", "{", "[]"},
		{"null", "null", "[]"},
		{"object not array", "{}", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureArray(tt.in); got != tt.want {
				t.Errorf("EnsureArray(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToggleAmenityRoundTrip(t *testing.T) {
	start := EmptyObject

	on := ToggleAmenity(start, "Swimming Pool", true)
	if AmenityMap(on)["Swimming Pool"] != true {
		t.Fatalf("amenity not selected after toggle on: %s", on)
	}

	off := ToggleAmenity(on, "Swimming Pool", false)
	if off != start {
		t.Errorf("toggle on then off = %q, want %q", off, start)
	}
}

func TestToggleAmenityDeselectRemovesKey(t *testing.T) {
	encoded := ToggleAmenity(EmptyObject, "Garage", true)
	encoded = ToggleAmenity(encoded, "Garden", true)
	encoded = ToggleAmenity(encoded, "Garage", false)

	m := AmenityMap(encoded)
	if _, ok := m["Garage"]; ok {
		t.Errorf("deselected amenity still present: %s", encoded)
	}
	if !m["Garden"] {
		t.Errorf("unrelated amenity lost: %s", encoded)
	}
}

func TestToggleOption(t *testing.T) {
	encoded := ToggleOption(EmptyArray, "Outright purchase", true)
	encoded = ToggleOption(encoded, "Mortgage", true)

	opts := Options(encoded)
	if len(opts) != 2 || opts[0] != "Outright purchase" || opts[1] != "Mortgage" {
		t.Fatalf("unexpected options order: %v", opts)
	}

	// Adding an existing option changes nothing
	same := ToggleOption(encoded, "Mortgage", true)
	if same != encoded {
		t.Errorf("re-adding option changed encoding: %q vs %q", same, encoded)
	}

	encoded = ToggleOption(encoded, "Outright purchase", false)
	opts = Options(encoded)
	if len(opts) != 1 || opts[0] != "Mortgage" {
		t.Errorf("unexpected options after removal: %v", opts)
	}

	encoded = ToggleOption(encoded, "Mortgage", false)
	if encoded != EmptyArray {
		t.Errorf("removing last option = %q, want %q", encoded, EmptyArray)
	}
}

func TestAddLocalAmenity(t *testing.T) {
	tests := []struct {
		name     string
		category string
		amenity  string
		distance string
		wantErr  bool
	}{
		{"valid", "School", "Achimota School", "5", false},
		{"decimal distance", "Hospital", "Ridge Hospital", "12.5", false},
		{"missing name", "School", "", "5", true},
		{"missing category", "", "Somewhere", "5", true},
		{"missing distance", "School", "Achimota School", "", true},
		{"non-numeric distance", "School", "Achimota School", "near", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := AddLocalAmenity(EmptyObject, tt.category, tt.amenity, tt.distance)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			m := LocalAmenityMap(encoded)
			if m[tt.category+":"+tt.amenity] != tt.distance {
				t.Errorf("entry missing from %s", encoded)
			}
		})
	}
}

func TestRemoveKey(t *testing.T) {
	encoded, err := AddLocalAmenity(EmptyObject, "School", "Achimota School", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := RemoveKey(encoded, "School:Achimota School"); got != EmptyObject {
		t.Errorf("RemoveKey = %q, want %q", got, EmptyObject)
	}
}

func TestAppendText(t *testing.T) {
	encoded, err := AppendText(EmptyArray, "  24 hour security  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	texts := Texts(encoded)
	if len(texts) != 1 || texts[0] != "24 hour security" {
		t.Fatalf("expected trimmed entry, got %v", texts)
	}

	// Duplicates are rejected and leave the list unchanged
	if _, err := AppendText(encoded, "24 hour security"); err == nil {
		t.Error("expected duplicate error, got nil")
	}
	if len(Texts(encoded)) != 1 {
		t.Errorf("list changed after rejected append: %v", Texts(encoded))
	}

	// Blank input is rejected
	if _, err := AppendText(encoded, "   "); err == nil {
		t.Error("expected empty-input error, got nil")
	}
}

func TestAppendVideoLink(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", false},
		{"with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10", false},
		{"not youtube", "https://vimeo.com/1234567", true},
		{"bare text", "my holiday video", true},
		{"short id", "https://youtu.be/abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AppendVideoLink(EmptyArray, tt.url)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestAppendVideoLinkDuplicate(t *testing.T) {
	url := "https://youtu.be/dQw4w9WgXcQ"
	encoded, err := AppendVideoLink(EmptyArray, url)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := AppendVideoLink(encoded, url); err == nil {
		t.Error("expected duplicate error, got nil")
	}
	if len(Texts(encoded)) != 1 {
		t.Errorf("list changed after rejected append: %v", Texts(encoded))
	}
}

func TestAppendFAQ(t *testing.T) {
	encoded, err := AppendFAQ(EmptyArray, "Is the title clean?", "Yes, registered land.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	faqs := FAQs(encoded)
	if len(faqs) != 1 || faqs[0].Question != "Is the title clean?" {
		t.Fatalf("unexpected faqs: %v", faqs)
	}

	// Same question again is rejected
	if _, err := AppendFAQ(encoded, "Is the title clean?", "different answer"); err == nil {
		t.Error("expected duplicate error, got nil")
	}
	if len(FAQs(encoded)) != 1 {
		t.Errorf("list changed after rejected append")
	}
}

func TestRemoveFAQ(t *testing.T) {
	encoded, err := AppendFAQ(EmptyArray, "Q1", "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	encoded, err = AppendFAQ(encoded, "Q2", "A2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encoded = RemoveFAQ(encoded, "Q1")
	faqs := FAQs(encoded)
	if len(faqs) != 1 || faqs[0].Question != "Q2" {
		t.Errorf("unexpected faqs after remove: %v", faqs)
	}

	encoded = RemoveFAQ(encoded, "Q2")
	if encoded != EmptyArray {
		t.Errorf("removing last faq = %q, want %q", encoded, EmptyArray)
	}
}
