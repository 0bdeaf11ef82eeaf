package schema

import (
	"github.com/fjordhomes/listing-composer/internal/listing"
)

// Step is one page of the wizard.
type Step struct {
	Name     string
	Optional bool
}

// Steps returns the fixed step sequence for a listing type. Property carries
// an extra amenities step; every type has exactly one optional step, the
// details step at index 1.
func Steps(t listing.Type) []Step {
	if t == listing.TypeProperty {
		return []Step{
			{Name: "Type & Category"},
			{Name: "Details & Location", Optional: true},
			{Name: "Amenities"},
			{Name: "Features"},
			{Name: "FAQ & Media"},
			{Name: "Preview"},
		}
	}
	return []Step{
		{Name: "Type & Category"},
		{Name: "Details & Location", Optional: true},
		{Name: "Features"},
		{Name: "FAQ & Media"},
		{Name: "Preview"},
	}
}
