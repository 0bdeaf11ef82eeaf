package geocode

// Country holds a registered country's map centroid and default zoom.
type Country struct {
	Name   string
	Center Coords
	Zoom   int
}

// DefaultCenter is the fallback coordinate every draft starts from once a
// map is attached, so latitude/longitude are never empty.
var DefaultCenter = Coords{Lat: 5.6037, Lon: -0.1870} // Accra

// Zoom levels used when recentering the map.
const (
	ZoomCountry = 7
	ZoomStreet  = 15
)

// countries maps ISO country codes to registered centroids. The dashboard's
// markets plus a few diaspora origins.
var countries = map[string]Country{
	"GH": {Name: "Ghana", Center: Coords{Lat: 7.9465, Lon: -1.0232}, Zoom: ZoomCountry},
	"NG": {Name: "Nigeria", Center: Coords{Lat: 9.0820, Lon: 8.6753}, Zoom: 6},
	"CI": {Name: "Ivory Coast", Center: Coords{Lat: 7.5400, Lon: -5.5471}, Zoom: ZoomCountry},
	"TG": {Name: "Togo", Center: Coords{Lat: 8.6195, Lon: 0.8248}, Zoom: ZoomCountry},
	"KE": {Name: "Kenya", Center: Coords{Lat: -0.0236, Lon: 37.9062}, Zoom: 6},
	"ZA": {Name: "South Africa", Center: Coords{Lat: -30.5595, Lon: 22.9375}, Zoom: 6},
	"GB": {Name: "United Kingdom", Center: Coords{Lat: 55.3781, Lon: -3.4360}, Zoom: 6},
	"US": {Name: "United States", Center: Coords{Lat: 37.0902, Lon: -95.7129}, Zoom: 5},
	"DE": {Name: "Germany", Center: Coords{Lat: 51.1657, Lon: 10.4515}, Zoom: 6},
	"AE": {Name: "United Arab Emirates", Center: Coords{Lat: 23.4241, Lon: 53.8478}, Zoom: 7},
}

// CountryInfo returns the registered centroid/zoom for an ISO code.
func CountryInfo(code string) (Country, bool) {
	c, ok := countries[code]
	return c, ok
}
