// Package geocode resolves location text and pasted map links to coordinates.
package geocode

import (
	"regexp"
	"strconv"
)

// Coords is a latitude/longitude pair.
type Coords struct {
	Lat float64
	Lon float64
}

// LatString returns the latitude as a decimal string, the form the draft
// stores for transport stability.
func (c Coords) LatString() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

// LonString returns the longitude as a decimal string.
func (c Coords) LonString() string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// Coordinate patterns found in pasted map links, tried in order.
var (
	atPattern    = regexp.MustCompile(`@(-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)`)
	queryPattern = regexp.MustCompile(`[?&]q=(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)`)
	barePattern  = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*$`)
	embedPattern = regexp.MustCompile(`!3d(-?\d+(?:\.\d+)?)!4d(-?\d+(?:\.\d+)?)`)
)

// ParseCoords extracts an embedded coordinate pair from location input: an
// @lat,lng marker, a q=lat,lng query parameter, a bare lat,lng pair, or the
// !3d...!4d... embed marker. First match wins and no network call is made.
func ParseCoords(input string) (Coords, bool) {
	for _, re := range []*regexp.Regexp{atPattern, queryPattern, barePattern, embedPattern} {
		m := re.FindStringSubmatch(input)
		if m == nil {
			continue
		}
		lat, err1 := strconv.ParseFloat(m[1], 64)
		lon, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			continue
		}
		return Coords{Lat: lat, Lon: lon}, true
	}
	return Coords{}, false
}
