package entity

import "github.com/rotisserie/eris"

// Conversion error roots. Classification never fails; these surface only
// when a caller asks an Entity for its geometry. Match with eris.Is.
var (
	// ErrUnrecognized marks input that matched no known encoding.
	ErrUnrecognized = eris.New("entity: unrecognized input")
	// ErrRange marks LatLon text with |lat| > 90 or |lon| > 180.
	ErrRange = eris.New("entity: coordinates out of range")
	// ErrParse marks structurally broken text inside a recognized encoding.
	ErrParse = eris.New("entity: malformed input")
	// ErrMissingGeometry marks a GeoJSON Feature with an absent or null geometry.
	ErrMissingGeometry = eris.New("entity: feature has no geometry")
	// ErrNotAPoint marks a point-only operation applied to a non-point geometry.
	ErrNotAPoint = eris.New("entity: geometry is not a point")
)
