// Package geo supplies the device position for nearby-pharmacy searches
// and the distances shown next to each result.
package geo

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrInvalidPosition  = errors.New("invalid location data")
)

// Permission is the outcome of asking for location access. Denied is a
// normal state the UI must render, not a failure.
type Permission int

const (
	PermissionUndetermined Permission = iota
	PermissionGranted
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "undetermined"
	}
}

type Position struct {
	Latitude  float64
	Longitude float64
}

func (p Position) Valid() bool {
	return !math.IsNaN(p.Latitude) && !math.IsNaN(p.Longitude) &&
		p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

type Provider interface {
	RequestPermission(ctx context.Context) (Permission, error)
	CurrentPosition(ctx context.Context) (Position, error)
}

// Radii are the search radii offered to the user, in kilometres.
var Radii = []float64{1, 2, 5, 10, 20}

// Locate asks for permission and then for the position.
func Locate(ctx context.Context, p Provider) (Position, error) {
	perm, err := p.RequestPermission(ctx)
	if err != nil {
		return Position{}, fmt.Errorf("request location permission: %w", err)
	}
	if perm != PermissionGranted {
		return Position{}, ErrPermissionDenied
	}
	pos, err := p.CurrentPosition(ctx)
	if err != nil {
		return Position{}, err
	}
	if !pos.Valid() {
		return Position{}, ErrInvalidPosition
	}
	return pos, nil
}

const earthRadiusKm = 6371.0

// Distance is the great-circle distance between a and b in kilometres.
func Distance(a, b Position) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(b.Latitude - a.Latitude)
	dLng := rad(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Latitude))*math.Cos(rad(b.Latitude))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// FormatDistance renders km as metres below 1 km and as kilometres with
// one decimal above.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}
