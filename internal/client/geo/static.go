package geo

import "context"

// StaticProvider serves a position fixed in configuration. Without one it
// behaves like a device on which the user refused location access.
type StaticProvider struct {
	pos *Position
}

// NewStaticProvider returns a provider for the given coordinates; nil
// coordinates yield a provider that always reports PermissionDenied.
func NewStaticProvider(lat, lng *float64) *StaticProvider {
	if lat == nil || lng == nil {
		return &StaticProvider{}
	}
	return &StaticProvider{pos: &Position{Latitude: *lat, Longitude: *lng}}
}

func (s *StaticProvider) RequestPermission(ctx context.Context) (Permission, error) {
	if s.pos == nil {
		return PermissionDenied, nil
	}
	return PermissionGranted, nil
}

func (s *StaticProvider) CurrentPosition(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	if s.pos == nil {
		return Position{}, ErrPermissionDenied
	}
	return *s.pos, nil
}
