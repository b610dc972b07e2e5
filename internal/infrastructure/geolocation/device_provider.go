package geolocation

import (
	"context"
	"errors"
	"fmt"

	"preventa/internal/domain/entities"
	"preventa/internal/usecase/interfaces"
)

var ErrInvalidCoordinates = errors.New("coordinates out of range")

// DeviceProvider serves the fix the device reported along with the request.
// The browser owns the actual GPS prompt; the service only sees its result.
type DeviceProvider struct {
	lat, lon *float64
	denied   bool
}

var _ interfaces.IGeolocationProvider = (*DeviceProvider)(nil)

// NewDeviceProvider wraps an optional fix. Missing coordinates mean the device
// had no position to offer.
func NewDeviceProvider(lat, lon *float64) *DeviceProvider {
	return &DeviceProvider{lat: lat, lon: lon}
}

// NewDeniedProvider reports that the salesperson refused location access on
// the device.
func NewDeniedProvider() *DeviceProvider {
	return &DeviceProvider{denied: true}
}

func (p *DeviceProvider) CurrentLocation(ctx context.Context) (entities.Location, error) {
	if err := ctx.Err(); err != nil {
		return entities.Location{}, interfaces.ErrGeolocationTimeout
	}
	if p.denied {
		return entities.Location{}, interfaces.ErrGeolocationDenied
	}
	if p.lat == nil || p.lon == nil {
		return entities.Location{}, interfaces.ErrGeolocationUnavailable
	}
	lat, lon := *p.lat, *p.lon
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return entities.Location{}, fmt.Errorf("%w: lat=%v lon=%v", ErrInvalidCoordinates, lat, lon)
	}
	return entities.Location{Lat: lat, Lon: lon}, nil
}
