package interfaces

import (
	"context"
	"errors"

	"preventa/internal/domain/entities"
)

var (
	ErrGeolocationUnavailable = errors.New("geolocation unavailable")
	ErrGeolocationDenied      = errors.New("geolocation permission denied")
	ErrGeolocationTimeout     = errors.New("geolocation timed out")
)

// IGeolocationProvider supplies a one-shot position fix.
//
// Implementations must honor ctx cancellation; callers bound the request with
// a deadline and treat expiry as ErrGeolocationTimeout.

//go:generate mockgen -source=geolocation_interface.go -destination=mocks/mock_geolocation.go -package=mock_interfaces

type IGeolocationProvider interface {
	CurrentLocation(ctx context.Context) (entities.Location, error)
}
