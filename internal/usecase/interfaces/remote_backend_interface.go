package interfaces

import (
	"context"
	"encoding/json"
)

// IRemoteBackend abstracts the spreadsheet-backed service.
//
// Fetch operations return the raw JSON array exactly as served; shape
// validation is the catalog adapter's job. Upload operations succeed when the
// network call completes without a transport error; the backend sends no
// acknowledgement body.

//go:generate mockgen -source=remote_backend_interface.go -destination=mocks/mock_remote_backend.go -package=mock_interfaces

type IRemoteBackend interface {
	FetchProducts(ctx context.Context) (json.RawMessage, error)
	FetchClients(ctx context.Context) (json.RawMessage, error)
	FetchGoals(ctx context.Context) (json.RawMessage, error)
	UploadOrders(ctx context.Context, payload json.RawMessage) error
	UploadClients(ctx context.Context, payload json.RawMessage) error
}
