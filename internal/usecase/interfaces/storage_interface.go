package interfaces

import "context"

// IStorage is the key-value capability every component persists through.
//
// Values are opaque JSON documents. Get reports found=false (and no error)
// when the key is absent.

//go:generate mockgen -source=storage_interface.go -destination=mocks/mock_storage.go -package=mock_interfaces

type IStorage interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
