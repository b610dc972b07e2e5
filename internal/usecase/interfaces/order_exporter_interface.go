package interfaces

import "preventa/internal/domain/entities"

// IOrderExporter renders the pending queue as a downloadable document.

//go:generate mockgen -source=order_exporter_interface.go -destination=mocks/mock_order_exporter.go -package=mock_interfaces

type IOrderExporter interface {
	Export(orders []entities.FinalizedOrder) ([]byte, error)
	ContentType() string
	FileExtension() string
}
