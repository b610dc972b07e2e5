package export

import (
	"bytes"
	"testing"

	"preventa/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_Export(t *testing.T) {
	obs := "sin sal"
	orders := []entities.FinalizedOrder{
		{
			ID:         "o1",
			CreatedAt:  "7/3/2026, 09:05:00",
			ClientName: "Almacen Don Pepe",
			Lines: []entities.CartLine{
				{Name: "Yerba", PriceTier: entities.PriceTierGeneral, Quantity: 3, UnitPrice: 100, Subtotal: 300},
				{Name: "Yerba", PriceTier: entities.PriceTierWholesale, Quantity: 1, UnitPrice: 80, Subtotal: 80},
			},
			Total:       380,
			Observation: &obs,
		},
	}

	data, err := NewXLSXExporter().Export(orders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 lines, got %d rows", len(rows))
	}
	if rows[0][0] != "Pedido" || rows[2][4] != "Mayorista" || rows[1][9] != "sin sal" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestXLSXExporter_EmptyQueue(t *testing.T) {
	data, err := NewXLSXExporter().Export(nil)
	if err != nil || len(data) == 0 {
		t.Fatalf("expected a valid empty workbook, got %d bytes err=%v", len(data), err)
	}
}
