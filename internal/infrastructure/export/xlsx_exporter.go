package export

import (
	"bytes"
	"fmt"

	"preventa/internal/domain/entities"
	"preventa/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName       = "Pedidos"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var headers = []string{
	"Pedido",
	"Fecha",
	"Cliente",
	"Producto",
	"Lista",
	"Cantidad",
	"Precio",
	"Subtotal",
	"Total pedido",
	"Observación",
}

// XLSXExporter writes one row per order line so the sheet can be filtered and
// pivoted as-is.
type XLSXExporter struct{}

var _ interfaces.IOrderExporter = (*XLSXExporter)(nil)

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) ContentType() string   { return xlsxContentType }
func (e *XLSXExporter) FileExtension() string { return "xlsx" }

func (e *XLSXExporter) Export(orders []entities.FinalizedOrder) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetCellValue(sheetName, col+"1", h); err != nil {
			return nil, err
		}
		f.SetColWidth(sheetName, col, col, 16)
	}

	row := 2
	for _, o := range orders {
		for _, l := range o.Lines {
			values := []any{
				o.ID,
				o.CreatedAt,
				o.ClientName,
				l.Name,
				l.PriceTier.Label(),
				l.Quantity,
				l.UnitPrice,
				l.Subtotal,
				o.Total,
				o.ObservationText(),
			}
			for i, v := range values {
				col, _ := excelize.ColumnNumberToName(i + 1)
				if err := f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), v); err != nil {
					return nil, err
				}
			}
			row++
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, style)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	lastRow := row - 1
	if lastRow < 2 {
		lastRow = 2
	}
	f.AutoFilter(sheetName, fmt.Sprintf("A1:%s%d", lastCol, lastRow), []excelize.AutoFilterOptions{})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
