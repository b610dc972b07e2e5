package usecase

import (
	"encoding/json"

	"preventa/internal/domain/entities"
	"preventa/internal/domain/pricing"
)

// The draft and the pending queue are shared with the device front-end, which
// stores ids as millisecond timestamps and never sanitizes amounts. Both are
// read through the same loose conversions as the catalog snapshots.

func lineFromRow(raw any) (entities.CartLine, bool) {
	row, ok := raw.(map[string]any)
	if !ok || len(row) == 0 {
		return entities.CartLine{}, false
	}
	return entities.CartLine{
		ID:        stringField(row, "id"),
		ProductID: stringField(row, "productoId"),
		Name:      stringField(row, "nombre"),
		UnitPrice: pricing.Money(row["precio"]).InexactFloat64(),
		PriceTier: entities.ParsePriceTier(stringField(row, "tipoPrecio")),
		Quantity:  parseStock(row["cantidad"]),
		Subtotal:  pricing.Money(row["subtotal"]).InexactFloat64(),
	}, true
}

func linesFromRow(raw any) []entities.CartLine {
	items, _ := raw.([]any)
	lines := make([]entities.CartLine, 0, len(items))
	for _, item := range items {
		if l, ok := lineFromRow(item); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// textField keeps free text as typed; absent and null both read as "".
func textField(row map[string]any, key string) string {
	v, ok := row[key]
	if !ok || v == nil {
		return ""
	}
	return scalarString(v)
}

func orderFromRow(raw any) (entities.FinalizedOrder, bool) {
	row, ok := raw.(map[string]any)
	if !ok || len(row) == 0 {
		return entities.FinalizedOrder{}, false
	}
	o := entities.FinalizedOrder{
		ID:         stringField(row, "id"),
		CreatedAt:  stringField(row, "fecha"),
		ClientName: stringField(row, "cliente"),
		Total:      pricing.Money(row["total"]).InexactFloat64(),
	}
	if _, ok := row["items"].([]any); ok {
		o.Lines = linesFromRow(row["items"])
	}
	if v, ok := row["observacion"]; ok && v != nil {
		note := scalarString(v)
		o.Observation = &note
	}
	return o, true
}

// orderIDFromRaw reads the id of one stored queue record without decoding
// the rest of it.
func orderIDFromRaw(raw json.RawMessage) string {
	var row map[string]any
	if err := json.Unmarshal(raw, &row); err != nil {
		return ""
	}
	return stringField(row, "id")
}

func draftFromRow(raw any) (entities.OrderDraft, bool) {
	row, ok := raw.(map[string]any)
	if !ok {
		return entities.OrderDraft{}, false
	}
	return entities.OrderDraft{
		ClientID:     stringField(row, "clienteId"),
		ClientSearch: textField(row, "busquedaCliente"),
		PriceTier:    entities.ParsePriceTier(stringField(row, "tipoPrecio")),
		Lines:        linesFromRow(row["carrito"]),
		Observation:  textField(row, "observacion"),
	}, true
}
