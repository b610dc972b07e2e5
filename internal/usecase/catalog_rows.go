package usecase

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"preventa/internal/domain/entities"
	"preventa/internal/domain/pricing"

	"github.com/google/uuid"
)

const (
	unnamedSentinel = "UNNAMED"
	defaultCategory = "Sin categoría"
)

// Accepted source column names, in priority order.
var (
	idFields             = []string{"ID", "id"}
	nameFields           = []string{"nombre", "Nombre"}
	priceFields          = []string{"precio", "Precio"}
	wholesalePriceFields = []string{"precio_mayorista", "precioMayorista", "PrecioMayorista", "mayorista"}
	relatedFields        = []string{"sugerencias", "Sugerencias", "sugerido"}
	phoneFields          = []string{"telefono", "Telefono"}
	tierFields           = []string{"lista", "Lista", "tipo_precio", "tipoPrecio"}
)

// truthy mirrors the spreadsheet convention where empty cells, zero and
// false all mean "no value".
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case json.Number:
		return t.String() != "" && t.String() != "0"
	case int:
		return t != 0
	default:
		return true
	}
}

func firstField(row map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := row[k]; ok && truthy(v) {
			return v, true
		}
	}
	return nil, false
}

func stringField(row map[string]any, keys ...string) string {
	v, ok := firstField(row, keys...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(scalarString(v))
}

// scalarString renders ids and labels; integral floats lose their ".0".
func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// parseIDList accepts a list, a single numeric id or a comma-separated string.
func parseIDList(v any) []string {
	if !truthy(v) {
		return []string{}
	}
	var parts []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			parts = append(parts, scalarString(item))
		}
	case []string:
		parts = append(parts, t...)
	case float64, json.Number, int:
		parts = []string{scalarString(t)}
	default:
		parts = strings.Split(scalarString(t), ",")
	}

	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

func parseStock(v any) int {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case json.Number:
		f, _ = t.Float64()
	case string:
		f, _ = strconv.ParseFloat(strings.TrimSpace(t), 64)
	}
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	return int(f)
}

// parseCoordinate reads a latitude or longitude. Coordinates always use a
// decimal point, so the price heuristics do not apply.
func parseCoordinate(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, t != 0 && !math.IsNaN(t)
	case json.Number:
		f, err := t.Float64()
		return f, err == nil && f != 0
	case string:
		f, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(t), ",", ".", 1), 64)
		return f, err == nil && f != 0
	}
	return 0, false
}

func nonNegativePrice(raw any) float64 {
	p := pricing.ParsePrice(raw)
	if p < 0 {
		return 0
	}
	return p
}

// fallbackID derives an id for a row that has none, according to policy.
// ok=false means the row must be dropped.
func fallbackID(policy IDPolicy, kind string, parts ...string) (string, bool) {
	switch policy {
	case IDPolicyDrop:
		return "", false
	case IDPolicyRandom:
		return uuid.NewString(), true
	default:
		h := sha1.New()
		h.Write([]byte(kind))
		for _, p := range parts {
			h.Write([]byte{0})
			h.Write([]byte(strings.ToLower(strings.TrimSpace(p))))
		}
		return "gen-" + hex.EncodeToString(h.Sum(nil))[:12], true
	}
}

func productFromRow(raw any, policy IDPolicy) (entities.Product, bool) {
	row, ok := raw.(map[string]any)
	if !ok || len(row) == 0 {
		return entities.Product{}, false
	}

	p := entities.Product{
		Name:     stringField(row, nameFields...),
		Category: stringField(row, "categoria"),
		Stock:    parseStock(row["stock"]),
	}
	if v, ok := firstField(row, priceFields...); ok {
		p.PriceGeneral = nonNegativePrice(v)
	}
	if p.Name == "" {
		p.Name = unnamedSentinel
	}
	if p.Category == "" {
		p.Category = defaultCategory
	}
	p.PriceWholesale = p.PriceGeneral
	if v, ok := firstField(row, wholesalePriceFields...); ok {
		p.PriceWholesale = nonNegativePrice(v)
	}
	related, _ := firstField(row, relatedFields...)
	p.RelatedIDs = parseIDList(related)

	p.ID = stringField(row, idFields...)
	if p.ID == "" {
		if p.ID, ok = fallbackID(policy, "product", p.Name, p.Category); !ok {
			return entities.Product{}, false
		}
	}
	return p, true
}

func clientIDFromRow(row map[string]any, policy IDPolicy) (string, bool) {
	if id := stringField(row, idFields...); id != "" {
		return id, true
	}
	name := stringField(row, nameFields...)
	if name == "" {
		name = unnamedSentinel
	}
	return fallbackID(policy, "client", name, stringField(row, "direccion"))
}

// rowLocation is nil unless both coordinates are present and non-zero.
func rowLocation(row map[string]any) *entities.Location {
	lat, latOK := parseCoordinate(row["lat"])
	lon, lonOK := parseCoordinate(row["lon"])
	if !latOK || !lonOK {
		return nil
	}
	return &entities.Location{Lat: lat, Lon: lon}
}

func clientFromRow(raw any, policy IDPolicy) (entities.Client, bool) {
	row, ok := raw.(map[string]any)
	if !ok || len(row) == 0 {
		return entities.Client{}, false
	}

	c := entities.Client{
		Name:             stringField(row, nameFields...),
		Address:          stringField(row, "direccion"),
		Phone:            stringField(row, phoneFields...),
		DefaultPriceTier: entities.ParsePriceTier(stringField(row, tierFields...)),
		TopHistoryIDs:    parseIDList(row["top10"]),
	}
	if c.Name == "" {
		c.Name = unnamedSentinel
	}
	c.Location = rowLocation(row)

	if c.ID, ok = clientIDFromRow(row, policy); !ok {
		return entities.Client{}, false
	}
	return c, true
}
