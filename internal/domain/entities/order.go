package entities

// CartLine is one line of the cart. Name, UnitPrice and PriceTier are
// snapshots taken when the line was added and are never recomputed.
type CartLine struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productoId"`
	Name      string    `json:"nombre"`
	UnitPrice float64   `json:"precio"`
	PriceTier PriceTier `json:"tipoPrecio"`
	Quantity  int       `json:"cantidad"`
	Subtotal  float64   `json:"subtotal"`
}

// OrderDraft is the persisted shape of the in-progress order.
type OrderDraft struct {
	ClientID     string     `json:"clienteId"`
	ClientSearch string     `json:"busquedaCliente"`
	PriceTier    PriceTier  `json:"tipoPrecio"`
	Lines        []CartLine `json:"carrito"`
	Observation  string     `json:"observacion"`
}

// IsEmpty reports whether the draft has nothing worth recovering.
func (d OrderDraft) IsEmpty() bool {
	return d.ClientID == "" && len(d.Lines) == 0
}

// FinalizedOrder is an immutable order waiting in the pending queue.
//
// Observation is a pointer so that records persisted without the field can be
// told apart from records with an empty note; the sync integrity check relies
// on that.
type FinalizedOrder struct {
	ID          string     `json:"id" validate:"required"`
	CreatedAt   string     `json:"fecha" validate:"required"`
	ClientName  string     `json:"cliente" validate:"required"`
	Lines       []CartLine `json:"items" validate:"required,min=1"`
	Total       float64    `json:"total"`
	Observation *string    `json:"observacion" validate:"required"`
}

func (o FinalizedOrder) ObservationText() string {
	if o.Observation == nil {
		return ""
	}
	return *o.Observation
}
