package entities

// Location is a GPS fix attached to a client.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Client is a point of sale visited by the salesperson.
//
// Location is nil until a fix has been captured; its presence is what "has GPS"
// means everywhere in the engine.
type Client struct {
	ID               string    `json:"id"`
	Name             string    `json:"nombre"`
	Address          string    `json:"direccion"`
	Phone            string    `json:"telefono"`
	Location         *Location `json:"location,omitempty"`
	DefaultPriceTier PriceTier `json:"tipo_precio"`
	TopHistoryIDs    []string  `json:"top10"`
}

func (c Client) HasLocation() bool {
	return c.Location != nil
}
