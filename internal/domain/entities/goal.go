package entities

// Goal is one row of the sales goals report downloaded from the backend.
type Goal struct {
	Date       string  `json:"fecha"`
	Target     float64 `json:"meta"`
	Sold       float64 `json:"venta"`
	Remaining  float64 `json:"falta"`
	Projection float64 `json:"proyeccion"`
}
