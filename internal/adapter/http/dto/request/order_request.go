package request

// FinalizeRequest carries the salesperson's answer to the location prompt and
// the fix the device obtained, if any.
type FinalizeRequest struct {
	CaptureLocation bool     `json:"capture_location"`
	LocationDenied  bool     `json:"location_denied"`
	Lat             *float64 `json:"lat"`
	Lon             *float64 `json:"lon"`
}
