package place

// Location mirrors the nested coordinate object the place search provider
// returns.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Result is one hit from the geospatial place search. Results are ephemeral:
// they live for the duration of a single search response and are never
// persisted. Every field except the name may be absent.
type Result struct {
	ID             string    `json:"id,omitempty"`
	Name           string    `json:"name"`
	Address        string    `json:"address,omitempty"`
	Location       *Location `json:"location,omitempty"`
	Categories     []string  `json:"categories,omitempty"`
	DistanceMeters *float64  `json:"distance,omitempty"`
}
