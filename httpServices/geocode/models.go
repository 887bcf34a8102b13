package geocode

// addressSearchResult is one hit from the GSI address-search API. The API
// returns GeoJSON-style coordinates: [longitude, latitude].
type addressSearchResult struct {
	Geometry struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Title string `json:"title"`
	} `json:"properties"`
}
