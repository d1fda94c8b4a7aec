package places

// SearchResponse represents the Foursquare Places Search API response
type SearchResponse struct {
	Results []PlaceResult `json:"results"`
}

// PlaceResult represents a single place result from the Foursquare API
type PlaceResult struct {
	FsqID      string     `json:"fsq_id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories,omitempty"`
	Location   *Location  `json:"location,omitempty"`
	Geocodes   *Geocodes  `json:"geocodes,omitempty"`
	Rating     *float64   `json:"rating,omitempty"`
	Hours      *Hours     `json:"hours,omitempty"`
	Website    string     `json:"website,omitempty"`
}

// Category represents a Foursquare place category
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Location represents the address information of a place
type Location struct {
	Address          string `json:"address,omitempty"`
	FormattedAddress string `json:"formatted_address,omitempty"`
	Locality         string `json:"locality,omitempty"`
	Region           string `json:"region,omitempty"`
	Country          string `json:"country,omitempty"`
}

// Geocodes represents the geocode entries of a place
type Geocodes struct {
	Main *LatLng `json:"main,omitempty"`
}

// LatLng represents a geographic coordinate
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Hours represents the opening-hours status of a place
type Hours struct {
	Display string `json:"display,omitempty"`
	OpenNow bool   `json:"open_now,omitempty"`
}
