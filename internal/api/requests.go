package api

// routing paths served by the backend
const (
	CalculateRoutePath = "/api/routing/calculate-route"
	GeocodePath        = "/api/routing/geocode"
	AnalyzeStreetPath  = "/api/routing/analyze-street"
	TrainAIPath        = "/api/routing/train-ai"
)

// DefaultCity used when geocoding without a city
const DefaultCity = "Campinas, SP"

// RouteRequest body of a route calculation
type RouteRequest struct {
	StartAddress string `json:"start_address"`
	EndAddress   string `json:"end_address"`
	CurrentTime  string `json:"current_time"`
}

// GeocodeRequest body of a geocode lookup
type GeocodeRequest struct {
	Address string `json:"address"`
	City    string `json:"city"`
}

// StreetRequest body of a street analysis
type StreetRequest struct {
	StreetName  string `json:"street_name"`
	CurrentTime string `json:"current_time"`
}
