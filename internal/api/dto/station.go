package dto

type StationResponse struct {
	Name           string  `json:"name"`
	Address        string  `json:"address,omitempty"`
	Lon            float64 `json:"lon"`
	Lat            float64 `json:"lat"`
	PricePerGallon float64 `json:"price_per_gallon"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}
