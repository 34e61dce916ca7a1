package models

// Product is the REST representation of a backend product document.
// ID is the backend-assigned _id.
type Product struct {
	ID           string  `json:"id"`
	SerialNumber string  `json:"serialNumber"`
	Title        string  `json:"title"`
	WeightLbs    float64 `json:"weightLbs"`
	Quantity     int     `json:"quantity"`
}
