package domain

// NotAvailable is the value of any PlantInfo field the model response did not
// provide.
const NotAvailable = "Not available"

// PlantInfo is the structured result derived from one model response. Every
// field is non-empty; missing data is NotAvailable.
type PlantInfo struct {
	Name           string `json:"name"`
	ScientificName string `json:"scientificName"`
	Description    string `json:"description"`
	Care           string `json:"care"`
	FunFact        string `json:"funFact"`
}
