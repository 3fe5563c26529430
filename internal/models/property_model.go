package models

// Property is the listing the gallery belongs to. It is configured at startup
// and never persisted alongside the catalog.
type Property struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Complex   string `json:"complex"`
	Address   string `json:"address"`
	CreatedAt int64  `json:"createdAt"`
}
