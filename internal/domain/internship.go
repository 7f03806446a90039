package domain

// Internship is a posting in the catalog.
type Internship struct {
	ID          int64  `json:"internship_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	CreatedBy   int64  `json:"created_by"`
}
