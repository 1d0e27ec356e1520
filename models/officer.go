package models

// Officer is a fixed pool entry
type Officer struct {
	Name    string `json:"name"`
	Station string `json:"station"`
	Phone   string `json:"phone"`
}
