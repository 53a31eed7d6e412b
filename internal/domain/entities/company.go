package entities

// Company is a contracting company. Demands reference companies by name, so
// names must stay unique within a data set.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
