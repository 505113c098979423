package exercises

// Exercise is one catalog entry. The catalog is reference data, not a log:
// workout records point at it only loosely, through the exercise name.
type Exercise struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Type         string   `json:"type"`
	BodyPart     string   `json:"bodyPart"`
	Equipment    string   `json:"equipment,omitempty"`
	Level        string   `json:"level,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
}
