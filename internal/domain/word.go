package domain

// WordEntry represents a word and its meaning
type WordEntry struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}
