package domain

// Transcription é o resultado estruturado extraído do áudio: o nome do
// person e a expressão de quantidades ditada (ex.: "10+20+5").
type Transcription struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}
