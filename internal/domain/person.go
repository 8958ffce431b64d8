package domain

import "time"

// Person é o registro agregado de pesagens de uma pessoa: nome, mercadoria,
// unidade e o total acumulado de todas as quantidades já registradas. O
// total_quantity é mantido incrementalmente a cada submissão; a soma dos
// details é a verificação, nunca o caminho de leitura.
type Person struct {
	ID            string    `json:"id"`
	UserID        int       `json:"-"`
	Name          string    `json:"name"`
	Item          string    `json:"item"`
	Unit          string    `json:"unit"`
	TotalQuantity int64     `json:"total_quantity"`
	CreatedAt     time.Time `json:"created_at"`
	ModifiedAt    time.Time `json:"modified_at"`
}

// Detail agrupa todas as quantidades registradas para um Person em um dia
// de calendário. CompareDate é a chave de merge (horário zerado); há no
// máximo um Detail por (person, compare_date). SelectedDate preserva o
// timestamp da primeira submissão do dia, para exibição.
type Detail struct {
	ID              string    `json:"id"`
	PersonID        string    `json:"-"`
	CompareDate     time.Time `json:"compare_date"`
	SelectedDate    time.Time `json:"selected_date"`
	QuantityEntries []int64   `json:"quantity_entries"`
	CreatedDate     time.Time `json:"created_date"`
	ModifiedDate    time.Time `json:"modified_date"`
}

// EntryInput é a submissão de pesagem vinda do app. QuantityEntries chega
// parseada; Quantity é a forma crua ("10+20") aceita como alternativa.
type EntryInput struct {
	Name            string  `json:"name"`
	Item            string  `json:"item"`
	Unit            string  `json:"unit"`
	SelectedDate    string  `json:"selected_date"`
	QuantityEntries []int64 `json:"quantity_entries"`
	Quantity        string  `json:"quantity"`
}

// EntryResult é o resultado tipado de uma submissão.
type EntryResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	PersonID      string `json:"id,omitempty"`
	TotalQuantity int64  `json:"total_quantity"`
}
