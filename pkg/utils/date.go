package utils

import "time"

// ParseDate aceita timestamps RFC3339 (formato enviado pelo app) ou datas
// simples no formato YYYY-MM-DD.
func ParseDate(dateStr string) (*time.Time, error) {
	incomingDate, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		incomingDate, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}
	}

	return &incomingDate, nil
}

// NormalizeDate zera o horário de um timestamp, produzindo a chave de dia
// (compare_date) usada para mesclar details do mesmo dia. Função pura: o
// resultado depende apenas da data de entrada.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
