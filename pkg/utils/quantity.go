package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ParseQuantityString converte uma string livre de quantidades ("10+20+30",
// "10  20") em uma lista de inteiros. Sequências de espaços são normalizadas
// para "+" antes do split; segmentos que não parseiam são descartados,
// preservando a ordem original dos demais.
func ParseQuantityString(input string) []int64 {
	normalized := whitespaceRun.ReplaceAllString(strings.TrimSpace(input), "+")

	var quantities []int64
	for _, segment := range strings.Split(normalized, "+") {
		value, err := strconv.ParseInt(segment, 10, 64)
		if err != nil {
			continue
		}
		quantities = append(quantities, value)
	}

	return quantities
}

// JoinQuantities monta a forma canônica "a+b+c" de uma lista de quantidades.
func JoinQuantities(quantities []int64) string {
	segments := make([]string, 0, len(quantities))
	for _, q := range quantities {
		segments = append(segments, strconv.FormatInt(q, 10))
	}
	return strings.Join(segments, "+")
}

// SumQuantities soma uma lista de quantidades.
func SumQuantities(quantities []int64) int64 {
	var total int64
	for _, q := range quantities {
		total += q
	}
	return total
}
