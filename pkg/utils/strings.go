package utils

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// NormalizeHeader padroniza nomes de coluna de origem: minúsculas e underscores
// ("Reorder Point" -> "reorder_point")
func NormalizeHeader(header string) string {
	normalized := nonAlphanumeric.ReplaceAllString(strings.ToLower(strings.TrimSpace(header)), "_")
	return strings.Trim(normalized, "_")
}
