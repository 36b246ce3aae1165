package utils

import (
	"strings"
	"time"
)

// Formatos de data aceitos nos exports do PowerApps
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate converte uma data de export para time.Time, aceitando os formatos conhecidos
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	var firstErr error
	for _, layout := range dateLayouts {
		date, err := time.Parse(layout, dateStr)
		if err == nil {
			return date, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	return time.Time{}, firstErr
}

// MonthKey formata uma data como YYYY-MM para agrupamento mensal
func MonthKey(date time.Time) string {
	return date.Format("2006-01")
}
