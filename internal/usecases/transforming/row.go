package transforming

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/etlerrors"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/utils"
)

// rowReader lê campos tipados de uma linha bruta, transformando valores
// malformados em erros de validação (a linha é descartada, não o run)
type rowReader struct {
	row domain.RawRow
}

func (r rowReader) stringField(key string) string {
	return strings.TrimSpace(r.row[key])
}

func (r rowReader) requireString(key string) (string, error) {
	value := r.stringField(key)
	if value == "" {
		return "", etlerrors.New(etlerrors.ErrMissingRequiredField, "campo obrigatório ausente: %s", key)
	}
	return value, nil
}

func (r rowReader) decimalField(key string) (decimal.Decimal, error) {
	value := r.stringField(key)
	if value == "" {
		return decimal.Zero, etlerrors.New(etlerrors.ErrMissingRequiredField, "campo obrigatório ausente: %s", key)
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, etlerrors.Wrap(err, etlerrors.ErrInvalidNumericField, "campo numérico malformado: %s=%q", key, value)
	}
	return parsed, nil
}

// optionalDecimalField trata célula vazia como zero (ex.: actual_revenue de
// oportunidades ainda abertas)
func (r rowReader) optionalDecimalField(key string) (decimal.Decimal, error) {
	if r.stringField(key) == "" {
		return decimal.Zero, nil
	}
	return r.decimalField(key)
}

func (r rowReader) intField(key string) (int, error) {
	value := r.stringField(key)
	if value == "" {
		return 0, etlerrors.New(etlerrors.ErrMissingRequiredField, "campo obrigatório ausente: %s", key)
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, etlerrors.Wrap(err, etlerrors.ErrInvalidNumericField, "campo inteiro malformado: %s=%q", key, value)
	}
	return parsed, nil
}

func (r rowReader) optionalIntField(key string) (*int, error) {
	value := r.stringField(key)
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, etlerrors.Wrap(err, etlerrors.ErrInvalidNumericField, "campo inteiro malformado: %s=%q", key, value)
	}
	return &parsed, nil
}

func (r rowReader) boolField(key string) (bool, error) {
	value := r.stringField(key)
	if value == "" {
		return false, nil
	}

	parsed, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return false, etlerrors.Wrap(err, etlerrors.ErrInvalidNumericField, "campo booleano malformado: %s=%q", key, value)
	}
	return parsed, nil
}

func (r rowReader) dateField(key string) (time.Time, error) {
	value := r.stringField(key)
	if value == "" {
		return time.Time{}, etlerrors.New(etlerrors.ErrMissingRequiredField, "campo obrigatório ausente: %s", key)
	}

	parsed, err := utils.ParseDate(value)
	if err != nil {
		return time.Time{}, etlerrors.Wrap(err, etlerrors.ErrInvalidDateField, "campo de data malformado: %s=%q", key, value)
	}
	return parsed, nil
}
