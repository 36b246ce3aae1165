package extracting

import (
	"math"
	"os"
	"path/filepath"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/etlerrors"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// exportEnvelope é o envelope de export do PowerApps: data de export e um
// mapa de entidade -> registros
type exportEnvelope struct {
	ExportDate string                              `json:"export_date"`
	Data       map[string][]map[string]interface{} `json:"data"`
}

func (s *Service) extractJSON(path string) ([]*domain.ExportBatch, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler o arquivo %s", path)
	}

	envelope := &exportEnvelope{}
	if err := json.Unmarshal(content, envelope); err != nil {
		return nil, etlerrors.Wrap(err, etlerrors.ErrSourceMalformed, "export JSON inválido: %s", filepath.Base(path))
	}

	batches := make([]*domain.ExportBatch, 0, len(envelope.Data))
	for entityName, records := range envelope.Data {
		entity := domain.Entity(entityName)
		if !domain.IsKnownEntity(entity) {
			logrus.WithFields(logrus.Fields{
				"source_file": filepath.Base(path),
				"entity":      entityName,
			}).Warn("Entidade não reconhecida no export, ignorando")
			continue
		}

		if len(records) == 0 {
			logrus.WithField("entity", entityName).Warn("Export sem registros para a entidade")
			continue
		}

		rows := make([]domain.RawRow, 0, len(records))
		for _, record := range records {
			row := make(domain.RawRow, len(record))
			for field, value := range record {
				row[utils.NormalizeHeader(field)] = cellString(value)
			}
			rows = append(rows, row)
		}

		batches = append(batches, &domain.ExportBatch{
			Entity:     entity,
			SourceFile: filepath.Base(path),
			ExportDate: envelope.ExportDate,
			Rows:       rows,
		})
	}

	return batches, nil
}

// cellString achata um valor JSON para o formato string usado em RawRow,
// o mesmo formato em que células de CSV/Excel chegam
func cellString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	marshaled, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(marshaled)
}
