package extracting

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/etlerrors"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/utils"
)

func (s *Service) extractCSV(path string) ([]*domain.ExportBatch, error) {
	entity, exportDate, err := EntityFromFilename(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao abrir o arquivo %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, etlerrors.Wrap(err, etlerrors.ErrSourceMalformed, "CSV inválido: %s", filepath.Base(path))
	}

	if len(records) < 1 {
		return nil, etlerrors.New(etlerrors.ErrSourceMalformed, "CSV sem linha de cabeçalho: %s", filepath.Base(path))
	}

	headers := make([]string, len(records[0]))
	for i, header := range records[0] {
		headers[i] = utils.NormalizeHeader(header)
	}

	rows := make([]domain.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(domain.RawRow, len(headers))
		for i, cell := range record {
			if i < len(headers) {
				row[headers[i]] = cell
			}
		}
		rows = append(rows, row)
	}

	return []*domain.ExportBatch{{
		Entity:     entity,
		SourceFile: filepath.Base(path),
		ExportDate: exportDate,
		Rows:       rows,
	}}, nil
}
