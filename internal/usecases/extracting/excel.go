package extracting

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/etlerrors"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/utils"
	"github.com/xuri/excelize/v2"
)

func (s *Service) extractExcel(path string) ([]*domain.ExportBatch, error) {
	entity, exportDate, err := EntityFromFilename(path)
	if err != nil {
		return nil, err
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao abrir a planilha %s", path)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, etlerrors.New(etlerrors.ErrSourceMalformed, "planilha sem abas: %s", filepath.Base(path))
	}

	// Os exports do PowerApps têm uma única aba com cabeçalho na primeira linha
	records, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, etlerrors.Wrap(err, etlerrors.ErrSourceMalformed, "planilha inválida: %s", filepath.Base(path))
	}

	if len(records) < 1 {
		return nil, etlerrors.New(etlerrors.ErrSourceMalformed, "planilha sem linha de cabeçalho: %s", filepath.Base(path))
	}

	headers := make([]string, len(records[0]))
	for i, header := range records[0] {
		headers[i] = utils.NormalizeHeader(header)
	}

	rows := make([]domain.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}

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
