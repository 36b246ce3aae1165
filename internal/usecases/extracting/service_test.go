package extracting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/etlerrors"
	"github.com/xuri/excelize/v2"
)

func TestEntityFromFilename(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		expected     domain.Entity
		expectedDate string
		hasError     bool
	}{
		{
			name:         "Nome com entidade e data",
			path:         "/tmp/opportunities_2025-08-01.csv",
			expected:     domain.EntityOpportunities,
			expectedDate: "2025-08-01",
		},
		{
			name:         "Nome sem data",
			path:         "inventory.xlsx",
			expected:     domain.EntityInventory,
			expectedDate: "",
		},
		{
			name:         "Entidade em maiúsculas é normalizada",
			path:         "Feedback_2025-08-01.csv",
			expected:     domain.EntityFeedback,
			expectedDate: "2025-08-01",
		},
		{
			name:     "Entidade não reconhecida retorna erro",
			path:     "vendas_2025-08-01.csv",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity, exportDate, err := EntityFromFilename(tt.path)

			if tt.hasError {
				assert.Error(t, err)
				pipeErr, ok := err.(*etlerrors.PipelineError)
				assert.True(t, ok)
				assert.Equal(t, etlerrors.ErrUnknownEntity, pipeErr.Code)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, entity)
			assert.Equal(t, tt.expectedDate, exportDate)
		})
	}
}

func TestService_ListSourceFiles(t *testing.T) {
	service := NewService()

	t.Run("Deve listar apenas extensões suportadas, ordenadas por nome", func(t *testing.T) {
		dir := t.TempDir()

		for _, name := range []string{"b.csv", "a.json", "c.xlsx", "notas.txt", "leia-me.md"} {
			assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
		}
		assert.NoError(t, os.Mkdir(filepath.Join(dir, "subdir.csv"), 0o755))

		files, err := service.ListSourceFiles(dir)

		assert.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.json"),
			filepath.Join(dir, "b.csv"),
			filepath.Join(dir, "c.xlsx"),
		}, files)
	})

	t.Run("Diretório inexistente retorna erro", func(t *testing.T) {
		_, err := service.ListSourceFiles("/caminho/inexistente")
		assert.Error(t, err)
	})
}

func TestService_ExtractCSV(t *testing.T) {
	service := NewService()

	t.Run("Deve normalizar cabeçalhos e carregar as linhas", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "opportunities_2025-08-01.csv")

		content := "Opportunity ID,Amount,Close Date\nOPP001,1000,2025-01-31\nOPP002,2500.50,2025-02-15\n"
		assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		batches, err := service.Extract(path)

		assert.NoError(t, err)
		assert.Len(t, batches, 1)
		assert.Equal(t, domain.EntityOpportunities, batches[0].Entity)
		assert.Equal(t, "opportunities_2025-08-01.csv", batches[0].SourceFile)
		assert.Equal(t, "2025-08-01", batches[0].ExportDate)
		assert.Len(t, batches[0].Rows, 2)
		assert.Equal(t, "OPP001", batches[0].Rows[0]["opportunity_id"])
		assert.Equal(t, "1000", batches[0].Rows[0]["amount"])
		assert.Equal(t, "2025-01-31", batches[0].Rows[0]["close_date"])
		assert.Equal(t, "2500.50", batches[0].Rows[1]["amount"])
	})

	t.Run("CSV vazio retorna erro de origem malformada", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "inventory_2025-08-01.csv")
		assert.NoError(t, os.WriteFile(path, []byte(""), 0o644))

		_, err := service.Extract(path)

		assert.Error(t, err)
		pipeErr, ok := err.(*etlerrors.PipelineError)
		assert.True(t, ok)
		assert.Equal(t, etlerrors.ErrSourceMalformed, pipeErr.Code)
	})
}

func TestService_ExtractJSON(t *testing.T) {
	service := NewService()

	t.Run("Deve gerar um lote por entidade conhecida, achatando valores", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "powerapps_export_2025-08-01.json")

		content := `{
			"export_date": "2025-08-01",
			"data": {
				"opportunities": [
					{"opportunity_id": "OPP001", "amount": 1000.5, "probability": 50, "notes": null}
				],
				"feedback": [
					{"feedback_id": "FB001", "rating": 4, "responded": true}
				],
				"contratos": [
					{"id": "C1"}
				]
			}
		}`
		assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		batches, err := service.Extract(path)

		assert.NoError(t, err)
		// Entidade desconhecida "contratos" é ignorada com aviso
		assert.Len(t, batches, 2)

		byEntity := map[domain.Entity]*domain.ExportBatch{}
		for _, batch := range batches {
			byEntity[batch.Entity] = batch
		}

		opportunities := byEntity[domain.EntityOpportunities]
		assert.NotNil(t, opportunities)
		assert.Equal(t, "2025-08-01", opportunities.ExportDate)
		assert.Len(t, opportunities.Rows, 1)
		assert.Equal(t, "1000.5", opportunities.Rows[0]["amount"])
		assert.Equal(t, "50", opportunities.Rows[0]["probability"])
		assert.Equal(t, "", opportunities.Rows[0]["notes"])

		feedback := byEntity[domain.EntityFeedback]
		assert.NotNil(t, feedback)
		assert.Equal(t, "true", feedback.Rows[0]["responded"])
	})

	t.Run("JSON corrompido retorna erro de origem malformada", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "powerapps_export_2025-08-01.json")
		assert.NoError(t, os.WriteFile(path, []byte("{invalido"), 0o644))

		_, err := service.Extract(path)

		assert.Error(t, err)
		pipeErr, ok := err.(*etlerrors.PipelineError)
		assert.True(t, ok)
		assert.Equal(t, etlerrors.ErrSourceMalformed, pipeErr.Code)
	})
}

func TestService_ExtractExcel(t *testing.T) {
	service := NewService()

	t.Run("Deve ler a primeira aba com cabeçalho na primeira linha", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "inventory_2025-08-01.xlsx")

		file := excelize.NewFile()
		sheet := file.GetSheetName(0)
		assert.NoError(t, file.SetSheetRow(sheet, "A1", &[]interface{}{"Item ID", "Quantity", "Reorder Point"}))
		assert.NoError(t, file.SetSheetRow(sheet, "A2", &[]interface{}{"ITEM-001", 5, 10}))
		assert.NoError(t, file.SetSheetRow(sheet, "A3", &[]interface{}{"ITEM-002", 40, 10}))
		assert.NoError(t, file.SaveAs(path))
		assert.NoError(t, file.Close())

		batches, err := service.Extract(path)

		assert.NoError(t, err)
		assert.Len(t, batches, 1)
		assert.Equal(t, domain.EntityInventory, batches[0].Entity)
		assert.Len(t, batches[0].Rows, 2)
		assert.Equal(t, "ITEM-001", batches[0].Rows[0]["item_id"])
		assert.Equal(t, "5", batches[0].Rows[0]["quantity"])
		assert.Equal(t, "10", batches[0].Rows[0]["reorder_point"])
		assert.Equal(t, "40", batches[0].Rows[1]["quantity"])
	})

	t.Run("Arquivo inexistente retorna erro", func(t *testing.T) {
		_, err := service.Extract("/caminho/inexistente/inventory_2025-08-01.xlsx")
		assert.Error(t, err)
	})
}

func TestService_Extract_UnsupportedExtension(t *testing.T) {
	service := NewService()

	_, err := service.Extract("/tmp/opportunities_2025-08-01.txt")

	assert.Error(t, err)
	pipeErr, ok := err.(*etlerrors.PipelineError)
	assert.True(t, ok)
	assert.Equal(t, etlerrors.ErrSourceMalformed, pipeErr.Code)
}
