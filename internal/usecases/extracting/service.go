package extracting

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/etlerrors"
)

// Extractor lê arquivos de export do PowerApps e os normaliza em lotes de linhas brutas
type Extractor interface {
	ListSourceFiles(dir string) ([]string, error)
	Extract(path string) ([]*domain.ExportBatch, error)
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Extensões de arquivo suportadas pelo pipeline
var supportedExtensions = map[string]bool{
	".json": true,
	".csv":  true,
	".xlsx": true,
}

// ListSourceFiles enumera os arquivos de origem suportados, ordenados por nome.
// Diretório ausente ou ilegível é fatal para o run
func (s *Service) ListSourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler o diretório de entrada %s", dir)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(files)

	logrus.WithFields(logrus.Fields{
		"dir":   dir,
		"files": len(files),
	}).Info("Arquivos de origem encontrados")

	return files, nil
}

// Extract lê um arquivo de origem e devolve um lote por entidade presente nele.
// Exports JSON podem conter várias entidades; CSV e Excel carregam uma única
// entidade identificada pelo prefixo do nome do arquivo
func (s *Service) Extract(path string) ([]*domain.ExportBatch, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return s.extractJSON(path)
	case ".csv":
		return s.extractCSV(path)
	case ".xlsx":
		return s.extractExcel(path)
	}

	return nil, etlerrors.New(etlerrors.ErrSourceMalformed, "extensão não suportada: %s", filepath.Ext(path))
}

// EntityFromFilename extrai a entidade e a data de export do nome do
// arquivo, no padrão <entidade>_<data>.<ext> (ex.: opportunities_2025-08-01.csv)
func EntityFromFilename(path string) (domain.Entity, string, error) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.SplitN(base, "_", 2)
	entity := domain.Entity(strings.ToLower(parts[0]))

	exportDate := ""
	if len(parts) > 1 {
		exportDate = parts[1]
	}

	if !domain.IsKnownEntity(entity) {
		return "", "", etlerrors.New(etlerrors.ErrUnknownEntity, "entidade não reconhecida no nome do arquivo: %s", base)
	}

	return entity, exportDate, nil
}
