package loading

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/powerapps-data-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOpportunityRepo := mocks.NewMockOpportunityRepository(ctrl)
	mockFeedbackRepo := mocks.NewMockCustomerFeedbackRepository(ctrl)
	mockInventoryRepo := mocks.NewMockInventoryRepository(ctrl)
	mockLoadHistoryRepo := mocks.NewMockLoadHistoryRepository(ctrl)
	mockSalesSummaryRepo := mocks.NewMockSalesSummaryRepository(ctrl)

	service := NewService(
		mockOpportunityRepo,
		mockFeedbackRepo,
		mockInventoryRepo,
		mockLoadHistoryRepo,
		mockSalesSummaryRepo,
	)

	tests := []struct {
		name     string
		batch    *domain.TransformedBatch
		setup    func()
		hasError bool
		validate func(t *testing.T, entry *domain.LoadHistoryEntry)
	}{
		{
			name: "Carga completa sem descartes deve registrar status success",
			batch: &domain.TransformedBatch{
				Entity:     domain.EntityOpportunities,
				SourceFile: "opportunities_2025-08-01.csv",
				Opportunities: []*domain.Opportunity{
					{OpportunityID: "OPP001"},
					{OpportunityID: "OPP002"},
				},
			},
			setup: func() {
				mockOpportunityRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)
				mockLoadHistoryRepo.EXPECT().Append(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, entry *domain.LoadHistoryEntry) {
				assert.Equal(t, "run123", entry.RunID)
				assert.Equal(t, "opportunities_2025-08-01.csv", entry.SourceFile)
				assert.Equal(t, domain.EntityOpportunities, entry.Entity)
				assert.Equal(t, 2, entry.RecordsLoaded)
				assert.Equal(t, 0, entry.RecordsSkipped)
				assert.Equal(t, domain.LoadStatusSuccess, entry.Status)
			},
		},
		{
			name: "Descartes da transformação devem gerar status partial",
			batch: &domain.TransformedBatch{
				Entity:     domain.EntityFeedback,
				SourceFile: "feedback_2025-08-01.csv",
				Feedback: []*domain.CustomerFeedback{
					{FeedbackID: "FB001"},
				},
				Skipped: []domain.SkippedRow{
					{RowIndex: 1, RecordID: "FB002", Reason: "campo obrigatório ausente: rating"},
				},
			},
			setup: func() {
				mockFeedbackRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
				mockLoadHistoryRepo.EXPECT().Append(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, entry *domain.LoadHistoryEntry) {
				assert.Equal(t, 1, entry.RecordsLoaded)
				assert.Equal(t, 1, entry.RecordsSkipped)
				assert.Equal(t, domain.LoadStatusPartial, entry.Status)
			},
		},
		{
			name: "Falha de repositório conta como descarte do lote",
			batch: &domain.TransformedBatch{
				Entity:     domain.EntityInventory,
				SourceFile: "inventory_2025-08-01.csv",
				Inventory: []*domain.InventoryItem{
					{ItemID: "ITEM-001"},
					{ItemID: "ITEM-002"},
				},
			},
			setup: func() {
				mockInventoryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
				mockInventoryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(assert.AnError)
				mockLoadHistoryRepo.EXPECT().Append(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, entry *domain.LoadHistoryEntry) {
				assert.Equal(t, 1, entry.RecordsLoaded)
				assert.Equal(t, 1, entry.RecordsSkipped)
				assert.Equal(t, domain.LoadStatusPartial, entry.Status)
			},
		},
		{
			name: "Lote sem registros carregados deve registrar status failed",
			batch: &domain.TransformedBatch{
				Entity:     domain.EntityOpportunities,
				SourceFile: "opportunities_2025-08-02.csv",
				Skipped: []domain.SkippedRow{
					{Reason: "export JSON inválido"},
				},
			},
			setup: func() {
				mockLoadHistoryRepo.EXPECT().Append(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, entry *domain.LoadHistoryEntry) {
				assert.Equal(t, 0, entry.RecordsLoaded)
				assert.Equal(t, 1, entry.RecordsSkipped)
				assert.Equal(t, domain.LoadStatusFailed, entry.Status)
			},
		},
		{
			name: "Entidade não suportada retorna erro sem tocar o histórico",
			batch: &domain.TransformedBatch{
				Entity:     domain.Entity("contratos"),
				SourceFile: "contratos_2025-08-01.csv",
			},
			setup:    func() {},
			hasError: true,
		},
		{
			name: "Erro ao gravar o histórico propaga para o chamador",
			batch: &domain.TransformedBatch{
				Entity:     domain.EntityOpportunities,
				SourceFile: "opportunities_2025-08-03.csv",
				Opportunities: []*domain.Opportunity{
					{OpportunityID: "OPP001"},
				},
			},
			setup: func() {
				mockOpportunityRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
				mockLoadHistoryRepo.EXPECT().Append(gomock.Any()).Return(assert.AnError)
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			entry, err := service.Load(context.Background(), "run123", tt.batch)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, entry)
			}
		})
	}
}

func TestService_Load_EntryGravadoNoHistorico(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOpportunityRepo := mocks.NewMockOpportunityRepository(ctrl)
	mockLoadHistoryRepo := mocks.NewMockLoadHistoryRepository(ctrl)

	service := NewService(
		mockOpportunityRepo,
		mocks.NewMockCustomerFeedbackRepository(ctrl),
		mocks.NewMockInventoryRepository(ctrl),
		mockLoadHistoryRepo,
		mocks.NewMockSalesSummaryRepository(ctrl),
	)

	mockOpportunityRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	var appended *domain.LoadHistoryEntry
	mockLoadHistoryRepo.EXPECT().
		Append(gomock.Any()).
		DoAndReturn(func(entry *domain.LoadHistoryEntry) error {
			appended = entry
			return nil
		})

	entry, err := service.Load(context.Background(), "run456", &domain.TransformedBatch{
		Entity:     domain.EntityOpportunities,
		SourceFile: "opportunities_2025-08-01.csv",
		Opportunities: []*domain.Opportunity{
			{OpportunityID: "OPP001"},
		},
	})

	assert.NoError(t, err)
	// A linha devolvida ao chamador é a mesma registrada no load_history
	assert.Same(t, appended, entry)
	assert.Equal(t, "run456", appended.RunID)
	assert.Equal(t, domain.LoadStatusSuccess, appended.Status)
}

func TestService_RefreshSalesSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesSummaryRepo := mocks.NewMockSalesSummaryRepository(ctrl)
	service := NewService(
		mocks.NewMockOpportunityRepository(ctrl),
		mocks.NewMockCustomerFeedbackRepository(ctrl),
		mocks.NewMockInventoryRepository(ctrl),
		mocks.NewMockLoadHistoryRepository(ctrl),
		mockSalesSummaryRepo,
	)

	t.Run("Deve retornar o total de linhas agregadas", func(t *testing.T) {
		mockSalesSummaryRepo.EXPECT().
			RefreshFromOpportunities(gomock.Any()).
			Return(int64(12), nil)

		rows, err := service.RefreshSalesSummary(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(12), rows)
	})

	t.Run("Erro do repositório propaga para o chamador", func(t *testing.T) {
		mockSalesSummaryRepo.EXPECT().
			RefreshFromOpportunities(gomock.Any()).
			Return(int64(0), assert.AnError)

		_, err := service.RefreshSalesSummary(context.Background())

		assert.Error(t, err)
	})
}

func TestService_SalesSummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesSummaryRepo := mocks.NewMockSalesSummaryRepository(ctrl)
	service := NewService(
		mocks.NewMockOpportunityRepository(ctrl),
		mocks.NewMockCustomerFeedbackRepository(ctrl),
		mocks.NewMockInventoryRepository(ctrl),
		mocks.NewMockLoadHistoryRepository(ctrl),
		mockSalesSummaryRepo,
	)

	expected := []*domain.SalesSummary{
		{ReportDate: "2025-01", Region: "EMEA", TotalOpportunities: 3, WinRate: 0.5},
		{ReportDate: "2025-01", Region: "North America", TotalOpportunities: 2, WinRate: 1},
	}
	mockSalesSummaryRepo.EXPECT().List().Return(expected, nil)

	summaries, err := service.SalesSummaries()

	assert.NoError(t, err)
	assert.Equal(t, expected, summaries)
}

func TestLoadStatus(t *testing.T) {
	tests := []struct {
		name     string
		loaded   int
		skipped  int
		expected domain.LoadStatus
	}{
		{name: "Sem descartes é success", loaded: 10, skipped: 0, expected: domain.LoadStatusSuccess},
		{name: "Com descartes e registros carregados é partial", loaded: 9, skipped: 1, expected: domain.LoadStatusPartial},
		{name: "Sem registros carregados é failed", loaded: 0, skipped: 10, expected: domain.LoadStatusFailed},
		{name: "Lote vazio sem descartes é success", loaded: 0, skipped: 0, expected: domain.LoadStatusSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, loadStatus(tt.loaded, tt.skipped))
		})
	}
}
