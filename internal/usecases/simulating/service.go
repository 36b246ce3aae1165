package simulating

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/powerapps-data-pipeline/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Domínios de amostra, no formato dos exports reais do PowerApps
var (
	salesStages = []string{
		"Prospecting", "Qualification", "Needs Analysis",
		"Proposal", "Negotiation", "Closed Won", "Closed Lost",
	}
	products = []string{
		"Laptop Pro", "Desktop Elite", "Server X1", "Storage Array",
		"Network Switch", "Software License", "Consulting Hours",
	}
	regions   = []string{"North America", "EMEA", "Asia Pacific", "Latin America"}
	customers = []string{
		"Acme Corp", "Globex Inc", "Initech", "Umbrella Corp",
		"Stark Industries", "Wayne Enterprises", "Oscorp", "Cyberdyne Systems",
	}
	salesReps     = []string{"Ana Souza", "Bruno Lima", "Carla Mendes", "Diego Rocha"}
	feedbackTypes = []string{"Product", "Support", "Billing", "General"}
	sources       = []string{"Email", "Portal", "Phone", "Survey"}
	categories    = []string{"Hardware", "Software", "Services"}
	locations     = []string{"Warehouse A", "Warehouse B", "Warehouse C"}
	suppliers     = []string{"TechSupply Co", "Global Parts", "Prime Components"}
	statuses      = []string{"In Stock", "Low Stock", "On Order", "Out of Stock"}
)

// exportEnvelope espelha o formato de export do PowerApps lido pelo extrator
type exportEnvelope struct {
	ExportDate string                              `json:"export_date"`
	Data       map[string][]map[string]interface{} `json:"data"`
}

type Service struct {
	cfg config.Simulator
	rng *rand.Rand
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg.Simulator,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateSampleExports grava um export JSON por dia no diretório de saída,
// simulando a exportação diária do PowerApps
func (s *Service) GenerateSampleExports() error {
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar o diretório de saída: %w", err)
	}

	for day := s.cfg.Days - 1; day >= 0; day-- {
		date := time.Now().AddDate(0, 0, -day)
		exportDate := date.Format(time.DateOnly)

		envelope := &exportEnvelope{
			ExportDate: exportDate,
			Data: map[string][]map[string]interface{}{
				"opportunities": s.generateOpportunities(date),
				"feedback":      s.generateFeedback(date),
				"inventory":     s.generateInventory(date),
			},
		}

		content, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return fmt.Errorf("erro ao serializar o export de %s: %w", exportDate, err)
		}

		path := filepath.Join(s.cfg.OutputDir, fmt.Sprintf("powerapps_export_%s.json", exportDate))
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf("erro ao gravar o export de %s: %w", exportDate, err)
		}

		logrus.WithFields(logrus.Fields{
			"path":          path,
			"opportunities": len(envelope.Data["opportunities"]),
			"feedback":      len(envelope.Data["feedback"]),
			"inventory":     len(envelope.Data["inventory"]),
		}).Info("Export de amostra gerado")
	}

	return nil
}

func (s *Service) generateOpportunities(date time.Time) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, s.cfg.RecordsPerDay)

	for i := 0; i < s.cfg.RecordsPerDay; i++ {
		stage := salesStages[s.rng.Intn(len(salesStages))]
		amount := 10000 + s.rng.Float64()*490000

		var probability int
		var actualRevenue float64
		switch stage {
		case "Closed Won":
			probability = 100
			actualRevenue = amount
		case "Closed Lost":
			probability = 0
		default:
			probability = 10 + s.rng.Intn(81)
		}

		created := date.AddDate(0, 0, -s.rng.Intn(90))
		records = append(records, map[string]interface{}{
			"opportunity_id": uuid.New().String()[:8],
			"name":           fmt.Sprintf("Opportunity %d", 1000+s.rng.Intn(9000)),
			"customer":       customers[s.rng.Intn(len(customers))],
			"product":        products[s.rng.Intn(len(products))],
			"amount":         float64(int(amount*100)) / 100,
			"probability":    probability,
			"stage":          stage,
			"region":         regions[s.rng.Intn(len(regions))],
			"sales_rep":      salesReps[s.rng.Intn(len(salesReps))],
			"created_date":   created.Format(time.DateOnly),
			"close_date":     created.AddDate(0, 0, 30+s.rng.Intn(90)).Format(time.DateOnly),
			"actual_revenue": actualRevenue,
			"notes":          "",
		})
	}

	return records
}

func (s *Service) generateFeedback(date time.Time) []map[string]interface{} {
	count := s.cfg.RecordsPerDay / 2
	records := make([]map[string]interface{}, 0, count)

	for i := 0; i < count; i++ {
		rating := 1 + s.rng.Intn(5)
		responded := s.rng.Intn(100) < 70

		responseDays := ""
		if responded {
			responseDays = strconv.Itoa(s.rng.Intn(6))
		}

		comment := ""
		if s.rng.Intn(100) < 60 {
			comment = "Comentário de amostra do cliente"
		}

		records = append(records, map[string]interface{}{
			"feedback_id":    uuid.New().String()[:8],
			"customer":       customers[s.rng.Intn(len(customers))],
			"feedback_type":  feedbackTypes[s.rng.Intn(len(feedbackTypes))],
			"rating":         rating,
			"comment":        comment,
			"submitted_date": date.Format(time.DateOnly),
			"responded":      responded,
			"response_days":  responseDays,
			"source":         sources[s.rng.Intn(len(sources))],
		})
	}

	return records
}

func (s *Service) generateInventory(date time.Time) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, len(products))

	for i, product := range products {
		quantity := s.rng.Intn(200)
		reorderPoint := 20 + s.rng.Intn(30)
		unitCost := 50 + s.rng.Float64()*950

		records = append(records, map[string]interface{}{
			"item_id":        fmt.Sprintf("ITEM-%03d", i+1),
			"sku":            fmt.Sprintf("SKU-%04d", 1000+i),
			"product":        product,
			"category":       categories[s.rng.Intn(len(categories))],
			"quantity":       quantity,
			"status":         inventoryStatus(quantity, reorderPoint),
			"location":       locations[s.rng.Intn(len(locations))],
			"reorder_point":  reorderPoint,
			"unit_cost":      float64(int(unitCost*100)) / 100,
			"unit_price":     float64(int(unitCost*1.4*100)) / 100,
			"last_updated":   date.Format(time.DateOnly),
			"supplier":       suppliers[s.rng.Intn(len(suppliers))],
			"lead_time_days": 3 + s.rng.Intn(18),
		})
	}

	return records
}

func inventoryStatus(quantity, reorderPoint int) string {
	switch {
	case quantity == 0:
		return statuses[3]
	case quantity <= reorderPoint:
		return statuses[1]
	}
	return statuses[0]
}
