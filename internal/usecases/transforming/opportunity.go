package transforming

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/utils"
)

// Limiares de bucketing do tamanho do negócio
var (
	dealSizeSmallLimit      = decimal.NewFromInt(50000)
	dealSizeMediumLimit     = decimal.NewFromInt(100000)
	dealSizeLargeLimit      = decimal.NewFromInt(250000)
	highValueThreshold      = decimal.NewFromInt(100000)
	oneHundred              = decimal.NewFromInt(100)
	hoursPerDay         int = 24
)

// transformOpportunityRow valida uma linha bruta de oportunidade e deriva os
// campos calculados do warehouse
func transformOpportunityRow(row domain.RawRow) (*domain.Opportunity, error) {
	reader := rowReader{row: row}

	opportunityID, err := reader.requireString("opportunity_id")
	if err != nil {
		return nil, err
	}

	amount, err := reader.decimalField("amount")
	if err != nil {
		return nil, err
	}

	probability, err := reader.intField("probability")
	if err != nil {
		return nil, err
	}

	createdDate, err := reader.dateField("created_date")
	if err != nil {
		return nil, err
	}

	closeDate, err := reader.dateField("close_date")
	if err != nil {
		return nil, err
	}

	actualRevenue, err := reader.optionalDecimalField("actual_revenue")
	if err != nil {
		return nil, err
	}

	opportunity := &domain.Opportunity{
		OpportunityID: opportunityID,
		Name:          reader.stringField("name"),
		Customer:      reader.stringField("customer"),
		Product:       reader.stringField("product"),
		Amount:        amount,
		Probability:   probability,
		Stage:         reader.stringField("stage"),
		Region:        reader.stringField("region"),
		SalesRep:      reader.stringField("sales_rep"),
		CreatedDate:   createdDate,
		CloseDate:     closeDate,
		ActualRevenue: actualRevenue,
		Notes:         reader.stringField("notes"),
	}

	// weighted_amount = amount x probability / 100, arredondado a 2 casas
	opportunity.WeightedAmount = amount.
		Mul(decimal.NewFromInt(int64(probability))).
		Div(oneHundred).
		Round(2)

	opportunity.DaysToClose = int(closeDate.Sub(createdDate).Hours()) / hoursPerDay
	opportunity.DealSize = dealSize(amount)
	opportunity.HighValue = amount.GreaterThan(highValueThreshold)
	opportunity.CreatedMonth = utils.MonthKey(createdDate)
	opportunity.CreatedYear = createdDate.Year()

	return opportunity, nil
}

func dealSize(amount decimal.Decimal) string {
	switch {
	case amount.LessThan(dealSizeSmallLimit):
		return domain.DealSizeSmall
	case amount.LessThan(dealSizeMediumLimit):
		return domain.DealSizeMedium
	case amount.LessThan(dealSizeLargeLimit):
		return domain.DealSizeLarge
	}
	return domain.DealSizeEnterprise
}
