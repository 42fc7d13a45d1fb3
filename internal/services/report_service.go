package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/repositories"
	"pharma-order-system/pkg/constants"
	apperrors "pharma-order-system/pkg/errors"
	"pharma-order-system/pkg/types"
)

const (
	defaultReportCurrency = "USD"
	ordersOverTimeDays    = 30
	exportLimit           = 100000
)

// CurrencyConverter converts amounts between ISO currency codes.
type CurrencyConverter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}

type ReportServiceInterface interface {
	OrderStats(ctx context.Context, filter dto.OrderStatsFilter) (*entities.OrderStats, error)
	ExportOrders(ctx context.Context, filter types.Filter) ([]entities.Order, error)
}

type reportService struct {
	orderRepo repositories.OrderRepositoryInterface
	converter CurrencyConverter
	logger    *zap.Logger
	now       func() time.Time
}

func NewReportService(
	orderRepo repositories.OrderRepositoryInterface,
	converter CurrencyConverter,
	logger *zap.Logger,
) ReportServiceInterface {
	return &reportService{
		orderRepo: orderRepo,
		converter: converter,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SpanStart returns the earliest creation time covered by span, or nil for
// "all". Unknown spans are rejected.
func SpanStart(span string, now time.Time) (*time.Time, error) {
	var since time.Time
	switch strings.ToLower(span) {
	case "", "all":
		return nil, nil
	case "1m":
		since = now.AddDate(0, -1, 0)
	case "3m":
		since = now.AddDate(0, -3, 0)
	case "6m":
		since = now.AddDate(0, -6, 0)
	case "1y":
		since = now.AddDate(-1, 0, 0)
	case "2y":
		since = now.AddDate(-2, 0, 0)
	case "3y":
		since = now.AddDate(-3, 0, 0)
	case "5y":
		since = now.AddDate(-5, 0, 0)
	default:
		return nil, apperrors.NewInvalidInputError("unknown span %q", span)
	}
	return &since, nil
}

func (s *reportService) OrderStats(ctx context.Context, filter dto.OrderStatsFilter) (*entities.OrderStats, error) {
	now := s.now()
	since := filter.Since
	if since == nil {
		var err error
		if since, err = SpanStart(filter.Span, now); err != nil {
			return nil, err
		}
	}

	orders, err := s.orderRepo.ListForStats(ctx, since, filter.Entity)
	if err != nil {
		return nil, err
	}

	stats := ComputeOrderStats(orders, now)

	currency := strings.ToUpper(strings.TrimSpace(filter.Currency))
	if currency == "" {
		currency = defaultReportCurrency
	}
	stats.Currency = currency
	for from, amount := range stats.RevenueByCurrency {
		converted, err := s.converter.Convert(ctx, amount, from, currency)
		if err != nil {
			s.logger.Warn("revenue left out of total, currency not convertible",
				zap.String("from", from), zap.String("to", currency), zap.Error(err))
			continue
		}
		stats.Revenue += converted
	}
	return stats, nil
}

func (s *reportService) ExportOrders(ctx context.Context, filter types.Filter) ([]entities.Order, error) {
	filter.WithPagination = true
	filter.Limit = exportLimit
	filter.Offset = 0
	orders, _, err := s.orderRepo.GetOrders(ctx, filter, repositories.OrderScope{})
	return orders, err
}

// ComputeOrderStats aggregates orders. Revenue is left per currency in
// RevenueByCurrency; Revenue itself stays zero until converted.
func ComputeOrderStats(orders []entities.Order, now time.Time) *entities.OrderStats {
	stats := &entities.OrderStats{
		TotalOrders:       len(orders),
		RevenueByCurrency: map[string]float64{},
	}

	byStatus := map[string]int{}
	byEntity := map[string]*entities.EntityRevenue{}
	var execTotal float64
	var execCount int

	for i := range orders {
		o := &orders[i]
		byStatus[string(o.Status)]++

		switch o.Status {
		case constants.StatusCompleted:
			stats.Completed++
		case constants.StatusMaterialDispatched, constants.StatusInTransit:
			stats.InTransit++
		case constants.StatusSentPOForApproval, constants.StatusAwaitingApproval:
			stats.PendingApproval++
		}

		if o.PriceToCustomer.Amount != 0 {
			cur := strings.ToUpper(o.PriceToCustomer.Currency)
			if cur == "" {
				cur = defaultReportCurrency
			}
			stats.RevenueByCurrency[cur] += o.PriceToCustomer.Amount
		}

		entity := o.Entity
		if entity == "" {
			entity = "Unassigned"
		}
		er, ok := byEntity[entity]
		if !ok {
			er = &entities.EntityRevenue{Entity: entity}
			byEntity[entity] = er
		}
		er.Count++
		er.Revenue += o.PriceToCustomer.Amount

		if days, ok := ExecutionDays(o); ok {
			execTotal += days
			execCount++
		}
	}

	if execCount > 0 {
		stats.AvgExecutionDays = execTotal / float64(execCount)
	}

	stats.ByStatus = make([]entities.StatusCount, 0, len(byStatus))
	for status, n := range byStatus {
		stats.ByStatus = append(stats.ByStatus, entities.StatusCount{Status: status, Count: n})
	}
	sort.Slice(stats.ByStatus, func(i, j int) bool {
		if stats.ByStatus[i].Count != stats.ByStatus[j].Count {
			return stats.ByStatus[i].Count > stats.ByStatus[j].Count
		}
		return stats.ByStatus[i].Status < stats.ByStatus[j].Status
	})

	stats.ByEntity = make([]entities.EntityRevenue, 0, len(byEntity))
	for _, er := range byEntity {
		stats.ByEntity = append(stats.ByEntity, *er)
	}
	sort.Slice(stats.ByEntity, func(i, j int) bool { return stats.ByEntity[i].Entity < stats.ByEntity[j].Entity })

	stats.OrdersLast30Days = ordersPerDay(orders, now, ordersOverTimeDays)
	return stats
}

// ExecutionDays measures a completed order from its first
// Drafting_PO_for_Supplier timeline entry to its first Completed entry.
// Without a Completed entry it falls back to UpdatedAt. Orders without a
// start entry, or with a negative span, are skipped.
func ExecutionDays(o *entities.Order) (float64, bool) {
	if o.Status != constants.StatusCompleted {
		return 0, false
	}

	var start, end *time.Time
	for i := range o.Timeline {
		e := &o.Timeline[i]
		if start == nil && e.Status == constants.StatusDraftingPOForSupplier {
			start = &e.Timestamp
		}
		if end == nil && e.Status == constants.StatusCompleted {
			end = &e.Timestamp
		}
	}
	if start == nil {
		return 0, false
	}
	if end == nil {
		end = &o.UpdatedAt
	}

	d := end.Sub(*start)
	if d < 0 {
		return 0, false
	}
	return d.Hours() / 24, true
}

func ordersPerDay(orders []entities.Order, now time.Time, days int) []entities.DailyCount {
	counts := make(map[string]int, days)
	for i := range orders {
		counts[orders[i].CreatedAt.UTC().Format(time.DateOnly)]++
	}

	out := make([]entities.DailyCount, 0, days)
	today := now.UTC().Truncate(24 * time.Hour)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(time.DateOnly)
		out = append(out, entities.DailyCount{Date: day, Count: counts[day]})
	}
	return out
}
