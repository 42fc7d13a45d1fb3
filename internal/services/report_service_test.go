package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"pharma-order-system/internal/dto"
	"pharma-order-system/internal/entities"
	"pharma-order-system/internal/repositories/mocks"
	"pharma-order-system/pkg/constants"
	apperrors "pharma-order-system/pkg/errors"
)

type fixedRates map[string]float64

func (r fixedRates) Convert(_ context.Context, amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}
	rate, ok := r[from+to]
	if !ok {
		return 0, errors.New("no rate")
	}
	return amount * rate, nil
}

func timelineAt(status constants.OrderStatus, at time.Time) entities.TimelineEvent {
	return entities.TimelineEvent{Status: status, Timestamp: at}
}

func TestSpanStart(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	since, err := SpanStart("all", now)
	require.NoError(t, err)
	assert.Nil(t, since)

	since, err = SpanStart("", now)
	require.NoError(t, err)
	assert.Nil(t, since)

	since, err = SpanStart("3m", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 30, 12, 0, 0, 0, time.UTC), *since)

	since, err = SpanStart("2Y", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 30, 12, 0, 0, 0, time.UTC), *since)

	_, err = SpanStart("10d", now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestExecutionDays(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	o := &entities.Order{
		Status: constants.StatusCompleted,
		Timeline: []entities.TimelineEvent{
			timelineAt(constants.StatusPOReceivedFromClient, start.Add(-48*time.Hour)),
			timelineAt(constants.StatusDraftingPOForSupplier, start),
			timelineAt(constants.StatusDraftingPOForSupplier, start.Add(24*time.Hour)),
			timelineAt(constants.StatusCompleted, start.AddDate(0, 0, 10)),
		},
	}
	days, ok := ExecutionDays(o)
	require.True(t, ok)
	assert.InDelta(t, 10.0, days, 0.0001)

	t.Run("falls back to updatedAt", func(t *testing.T) {
		o := &entities.Order{
			Status:    constants.StatusCompleted,
			UpdatedAt: start.AddDate(0, 0, 4),
			Timeline:  []entities.TimelineEvent{timelineAt(constants.StatusDraftingPOForSupplier, start)},
		}
		days, ok := ExecutionDays(o)
		require.True(t, ok)
		assert.InDelta(t, 4.0, days, 0.0001)
	})

	t.Run("skips orders that are not completed", func(t *testing.T) {
		_, ok := ExecutionDays(&entities.Order{Status: constants.StatusInTransit})
		assert.False(t, ok)
	})

	t.Run("skips orders without a start entry", func(t *testing.T) {
		_, ok := ExecutionDays(&entities.Order{
			Status:   constants.StatusCompleted,
			Timeline: []entities.TimelineEvent{timelineAt(constants.StatusCompleted, start)},
		})
		assert.False(t, ok)
	})

	t.Run("skips negative spans", func(t *testing.T) {
		_, ok := ExecutionDays(&entities.Order{
			Status: constants.StatusCompleted,
			Timeline: []entities.TimelineEvent{
				timelineAt(constants.StatusCompleted, start),
				timelineAt(constants.StatusDraftingPOForSupplier, start.Add(time.Hour)),
			},
		})
		assert.False(t, ok)
	})
}

func TestComputeOrderStats(t *testing.T) {
	now := time.Date(2025, 6, 30, 15, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, -5)

	orders := []entities.Order{
		{Status: constants.StatusCompleted, Entity: "Pharma India", CreatedAt: now,
			PriceToCustomer: entities.Price{Amount: 1000, Currency: "USD"},
			Timeline: []entities.TimelineEvent{
				timelineAt(constants.StatusDraftingPOForSupplier, start),
				timelineAt(constants.StatusCompleted, start.AddDate(0, 0, 2)),
			}},
		{Status: constants.StatusInTransit, Entity: "Pharma India", CreatedAt: now,
			PriceToCustomer: entities.Price{Amount: 500, Currency: "inr"}},
		{Status: constants.StatusMaterialDispatched, CreatedAt: now.AddDate(0, 0, -1),
			PriceToCustomer: entities.Price{Amount: 200}},
		{Status: constants.StatusSentPOForApproval, Entity: "Pharma EU", CreatedAt: now.AddDate(0, 0, -40)},
		{Status: constants.StatusAwaitingApproval, Entity: "Pharma EU", CreatedAt: now.AddDate(0, 0, -1)},
	}

	stats := ComputeOrderStats(orders, now)

	assert.Equal(t, 5, stats.TotalOrders)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.InTransit)
	assert.Equal(t, 2, stats.PendingApproval)
	assert.InDelta(t, 2.0, stats.AvgExecutionDays, 0.0001)
	assert.Equal(t, map[string]float64{"USD": 1200, "INR": 500}, stats.RevenueByCurrency)
	assert.Zero(t, stats.Revenue)

	require.Len(t, stats.ByStatus, 5)
	for _, sc := range stats.ByStatus {
		assert.Equal(t, 1, sc.Count)
	}
	assert.Equal(t, string(constants.StatusAwaitingApproval), stats.ByStatus[0].Status)

	assert.Equal(t, []entities.EntityRevenue{
		{Entity: "Pharma EU", Count: 2, Revenue: 0},
		{Entity: "Pharma India", Count: 2, Revenue: 1500},
		{Entity: "Unassigned", Count: 1, Revenue: 200},
	}, stats.ByEntity)

	require.Len(t, stats.OrdersLast30Days, 30)
	last := stats.OrdersLast30Days[29]
	assert.Equal(t, "2025-06-30", last.Date)
	assert.Equal(t, 2, last.Count)
	assert.Equal(t, 2, stats.OrdersLast30Days[28].Count)
	assert.Equal(t, "2025-06-01", stats.OrdersLast30Days[0].Date)
}

func TestComputeOrderStats_ByStatusSortedByCount(t *testing.T) {
	orders := []entities.Order{
		{Status: constants.StatusApproved},
		{Status: constants.StatusInTransit},
		{Status: constants.StatusInTransit},
	}
	stats := ComputeOrderStats(orders, time.Now())

	require.Len(t, stats.ByStatus, 2)
	assert.Equal(t, entities.StatusCount{Status: string(constants.StatusInTransit), Count: 2}, stats.ByStatus[0])
	assert.Zero(t, stats.AvgExecutionDays)
}

func TestOrderStats_ConvertsRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepositoryInterface(ctrl)
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	svc := &reportService{
		orderRepo: repo,
		converter: fixedRates{"INRUSD": 0.012},
		logger:    zap.NewNop(),
		now:       func() time.Time { return now },
	}

	wantSince := now.AddDate(0, -1, 0)
	repo.EXPECT().ListForStats(gomock.Any(), &wantSince, "Pharma India").Return([]entities.Order{
		{Status: constants.StatusCompleted, PriceToCustomer: entities.Price{Amount: 100, Currency: "USD"}},
		{Status: constants.StatusCompleted, PriceToCustomer: entities.Price{Amount: 10000, Currency: "INR"}},
		{Status: constants.StatusCompleted, PriceToCustomer: entities.Price{Amount: 50, Currency: "XYZ"}},
	}, nil)

	stats, err := svc.OrderStats(context.Background(), dto.OrderStatsFilter{Span: "1m", Entity: "Pharma India"})
	require.NoError(t, err)
	assert.Equal(t, "USD", stats.Currency)
	assert.InDelta(t, 220.0, stats.Revenue, 0.0001)
}

func TestOrderStats_RejectsUnknownSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepositoryInterface(ctrl)
	svc := NewReportService(repo, fixedRates{}, zap.NewNop())

	_, err := svc.OrderStats(context.Background(), dto.OrderStatsFilter{Span: "forever"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
