package statistics

import (
	"context"
	"fmt"
	"sync"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gauswarn/storefront/internal/models"
	"github.com/gauswarn/storefront/pkg/types"
)

// Statistic types served by the admin dashboard
type StatisticType string

const (
	// Daily counts and revenue over paid orders
	StatisticTypeDailyOrderCount StatisticType = "daily_order_count"
	StatisticTypeDailyRevenue    StatisticType = "daily_revenue"
	StatisticTypeTotalRevenue    StatisticType = "total_revenue"

	// Profit: revenue minus quantity times unit purchase price
	StatisticTypeDailyProfit StatisticType = "daily_profit"

	// Breakdown of rows by payment status, paid and abandoned alike
	StatisticTypeStatusBreakdown StatisticType = "status_breakdown"
)

type SalesStatisticDataItem struct {
	ID StatisticType `json:"id"`
}

type SalesStatisticRequest struct {
	Filters   []*types.CommonFilter     `json:"filters"`
	DataItems []*SalesStatisticDataItem `json:"data_items"`
}

type SalesStatisticResponseDataItem struct {
	Date  string  `json:"date"`
	Label string  `json:"label,omitempty"`
	Value float64 `json:"value"`
}

type SalesStatisticResponse struct {
	DataItems map[StatisticType][]SalesStatisticResponseDataItem `json:"data_items"`
}

type filtersAnd struct{ filters []*types.CommonFilter }

func (f filtersAnd) Build(builder clause.Builder) {
	if len(f.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	for i, filter := range f.filters {
		if i > 0 {
			builder.WriteString(" AND ")
		}
		filter.Build(builder)
	}
}

// Service provides admin reporting over payment rows
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) paidRows(ctx context.Context, request *SalesStatisticRequest) *gorm.DB {
	q := s.db.WithContext(ctx).Table((models.PendingPayment{}).TableName()).
		Where("is_payment_paid = ?", true)
	if len(request.Filters) > 0 {
		q = q.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: request.Filters}}})
	}
	return q
}

func (s *Service) getDailyOrderCount(ctx context.Context, request *SalesStatisticRequest) ([]SalesStatisticResponseDataItem, error) {
	var results []SalesStatisticResponseDataItem
	q := s.paidRows(ctx, request).
		Select("date, count(*) as value").
		Group("date").
		Order("date")
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getDailyRevenue(ctx context.Context, request *SalesStatisticRequest) ([]SalesStatisticResponseDataItem, error) {
	var results []SalesStatisticResponseDataItem
	q := s.paidRows(ctx, request).
		Select("date, sum(user_total_amount) as value").
		Group("date").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true})
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getTotalRevenue(ctx context.Context, request *SalesStatisticRequest) ([]SalesStatisticResponseDataItem, error) {
	var results []SalesStatisticResponseDataItem
	q := s.paidRows(ctx, request).
		Select("max(date) as date, coalesce(sum(user_total_amount), 0) as value")
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getDailyProfit(ctx context.Context, request *SalesStatisticRequest) ([]SalesStatisticResponseDataItem, error) {
	var results []SalesStatisticResponseDataItem
	q := s.paidRows(ctx, request).
		Select("date, sum(user_total_amount - product_quantity * purchase_price) as value").
		Group("date").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true})
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getStatusBreakdown(ctx context.Context, request *SalesStatisticRequest) ([]SalesStatisticResponseDataItem, error) {
	var results []SalesStatisticResponseDataItem
	q := s.db.WithContext(ctx).Table((models.PendingPayment{}).TableName()).
		Select("status as label, count(*) as value").
		Group("status").
		Order("status")
	if len(request.Filters) > 0 {
		q = q.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: request.Filters}}})
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getSalesStatistic(ctx context.Context, request *SalesStatisticRequest, dataItem *SalesStatisticDataItem) ([]SalesStatisticResponseDataItem, error) {
	switch dataItem.ID {
	case StatisticTypeDailyOrderCount:
		return s.getDailyOrderCount(ctx, request)
	case StatisticTypeDailyRevenue:
		return s.getDailyRevenue(ctx, request)
	case StatisticTypeTotalRevenue:
		return s.getTotalRevenue(ctx, request)
	case StatisticTypeDailyProfit:
		return s.getDailyProfit(ctx, request)
	case StatisticTypeStatusBreakdown:
		return s.getStatusBreakdown(ctx, request)
	default:
		return nil, fmt.Errorf("invalid data item id: %s", dataItem.ID)
	}
}

// GetSalesStatistic fans the requested data items out concurrently and
// collects them into a single response.
func (s *Service) GetSalesStatistic(ctx context.Context, request *SalesStatisticRequest) (*SalesStatisticResponse, error) {
	if request == nil || len(request.DataItems) == 0 {
		return nil, fmt.Errorf("no data items requested")
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(request.DataItems))
	resChan := make(chan *lo.Entry[StatisticType, []SalesStatisticResponseDataItem], len(request.DataItems))

	for _, item := range request.DataItems {
		wg.Add(1)
		go func(di *SalesStatisticDataItem) {
			defer wg.Done()
			res, err := s.getSalesStatistic(ctx, request, di)
			if err != nil {
				errChan <- err
				return
			}
			resChan <- &lo.Entry[StatisticType, []SalesStatisticResponseDataItem]{Key: di.ID, Value: res}
		}(item)
	}

	go func() { wg.Wait(); close(errChan); close(resChan) }()

	results := make(map[StatisticType][]SalesStatisticResponseDataItem)
	for i := 0; i < len(request.DataItems); i++ {
		select {
		case err := <-errChan:
			if err != nil {
				return nil, err
			}
		case entry := <-resChan:
			results[entry.Key] = entry.Value
		}
	}
	return &SalesStatisticResponse{DataItems: results}, nil
}

// Scan payments request/response.
type ScanPaymentsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanPaymentsResponse struct {
	Items []*models.PendingPayment `json:"items"`
	Total int64                    `json:"total"`
}

// ScanPayments implements the paginated admin listing with filters
func (s *Service) ScanPayments(ctx context.Context, req *ScanPaymentsRequest) (*ScanPaymentsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.PendingPayment{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	var rows []*models.PendingPayment

	q := tx.Limit(req.Size)

	if req.From > 0 {
		q = q.Offset(req.From)
	}

	if req.SortBy != "" {
		q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: req.SortBy}, Desc: req.SortOrder != "asc"}}})
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &ScanPaymentsResponse{Items: rows, Total: total}, nil
}
