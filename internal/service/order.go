package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/order-intake-service/internal/logger"
	"github.com/order-intake-service/internal/model"
	"github.com/order-intake-service/internal/repo"
)

// Reporter receives each accepted order for operator visibility. Reporting is
// a side channel: it runs before persistence and its outcome is ignored.
type Reporter interface {
	Report(order *model.Order)
}

type OrderService struct {
	repo     repo.OrderRepository
	journal  repo.OrderJournal
	reporter Reporter
}

func NewOrderService(repo repo.OrderRepository, journal repo.OrderJournal, reporter Reporter) *OrderService {
	return &OrderService{repo: repo, journal: journal, reporter: reporter}
}

// SubmitOrderRequest is the inbound payload. Every field is optional; missing
// or wrong-typed values default per the model types.
type SubmitOrderRequest struct {
	TableNumber model.TableNumber `json:"tableNumber"`
	Items       model.ItemList    `json:"items"`
	TotalCost   model.TotalCost   `json:"totalCost"`
	Note        model.Note        `json:"note"`
}

// SubmitOrder stamps the receipt time, reports the order, and writes it to
// both stores in sequence. The two writes share no transaction: if the
// journal append fails after the SQLite insert succeeded, the row stays
// committed and the partial outcome is logged before the error is returned.
func (s *OrderService) SubmitOrder(ctx context.Context, req SubmitOrderRequest) (*model.Order, error) {
	log := logger.FromContext(ctx)

	order := &model.Order{
		Timestamp:   time.Now().Format(model.TimestampLayout),
		TableNumber: req.TableNumber,
		Items:       req.Items,
		TotalCost:   req.TotalCost,
		Note:        req.Note,
	}
	if order.Items == nil {
		order.Items = model.ItemList{}
	}

	if s.reporter != nil {
		s.reporter.Report(order)
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		log.Error("sqlite: failed to insert order", zap.Error(err))
		return nil, err
	}

	if err := s.journal.Append(ctx, order); err != nil {
		log.Error("journal: failed to append order", zap.Error(err))
		log.Warn("partial persistence: order committed to sqlite but missing from journal",
			zap.String("timestamp", order.Timestamp),
			zap.String("table_number", order.TableNumber.String()),
		)
		return nil, err
	}

	log.Info("order saved",
		zap.String("table_number", order.TableNumber.String()),
		zap.Int("items", len(order.Items)),
	)

	return order, nil
}
