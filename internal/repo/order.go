package repo

import (
	"context"

	"github.com/order-intake-service/internal/model"
)

// OrderRepository persists the flattened order row in the relational store.
type OrderRepository interface {
	Insert(ctx context.Context, order *model.Order) error
}

// OrderJournal appends the full structured order to the document store.
type OrderJournal interface {
	Append(ctx context.Context, order *model.Order) error
}
