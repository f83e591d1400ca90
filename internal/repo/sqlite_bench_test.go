package repo

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/order-intake-service/internal/model"
)

func BenchmarkInsertOrder(b *testing.B) {
	db, mock, err := sqlmock.New()
	if err != nil {
		b.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	order := &model.Order{
		Timestamp:   "2026-08-29 12:30:00",
		TableNumber: model.NewTableNumber("5"),
		Items: model.ItemList{
			model.StructuredItem("Pizza", 2, 300),
			model.PlainItem("Coke"),
		},
		TotalCost: model.NewTotalCost(640),
		Note:      "extra cheese",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		mock.ExpectExec("INSERT INTO orders").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		b.StartTimer()

		if err := insertOrder(ctx, db, order); err != nil {
			b.Fatal(err)
		}
	}
}
