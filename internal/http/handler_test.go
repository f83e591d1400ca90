package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/order-intake-service/internal/model"
	"github.com/order-intake-service/internal/service"
)

type stubRepo struct {
	orders []*model.Order
	err    error
}

func (s *stubRepo) Insert(ctx context.Context, order *model.Order) error {
	if s.err != nil {
		return s.err
	}
	s.orders = append(s.orders, order)
	return nil
}

type stubJournal struct {
	entries []*model.Order
	err     error
}

func (s *stubJournal) Append(ctx context.Context, order *model.Order) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, order)
	return nil
}

func newTestRouter(repo *stubRepo, journal *stubJournal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(service.NewOrderService(repo, journal, nil)).RegisterRoutes(r)
	return r
}

func submit(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitOrderOK(t *testing.T) {
	repo := &stubRepo{}
	journal := &stubJournal{}
	r := newTestRouter(repo, journal)

	w := submit(r, `{
		"tableNumber": "5",
		"items": [{"name": "Pizza", "quantity": 2, "price": 300}],
		"totalCost": 600,
		"note": "extra cheese"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Order received and saved"}`, w.Body.String())

	require.Len(t, repo.orders, 1)
	require.Len(t, journal.entries, 1)
	assert.Equal(t, "Pizza (2) - ₹300", repo.orders[0].ItemsSummary())
	assert.Equal(t, 600.0, repo.orders[0].TotalCost.Amount)
}

func TestSubmitOrderEmptyObject(t *testing.T) {
	repo := &stubRepo{}
	journal := &stubJournal{}
	r := newTestRouter(repo, journal)

	// Every field is optional at the transport level.
	w := submit(r, `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Order received and saved"}`, w.Body.String())
	require.Len(t, repo.orders, 1)
}

func TestSubmitOrderMalformedBody(t *testing.T) {
	r := newTestRouter(&stubRepo{}, &stubJournal{})

	for name, body := range map[string]string{
		"not json":   "this is not json",
		"empty body": "",
		"truncated":  `{"tableNumber": `,
	} {
		t.Run(name, func(t *testing.T) {
			w := submit(r, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error": "invalid request body"}`, w.Body.String())
		})
	}
}

func TestSubmitOrderInsertFailure(t *testing.T) {
	r := newTestRouter(&stubRepo{err: errors.New("database is locked")}, &stubJournal{})

	w := submit(r, `{"tableNumber": "5"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The body stays generic; detail lives in the logs.
	assert.JSONEq(t, `{"error": "failed to save order"}`, w.Body.String())
}

func TestSubmitOrderJournalFailure(t *testing.T) {
	repo := &stubRepo{}
	r := newTestRouter(repo, &stubJournal{err: errors.New("read-only filesystem")})

	w := submit(r, `{"tableNumber": "5"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, repo.orders, 1, "relational write stays committed")
}
