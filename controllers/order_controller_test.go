package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waco-shop/models"
)

type stubOrderStore struct {
	createErr error
	created   *models.Order
	orders    []models.Order
	listErr   error
}

func (s *stubOrderStore) Create(_ context.Context, o *models.Order) error {
	if s.createErr != nil {
		return s.createErr
	}
	o.ID = 11
	o.OrderNo = 3
	s.created = o
	return nil
}

func (s *stubOrderStore) ListByEmail(_ context.Context, _ string) ([]models.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.orders, nil
}

func newOrderRouter(store *stubOrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := &OrderController{Orders: store}
	r := gin.New()
	r.POST("/api/neworder", ctrl.CreateOrder)
	r.GET("/api/orders", ctrl.GetOrders)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validOrderBody = `{
	"Dining_option": "Pickup",
	"Product_id": "IC1, WF1",
	"list_of_orders": "Spanish Latte (16oz) x2, Classic Waffle x1",
	"Total_Price": "237.00",
	"Payment_method": "Cash",
	"User_email": "ana@example.com",
	"User_phone_no": "09171234567",
	"User_address": "123 Mabini St"
}`

func TestCreateOrderSuccess(t *testing.T) {
	store := &stubOrderStore{}
	r := newOrderRouter(store)

	w := postJSON(r, "/api/neworder", validOrderBody)

	require.Equal(t, 200, w.Code)
	var resp models.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Order saved successfully!", resp.Message)
	assert.Equal(t, 11, resp.OrderID)
	assert.Equal(t, 3, resp.OrderNo)

	require.NotNil(t, store.created)
	assert.Equal(t, "Pending", store.created.Status)
	assert.True(t, store.created.AmountOfBill.Equal(decimal.RequireFromString("237.00")))
}

func TestCreateOrderMissingFields(t *testing.T) {
	store := &stubOrderStore{}
	r := newOrderRouter(store)

	w := postJSON(r, "/api/neworder", `{"Dining_option": "Pickup"}`)

	require.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
	assert.Nil(t, store.created)
}

func TestCreateOrderGcashNeedsReference(t *testing.T) {
	store := &stubOrderStore{}
	r := newOrderRouter(store)

	body := strings.Replace(validOrderBody, `"Payment_method": "Cash"`, `"Payment_method": "Gcash"`, 1)
	w := postJSON(r, "/api/neworder", body)

	require.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Gcash reference")
}

func TestCreateOrderStoreFailure(t *testing.T) {
	store := &stubOrderStore{createErr: errors.New("connection refused")}
	r := newOrderRouter(store)

	w := postJSON(r, "/api/neworder", validOrderBody)

	require.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "Database insert failed")
}

func TestGetOrdersRequiresEmail(t *testing.T) {
	r := newOrderRouter(&stubOrderStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Email is required")
}

func TestGetOrdersReturnsHistory(t *testing.T) {
	store := &stubOrderStore{orders: []models.Order{
		{ID: 2, OrderNo: 2, Status: "Pending", UserEmail: "ana@example.com"},
		{ID: 1, OrderNo: 1, Status: "Completed", UserEmail: "ana@example.com"},
	}}
	r := newOrderRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?email=ana@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var got []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].OrderNo)
}
