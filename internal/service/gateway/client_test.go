package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderdesk/internal/model"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
)

func staticToken(token string) TokenSource {
	return func() string { return token }
}

func TestLogin_Success(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("username"))
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("tok123\n"))
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, staticToken(""))

	token, err := client.Login(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Equal(t, "tok123", token)
	assert.Empty(t, gotAuth, "no bearer header before a session exists")
}

func TestLogin_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, staticToken(""))

	_, err := client.Login(context.Background(), "alice")

	assert.Error(t, err)
	var statusErr *StatusError
	if assert.ErrorAs(t, err, &statusErr) {
		assert.Equal(t, http.StatusUnauthorized, statusErr.Status)
	}
}

func TestLogin_EmptyToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("  \n"))
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, staticToken(""))

	_, err := client.Login(context.Background(), "alice")
	assert.Error(t, err)
}

func TestPlaceOrder_SubmitsRequest(t *testing.T) {
	var gotOrder model.OrderRequest
	var gotAuth, gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotOrder))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, staticToken("tok123"))

	err := client.PlaceOrder(context.Background(), model.OrderRequest{
		ProductID:  "prod-7",
		Quantity:   2,
		Price:      999.99,
		CustomerID: "alice",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "prod-7", gotOrder.ProductID)
	assert.Equal(t, 2, gotOrder.Quantity)
	assert.Equal(t, 999.99, gotOrder.Price)
	assert.Equal(t, "alice", gotOrder.CustomerID)
}

func TestPlaceOrder_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, staticToken("tok123"))

	err := client.PlaceOrder(context.Background(), model.OrderRequest{ProductID: "p1", Quantity: 1})

	assert.Error(t, err)
	var statusErr *StatusError
	assert.ErrorAs(t, err, &statusErr)
}

func TestOrdersByCustomer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/orders/customer/alice", r.URL.Path)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]model.Order{
			{ID: 1, ProductID: "p1", Quantity: 2, Price: 50, Status: "CREATED"},
			{ID: 2, ProductID: "p2", Quantity: 1, Price: 999.99, Status: "PENDING"},
		})
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, staticToken("tok123"))

	orders, err := client.OrdersByCustomer(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, "p1", orders[0].ProductID)
	assert.Equal(t, "PENDING", orders[1].Status)
}

func TestOrdersByCustomer_Empty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, staticToken("tok123"))

	orders, err := client.OrdersByCustomer(context.Background(), "alice")

	assert.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Len(t, orders, 0)
}

func TestOrdersByCustomer_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, staticToken("tok123"))

	_, err := client.OrdersByCustomer(context.Background(), "alice")
	assert.Error(t, err)
}

func TestOrdersByCustomer_BrotliResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "br", r.Header.Get("Accept-Encoding"))
		payload, _ := json.Marshal([]model.Order{
			{ID: 7, ProductID: "p7", Quantity: 3, Price: 10, Status: "CREATED"},
		})
		w.Header().Set("Content-Encoding", "br")
		bw := brotli.NewWriter(w)
		bw.Write(payload)
		bw.Close()
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, staticToken("tok123"))

	orders, err := client.OrdersByCustomer(context.Background(), "alice")

	assert.NoError(t, err)
	if assert.Len(t, orders, 1) {
		assert.Equal(t, int64(7), orders[0].ID)
	}
}

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/actuator/health", r.URL.Path)
		w.Write([]byte(`{"status":"UP"}`))
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, staticToken(""))
	assert.True(t, client.Health(context.Background()))
}

func TestHealth_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	client := NewClient(Config{BaseURL: ts.URL}, staticToken(""))
	assert.False(t, client.Health(context.Background()))
}
