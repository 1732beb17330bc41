package shopapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCustomers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":1,"name":"Ada","surname":"Lovelace","username":"ada","email":"ada@example.com","shippingAddress":"1 Analytical Way"}]`)
	}))

	customers, err := client.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, int64(1), customers[0].ID)
	assert.Equal(t, "Ada", customers[0].Name)
	assert.Equal(t, "1 Analytical Way", customers[0].ShippingAddress)
}

func TestListCustomers_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.ListCustomers(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindTransport, apiErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestGetCustomer_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	customer, err := client.GetCustomer(context.Background(), 42)
	assert.Nil(t, customer)
	assert.True(t, IsNotFound(err))
}

func TestCreateCustomer_PayloadOmitsID(t *testing.T) {
	var payload map[string]interface{}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":7,"name":"Ada","surname":"Lovelace","username":"ada","email":"ada@example.com","shippingAddress":"1 Analytical Way"}`)
	}))

	created, err := client.CreateCustomer(context.Background(), Customer{
		ID:              999, // must never reach the wire
		Name:            "Ada",
		Surname:         "Lovelace",
		Username:        "ada",
		Email:           "ada@example.com",
		ShippingAddress: "1 Analytical Way",
	})
	require.NoError(t, err)

	assert.NotContains(t, payload, "id")
	assert.Equal(t, "Ada", payload["name"])
	assert.Equal(t, int64(7), created.ID)
}

func TestCreateCustomer_FallsBackToInputOnEmptyBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	input := Customer{Name: "Ada", Surname: "Lovelace", Username: "ada", Email: "ada@example.com", ShippingAddress: "x"}
	created, err := client.CreateCustomer(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, input, *created)
}

func TestUpdateCustomer(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/customers/5", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.NotContains(t, payload, "id")

		w.WriteHeader(http.StatusOK)
	}))

	_, err := client.UpdateCustomer(context.Background(), Customer{ID: 5, Name: "Ada", Surname: "L", Username: "ada", Email: "ada@example.com", ShippingAddress: "x"})
	require.NoError(t, err)
}

func TestDeleteCustomer_Failure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		http.Error(w, `{"error":"in use"}`, http.StatusConflict)
	}))

	err := client.DeleteCustomer(context.Background(), 3)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, "in use", apiErr.Message)
}
