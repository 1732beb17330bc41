package shopapi

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadProofOfPayment(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/uploads/proof-of-payment", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "42", r.FormValue("OrderId"))
		assert.Equal(t, "Ada Lovelace", r.FormValue("CustomerName"))

		file, header, err := r.FormFile("ProofOfPayment")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "receipt.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"fileName":"42_receipt.pdf"}`)
	}))

	name, err := client.UploadProofOfPayment(context.Background(), ProofOfPaymentUpload{
		FileName:     "receipt.pdf",
		ContentType:  "application/pdf",
		Data:         []byte("%PDF-"),
		OrderID:      42,
		CustomerName: "Ada Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, "42_receipt.pdf", name)
}

func TestUploadProofOfPayment_FallsBackToOriginalName(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{}`)
	}))

	name, err := client.UploadProofOfPayment(context.Background(), ProofOfPaymentUpload{
		FileName: "receipt.pdf",
		Data:     []byte("%PDF-"),
	})
	require.NoError(t, err)
	assert.Equal(t, "receipt.pdf", name)
}

func TestUploadProofOfPayment_OmitsEmptyAssociations(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, hasOrder := r.MultipartForm.Value["OrderId"]
		_, hasCustomer := r.MultipartForm.Value["CustomerName"]
		assert.False(t, hasOrder)
		assert.False(t, hasCustomer)
		w.WriteHeader(http.StatusOK)
	}))

	_, err := client.UploadProofOfPayment(context.Background(), ProofOfPaymentUpload{
		FileName: "receipt.png",
		Data:     []byte{1, 2, 3},
	})
	require.NoError(t, err)
}

func TestUploadProofOfPayment_OversizedRejectedBeforeNetwork(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for an oversized file")
	}))

	_, err := client.UploadProofOfPayment(context.Background(), ProofOfPaymentUpload{
		FileName: "huge.bin",
		Data:     make([]byte, MaxUploadSize+1),
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestUploadProofOfPayment_ServerFailureRaises(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"storage unavailable"}`, http.StatusBadGateway)
	}))

	_, err := client.UploadProofOfPayment(context.Background(), ProofOfPaymentUpload{
		FileName: "receipt.pdf",
		Data:     []byte("%PDF-"),
	})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindTransport, apiErr.Kind)
}
