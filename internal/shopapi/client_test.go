package shopapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL, Logger: zerolog.Nop()})
	require.NoError(t, err)
	return client
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	client, err := New(Config{BaseURL: "http://localhost:5200/api/"})
	require.NoError(t, err)

	require.Equal(t, "http://localhost:5200/api", client.baseURL)
	require.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_TransportFailure(t *testing.T) {
	client, err := New(Config{BaseURL: "http://127.0.0.1:1", Logger: zerolog.Nop()})
	require.NoError(t, err)

	_, listErr := client.ListCustomers(context.Background())
	require.Error(t, listErr)

	var apiErr *Error
	require.ErrorAs(t, listErr, &apiErr)
	require.Equal(t, KindTransport, apiErr.Kind)
}
