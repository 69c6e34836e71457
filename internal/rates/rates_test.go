package rates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/rates"
)

func quoteHandler(t *testing.T, bid string) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json/last/USD-BRL" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"USDBRL":{"code":"USD","codein":"BRL","name":"Dólar Americano/Real Brasileiro","bid":"` + bid + `","ask":"5.4321","high":"5.50","low":"5.30","timestamp":"1718900000"}}`))
	}
}

// TestRateClient_GetUSDBRL tests quote fetching against a stub provider.
func TestRateClient_GetUSDBRL(t *testing.T) {
	t.Run("parses the bid price as the rate", func(t *testing.T) {
		server := httptest.NewServer(quoteHandler(t, "5.4312"))
		defer server.Close()

		client := rates.NewRateClient(server.URL, "")

		rate, err := client.GetUSDBRL(context.Background())
		if err != nil {
			t.Fatalf("GetUSDBRL() returned unexpected error: %v", err)
		}
		if rate != 5.4312 {
			t.Errorf("Expected rate 5.4312, got %f", rate)
		}
	})

	t.Run("passes the token as a query parameter", func(t *testing.T) {
		var gotToken string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotToken = r.URL.Query().Get("token")
			w.Write([]byte(`{"USDBRL":{"bid":"5.00"}}`))
		}))
		defer server.Close()

		client := rates.NewRateClient(server.URL, "my-token")

		if _, err := client.GetUSDBRL(context.Background()); err != nil {
			t.Fatalf("GetUSDBRL() returned unexpected error: %v", err)
		}
		if gotToken != "my-token" {
			t.Errorf("Expected token query parameter, got %q", gotToken)
		}
	})

	t.Run("empty bid yields an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"USDBRL":{"bid":""}}`))
		}))
		defer server.Close()

		client := rates.NewRateClient(server.URL, "")

		if _, err := client.GetUSDBRL(context.Background()); err == nil {
			t.Error("Expected error for missing quote")
		}
	})

	t.Run("unparseable bid yields an error", func(t *testing.T) {
		server := httptest.NewServer(quoteHandler(t, "five-ish"))
		defer server.Close()

		client := rates.NewRateClient(server.URL, "")

		if _, err := client.GetUSDBRL(context.Background()); err == nil {
			t.Error("Expected error for unparseable bid")
		}
	})

	t.Run("non-positive rate yields an error", func(t *testing.T) {
		server := httptest.NewServer(quoteHandler(t, "0"))
		defer server.Close()

		client := rates.NewRateClient(server.URL, "")

		if _, err := client.GetUSDBRL(context.Background()); err == nil {
			t.Error("Expected error for zero rate")
		}
	})

	t.Run("provider failure status yields an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := rates.NewRateClient(server.URL, "")

		if _, err := client.GetUSDBRL(context.Background()); err == nil {
			t.Error("Expected error for non-200 response")
		}
	})

	t.Run("malformed JSON yields an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"USDBRL":`))
		}))
		defer server.Close()

		client := rates.NewRateClient(server.URL, "")

		if _, err := client.GetUSDBRL(context.Background()); err == nil {
			t.Error("Expected error for malformed response body")
		}
	})
}
