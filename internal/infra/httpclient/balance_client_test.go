package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pnl_tracker/internal/domain"
)

func TestFetchBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/balances/kraken" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-API-Key") != "key" || r.Header.Get("X-API-Secret") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"exchange":"kraken","total":1234.56}`))
	}))
	defer srv.Close()

	client, err := NewBalanceFeedClient(srv.URL + "/")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	total, err := client.FetchBalance(context.Background(), domain.ExchangeAPIKey{ExchangeName: "kraken", APIKey: "key", APISecret: "secret"})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if total != 1234.56 {
		t.Fatalf("unexpected total %v", total)
	}

	if _, err := client.FetchBalance(context.Background(), domain.ExchangeAPIKey{ExchangeName: "kraken", APIKey: "bad", APISecret: "secret"}); err == nil {
		t.Fatalf("expected error for rejected credentials")
	}
}

func TestFetchBalanceRequiresTotal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"exchange":"bitget"}`))
	}))
	defer srv.Close()

	client, _ := NewBalanceFeedClient(srv.URL)
	if _, err := client.FetchBalance(context.Background(), domain.ExchangeAPIKey{ExchangeName: "bitget"}); err == nil {
		t.Fatalf("expected error for missing total")
	}
}

func TestNewBalanceFeedClientRequiresURL(t *testing.T) {
	if _, err := NewBalanceFeedClient(" "); err == nil {
		t.Fatalf("expected error")
	}
}
