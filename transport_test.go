package authprovider

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTransport_AddsBearerHeader(t *testing.T) {
	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	store.Set(StorageKey, "my-token")

	client := &http.Client{Transport: &Transport{Store: store}}
	resp, err := client.Get(server.URL + "/api/resource")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	resp.Body.Close()

	if receivedAuth != "Bearer my-token" {
		t.Errorf("Authorization header = %v, want Bearer my-token", receivedAuth)
	}
}

func TestTransport_NoHeaderWithoutToken(t *testing.T) {
	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{Transport: &Transport{Store: NewMemoryTokenStore()}}
	resp, err := client.Get(server.URL + "/api/resource")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	resp.Body.Close()

	if receivedAuth != "" {
		t.Errorf("Authorization header = %v, want empty", receivedAuth)
	}
}

func TestProvider_HTTPClient(t *testing.T) {
	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := newTestProvider(t, server.URL)
	p.store.Set(StorageKey, "tok")

	resp, err := p.HTTPClient().Get(server.URL + "/api/resource")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	resp.Body.Close()

	if receivedAuth != "Bearer tok" {
		t.Errorf("Authorization header = %v, want Bearer tok", receivedAuth)
	}
}
