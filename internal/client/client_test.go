package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fjordhomes/listing-composer/internal/listing"
)

func TestGetListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/listings/getById/abc123/property" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("auth header = %q", got)
		}
		w.Write([]byte(`{"_id":"abc123","title":"Sunny villa","category":"Residential","need":"Buy"}`))
	}))
	defer server.Close()

	c := New(server.URL, "tok")
	rec, err := c.GetListing(context.Background(), "abc123", listing.TypeProperty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "abc123" || rec.Title != "Sunny villa" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestCreateListing(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{"ok", http.StatusOK, false},
		{"created", http.StatusCreated, false},
		{"server error", http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("method = %s, want POST", r.Method)
				}
				if r.URL.Path != "/listings/listing" {
					t.Errorf("path = %s", r.URL.Path)
				}
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			c := New(server.URL, "tok")
			err := c.CreateListing(context.Background(), strings.NewReader("body"), "multipart/form-data; boundary=x")
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateListingUsesPut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/listings/edit-listing" {
			t.Errorf("path = %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL, "tok")
	if err := c.UpdateListing(context.Background(), strings.NewReader("body"), "multipart/form-data; boundary=x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructuredFieldErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"path":["price"],"message":"required"},{"path":["location","city"],"message":"required"}]}`))
	}))
	defer server.Close()

	c := New(server.URL, "tok")
	err := c.CreateListing(context.Background(), strings.NewReader("body"), "multipart/form-data; boundary=x")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err is %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	msg := apiErr.Error()
	if !strings.Contains(msg, "price: required") {
		t.Errorf("message %q should name the price field", msg)
	}
	if !strings.Contains(msg, "location.city: required") {
		t.Errorf("message %q should name the nested field", msg)
	}
}

func TestPlainMessageError(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message key", `{"message":"token expired"}`, "token expired"},
		{"error key", `{"error":"not allowed"}`, "not allowed"},
		{"unparseable", `<html>boom</html>`, http.StatusText(http.StatusBadGateway)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := New(server.URL, "tok")
			err := c.CreateListing(context.Background(), strings.NewReader("body"), "multipart/form-data; boundary=x")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := New(server.URL, "")
	if _, err := c.GetListing(context.Background(), "id", listing.TypeService); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
