package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "127.0.0.1:8080"},
		{"garbage", "127.0.0.1:8080"},
		{":9090", "127.0.0.1:9090"},
		{"0.0.0.0:8080", "127.0.0.1:8080"},
		{"[::]:8080", "[::1]:8080"},
		{"10.0.0.5:3000", "10.0.0.5:3000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeAddr(tt.in), "input %q", tt.in)
	}
}

func TestHealthURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:9090/api/v1/health", healthURL(":9090"))
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == healthPath {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	addr := strings.TrimPrefix(srv.URL, "http://")
	assert.Equal(t, 0, check(healthURL(addr)))
	assert.Equal(t, 1, check(srv.URL+"/down"))
	assert.Equal(t, 1, check("http://127.0.0.1:1/api/v1/health"))
}
