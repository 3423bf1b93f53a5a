// Command healthcheck probes the local server's health endpoint and exits 0
// when it answers 200. It is the container HEALTHCHECK for scratch images.
package main

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	defaultAddr = "127.0.0.1:8080"
	healthPath  = "/api/v1/health"
	timeout     = 2 * time.Second
)

func main() {
	os.Exit(check(healthURL(os.Getenv("NICHESCRIPT_LISTEN_ADDR"))))
}

func check(target string) int {
	client := &http.Client{Timeout: timeout}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 1
	}

	resp, err := client.Do(req)
	if err != nil {
		return 1
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 1
	}

	return 0
}

func healthURL(listenAddr string) string {
	u := url.URL{Scheme: "http", Host: normalizeAddr(listenAddr), Path: healthPath}
	return u.String()
}

// normalizeAddr ensures the healthcheck connects to loopback rather than the
// bind-all address. The probe runs inside the same container as the server.
func normalizeAddr(raw string) string {
	if raw == "" {
		return defaultAddr
	}

	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return defaultAddr
	}

	switch host {
	case "", "0.0.0.0":
		host = "127.0.0.1"
	case "::":
		host = "::1"
	}

	return net.JoinHostPort(host, port)
}
