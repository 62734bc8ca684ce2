// Package network provides the HTTP client shared by every outbound API call.
package network

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/episodic-cli/episodic/log"
	"golang.org/x/net/http2"
)

// Client is the shared HTTP client.
// Generation requests can take a while, so the timeout is generous.
var Client = &http.Client{
	Timeout:   2 * time.Minute,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		TLSHandshakeTimeout:   10 * time.Second,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       30 * time.Second,
		ResponseHeaderTimeout: 90 * time.Second,
	}
	if err := http2.ConfigureTransport(t); err != nil {
		log.Warnf("http2 unavailable, falling back to http/1.1: %v", err)
	}
	return t
}
