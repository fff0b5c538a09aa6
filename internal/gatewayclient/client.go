package gatewayclient

import (
	"net/http"
	"time"
)

var gatewayHTTPClient *http.Client

// InitGatewayHTTPClient builds the shared HTTP client used for payment
// gateway calls. Pooled connections keep repeated intent creation off the
// TLS-handshake cost.
func InitGatewayHTTPClient() *http.Client {
	if gatewayHTTPClient != nil {
		return gatewayHTTPClient
	}

	tr := &http.Transport{
		// Connection Pooling
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     2 * time.Minute,
		// Header timeout guards against a hung gateway
		ResponseHeaderTimeout: 30 * time.Second,
	}

	gatewayHTTPClient = &http.Client{
		Transport: tr,
		Timeout:   60 * time.Second,
	}

	return gatewayHTTPClient
}

func GetGatewayHTTPClient() *http.Client {
	if gatewayHTTPClient == nil {
		return InitGatewayHTTPClient()
	}
	return gatewayHTTPClient
}
