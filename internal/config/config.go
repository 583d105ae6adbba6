package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	SessionFile string

	Gateway struct {
		BaseURL string
	}

	// Demo placeholders: a fixed order price and the customer id used
	// when nobody is logged in. Configurable because both stand in for
	// a real pricing/session lookup.
	DemoPrice         float64
	DefaultCustomerID string

	// Products offered in the order form.
	Products []string
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	gatewayURL := os.Getenv("GATEWAY_URL")
	if gatewayURL == "" {
		return nil, fmt.Errorf("GATEWAY_URL must be set")
	}

	sessionFile := os.Getenv("SESSION_FILE")
	if sessionFile == "" {
		sessionFile = "session.json"
	}

	demoPrice := 999.99
	if v := os.Getenv("DEMO_PRICE"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DEMO_PRICE %q: %w", v, err)
		}
		demoPrice = p
	}

	defaultCustomer := os.Getenv("DEFAULT_CUSTOMER_ID")
	if defaultCustomer == "" {
		defaultCustomer = "demo-user"
	}

	products := splitCSV(os.Getenv("PRODUCTS"))
	if len(products) == 0 {
		products = []string{"prod-1", "prod-2", "prod-3"}
	}

	cfg := &Config{
		ServerPort:        serverPort,
		SessionFile:       sessionFile,
		DemoPrice:         demoPrice,
		DefaultCustomerID: defaultCustomer,
		Products:          products,
	}
	cfg.Gateway.BaseURL = gatewayURL
	return cfg, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
