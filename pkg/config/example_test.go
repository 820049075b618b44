package config_test

import (
	"fmt"

	"github.com/dinotradez/backend/pkg/config"
)

// Example shows the settings the API server reads at startup
func Example() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}

	fmt.Printf("Listening on :%s (%s)\n", cfg.Port, cfg.Env)
	fmt.Printf("Quotes from %s, %s per sub-fetch\n", cfg.Provider.Host, cfg.Provider.Timeout)
	fmt.Printf("Inbound limit: %d requests / %s per client\n", cfg.RateLimit.Requests, cfg.RateLimit.Window)
	if !cfg.Database.Enabled() {
		fmt.Println("Symbol sets: built-in lists")
	}
}
