package httputil_test

import (
	"context"
	"fmt"
	"time"

	"github.com/dinotradez/backend/pkg/config"
	"github.com/dinotradez/backend/pkg/httputil"
	"github.com/dinotradez/backend/pkg/logger"
)

// Example_withBreaker shows the client setup used for upstream providers
func Example_withBreaker() {
	cfg := &config.Config{
		Env:      "production",
		LogLevel: "info",
		Provider: config.ProviderConfig{Timeout: 10 * time.Second},
	}
	log := logger.New(cfg)

	client := httputil.New(cfg, log).
		WithRetry(2, 500*time.Millisecond).
		WithCircuitBreaker(httputil.DefaultBreakerConfig("rapidapi"))

	resp, err := client.Get(context.Background(), "https://yahoo-finance15.p.rapidapi.com/api/v1/markets/quote")
	if err != nil {
		fmt.Printf("Request failed: %v\n", err)
		return
	}
	defer resp.Body.Close()

	fmt.Printf("Status: %d\n", resp.StatusCode)
}
