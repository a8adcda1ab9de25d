package rates

import "github.com/prometheus/client_golang/prometheus"

const (
	resultProvider = "provider"
	resultCache    = "cache"
	resultFallback = "fallback"
)

// FetchCount counts rate table lookups by base currency and where the table came from.
var FetchCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "exchange_rate_fetches_total",
		Help: "How many exchange rate tables were served, partitioned by base currency and source.",
	},
	[]string{"base", "result"},
)
