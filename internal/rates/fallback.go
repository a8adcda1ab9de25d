package rates

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"github.com/tripbudget/backend/internal/currency"
)

//go:embed fallback.toml
var fallbackTOML string

// fallbackBase is the table used for bases without a table of their own.
const fallbackBase = "USD"

// Fallbacks holds the built-in rate tables, keyed by their base currency.
type Fallbacks map[string]currency.Rates

// DefaultFallbacks returns the tables shipped with the backend.
func DefaultFallbacks() Fallbacks {
	f, err := parseFallbacks(fallbackTOML)
	if err != nil {
		panic(fmt.Sprintf("embedded fallback rates are invalid: %s", err))
	}

	return f
}

// LoadFallbacks reads fallback tables from a TOML file. If path is empty,
// the built-in tables are returned.
func LoadFallbacks(path string) (Fallbacks, error) {
	if path == "" {
		return DefaultFallbacks(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fallback rates: %w", err)
	}

	return parseFallbacks(string(data))
}

func parseFallbacks(data string) (Fallbacks, error) {
	var raw map[string]map[string]float64
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing fallback rates: %w", err)
	}

	if _, ok := raw[fallbackBase]; !ok {
		return nil, fmt.Errorf("parsing fallback rates: %w", ErrNoFallbackBase)
	}

	f := make(Fallbacks, len(raw))
	for base, table := range raw {
		rates := make(currency.Rates, len(table))
		for code, rate := range table {
			rates[code] = decimal.NewFromFloat(rate)
		}
		f[base] = rates
	}

	return f, nil
}

// Table returns the fallback table for base. Bases without a table of their
// own get the USD table.
func (f Fallbacks) Table(base string, now time.Time) Table {
	rates, ok := f[base]
	if !ok {
		base = fallbackBase
		rates = f[fallbackBase]
	}

	// Copy so that callers cannot modify the shared table
	return Table{
		Base:      base,
		Rates:     rates,
		UpdatedAt: now,
		Fallback:  true,
	}.clone()
}
