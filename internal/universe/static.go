package universe

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/internal/scoringconfig"
)

// MaxSetSize bounds a stored symbol set; one quote batch carries the whole set
const MaxSetSize = 100

var symbolPattern = regexp.MustCompile(`^[A-Z][A-Z0-9.\-]{0,9}$`)

// StaticStore serves the built-in symbol sets from scoring config
type StaticStore struct {
	symbols scoringconfig.Symbols
}

var _ contracts.SymbolSetStore = (*StaticStore)(nil)

// NewStaticStore creates a store over the configured default lists
func NewStaticStore(symbols scoringconfig.Symbols) *StaticStore {
	return &StaticStore{symbols: symbols}
}

// Symbols returns a copy of the named list
func (s *StaticStore) Symbols(_ context.Context, name contracts.SymbolSetName) ([]string, error) {
	switch name {
	case contracts.SymbolSetDarkPool:
		return append([]string{}, s.symbols.DarkPool...), nil
	case contracts.SymbolSetBullish:
		return append([]string{}, s.symbols.Bullish...), nil
	case contracts.SymbolSetBearish:
		return append([]string{}, s.symbols.Bearish...), nil
	}
	return nil, fmt.Errorf("unknown symbol set %q", name)
}

// SetNames lists the known symbol set names
func SetNames() []contracts.SymbolSetName {
	return []contracts.SymbolSetName{
		contracts.SymbolSetDarkPool,
		contracts.SymbolSetBullish,
		contracts.SymbolSetBearish,
	}
}

// ValidateSet checks the set name and normalizes symbols (trim, uppercase, dedupe)
func ValidateSet(name contracts.SymbolSetName, symbols []string) ([]string, error) {
	known := false
	for _, n := range SetNames() {
		if n == name {
			known = true
			break
		}
	}
	if !known {
		return nil, contracts.InvalidInput("unknown symbol set %q", name)
	}

	seen := make(map[string]bool, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, raw := range symbols {
		s := strings.ToUpper(strings.TrimSpace(raw))
		if s == "" || seen[s] {
			continue
		}
		if !symbolPattern.MatchString(s) {
			return nil, contracts.InvalidInput("invalid symbol %q", raw)
		}
		seen[s] = true
		out = append(out, s)
	}

	if len(out) == 0 {
		return nil, contracts.InvalidInput("symbol set %q must not be empty", name)
	}
	if len(out) > MaxSetSize {
		return nil, contracts.InvalidInput("symbol set %q exceeds %d symbols", name, MaxSetSize)
	}

	return out, nil
}
