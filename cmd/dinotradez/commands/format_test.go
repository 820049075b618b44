package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinotradez/backend/internal/aggregator"
	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/internal/universe"
)

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{12_300, "12.3K"},
		{4_500_000, "4.5M"},
		{1_200_000_000, "1.2B"},
		{-2_500, "-2.5K"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVolume(tt.in))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	v := 42.04
	assert.Equal(t, "42.0%", formatPercent(&v))
	assert.Equal(t, "n/a", formatPercent(nil))
}

func TestOrDash(t *testing.T) {
	s := "AAPL"
	empty := ""
	assert.Equal(t, "AAPL", orDash(&s))
	assert.Equal(t, "-", orDash(&empty))
	assert.Equal(t, "-", orDash(nil))
}

func TestFormatChange(t *testing.T) {
	assert.Contains(t, formatChange(1.5), "+1.50%")
	assert.Contains(t, formatChange(-2.25), "-2.25%")
	assert.Equal(t, "+0.00%", formatChange(0))
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"SYMBOL", "PRICE"},
		[][]string{
			{"AAPL", "189.50"},
			{"GOOGL", "1.00"},
			{"X"}, // short rows are padded
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Contains(t, lines[0], "SYMBOL")
	assert.Contains(t, lines[0], "PRICE")
	// separator spans both columns plus the gap
	assert.Equal(t, len("SYMBOL")+2+len("189.50"), lipgloss.Width(lines[1]))

	// second column starts at the same offset on every data row
	col := strings.Index(lines[2], "189.50")
	assert.Equal(t, col, strings.Index(lines[3], "1.00"))
	assert.Equal(t, "X", strings.TrimSpace(lines[4]))
}

func TestDarkPoolRows(t *testing.T) {
	pct := 61.3
	result := &aggregator.DarkPoolResult{
		Estimates: []contracts.DarkPoolEstimate{
			{Symbol: "GME", Price: 25.1, ChangePercent: 4.2, Volume: 3_000_000, VolumeRatio: 2.5,
				DarkPoolVolume: 1_839_000, DarkPoolPercent: &pct, IsUnusual: true},
			{Symbol: "ZERO", Volume: 0, DarkPoolPercent: nil},
		},
	}

	rows := darkPoolRows(result)
	require.Len(t, rows, 2)
	assert.Equal(t, "GME", rows[0][0])
	assert.Equal(t, "25.10", rows[0][1])
	assert.Equal(t, "3.0M", rows[0][3])
	assert.Equal(t, "2.50x", rows[0][4])
	assert.Equal(t, "61.3%", rows[0][6])
	assert.Contains(t, rows[0][7], "yes")
	assert.Equal(t, "n/a", rows[1][6])
}

func TestLottoRows(t *testing.T) {
	result := &aggregator.LottoResult{
		Picks: []contracts.LottoCandidate{
			{Symbol: "AMC", Price: 4.5, LottoScore: 8.7, RiskLevel: contracts.RiskHigh,
				PotentialReturn: "91%", Recommendation: contracts.RecommendStrongBuy},
			{Symbol: "SNDL", Price: 1.2, LottoScore: 5.1, RiskLevel: contracts.RiskMedium,
				PotentialReturn: "48%", Recommendation: contracts.RecommendBuy},
		},
	}

	rows := lottoRows(result)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "AMC"}, rows[0][:2])
	assert.Equal(t, "8.7", rows[0][5])
	assert.Equal(t, "High", rows[0][6])
	assert.Equal(t, "Strong Buy", rows[0][8])
	assert.Equal(t, "2", rows[1][0])
}

func TestFilingRows(t *testing.T) {
	ticker := "ACME"
	date := "2026-10-01"
	result := &aggregator.FilingsResult{
		Filings: []contracts.FilingRecord{
			{AccessionNumber: "0001-26-000001", CompanyName: "Acme Corp", Ticker: &ticker, FiledDate: &date, FormType: "S-3"},
			{AccessionNumber: "0001-26-000002", CompanyName: "No Ticker Inc", FormType: "S-3"},
		},
	}

	rows := filingRows(result)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2026-10-01", "S-3", "ACME", "Acme Corp", "0001-26-000001"}, rows[0])
	assert.Equal(t, "-", rows[1][0])
	assert.Equal(t, "-", rows[1][2])
}

func TestUniverseRows(t *testing.T) {
	updated := time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)
	stored := map[contracts.SymbolSetName]universe.SymbolSet{
		contracts.SymbolSetDarkPool: {Name: contracts.SymbolSetDarkPool, Symbols: []string{"AAPL", "TSLA"}, UpdatedAt: updated},
		contracts.SymbolSetBearish:  {Name: contracts.SymbolSetBearish, Symbols: nil, UpdatedAt: updated},
	}
	builtin := map[contracts.SymbolSetName][]string{
		contracts.SymbolSetDarkPool: {"SPY"},
		contracts.SymbolSetBullish:  {"NVDA", "AMD", "META"},
		contracts.SymbolSetBearish:  {"F"},
	}

	rows := universeRows(universe.SetNames(), stored, func(name contracts.SymbolSetName) []string {
		return builtin[name]
	})

	require.Len(t, rows, 3)
	byName := map[string][]string{}
	for _, r := range rows {
		byName[r[0]] = r
	}

	assert.Equal(t, "database (2026-10-19 14:30)", byName["darkpool"][1])
	assert.Equal(t, "AAPL,TSLA", byName["darkpool"][3])
	assert.Equal(t, "built-in", byName["bullish"][1])
	assert.Equal(t, "3", byName["bullish"][2])
	// an empty stored set falls back to the built-in list
	assert.Equal(t, "built-in", byName["bearish"][1])
	assert.Equal(t, "F", byName["bearish"][3])
}
