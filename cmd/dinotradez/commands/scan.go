package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dinotradez/backend/internal/aggregator"
	"github.com/dinotradez/backend/internal/contracts"
)

var (
	filingForm  string
	filingLimit int
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run one analytics feature and print the result",
	Long: `Run an analytics feature once against the live providers.

Subcommands:
  darkpool  - dark-pool estimates (default symbol set or a comma list)
  lotto     - ranked speculative picks
  bullish   - bullish technical watchlist
  bearish   - bearish technical watchlist
  filings   - deduplicated SEC filings for one form type

Example:
  go run ./cmd/dinotradez scan darkpool
  go run ./cmd/dinotradez scan darkpool AAPL,TSLA,GME
  go run ./cmd/dinotradez scan filings --form 8-K --limit 10`,
}

var (
	scanDarkPoolCmd = &cobra.Command{
		Use:   "darkpool [symbols]",
		Short: "Estimate dark-pool activity",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScanDarkPool,
	}

	scanLottoCmd = &cobra.Command{
		Use:   "lotto",
		Short: "Rank lotto picks",
		Args:  cobra.NoArgs,
		RunE:  runScanLotto,
	}

	scanBullishCmd = &cobra.Command{
		Use:   "bullish",
		Short: "Scan the bullish watchlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanWatchlist(cmd, contracts.SymbolSetBullish)
		},
	}

	scanBearishCmd = &cobra.Command{
		Use:   "bearish",
		Short: "Scan the bearish watchlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanWatchlist(cmd, contracts.SymbolSetBearish)
		},
	}

	scanFilingsCmd = &cobra.Command{
		Use:   "filings",
		Short: "Search SEC filings over the last 90 days",
		Args:  cobra.NoArgs,
		RunE:  runScanFilings,
	}
)

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.AddCommand(scanDarkPoolCmd)
	scanCmd.AddCommand(scanLottoCmd)
	scanCmd.AddCommand(scanBullishCmd)
	scanCmd.AddCommand(scanBearishCmd)
	scanCmd.AddCommand(scanFilingsCmd)

	scanFilingsCmd.Flags().StringVar(&filingForm, "form", contracts.DefaultFilingForm, "form type (S-3, 8-K, 10-K, ...)")
	scanFilingsCmd.Flags().IntVar(&filingLimit, "limit", contracts.DefaultFilingLimit, "maximum hits to request (1-40)")
}

// withApp bootstraps dependencies for one command run
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func runScanDarkPool(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		var symbols []string
		if len(args) == 1 {
			symbols = strings.Split(args[0], ",")
		} else {
			symbols = a.agg.DefaultSymbols(ctx, contracts.SymbolSetDarkPool)
		}

		started := time.Now()
		result, err := a.agg.DarkPool(ctx, symbols)
		if err != nil {
			return fmt.Errorf("dark pool scan: %w", err)
		}

		PrintTitle(fmt.Sprintf("Dark Pool Estimates (%d symbols)", len(result.Estimates)))
		PrintWarning("Simulated values: dark-pool volume is a heuristic estimate, not venue data")
		fmt.Print(renderTable(
			[]string{"SYMBOL", "PRICE", "CHANGE", "VOLUME", "VOL RATIO", "DARK POOL", "DP %", "UNUSUAL", "INSIDER"},
			darkPoolRows(result),
		))
		printOmissions(result.Missing, result.Omitted)
		PrintSuccess(fmt.Sprintf("%d unusual of %d in %.2fs",
			len(result.UnusualActivity), len(result.Estimates), time.Since(started).Seconds()))
		return nil
	})
}

func runScanLotto(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		started := time.Now()
		result, err := a.agg.LottoPicks(ctx)
		if err != nil {
			return fmt.Errorf("lotto scan: %w", err)
		}

		PrintTitle(fmt.Sprintf("Lotto Picks (%d)", len(result.Picks)))
		fmt.Print(renderTable(
			[]string{"#", "SYMBOL", "PRICE", "CHANGE", "VOLUME", "SCORE", "RISK", "POTENTIAL", "CALL"},
			lottoRows(result),
		))
		PrintSuccess(fmt.Sprintf("Ranked in %.2fs", time.Since(started).Seconds()))
		return nil
	})
}

func runScanWatchlist(cmd *cobra.Command, set contracts.SymbolSetName) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		var (
			result *aggregator.WatchlistResult
			err    error
		)
		if set == contracts.SymbolSetBullish {
			result, err = a.agg.BullishWatchlist(ctx)
		} else {
			result, err = a.agg.BearishWatchlist(ctx)
		}
		if err != nil {
			return fmt.Errorf("%s watchlist scan: %w", set, err)
		}

		PrintTitle(fmt.Sprintf("%s Watchlist (%d of %d)",
			strings.ToUpper(string(set[:1]))+string(set[1:]), len(result.Quotes), result.Scanned))
		fmt.Print(renderTable(
			[]string{"SYMBOL", "NAME", "PRICE", "CHANGE", "VOLUME", "AVG VOLUME"},
			watchlistRows(result),
		))
		printOmissions(result.Missing, nil)
		return nil
	})
}

func runScanFilings(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		if filingLimit < 1 || filingLimit > contracts.MaxFilingLimit {
			return fmt.Errorf("--limit must be between 1 and %d", contracts.MaxFilingLimit)
		}
		query := contracts.NewFilingQuery(strings.ToUpper(strings.TrimSpace(filingForm)), filingLimit, time.Now())

		result, err := a.agg.Filings(ctx, query)
		if err != nil {
			return fmt.Errorf("filings scan: %w", err)
		}

		PrintTitle(fmt.Sprintf("SEC %s Filings %s ~ %s", query.Form,
			query.Start.Format("2006-01-02"), query.End.Format("2006-01-02")))
		fmt.Print(renderTable(
			[]string{"FILED", "FORM", "TICKER", "COMPANY", "ACCESSION"},
			filingRows(result),
		))
		PrintInfo(fmt.Sprintf("%d unique filings, %d upstream hits", len(result.Filings), result.Total))
		return nil
	})
}

func darkPoolRows(result *aggregator.DarkPoolResult) [][]string {
	rows := make([][]string, 0, len(result.Estimates))
	for _, e := range result.Estimates {
		rows = append(rows, []string{
			e.Symbol,
			fmt.Sprintf("%.2f", e.Price),
			formatChange(e.ChangePercent),
			formatVolume(e.Volume),
			fmt.Sprintf("%.2fx", e.VolumeRatio),
			formatVolume(e.DarkPoolVolume),
			formatPercent(e.DarkPoolPercent),
			flag(e.IsUnusual),
			flag(e.HasInsiderActivity),
		})
	}
	return rows
}

func lottoRows(result *aggregator.LottoResult) [][]string {
	rows := make([][]string, 0, len(result.Picks))
	for i, p := range result.Picks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			p.Symbol,
			fmt.Sprintf("%.2f", p.Price),
			formatChange(p.ChangePercent),
			formatVolume(p.Volume),
			fmt.Sprintf("%.1f", p.LottoScore),
			string(p.RiskLevel),
			p.PotentialReturn,
			string(p.Recommendation),
		})
	}
	return rows
}

func watchlistRows(result *aggregator.WatchlistResult) [][]string {
	rows := make([][]string, 0, len(result.Quotes))
	for _, q := range result.Quotes {
		rows = append(rows, []string{
			q.Symbol,
			q.Name,
			fmt.Sprintf("%.2f", q.Price),
			formatChange(q.ChangePercent),
			formatVolume(q.Volume),
			formatVolume(q.AvgVolume),
		})
	}
	return rows
}

func filingRows(result *aggregator.FilingsResult) [][]string {
	rows := make([][]string, 0, len(result.Filings))
	for _, f := range result.Filings {
		rows = append(rows, []string{
			orDash(f.FiledDate),
			f.FormType,
			orDash(f.Ticker),
			f.CompanyName,
			f.AccessionNumber,
		})
	}
	return rows
}

// printOmissions lists symbols without quotes and failed optional lookups
func printOmissions(missing []string, omitted []contracts.SubFetchFailure) {
	if len(missing) > 0 {
		PrintWarning("No quote: " + strings.Join(missing, ", "))
	}
	for _, o := range omitted {
		PrintWarning(fmt.Sprintf("%s %s skipped: %s", o.Symbol, o.Resource, o.Error))
	}
}
