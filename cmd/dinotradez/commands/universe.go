package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/internal/universe"
)

// universeCmd represents the universe command
var universeCmd = &cobra.Command{
	Use:   "universe",
	Short: "Manage the default symbol sets",
	Long: `Inspect or replace the symbol sets scanned when a request names no symbols.

Sets: darkpool, bullish, bearish. Stored sets need DATABASE_URL;
without a database the built-in lists are used.

Example:
  go run ./cmd/dinotradez universe list
  go run ./cmd/dinotradez universe set darkpool AAPL,TSLA,GME,AMC`,
}

var (
	universeListCmd = &cobra.Command{
		Use:   "list",
		Short: "Show every symbol set and where it comes from",
		Args:  cobra.NoArgs,
		RunE:  listUniverse,
	}

	universeSetCmd = &cobra.Command{
		Use:   "set [name] [symbols]",
		Short: "Replace a stored symbol set",
		Args:  cobra.ExactArgs(2),
		RunE:  setUniverse,
	}
)

// errNoDatabase is returned by commands that need the symbol_sets table
var errNoDatabase = errors.New("DATABASE_URL is not set; symbol sets are read-only")

func init() {
	rootCmd.AddCommand(universeCmd)
	universeCmd.AddCommand(universeListCmd)
	universeCmd.AddCommand(universeSetCmd)
}

func listUniverse(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		stored := map[contracts.SymbolSetName]universe.SymbolSet{}
		if a.repo != nil {
			sets, err := a.repo.List(ctx)
			if err != nil {
				return fmt.Errorf("list symbol sets: %w", err)
			}
			for _, s := range sets {
				stored[s.Name] = s
			}
		}

		builtin := universe.NewStaticStore(a.scoring.Symbols)
		rows := universeRows(universe.SetNames(), stored, func(name contracts.SymbolSetName) []string {
			symbols, _ := builtin.Symbols(ctx, name)
			return symbols
		})

		PrintTitle("Symbol sets")
		fmt.Print(renderTable([]string{"SET", "SOURCE", "COUNT", "SYMBOLS"}, rows))
		return nil
	})
}

func setUniverse(cmd *cobra.Command, args []string) error {
	name := contracts.SymbolSetName(strings.ToLower(args[0]))
	symbols := strings.Split(args[1], ",")

	return withApp(cmd, func(ctx context.Context, a *app) error {
		if a.repo == nil {
			return errNoDatabase
		}

		if err := a.repo.SetSymbols(ctx, name, symbols); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}

		saved, err := a.repo.Symbols(ctx, name)
		if err != nil {
			return fmt.Errorf("read back %s: %w", name, err)
		}

		PrintSuccess(fmt.Sprintf("%s now holds %d symbols: %s", name, len(saved), strings.Join(saved, ", ")))
		return nil
	})
}

// universeRows describes each set; stored sets win, the rest resolve to the built-in lists
func universeRows(
	names []contracts.SymbolSetName,
	stored map[contracts.SymbolSetName]universe.SymbolSet,
	resolve func(contracts.SymbolSetName) []string,
) [][]string {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		source := "built-in"
		symbols := resolve(name)
		if s, ok := stored[name]; ok && len(s.Symbols) > 0 {
			source = "database (" + s.UpdatedAt.Format("2006-01-02 15:04") + ")"
			symbols = s.Symbols
		}
		rows = append(rows, []string{
			string(name),
			source,
			fmt.Sprintf("%d", len(symbols)),
			strings.Join(symbols, ","),
		})
	}
	return rows
}
