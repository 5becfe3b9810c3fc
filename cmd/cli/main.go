package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"equipment-valuation/internal/config"
	"equipment-valuation/internal/data"
	"equipment-valuation/internal/valuation"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stdout)
		return 2
	}

	switch args[0] {
	case "value":
		return cmdValue(args[1:], stdout, stderr)
	case "show":
		return cmdShow(args[1:], stdout, stderr)
	case "validate":
		return cmdValidate(args[1:], stdout, stderr)
	default:
		usage(stdout)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  cli value --id 87390 --year 2016 [--data api-response.json]")
	fmt.Fprintln(w, "  cli show --id 87390 [--data api-response.json]")
	fmt.Fprintln(w, "  cli validate [--data api-response.json]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "notes:")
	fmt.Fprintln(w, "  - --data defaults to $BOOK_JSON_PATH, then ./api-response.json")
	fmt.Fprintln(w, "  - value exits 1 on an unknown id, missing ratio or out-of-range year")
}

func defaultDataPath() string {
	cfg, err := config.LoadUnchecked("")
	if err != nil {
		return config.Defaults().DataPath
	}
	return cfg.DataPath
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	dataPath := fs.String("data", defaultDataPath(), "Path to api-response.json")
	return fs, dataPath
}

func loadStore(path string, stderr io.Writer) (*data.ClassificationStore, bool) {
	store, err := data.LoadClassifications(path)
	if err != nil {
		fmt.Fprintf(stderr, "load %s: %v\n", path, err)
		return nil, false
	}
	return store, true
}

func cmdValue(args []string, stdout, stderr io.Writer) int {
	fs, dataPath := newFlagSet("value", stderr)
	id := fs.Int("id", 0, "Classification id")
	year := fs.Int("year", 0, "Model year")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	store, ok := loadStore(*dataPath, stderr)
	if !ok {
		return 1
	}

	res, err := valuation.New(store).Compute(*id, *year)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", valuation.KindOf(err), err)
		return 1
	}

	fmt.Fprintf(stdout, "classification_id=%d model_year=%d\n", res.ClassificationID, res.ModelYear)
	fmt.Fprintf(stdout, "market_value=%d %s\n", res.MarketValue, res.Currency)
	fmt.Fprintf(stdout, "auction_value=%d %s\n", res.AuctionValue, res.Currency)
	return 0
}

func cmdShow(args []string, stdout, stderr io.Writer) int {
	fs, dataPath := newFlagSet("show", stderr)
	id := fs.Int("id", 0, "Classification id")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	store, ok := loadStore(*dataPath, stderr)
	if !ok {
		return 1
	}
	c, ok := store.Get(*id)
	if !ok {
		fmt.Fprintf(stderr, "Unknown classification_id=%d.\n", *id)
		return 1
	}

	fmt.Fprintf(stdout, "classification_id=%d book_cost=%.2f\n", c.ID, c.BookCost)
	switch h := c.Hierarchy.(type) {
	case nil:
	case map[string]any:
		keys := make([]string, 0, len(h))
		for k := range h {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(stdout, "  %s: %v\n", k, h[k])
		}
	default:
		fmt.Fprintf(stdout, "  classification: %v\n", h)
	}
	fmt.Fprintf(stdout, "%-6s %-10s %-10s\n", "year", "market", "auction")
	for _, y := range c.Years() {
		r, _ := c.Ratio(y)
		fmt.Fprintf(stdout, "%-6d %-10.6f %-10.6f\n", y, r.Market, r.Auction)
	}
	return 0
}

func cmdValidate(args []string, stdout, stderr io.Writer) int {
	fs, dataPath := newFlagSet("validate", stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	store, ok := loadStore(*dataPath, stderr)
	if !ok {
		return 1
	}

	fmt.Fprintf(stdout, "ok: %d classifications loaded from %s\n", store.Len(), *dataPath)
	if n := countUnvaluableRows(store); n > 0 {
		fmt.Fprintf(stdout, "note: %d ratio rows fall outside %d-%d and can never be valued\n",
			n, valuation.MinModelYear, valuation.MaxModelYear)
	}
	return 0
}

// countUnvaluableRows counts ratio rows whose year Compute always rejects.
func countUnvaluableRows(store *data.ClassificationStore) int {
	n := 0
	for _, id := range store.IDs() {
		c, _ := store.Get(id)
		for _, y := range c.Years() {
			if y < valuation.MinModelYear || y > valuation.MaxModelYear {
				n++
			}
		}
	}
	return n
}
