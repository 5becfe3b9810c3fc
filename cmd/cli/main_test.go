package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testBook = `
{
  "87390": {
    "schedule": {
      "years": {
        "2016": { "marketRatio": 0.613292, "auctionRatio": 0.417468 },
        "2005": { "marketRatio": 0.9, "auctionRatio": 0.8 },
        "2021": { "marketRatio": 0.3, "auctionRatio": 0.2 }
      }
    },
    "saleDetails": { "cost": 48929 },
    "classification": { "make": "JLG", "model": "340AJ" }
  },
  "12": {
    "schedule": { "years": { "2030": { "marketRatio": 0.1, "auctionRatio": 0.1 } } },
    "saleDetails": { "cost": 1000 },
    "classification": "Loaders"
  }
}
`

func writeBook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api-response.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write book file: %v", err)
	}
	return path
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestValue(t *testing.T) {
	book := writeBook(t, testBook)

	code, out, errOut := runCLI("value", "--data", book, "--id", "87390", "--year", "2016")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	for _, want := range []string{"market_value=30008 USD", "auction_value=20426 USD"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestValueFailures(t *testing.T) {
	book := writeBook(t, testBook)
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--id", "87390", "--year", "2021"}, "YEAR_OUT_OF_RANGE"},
		{[]string{"--id", "99999", "--year", "2016"}, "UNKNOWN_CLASSIFICATION"},
		{[]string{"--id", "87390", "--year", "2017"}, "MISSING_RATIO"},
	}
	for _, tt := range tests {
		args := append([]string{"value", "--data", book}, tt.args...)
		code, _, errOut := runCLI(args...)
		if code != 1 {
			t.Fatalf("%v: exit code %d, want 1", tt.args, code)
		}
		if !strings.Contains(errOut, tt.want) {
			t.Fatalf("%v: stderr %q does not contain %q", tt.args, errOut, tt.want)
		}
	}
}

func TestShow(t *testing.T) {
	book := writeBook(t, testBook)

	code, out, _ := runCLI("show", "--data", book, "--id", "87390")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out, "  make: JLG\n  model: 340AJ\n") {
		t.Errorf("hierarchy missing or unsorted in %q", out)
	}
	if strings.Index(out, "2005") > strings.Index(out, "2016") {
		t.Errorf("years not ascending in %q", out)
	}

	code, out, _ = runCLI("show", "--data", book, "--id", "12")
	if code != 0 || !strings.Contains(out, "classification: Loaders") {
		t.Errorf("exit code %d, output %q", code, out)
	}

	if code, _, _ := runCLI("show", "--data", book, "--id", "5"); code != 1 {
		t.Errorf("unknown id: exit code %d, want 1", code)
	}
}

func TestValidateCountsUnvaluableRows(t *testing.T) {
	book := writeBook(t, testBook)

	code, out, errOut := runCLI("validate", "--data", book)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "ok: 2 classifications loaded") {
		t.Errorf("output %q missing load count", out)
	}
	// 2005 and 2021 for 87390, 2030 for 12.
	if !strings.Contains(out, "note: 3 ratio rows fall outside 2006-2020") {
		t.Errorf("output %q missing out-of-range count", out)
	}
}

func TestValidateCleanBookHasNoNote(t *testing.T) {
	book := writeBook(t, `{"1": {"schedule": {"years": {"2010": {"marketRatio": 1, "auctionRatio": 1}}}, "saleDetails": {"cost": 1}}}`)

	code, out, _ := runCLI("validate", "--data", book)
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if strings.Contains(out, "note:") {
		t.Errorf("unexpected note in %q", out)
	}
}

func TestValidateRejectsMalformedBook(t *testing.T) {
	book := writeBook(t, `{"1": {"saleDetails": {"cost": 1}}}`)

	code, _, errOut := runCLI("validate", "--data", book)
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(errOut, "missing schedule.years") {
		t.Errorf("stderr %q does not name the problem", errOut)
	}
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"bogus"}} {
		code, out, _ := runCLI(args...)
		if code != 2 || !strings.HasPrefix(out, "usage:") {
			t.Errorf("%v: exit code %d, output %q", args, code, out)
		}
	}
	if code, _, _ := runCLI("value", "--nope"); code != 2 {
		t.Errorf("bad flag: exit code %d, want 2", code)
	}
}
