package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testListingsYAML = `
listings:
  - code: LS-1
    marketingStatus: Available
    listingType: A List
    listingStatus: For Sale
    propertyType: Condo
    projectName: Noble Remix
    zone: Thonglor
    bedrooms: 2
    askingPrice: 9500000
  - code: LS-2
    marketingStatus: Sold
    listingType: Normal List
    listingStatus: For Sale
    propertyType: House
    projectName: Setthasiri
    zone: Bangna
    bedrooms: 4
    askingPrice: 32000000
  - code: LS-3
    marketingStatus: Available
    listingType: A List
    listingStatus: For Rent
    propertyType: Condo
    projectName: Ashton Asoke
    zone: Asoke
    bedrooms: 1
    askingPrice: 7200000
`

// isolateConfig points HOME at a temp dir so neither user config nor the
// real preference store leak into the test.
func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BROKERCTL_DATA", "")
	t.Setenv("BROKERCTL_COLOR_MODE", "")
	t.Setenv("BROKERCTL_PRESET", "")
	return home
}

func writeTestListings(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.yaml")
	if err := os.WriteFile(path, []byte(testListingsYAML), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runListCmd(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newListCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list command failed: %v", err)
	}
	return buf.String()
}

func TestListCommandPrintsAll(t *testing.T) {
	isolateConfig(t)
	data := writeTestListings(t)

	out := runListCmd(t, "--data", data)

	for _, code := range []string{"LS-1", "LS-2", "LS-3"} {
		if !strings.Contains(out, code) {
			t.Errorf("Expected output to contain %s:\n%s", code, out)
		}
	}
	if !strings.Contains(out, "3 of 3 listings") {
		t.Errorf("Expected summary line, got:\n%s", out)
	}
}

func TestListCommandFilters(t *testing.T) {
	isolateConfig(t)
	data := writeTestListings(t)

	out := runListCmd(t, "--data", data, "--type", "A List", "--property", "Condo", "--bedrooms-min", "2")

	if !strings.Contains(out, "LS-1") {
		t.Errorf("Expected LS-1 in output:\n%s", out)
	}
	if strings.Contains(out, "LS-2") || strings.Contains(out, "LS-3") {
		t.Errorf("Unexpected rows in output:\n%s", out)
	}
	if !strings.Contains(out, "1 of 3 listings") {
		t.Errorf("Expected summary line, got:\n%s", out)
	}
}

func TestListCommandOpenEndedBedrooms(t *testing.T) {
	isolateConfig(t)
	data := writeTestListings(t)

	// max 6 is the open-ended sentinel: the 4-bedroom house still matches
	out := runListCmd(t, "--data", data, "--bedrooms-min", "4", "--bedrooms-max", "6")
	if !strings.Contains(out, "LS-2") {
		t.Errorf("Expected LS-2 in output:\n%s", out)
	}
}

func TestListCommandPriceRange(t *testing.T) {
	isolateConfig(t)
	data := writeTestListings(t)

	out := runListCmd(t, "--data", data, "--price-min", "7000000", "--price-max", "10000000")
	if !strings.Contains(out, "LS-1") || !strings.Contains(out, "LS-3") {
		t.Errorf("Expected LS-1 and LS-3 in output:\n%s", out)
	}
	if strings.Contains(out, "LS-2") {
		t.Errorf("LS-2 is out of range:\n%s", out)
	}
}

func TestListCommandFuzzyLocation(t *testing.T) {
	isolateConfig(t)
	data := writeTestListings(t)

	out := runListCmd(t, "--data", data, "--location", "thong")
	if !strings.Contains(out, "LS-1") {
		t.Errorf("Expected fuzzy zone match for LS-1:\n%s", out)
	}
	if strings.Contains(out, "LS-2") {
		t.Errorf("Unexpected LS-2:\n%s", out)
	}
}

func TestListCommandInvalidStarred(t *testing.T) {
	isolateConfig(t)
	data := writeTestListings(t)

	cmd := newListCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--data", data, "--starred", "maybe"})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error for invalid --starred value")
	}
}

func TestListCommandMissingDataFile(t *testing.T) {
	isolateConfig(t)

	cmd := newListCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--data", filepath.Join(t.TempDir(), "missing.yaml")})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error for a missing data file")
	}
}
