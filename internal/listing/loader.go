package listing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// listingsFile is the on-disk layout of a listings YAML file.
type listingsFile struct {
	Listings []Listing `yaml:"listings"`
}

// LoadFile reads a listings YAML file and returns the records it contains.
// Records are validated only for code uniqueness; a duplicate code is a hard
// error because every lookup and mutation keys on it.
func LoadFile(path string) ([]Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading listings file %s: %w", path, err)
	}

	var f listingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing listings file %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(f.Listings))
	for _, l := range f.Listings {
		if l.Code == "" {
			return nil, fmt.Errorf("listings file %s: record without a code", path)
		}
		if _, dup := seen[l.Code]; dup {
			return nil, fmt.Errorf("listings file %s: duplicate code %q", path, l.Code)
		}
		seen[l.Code] = struct{}{}
	}

	return f.Listings, nil
}
