package bikeshare

import (
	"fmt"
	"path/filepath"
	"strings"
)

// City identifies one of the supported datasets.
type City string

const (
	// Chicago dataset
	Chicago City = "chicago"
	// NewYorkCity dataset
	NewYorkCity City = "new york city"
	// Washington dataset. It has no gender or birth year columns.
	Washington City = "washington"
)

// Cities returns the supported cities in display order.
func Cities() []City {
	return []City{Chicago, NewYorkCity, Washington}
}

// ParseCity parses a city name. Case and surrounding spaces are ignored,
// and "new york" or "nyc" mean New York City.
func ParseCity(s string) (City, error) {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	switch s {
	case "new york", "nyc":
		return NewYorkCity, nil
	}
	for _, c := range Cities() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: chicago, new york, washington)", ErrUnknownCity, s)
}

// Title returns the display name, e.g. "New York City".
func (c City) Title() string {
	words := strings.Fields(string(c))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Sources maps each city to the path of its dataset.
type Sources map[City]string

// DefaultSources returns the standard file names of the three datasets in dir.
func DefaultSources(dir string) Sources {
	return Sources{
		Chicago:     filepath.Join(dir, "chicago.csv"),
		NewYorkCity: filepath.Join(dir, "new_york_city.csv"),
		Washington:  filepath.Join(dir, "washington.csv"),
	}
}

// path returns the configured source of city.
func (s Sources) path(city City) (string, error) {
	p, ok := s[city]
	if !ok || strings.TrimSpace(p) == "" {
		return "", fmt.Errorf("%w: %q has no configured source", ErrUnknownCity, string(city))
	}
	return p, nil
}
