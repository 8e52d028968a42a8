package bikeshare

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nao1215/bikeshare/domain/model"
)

// validator checks sources before and after parsing
type validator struct{}

// newValidator creates a new validator instance
func newValidator() *validator {
	return &validator{}
}

// validatePath checks that path names an existing, supported file
func (v *validator) validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("failed to stat path %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrUnsupportedFormat, path)
	}
	if !isSupportedFile(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return nil
}

// validateColumnNames rejects duplicate column names
func (v *validator) validateColumnNames(h header) error {
	seen := make(map[string]bool, len(h))
	for _, name := range h {
		key := normalizeColumnName(name)
		if key == "" {
			// Unnamed index columns written by dataframe exports.
			continue
		}
		if seen[key] {
			return fmt.Errorf("%w: %s", ErrDuplicateColumn, name)
		}
		seen[key] = true
	}
	return nil
}

// validateRequiredColumns returns the first missing required column
func (v *validator) validateRequiredColumns(h header) error {
	for _, name := range requiredColumns {
		if h.index(name) < 0 {
			return fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return nil
}

// detectSchema records which optional columns are present
func (v *validator) detectSchema(h header) model.Schema {
	return model.Schema{
		HasEndTime:   h.index(colEndTime) >= 0,
		HasGender:    h.index(colGender) >= 0,
		HasBirthYear: h.index(colBirthYear) >= 0,
	}
}
