package domain

import (
	"regexp"
	"strings"
	"time"

	audience "github.com/reshetovitsme/audience-reach/internal/modules/audience/domain"
	"github.com/reshetovitsme/audience-reach/internal/shared/errors"
	"github.com/samber/oops"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// Preset is a named FilterModel an operator saved for reuse
type Preset struct {
	Name      string               `json:"name" yaml:"name"`
	Model     audience.FilterModel `json:"model" yaml:"model"`
	CreatedBy int64                `json:"created_by" yaml:"created_by"`
	CreatedAt time.Time            `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time            `json:"updated_at" yaml:"updated_at"`
}

// NormalizeName lowercases name and checks it is usable as a file name
func NormalizeName(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if !namePattern.MatchString(n) {
		return "", oops.With("name", name, "context", "use 1-64 letters, digits, - or _").Wrap(errors.ErrInvalidPresetName)
	}
	return n, nil
}
