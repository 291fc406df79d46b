// Package versioning parses, formats and compares MAKCU version strings.
package versioning

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/terrafirma2021/makcu-version/model"
)

const (
	exePrefix = "MAKCU_"
	exeSuffix = ".exe"
)

var (
	// ErrNameMismatch is returned when a file name does not follow MAKCU_<major>_<minor>.exe.
	ErrNameMismatch = errors.New("executable name does not match MAKCU_<major>_<minor>.exe")
	// ErrNotTwoPart is returned when a version cannot be expressed as <major>.<minor>.
	ErrNotTwoPart = errors.New("version is not of the form <major>.<minor>")
)

// ParseExecutableName extracts "<major>.<minor>" from a MAKCU_<major>_<minor>.exe
// file name. Directory components are ignored.
func ParseExecutableName(name string) (string, error) {
	base := filepath.Base(name)
	// filepath.Base keeps backslashes on non-Windows hosts.
	if i := strings.LastIndex(base, `\`); i >= 0 {
		base = base[i+1:]
	}

	if !strings.HasPrefix(base, exePrefix) {
		return "", fmt.Errorf("%w: %q", ErrNameMismatch, base)
	}
	if len(base) < len(exePrefix)+len(exeSuffix) || !strings.EqualFold(base[len(base)-len(exeSuffix):], exeSuffix) {
		return "", fmt.Errorf("%w: %q", ErrNameMismatch, base)
	}

	stem := base[len(exePrefix) : len(base)-len(exeSuffix)]
	major, minor, ok := strings.Cut(stem, "_")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNameMismatch, base)
	}

	maj, err := parseComponent(major)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrNameMismatch, base, err)
	}
	mnr, err := parseComponent(minor)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrNameMismatch, base, err)
	}

	return maj + "." + mnr, nil
}

// ExecutableName returns the versioned executable name for a two-part version,
// e.g. "2.7" becomes "MAKCU_2_7.exe".
func ExecutableName(version string) (string, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(version), ".")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotTwoPart, version)
	}

	maj, err := parseComponent(major)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrNotTwoPart, version, err)
	}
	mnr, err := parseComponent(minor)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrNotTwoPart, version, err)
	}

	return exePrefix + maj + "_" + mnr + exeSuffix, nil
}

// parseComponent accepts a non-empty run of ASCII digits and returns it
// without leading zeros. Components of any length are kept.
func parseComponent(s string) (string, error) {
	if s == "" {
		return "", errors.New("empty component")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("non-digit %q in %q", r, s)
		}
	}

	if trimmed := strings.TrimLeft(s, "0"); trimmed != "" {
		return trimmed, nil
	}
	return "0", nil
}

// IsDifferent reports whether latest and current differ after trimming whitespace.
func IsDifferent(latest, current string) bool {
	return strings.TrimSpace(latest) != strings.TrimSpace(current)
}

// Compare orders two dotted versions numerically. It returns -1 when a < b,
// 0 when equal and +1 when a > b. A leading "v" is ignored, missing segments
// count as zero and non-numeric segments compare lexically.
func Compare(a, b string) int {
	as := segments(a)
	bs := segments(b)

	n := max(len(as), len(bs))
	for i := 0; i < n; i++ {
		x, y := "0", "0"
		if i < len(as) {
			x = as[i]
		}
		if i < len(bs) {
			y = bs[i]
		}
		if c := compareSegment(x, y); c != 0 {
			return c
		}
	}

	return 0
}

// Direction labels latest relative to current.
func Direction(latest, current string) model.Direction {
	switch Compare(latest, current) {
	case 1:
		return model.DirectionNewer
	case -1:
		return model.DirectionOlder
	default:
		return model.DirectionSame
	}
}

func segments(v string) []string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(strings.TrimPrefix(v, "v"), "V")
	if v == "" {
		return nil
	}

	return strings.Split(v, ".")
}

func compareSegment(x, y string) int {
	xi, xerr := strconv.ParseUint(x, 10, 64)
	yi, yerr := strconv.ParseUint(y, 10, 64)

	switch {
	case xerr == nil && yerr == nil:
		switch {
		case xi < yi:
			return -1
		case xi > yi:
			return 1
		}
		return 0
	case xerr == nil:
		// numeric segments sort before textual ones
		return -1
	case yerr == nil:
		return 1
	}

	return strings.Compare(x, y)
}
