package clickhouse

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/storekeeper/pkg/warehouse"
)

// VersionInfo represents parsed ClickHouse version information
type VersionInfo struct {
	Major int    // Major version number (e.g., 21)
	Minor int    // Minor version number (e.g., 10)
	Patch int    // Patch version number (e.g., 3)
	Raw   string // Raw version string from ClickHouse
}

var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?`)

// String returns the version as a string in format "major.minor.patch"
func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsAtLeast checks if this version is at least the specified version
func (v VersionInfo) IsAtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// GetVersion retrieves and parses the ClickHouse version from the server
func (c *Client) GetVersion(ctx context.Context) (*VersionInfo, error) {
	res, err := c.Query(ctx, "SELECT version()")
	if err != nil {
		return nil, errors.Wrap(err, "failed to query ClickHouse version")
	}

	raw := warehouse.AsString(res.Scalar())
	version, err := parseVersion(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse ClickHouse version: %s", raw)
	}

	return version, nil
}

// parseVersion accepts "21.10.3.9", "21.10.3.9-testing" and
// "21.10.3.9 (official build)" style strings.
func parseVersion(raw string) (*VersionInfo, error) {
	cleaned, _, _ := strings.Cut(strings.TrimSpace(raw), " ")
	cleaned, _, _ = strings.Cut(cleaned, "-")

	matches := versionPattern.FindStringSubmatch(cleaned)
	if matches == nil {
		return nil, errors.Errorf("invalid version format: %s", raw)
	}

	parts := [3]int{}
	for i, m := range matches[1:] {
		if m == "" {
			continue
		}

		n, err := strconv.Atoi(m)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid version component: %s", m)
		}
		parts[i] = n
	}

	return &VersionInfo{
		Major: parts[0],
		Minor: parts[1],
		Patch: parts[2],
		Raw:   raw,
	}, nil
}
