package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"
)

// Version is set at build time with
// -ldflags "-X github.com/studiowebux/nibble/internal/version.Version=1.2.3"
var Version = ""

const (
	releasesURL  = "https://api.github.com/repos/studiowebux/nibble/releases/latest"
	checkTimeout = 5 * time.Second
)

// String returns the build version, falling back to the module version
// recorded by `go install` and then to "dev"
func String() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return strings.TrimPrefix(info.Main.Version, "v")
	}
	return "dev"
}

// Release is the subset of the GitHub release payload we read
type Release struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// Update describes the result of an update check
type Update struct {
	Available bool
	Latest    string
	URL       string
}

// Checker queries the latest published release
type Checker struct {
	URL    string
	Client *http.Client
}

// NewChecker returns a checker for the nibble releases page
func NewChecker() *Checker {
	return &Checker{
		URL:    releasesURL,
		Client: &http.Client{Timeout: checkTimeout},
	}
}

// Check reports whether a release newer than current exists
func (c *Checker) Check(ctx context.Context, current string) (Update, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return Update{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "nibble/"+current)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return Update{}, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Update{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Update{}, fmt.Errorf("failed to decode response: %w", err)
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	current = strings.TrimPrefix(current, "v")

	return Update{
		Available: latest != "" && IsNewer(latest, current),
		Latest:    latest,
		URL:       release.HTMLURL,
	}, nil
}

// IsNewer compares two semantic versions and returns true if latest > current.
// Pre-release and build suffixes are ignored.
func IsNewer(latest, current string) bool {
	latestParts := parseVersion(latest)
	currentParts := parseVersion(current)

	n := max(len(latestParts), len(currentParts))
	for len(latestParts) < n {
		latestParts = append(latestParts, 0)
	}
	for len(currentParts) < n {
		currentParts = append(currentParts, 0)
	}

	for i := range n {
		if latestParts[i] != currentParts[i] {
			return latestParts[i] > currentParts[i]
		}
	}
	return false
}

// parseVersion splits a version into its numeric parts
func parseVersion(version string) []int {
	if idx := strings.IndexAny(version, "-+"); idx != -1 {
		version = version[:idx]
	}

	parts := strings.Split(version, ".")
	result := make([]int, 0, len(parts))
	for _, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		result = append(result, num)
	}
	return result
}
