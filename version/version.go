// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/episodic-cli/episodic/constant"
	"github.com/episodic-cli/episodic/filesystem"
	"github.com/episodic-cli/episodic/network"
	"github.com/episodic-cli/episodic/util"
	"github.com/episodic-cli/episodic/where"
	"github.com/metafates/gache"
)

// ReleasesURL is the GitHub endpoint describing the latest release.
var ReleasesURL = "https://api.github.com/repos/episodic-cli/episodic/releases/latest"

// CacheLifetime bounds how often the releases endpoint is consulted.
const CacheLifetime = 48 * time.Hour

func cacher() *gache.Cache[string] {
	return gache.New[string](&gache.Options{
		Path:       filepath.Join(where.Cache(), "version.json"),
		Lifetime:   CacheLifetime,
		FileSystem: &filesystem.GacheFs{},
	})
}

// Latest retrieves the most recent release version, without the "v" prefix.
// Results are cached on disk for CacheLifetime.
func Latest(ctx context.Context) (string, error) {
	cache := cacher()

	version, expired, err := cache.Get()
	if err == nil && !expired && version != "" {
		return version, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases: unexpected status %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = cache.Set(version)
	return version, nil
}
