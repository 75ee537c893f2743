package updater

import (
	"fmt"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestCompareVersions(t *testing.T) {
	cases := []struct {
		current, latest string
		want            int
	}{
		{"1.0.0", "1.0.1", -1},
		{"v1.2.0", "1.2.0", 0},
		{"2.0.0", "v1.9.9", 1},
		{"1.0.0-rc.1", "1.0.0", -1},
	}
	for _, tc := range cases {
		got, err := CompareVersions(tc.current, tc.latest)
		if err != nil {
			t.Errorf("CompareVersions(%q, %q) error: %v", tc.current, tc.latest, err)
			continue
		}
		if got != tc.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tc.current, tc.latest, got, tc.want)
		}
	}

	if _, err := CompareVersions("dev", "1.0.0"); err == nil {
		t.Error("CompareVersions() accepted non-semver version")
	}
}

func TestIsUpdateAvailable(t *testing.T) {
	avail, err := IsUpdateAvailable("1.0.0", "v1.1.0")
	if err != nil {
		t.Fatalf("IsUpdateAvailable() error: %v", err)
	}
	if !avail {
		t.Error("newer release not reported as available")
	}

	avail, err = IsUpdateAvailable("1.1.0", "1.1.0")
	if err != nil {
		t.Fatalf("IsUpdateAvailable() error: %v", err)
	}
	if avail {
		t.Error("same version reported as update")
	}
}

func TestSelectAsset(t *testing.T) {
	t.Run("exact archive name", func(t *testing.T) {
		assets := []Asset{
			{Name: "checksums.txt"},
			{Name: ArchiveName()},
		}
		asset, err := SelectAsset(assets)
		if err != nil {
			t.Fatalf("SelectAsset() error: %v", err)
		}
		if asset.Name != ArchiveName() {
			t.Errorf("selected %q, want %q", asset.Name, ArchiveName())
		}
	})

	t.Run("substring fallback", func(t *testing.T) {
		name := fmt.Sprintf("cli-0.3.0_%s_%s.tar.gz", runtime.GOOS, runtime.GOARCH)
		assets := []Asset{{Name: "README.md"}, {Name: name}}
		asset, err := SelectAsset(assets)
		if err != nil {
			t.Fatalf("SelectAsset() error: %v", err)
		}
		if asset.Name != name {
			t.Errorf("selected %q, want %q", asset.Name, name)
		}
	})

	t.Run("no match", func(t *testing.T) {
		_, err := SelectAsset([]Asset{{Name: "checksums.txt"}})
		if err == nil {
			t.Fatal("SelectAsset() found an asset in an empty set")
		}
		if !strings.Contains(err.Error(), runtime.GOOS) {
			t.Errorf("error %q does not name the platform", err)
		}
	})
}

func TestVersionCache(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing cache is nil", func(t *testing.T) {
		cache, err := LoadCache(dir)
		if err != nil {
			t.Fatalf("LoadCache() error: %v", err)
		}
		if cache != nil {
			t.Errorf("cache = %+v, want nil on first run", cache)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		saved := &VersionCache{
			LatestVersion:   "v1.2.0",
			CurrentVersion:  "1.0.0",
			CheckedAt:       time.Now(),
			UpdateAvailable: true,
		}
		if err := SaveCache(dir, saved); err != nil {
			t.Fatalf("SaveCache() error: %v", err)
		}

		loaded, err := LoadCache(dir)
		if err != nil {
			t.Fatalf("LoadCache() error: %v", err)
		}
		if loaded.LatestVersion != "v1.2.0" || !loaded.UpdateAvailable {
			t.Errorf("loaded = %+v", loaded)
		}
	})

	t.Run("staleness", func(t *testing.T) {
		if !IsCacheStale(nil, time.Hour) {
			t.Error("nil cache not stale")
		}
		fresh := &VersionCache{CheckedAt: time.Now()}
		if IsCacheStale(fresh, time.Hour) {
			t.Error("fresh cache reported stale")
		}
		old := &VersionCache{CheckedAt: time.Now().Add(-2 * time.Hour)}
		if !IsCacheStale(old, time.Hour) {
			t.Error("old cache not reported stale")
		}
	})
}
