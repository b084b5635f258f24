package loggio

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// zoneSources are the zoneinfo databases consulted by AvailableTimezones,
// in the same order the runtime searches them.
var zoneSources = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
}

// IsValidTimezone reports whether name resolves to an IANA timezone.
// The empty string and the special "Local" name are not considered
// valid named zones.
func IsValidTimezone(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// AvailableTimezones lists the IANA zone names present in the platform
// zoneinfo database, sorted. The slice is empty when no database is
// found.
func AvailableTimezones() []string {
	for _, source := range zoneSources {
		if zones := scanZoneSource(source); len(zones) > 0 {
			return zones
		}
	}
	return nil
}

func scanZoneSource(root string) []string {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil
	}

	var zones []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		name := filepath.ToSlash(rel)
		if d.IsDir() {
			// posix/ and right/ duplicate the whole tree.
			if name == "posix" || name == "right" {
				return fs.SkipDir
			}
			return nil
		}
		if isZoneName(name) {
			zones = append(zones, name)
		}
		return nil
	})

	sort.Strings(zones)
	return zones
}

// isZoneName filters out the non-zone files that live alongside the
// database (zone.tab, leapseconds, tzdata.zi, ...). Zone file names
// start with an uppercase letter by convention.
func isZoneName(name string) bool {
	base := name[strings.LastIndexByte(name, '/')+1:]
	if base == "" || base[0] < 'A' || base[0] > 'Z' {
		return false
	}
	switch {
	case strings.HasSuffix(base, ".tab"),
		strings.HasSuffix(base, ".zi"),
		strings.HasSuffix(base, ".list"),
		base == "SECURITY",
		base == "README":
		return false
	}
	return true
}
