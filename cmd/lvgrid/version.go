package main

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type versionCmd struct{}

func (t versionCmd) Run(g *Globals) (err error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("unable to read build info")
	}

	version, err := buildVersion(info)
	if err != nil {
		return err
	}

	if _, err = fmt.Println(version); err != nil {
		return err
	}

	if strings.HasSuffix(version, ".dirty") {
		if _, err = fmt.Println(g.aurora().Red("unsupported modified build")); err != nil {
			return err
		}
	}

	return nil
}

// buildVersion renders module path, commit date, revision and dirty marker
// joined by dots, skipping empty parts.
func buildVersion(info *debug.BuildInfo) (string, error) {
	var (
		ts    time.Time
		id    string
		dirty string
	)

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.modified":
			if v.Value == "true" {
				dirty = "dirty"
			}
		case "vcs.revision":
			id = v.Value
		case "vcs.time":
			parsed, err := time.Parse(time.RFC3339, v.Value)
			if err != nil {
				return "", errors.Wrapf(err, "invalid vcs.time %q", v.Value)
			}
			ts = parsed
		}
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{info.Main.Path, formatDate(ts), id, dirty} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, "."), nil
}

func formatDate(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}

	return ts.Format("2006-01-02")
}
