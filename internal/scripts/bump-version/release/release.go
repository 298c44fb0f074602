package release

import (
	"errors"
	"fmt"

	"golang.org/x/mod/semver"
)

// ErrInvalidVersion version is not a canonical vMAJOR.MINOR.PATCH tag
var ErrInvalidVersion = errors.New("version must be in the form vMAJOR.MINOR.PATCH")

// ErrNotNewer version does not sort after the latest release tag
var ErrNotNewer = errors.New("version must be newer than the latest release")

// Options input for Cut
type Options struct {
	Name    string
	Version string
	OutFile string
}

// LatestTag returns the highest semver tag in tags. Tags that are not
// valid semver are ignored.
func LatestTag(tags []string) string {
	latest := ""

	for _, t := range tags {
		if !semver.IsValid(t) {
			continue
		}

		if latest == "" || semver.Compare(t, latest) > 0 {
			latest = t
		}
	}

	return latest
}

// Cut rewrites the app info file for opts.Version, commits it and tags the
// commit. Nothing is written unless the version is newer than every
// existing release tag.
func Cut(opts Options, writer InfoWriter, repo Repository) error {
	if !semver.IsValid(opts.Version) || semver.Canonical(opts.Version) != opts.Version {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, opts.Version)
	}

	tags, err := repo.Tags()

	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	if latest := LatestTag(tags); latest != "" && semver.Compare(opts.Version, latest) <= 0 {
		return fmt.Errorf("%w: %s is not after %s", ErrNotNewer, opts.Version, latest)
	}

	info := Info{Name: opts.Name, Version: opts.Version}

	if err := writer.Write(info); err != nil {
		return fmt.Errorf("failed to write app info: %w", err)
	}

	if err := repo.Stage(opts.OutFile); err != nil {
		return fmt.Errorf("failed to stage %s: %w", opts.OutFile, err)
	}

	if err := repo.Commit(fmt.Sprintf("Release %s %s", opts.Name, opts.Version)); err != nil {
		return fmt.Errorf("failed to commit release: %w", err)
	}

	return repo.Tag(opts.Version, fmt.Sprintf("%s %s", opts.Name, opts.Version))
}
