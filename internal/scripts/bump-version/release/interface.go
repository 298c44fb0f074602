package release

// Info values rendered into the app info source file
type Info struct {
	Name    string
	Version string
}

//go:generate mockgen -destination=../../../mock/scripts/bump-version/release/release.go -package=mock_release . Repository,InfoWriter

// Repository version control operations needed to cut a release
type Repository interface {
	Tags() ([]string, error)
	Stage(path string) error
	Commit(message string) error
	Tag(name, message string) error
}

// InfoWriter renders release info into the app info source file
type InfoWriter interface {
	Write(info Info) error
}
