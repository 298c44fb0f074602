package main

import (
	"errors"
	"fmt"
	"os"

	app_info "github.com/rotasegura/beacon/internal/app-info"
	"github.com/rotasegura/beacon/internal/logger"
	"github.com/rotasegura/beacon/internal/scripts/bump-version/release"
)

const (
	outFile      = "internal/app-info/info.go"
	templatePath = "internal/templates/info.go.tmpl"
)

func main() {
	log := logger.New()

	args := os.Args[1:]

	if len(args) != 1 {
		log.Fatal().Err(errors.New("must provide version as argument")).Msg("")
	}

	writer, err := release.NewTemplateWriter(outFile, templatePath)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load app info template")
	}

	opts := release.Options{
		Name:    app_info.NAME,
		Version: args[0],
		OutFile: outFile,
	}

	if err := release.Cut(opts, writer, release.NewGitRepository(".")); err != nil {
		log.Fatal().Err(err).Str("version", opts.Version).Msg("release failed")
	}

	fmt.Printf("Released %s %s\n", opts.Name, opts.Version)

	fmt.Println("To deploy run: \"git push <repo> <branch> --tags\"")
}
