package release

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

// TemplateWriter implements InfoWriter by rendering a Go source template
type TemplateWriter struct {
	outFile string
	tmpl    *template.Template
}

// NewTemplateWriter parses the template at templatePath up front so a bad
// template fails before any release step runs
func NewTemplateWriter(outFile, templatePath string) (*TemplateWriter, error) {
	tmpl, err := template.New(filepath.Base(templatePath)).ParseFiles(templatePath)

	if err != nil {
		return nil, err
	}

	return &TemplateWriter{outFile: outFile, tmpl: tmpl}, nil
}

// Write renders info, gofmts the result and replaces the out file
func (w *TemplateWriter) Write(info Info) error {
	rendered := bytes.Buffer{}

	if err := w.tmpl.Execute(&rendered, info); err != nil {
		return err
	}

	src, err := format.Source(rendered.Bytes())

	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(w.outFile), 0751); err != nil {
		return err
	}

	return os.WriteFile(w.outFile, src, 0644)
}
