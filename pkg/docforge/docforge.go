// Package docforge renders declarative content descriptions into
// document files: flow documents (pdf, docx), tabular/data formats
// (json, yaml, xml, csv, xlsx), and slide decks (pptx).
//
// Usage:
//
//	engine := docforge.New(docforge.DefaultOptions())
//	res := engine.Generate("# Report\n- first point", "report.pdf", "")
//	fmt.Println(res.Output, res.Path)
//
// Each call is stateless aside from the file it writes. Concurrent
// calls targeting distinct filenames are safe; calls targeting the same
// filename race last-write-wins and are not serialized.
package docforge

import (
	"fmt"
	"strings"

	"github.com/hiroo3/docforge-go/pkg/docforge/builder"
	"github.com/hiroo3/docforge-go/pkg/docforge/encode"
	"github.com/hiroo3/docforge-go/pkg/docforge/models"
	"github.com/hiroo3/docforge-go/pkg/docforge/output"
)

// Options configures an Engine.
type Options struct {
	// Workspace is the directory all generated files are written under,
	// created on demand. Filenames are resolved relative to it.
	Workspace string
}

// DefaultOptions returns default engine options: a "workspace"
// directory relative to the working directory.
func DefaultOptions() Options {
	return Options{Workspace: "workspace"}
}

// Engine generates document files under a workspace directory.
type Engine struct {
	opts Options
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	if opts.Workspace == "" {
		opts.Workspace = DefaultOptions().Workspace
	}
	return &Engine{opts: opts}
}

// SupportedFormats returns all format tokens Generate accepts.
func SupportedFormats() []string {
	return []string{"pdf", "docx", "json", "yaml", "xml", "csv", "xlsx"}
}

// Generate renders content into one file under the workspace. The
// format is taken from the explicit token when given, otherwise
// inferred from the filename extension. Flow formats (pdf, docx) take
// Markdown-like content; data formats take a JSON string. Exactly one
// file is written on success and nothing on failure; builder errors are
// converted into a failure Result, never propagated.
func (e *Engine) Generate(content, filename, format string) models.Result {
	tag, err := e.resolveFormat(filename, format)
	if err != nil {
		return models.Failure(err.Error())
	}

	path, err := output.Resolve(e.opts.Workspace, filename)
	if err != nil {
		return models.Failure(fmt.Sprintf("Failed to generate file: %v", err))
	}

	var data []byte
	switch {
	case tag == models.FormatPDF:
		data, err = builder.BuildPDF(content)
	case tag == models.FormatDocx:
		data, err = builder.BuildDocx(content)
	case tag.IsDataFormat():
		data, err = encode.EncodeData(content, tag)
	}
	if err != nil {
		return models.Failure(fmt.Sprintf("Failed to generate file: %v", err))
	}

	if err := output.Write(path, data); err != nil {
		return models.Failure(fmt.Sprintf("Failed to generate file: %v", err))
	}

	return models.Success(successMessage(tag, path), path)
}

// CreatePresentation renders slides into a pptx file under the
// workspace. The filename must end in ".pptx"; that is a hard
// precondition, not an inference.
func (e *Engine) CreatePresentation(filename string, slides []models.SlideSpec) models.Result {
	if !strings.HasSuffix(strings.ToLower(filename), ".pptx") {
		return models.Failure("Filename must end with .pptx")
	}

	path, err := output.Resolve(e.opts.Workspace, filename)
	if err != nil {
		return models.Failure(fmt.Sprintf("Failed to create presentation: %v", err))
	}

	data, err := builder.BuildDeck(slides)
	if err != nil {
		return models.Failure(fmt.Sprintf("Failed to create presentation: %v", err))
	}

	if err := output.Write(path, data); err != nil {
		return models.Failure(fmt.Sprintf("Failed to create presentation: %v", err))
	}

	return models.Success(fmt.Sprintf("Presentation successfully created at %s", path), path)
}

// resolveFormat applies the explicit-token-wins rule. The pptx format
// is served by CreatePresentation only.
func (e *Engine) resolveFormat(filename, format string) (models.Format, error) {
	var tag models.Format
	var err error
	if format != "" {
		tag, err = models.ParseFormat(format)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
		}
	} else {
		tag, err = models.FormatFromFilename(filename)
		if err != nil {
			return "", fmt.Errorf("%w: could not infer supported format from filename %q, please specify format",
				ErrUnsupportedFormat, filename)
		}
	}
	if !tag.IsFlowFormat() && !tag.IsDataFormat() {
		return "", fmt.Errorf("%w: pptx is generated via CreatePresentation", ErrUnsupportedFormat)
	}
	return tag, nil
}

func successMessage(tag models.Format, path string) string {
	switch tag {
	case models.FormatPDF:
		return fmt.Sprintf("PDF document generated successfully: %s", path)
	case models.FormatDocx:
		return fmt.Sprintf("DOCX document generated successfully: %s", path)
	default:
		return fmt.Sprintf("%s file generated successfully: %s", strings.ToUpper(string(tag)), path)
	}
}
