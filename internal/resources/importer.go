package resources

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	goslug "github.com/goliatone/go-slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/looprevenue/loop-cms/internal/identity"
	"github.com/looprevenue/loop-cms/internal/logging"
	"github.com/looprevenue/loop-cms/narration"
	"github.com/looprevenue/loop-cms/pkg/interfaces"
)

// resourceFrontMatter is the YAML header of a resource Markdown file.
type resourceFrontMatter struct {
	Title       string    `yaml:"title"`
	Type        string    `yaml:"type"`
	Slug        string    `yaml:"slug"`
	Category    string    `yaml:"category"`
	Summary     string    `yaml:"summary"`
	AudioSource string    `yaml:"audio_source"`
	AudioTitle  string    `yaml:"audio_title"`
	Date        time.Time `yaml:"date"`
	Draft       bool      `yaml:"draft"`
}

// ImportResult reports the outcome of a directory import.
type ImportResult struct {
	Indexed int
	Skipped int
	Errors  []error
}

// Importer builds the resource index from Markdown files with YAML
// frontmatter. Identities are derived from the file path, so reimporting the
// same tree is idempotent.
type Importer struct {
	store     *Store
	logger    interfaces.Logger
	recursive bool
	pattern   string
	engine    goldmark.Markdown
}

// ImporterOption customises the importer.
type ImporterOption func(*Importer)

// WithImportLogger wires the module logger.
func WithImportLogger(logger interfaces.Logger) ImporterOption {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithRecursive walks nested directories when enabled.
func WithRecursive(recursive bool) ImporterOption {
	return func(i *Importer) {
		i.recursive = recursive
	}
}

// WithPattern overrides the filename glob. Defaults to "*.md".
func WithPattern(pattern string) ImporterOption {
	return func(i *Importer) {
		if pattern != "" {
			i.pattern = pattern
		}
	}
}

// NewImporter constructs an importer feeding the supplied index.
func NewImporter(store *Store, opts ...ImporterOption) *Importer {
	i := &Importer{
		store:   store,
		logger:  logging.NoOp(),
		pattern: "*.md",
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ImportDirectory walks the directory, parses every matching Markdown file,
// and replaces the index with the parsed entries. Files that fail to parse
// are collected as errors and skipped; they never abort the whole import.
func (i *Importer) ImportDirectory(ctx context.Context, dir string) (ImportResult, error) {
	result := ImportResult{}
	if strings.TrimSpace(dir) == "" {
		return result, fmt.Errorf("resources: import directory is required")
	}

	var entries []Summary
	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if !i.recursive && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if ok, _ := filepath.Match(i.pattern, d.Name()); !ok {
			return nil
		}

		entry, skipped, parseErr := i.parseFile(dir, path)
		switch {
		case parseErr != nil:
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", path, parseErr))
			i.logger.Warn("resource import failed", "path", path, "error", parseErr)
		case skipped:
			result.Skipped++
		default:
			entries = append(entries, entry)
		}
		return nil
	}

	if err := filepath.WalkDir(dir, walk); err != nil {
		return result, fmt.Errorf("resources: walk %s: %w", dir, err)
	}

	i.store.Replace(entries)
	result.Indexed = len(entries)
	i.logger.Info("resource index rebuilt",
		"directory", dir,
		"indexed", result.Indexed,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	return result, nil
}

func (i *Importer) parseFile(root, path string) (Summary, bool, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, false, err
	}

	var meta resourceFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Summary{}, false, fmt.Errorf("parse frontmatter: %w", err)
	}
	if meta.Draft {
		return Summary{}, true, nil
	}
	if strings.TrimSpace(meta.Title) == "" {
		return Summary{}, false, fmt.Errorf("missing title")
	}

	kind := Type(meta.Type)
	if kind == "" {
		kind = TypePage
	}
	if !kind.Valid() {
		return Summary{}, false, fmt.Errorf("unknown resource type %q", meta.Type)
	}

	var rendered bytes.Buffer
	if err := i.engine.Convert(body, &rendered); err != nil {
		return Summary{}, false, fmt.Errorf("render markdown: %w", err)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	entry := Summary{
		ID:          identity.ResourceUUID(rel),
		Type:        kind,
		Slug:        resolveSlug(meta.Slug, rel),
		Title:       meta.Title,
		Category:    meta.Category,
		Summary:     meta.Summary,
		BodyHTML:    rendered.String(),
		PublishedAt: meta.Date,
	}
	if meta.AudioSource != "" {
		entry.Audio = &narration.Track{
			Source: meta.AudioSource,
			Title:  audioTitle(meta),
		}
	}
	return entry, false, nil
}

func audioTitle(meta resourceFrontMatter) string {
	if meta.AudioTitle != "" {
		return meta.AudioTitle
	}
	return meta.Title
}

// resolveSlug prefers an explicit frontmatter slug and falls back to the
// normalized relative path without its extension.
func resolveSlug(explicit, rel string) string {
	if trimmed := strings.TrimSpace(explicit); trimmed != "" {
		return trimmed
	}
	base := strings.TrimSuffix(rel, filepath.Ext(rel))
	segments := strings.Split(base, "/")
	for idx, segment := range segments {
		if normalized, err := goslug.Normalize(segment); err == nil && normalized != "" {
			segments[idx] = normalized
		}
	}
	return strings.Join(segments, "/")
}
