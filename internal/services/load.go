package services

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern selects markdown files anywhere below the content root.
const DefaultPattern = "**/*.md"

//go:embed content/*.md
var builtinContent embed.FS

// LoadBuiltin returns the registry of services compiled into the binary.
func LoadBuiltin() (*Registry, error) {
	sub, err := fs.Sub(builtinContent, "content")
	if err != nil {
		return nil, fmt.Errorf("opening builtin content: %w", err)
	}
	services, err := LoadFS(sub, DefaultPattern)
	if err != nil {
		return nil, err
	}
	return New(services)
}

// LoadDir reads operator-supplied markdown files from dir.
func LoadDir(dir, pattern string) ([]Service, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("accessing content dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir), pattern)
}

// LoadFS reads every file in fsys matching the doublestar pattern. The id is
// the file name without extension; the title is the first H1 heading.
func LoadFS(fsys fs.FS, pattern string) ([]Service, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid content pattern %q", pattern)
	}

	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %q: %w", pattern, err)
	}

	services := make([]Service, 0, len(matches))
	seen := make(map[string]string, len(matches))
	for _, p := range matches {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}

		id := idFromPath(p)
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("service id %q defined by both %s and %s", id, prev, p)
		}
		seen[id] = p

		content := string(data)
		services = append(services, Service{
			ID:       id,
			Title:    extractTitle(content, id),
			Markdown: stripTitle(content),
		})
	}
	return services, nil
}

func idFromPath(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// extractTitle returns the first H1 heading, or fallback.
func extractTitle(content, fallback string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}

// stripTitle drops the first H1 heading; the modal shows the title separately.
func stripTitle(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "# ") {
			rest := append(lines[:i:i], lines[i+1:]...)
			return strings.TrimLeft(strings.Join(rest, "\n"), "\n")
		}
	}
	return content
}
