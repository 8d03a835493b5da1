package roadmap

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
)

const filePattern = "roadmap_*.json"

//go:embed roadmap.schema.json
var roadmapSchema string

var ErrNoRoadmaps = errors.New("no roadmap files found")

// Store persists roadmaps as JSON files in Dir.
type Store struct {
	Dir string
	now func() time.Time
}

func NewStore(dir string) *Store {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	return &Store{Dir: dir, now: time.Now}
}

// DefaultFilename returns roadmap_<company>_<role>_<timestamp>.json with
// spaces and slashes replaced by underscores.
func DefaultFilename(r *Roadmap, at time.Time) string {
	name := fmt.Sprintf("roadmap_%s_%s_%s.json", r.Company, r.Role, at.Format("20060102_150405"))
	return strings.NewReplacer(" ", "_", "/", "_").Replace(name)
}

// Save writes the roadmap and returns the path of the written file. An empty
// filename selects DefaultFilename.
func (s *Store) Save(r *Roadmap, filename string) (string, error) {
	if r == nil {
		return "", errors.New("roadmap is required")
	}

	if err := r.Validate(); err != nil {
		return "", fmt.Errorf("invalid roadmap: %w", err)
	}

	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = DefaultFilename(r, s.clock())
	}

	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.Dir, filename)
	}

	data, err := Marshal(r)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing roadmap file: %w", err)
	}

	return path, nil
}

// Load reads a roadmap file and checks it against the roadmap schema.
func (s *Store) Load(path string) (*Roadmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := validateDocument(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var r Roadmap
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding roadmap %s: %w", path, err)
	}

	return &r, nil
}

// Latest returns the most recently modified roadmap file in Dir.
func (s *Store) Latest() (string, error) {
	matches, err := filepath.Glob(filepath.Join(s.Dir, filePattern))
	if err != nil {
		return "", err
	}

	var (
		latest   string
		latestAt time.Time
	)
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestAt) {
			latest = match
			latestAt = info.ModTime()
		}
	}

	if latest == "" {
		return "", ErrNoRoadmaps
	}

	return latest, nil
}

// Marshal encodes the roadmap the way it is stored on disk.
func Marshal(r *Roadmap) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encoding roadmap: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Store) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// SchemaError lists the schema violations of a roadmap document.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "roadmap does not match schema: " + strings.Join(e.Violations, "; ")
}

func validateDocument(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(roadmapSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validating roadmap: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}

	return &SchemaError{Violations: violations}
}
