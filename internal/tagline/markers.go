package tagline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// markerFile is the on-disk layout of a marker configuration file.
type markerFile struct {
	Markers []Marker `yaml:"markers"`
}

// ParseMarkers decodes a YAML marker list from r.
// Every entry must have a non-empty trigger.
func ParseMarkers(r io.Reader) ([]Marker, error) {
	var f markerFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("tagline.ParseMarkers: empty marker file")
		}
		return nil, fmt.Errorf("tagline.ParseMarkers: %w", err)
	}
	if len(f.Markers) == 0 {
		return nil, errors.New("tagline.ParseMarkers: no markers defined")
	}
	for i, m := range f.Markers {
		if m.Trigger == "" {
			return nil, fmt.Errorf("tagline.ParseMarkers: marker %d: trigger is required", i)
		}
	}
	return f.Markers, nil
}

// LoadMarkers reads a YAML marker file from path.
func LoadMarkers(path string) ([]Marker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tagline.LoadMarkers: %w", err)
	}
	defer f.Close()

	markers, err := ParseMarkers(f)
	if err != nil {
		return nil, fmt.Errorf("tagline.LoadMarkers: %s: %w", path, err)
	}
	return markers, nil
}

// NewFromFile returns an Emphasizer configured from the marker file at path,
// or the default Emphasizer when path is empty.
func NewFromFile(path string) (*Emphasizer, error) {
	if path == "" {
		return New(), nil
	}
	markers, err := LoadMarkers(path)
	if err != nil {
		return nil, err
	}
	return New(markers...), nil
}
