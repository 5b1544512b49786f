package mapdata

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlMap is the YAML map document:
//
//	name: corridor
//	rows:
//	  - "..#.."
//	  - ".mh.."
//	start: [0, 0]
//	target: [4, 1]
//
// Rows use the text format's characters, top row first. Markers in the
// rows and the start/target keys are mutually exclusive per endpoint.
type yamlMap struct {
	Name   string   `yaml:"name"`
	Rows   []string `yaml:"rows"`
	Start  []int    `yaml:"start,flow,omitempty"`
	Target []int    `yaml:"target,flow,omitempty"`
}

// ParseYAML parses a YAML map document.
func ParseYAML(data []byte) (*Map, error) {
	var doc yamlMap
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding yaml map: %w", err)
	}

	m, err := fromRows(doc.Rows)
	if err != nil {
		return nil, err
	}
	m.Name = doc.Name

	if m.Start, err = mergeEndpoint("start", m.Start, doc.Start); err != nil {
		return nil, err
	}
	if m.Target, err = mergeEndpoint("target", m.Target, doc.Target); err != nil {
		return nil, err
	}

	return m, nil
}

func mergeEndpoint(name string, marker *[2]int, coord []int) (*[2]int, error) {
	if coord == nil {
		return marker, nil
	}
	if len(coord) != 2 {
		return nil, fmt.Errorf("%w: %s needs [x, y], got %v", ErrInvalidEndpoint, name, coord)
	}
	if marker != nil {
		return nil, fmt.Errorf("%w: %s given both as marker and key", ErrDuplicateMarker, name)
	}
	return &[2]int{coord[0], coord[1]}, nil
}

// MarshalYAML encodes the map as a YAML map document.
func (m *Map) MarshalYAML() (interface{}, error) {
	text := *m
	text.Name = ""
	text.Start, text.Target = nil, nil

	data, err := text.MarshalText()
	if err != nil {
		return nil, err
	}

	doc := yamlMap{
		Name: m.Name,
		Rows: strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"),
	}
	if m.Start != nil {
		doc.Start = []int{m.Start[0], m.Start[1]}
	}
	if m.Target != nil {
		doc.Target = []int{m.Target[0], m.Target[1]}
	}
	return doc, nil
}
