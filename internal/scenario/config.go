// Package scenario loads batches of intersection queries and hull inputs from
// YAML or JSON and evaluates them.
package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Point is an [x, y] pair as written in scenario files.
type Point [2]float32

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	Name        string           `json:"name" yaml:"name"`
	Workers     int              `json:"workers,omitempty" yaml:"workers,omitempty"`
	Seed        []uint64         `json:"seed,omitempty" yaml:"seed,omitempty"`
	Queries     []QuerySpec      `json:"queries,omitempty" yaml:"queries,omitempty"`
	Hulls       []HullSpec       `json:"hulls,omitempty" yaml:"hulls,omitempty"`
	RandomHulls []RandomHullSpec `json:"random_hulls,omitempty" yaml:"random_hulls,omitempty"`
}

type QuerySpec struct {
	ID string    `json:"id" yaml:"id"`
	A  ShapeSpec `json:"a" yaml:"a"`
	B  ShapeSpec `json:"b" yaml:"b"`
}

// ShapeSpec describes one shape. Which fields are read depends on Type:
//
//	aabb       x, y, width, height
//	obb        x, y, width, height, angle (radians), or corners [origin, upper_left, lower_right]
//	circle     x, y, radius
//	ellipsoid  x, y, width, height (semi-axes)
//	segment    x, y, x2, y2
//	ray        x, y, dx, dy
type ShapeSpec struct {
	Type    string  `json:"type" yaml:"type"`
	X       float32 `json:"x,omitempty" yaml:"x,omitempty"`
	Y       float32 `json:"y,omitempty" yaml:"y,omitempty"`
	Width   float32 `json:"width,omitempty" yaml:"width,omitempty"`
	Height  float32 `json:"height,omitempty" yaml:"height,omitempty"`
	Radius  float32 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Angle   float32 `json:"angle,omitempty" yaml:"angle,omitempty"`
	X2      float32 `json:"x2,omitempty" yaml:"x2,omitempty"`
	Y2      float32 `json:"y2,omitempty" yaml:"y2,omitempty"`
	DX      float32 `json:"dx,omitempty" yaml:"dx,omitempty"`
	DY      float32 `json:"dy,omitempty" yaml:"dy,omitempty"`
	Corners []Point `json:"corners,omitempty" yaml:"corners,omitempty"`
}

type HullSpec struct {
	Name          string  `json:"name" yaml:"name"`
	Points        []Point `json:"points" yaml:"points"`
	KeepCollinear bool    `json:"keep_collinear,omitempty" yaml:"keep_collinear,omitempty"`
}

// RandomHullSpec asks for Count hulls, each over Points uniform samples drawn
// from the box spanned by Min and Max.
type RandomHullSpec struct {
	Name          string `json:"name" yaml:"name"`
	Count         int    `json:"count" yaml:"count"`
	Points        int    `json:"points" yaml:"points"`
	Min           Point  `json:"min" yaml:"min"`
	Max           Point  `json:"max" yaml:"max"`
	KeepCollinear bool   `json:"keep_collinear,omitempty" yaml:"keep_collinear,omitempty"`
}

// LoadJSON loads a scenario from a JSON reader.
func LoadJSON(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	return &s, nil
}

// LoadYAML loads a scenario from a YAML reader.
func LoadYAML(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	return &s, nil
}

// Load picks the decoder from the file extension.
func Load(path string) (*Scenario, error) {
	var load func(io.Reader) (*Scenario, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		load = LoadYAML
	case ".json":
		load = LoadJSON
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := load(f)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}
