package scenario

import (
	"fmt"

	"github.com/zeusync/geokit/pkg/gmath"
	"github.com/zeusync/geokit/pkg/shape"
	"github.com/zeusync/geokit/pkg/vector"
)

// Query is a validated query ready for evaluation.
type Query struct {
	ID   string
	A, B shape.Shape
}

// Build validates the scenario and converts the shapes of every query. The
// first bad shape description is returned as a *QueryError.
func (s *Scenario) Build() ([]Query, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	queries := make([]Query, len(s.Queries))
	for i, spec := range s.Queries {
		q, err := spec.build()
		if err != nil {
			return nil, err
		}
		queries[i] = q
	}
	return queries, nil
}

func (q QuerySpec) build() (Query, error) {
	a, err := q.A.Shape()
	if err != nil {
		return Query{}, &QueryError{ID: q.ID, Err: err}
	}
	b, err := q.B.Shape()
	if err != nil {
		return Query{}, &QueryError{ID: q.ID, Err: err}
	}
	return Query{ID: q.ID, A: a, B: b}, nil
}

func (s *Scenario) validate() error {
	if s.Workers < 0 {
		return fmt.Errorf("%w: negative workers %d", ErrInvalidScenario, s.Workers)
	}
	switch len(s.Seed) {
	case 0:
	case 2:
		if s.Seed[0] == 0 && s.Seed[1] == 0 {
			return fmt.Errorf("%w: seed must not be all zero", ErrInvalidScenario)
		}
	default:
		return fmt.Errorf("%w: seed needs two words, got %d", ErrInvalidScenario, len(s.Seed))
	}
	seen := make(map[string]struct{}, len(s.Queries))
	for i, q := range s.Queries {
		if q.ID == "" {
			return fmt.Errorf("%w: query %d has no id", ErrInvalidScenario, i)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("%w: duplicate query id %q", ErrInvalidScenario, q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	for i, h := range s.Hulls {
		if len(h.Points) == 0 {
			return fmt.Errorf("%w: hull %d (%s) has no points", ErrInvalidScenario, i, h.Name)
		}
	}
	for i, h := range s.RandomHulls {
		if h.Count <= 0 || h.Points <= 0 {
			return fmt.Errorf("%w: random hull %d (%s) needs positive count and points", ErrInvalidScenario, i, h.Name)
		}
		if h.Min[0] > h.Max[0] || h.Min[1] > h.Max[1] {
			return fmt.Errorf("%w: random hull %d (%s) has min above max", ErrInvalidScenario, i, h.Name)
		}
	}
	return nil
}

// rand returns the generator the scenario seed describes.
func (s *Scenario) rand() *gmath.Rand {
	if len(s.Seed) == 2 {
		return gmath.NewRandSeeded(s.Seed[0], s.Seed[1])
	}
	return gmath.NewRand()
}

// Shape converts the description into a shape value.
func (sp ShapeSpec) Shape() (shape.Shape, error) {
	kind, ok := shape.ParseKind(sp.Type)
	if !ok {
		return shape.Shape{}, fmt.Errorf("%w: %q", ErrUnknownShapeType, sp.Type)
	}

	switch kind {
	case shape.KindAABB:
		return shape.FromAABB(shape.NewAABB(sp.X, sp.Y, sp.Width, sp.Height)), nil
	case shape.KindOBB:
		switch len(sp.Corners) {
		case 0:
			return shape.FromOBB(shape.RotatedBox(vector.New(sp.X, sp.Y), sp.Width, sp.Height, sp.Angle)), nil
		case 3:
			return shape.FromOBB(shape.NewOBB(sp.Corners[0].Vec(), sp.Corners[1].Vec(), sp.Corners[2].Vec())), nil
		default:
			return shape.Shape{}, fmt.Errorf("%w: obb needs 3 corners, got %d", ErrInvalidScenario, len(sp.Corners))
		}
	case shape.KindCircle:
		return shape.FromCircle(shape.NewCircle(sp.X, sp.Y, sp.Radius)), nil
	case shape.KindEllipsoid:
		return shape.FromEllipsoid(shape.NewEllipsoid(sp.X, sp.Y, sp.Width, sp.Height)), nil
	case shape.KindSegment:
		return shape.FromSegment(shape.NewSegment(sp.X, sp.Y, sp.X2, sp.Y2)), nil
	case shape.KindRay:
		return shape.FromRay(shape.NewRay(sp.X, sp.Y, sp.DX, sp.DY)), nil
	default:
		return shape.Shape{}, fmt.Errorf("%w: %q", ErrUnknownShapeType, sp.Type)
	}
}

func (p Point) Vec() vector.Vec2 {
	return vector.New(p[0], p[1])
}

func pointOf(v vector.Vec2) Point {
	return Point{v.X, v.Y}
}
