package collision

import (
	"fmt"

	"github.com/zeusync/geokit/pkg/vector"
)

// HitData receives the contact produced by a successful test. Predicates write
// it only when they report a hit, and then fill every field.
type HitData struct {
	Point       vector.Vec2
	Normal      vector.Vec2
	Penetration float32
}

// Set stores a contact. The normal is normalized before it is stored.
func (h *HitData) Set(point, normal vector.Vec2, penetration float32) {
	h.Point = point
	h.Normal = normal.Normalized()
	h.Penetration = penetration
}

// Flip reverses the normal, turning an a-versus-b contact into b-versus-a.
func (h *HitData) Flip() {
	h.Normal = h.Normal.Negate()
}

func (h HitData) String() string {
	return fmt.Sprintf("HitData(point=%v normal=%v penetration=%g)", h.Point, h.Normal, h.Penetration)
}
