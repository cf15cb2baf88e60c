package geometry

import (
	"github.com/mzhang233/go-ray-tracing/pkg/core"
	"github.com/mzhang233/go-ray-tracing/pkg/material"
)

// Hittable is the capability of being intersected by a ray.
// Only intersections with t strictly inside (tMin, tMax] are candidates;
// callers looking for the closest hit shrink tMax as they go.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
