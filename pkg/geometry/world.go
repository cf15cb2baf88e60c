package geometry

import (
	"github.com/mzhang233/go-ray-tracing/pkg/core"
	"github.com/mzhang233/go-ray-tracing/pkg/material"
)

// World is an insertion-ordered collection of hittable objects.
// Intersection is a linear scan; no acceleration structure.
type World struct {
	Objects []Hittable
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{Objects: make([]Hittable, 0)}
}

// Add appends an object to the world
func (w *World) Add(object Hittable) {
	w.Objects = append(w.Objects, object)
}

// Clear removes all objects from the world
func (w *World) Clear() {
	w.Objects = w.Objects[:0]
}

// Hit returns the nearest intersection along the ray within (tMin, tMax].
// The search window shrinks as closer hits are found, so the result is
// independent of insertion order.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, object := range w.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
