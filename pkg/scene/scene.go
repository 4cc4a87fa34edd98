// Package scene holds the objects drawn by the engine and the two built-in
// object kinds, GameObject and Terrain.
package scene

import (
	"reflect"

	"github.com/taigrr/drag3d/pkg/render"
)

// Object is anything placed in a scene. What an object does each frame is
// decided by the optional capabilities it implements; an object with
// neither Updater nor Renderer is inert.
//
// Objects are identified by equality, so use pointer types.
type Object any

// Updater is implemented by objects with per-frame logic.
type Updater interface {
	Update()
}

// Renderer is implemented by objects that draw themselves.
type Renderer interface {
	Render(v *render.View)
}

// Scene is an ordered collection of objects. Insertion order is both update
// and render order; nothing is depth sorted, so later objects paint over
// earlier ones.
type Scene struct {
	objects []Object
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends obj to the scene.
func (s *Scene) Add(obj Object) {
	s.objects = append(s.objects, obj)
}

// Remove deletes the first occurrence of obj and reports whether it was found.
func (s *Scene) Remove(obj Object) bool {
	if obj == nil || !reflect.TypeOf(obj).Comparable() {
		return false
	}
	for i, o := range s.objects {
		if o != nil && reflect.TypeOf(o).Comparable() && o == obj {
			s.objects = append(s.objects[:i:i], s.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every object.
func (s *Scene) Clear() {
	s.objects = nil
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns a copy of the objects in render order.
func (s *Scene) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Update calls Update on every Updater in insertion order.
func (s *Scene) Update() {
	for _, o := range s.objects {
		if u, ok := o.(Updater); ok {
			u.Update()
		}
	}
}

// Render calls Render on every Renderer in insertion order.
func (s *Scene) Render(v *render.View) {
	for _, o := range s.objects {
		if r, ok := o.(Renderer); ok {
			r.Render(v)
		}
	}
}
