package ecs

import (
	"fmt"

	"github.com/milk9111/keyframe/ecs/component"
)

var (
	ErrEntityNotAlive       = component.ErrEntityNotAlive
	ErrNilComponent         = component.ErrNilComponent
	ErrInvalidComponentKind = component.ErrInvalidComponentKind
)

// Kind identifies a component store. component.ComponentKind[T] satisfies it.
type Kind interface {
	ID() component.ComponentID
	Name() string
	Valid() bool
}

// System updates a world once per cycle.
type System interface {
	Update(w *World)
}

// World owns entities, components, and system order.
type World struct {
	entities entityStore
	systems  []System
	events   EventQueue
	stores   map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, set := range w.stores {
		set.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Systems returns a copy of the systems in update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return append([]System(nil), w.systems...)
}

// Update runs all systems once in order, then drops undrained events.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(kind Kind, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	set := w.stores[kind.ID()]
	if set == nil && create {
		set = &SparseSet{}
		w.stores[kind.ID()] = set
	}
	return set
}

// AddComponent inserts or replaces the component of the given kind.
func (w *World) AddComponent(e Entity, kind Kind, value any) error {
	if kind == nil || !kind.Valid() {
		return ErrInvalidComponentKind
	}
	if value == nil {
		return ErrNilComponent
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("%w: add %s to %v", ErrEntityNotAlive, kind.Name(), e)
	}
	w.store(kind, true).Set(e.id(), value)
	return nil
}

// GetComponent returns the component of the given kind, if present.
func (w *World) GetComponent(e Entity, kind Kind) (any, bool) {
	if kind == nil || !w.IsAlive(e) {
		return nil, false
	}
	set := w.store(kind, false)
	if !set.Has(e.id()) {
		return nil, false
	}
	return set.Get(e.id()), true
}

func (w *World) HasComponent(e Entity, kind Kind) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

func (w *World) RemoveComponent(e Entity, kind Kind) bool {
	if kind == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(kind, false).Remove(e.id())
}
