package ecs

// Query returns the live entities that have every listed component, in the
// storage order of the smallest set.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		if k == nil {
			return nil
		}
		set := w.store(k, false)
		if set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}

	base := sets[0]
	for _, set := range sets[1:] {
		if set.Len() < base.Len() {
			base = set
		}
	}

	out := make([]Entity, 0, base.Len())
next:
	for _, id := range base.ids() {
		for _, set := range sets {
			if set != base && !set.Has(id) {
				continue next
			}
		}
		if e, ok := w.entities.entity(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any entity with the given component.
func (w *World) First(kind Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
