package ecs

// Drawer is implemented by systems that also render. S is the host's
// drawing surface, which keeps the ECS independent of the renderer.
type Drawer[S any] interface {
	Draw(w *World, screen S)
}

// Draw calls every render-capable system in update order.
func Draw[S any](w *World, screen S) {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		d, ok := s.(Drawer[S])
		if !ok || d == nil {
			continue
		}
		d.Draw(w, screen)
	}
}
