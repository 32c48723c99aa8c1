package scene

// Handle is the boundary with the rendering collaborator. The stage owns
// placement; the renderer owns geometry, materials and drawing. Apply is
// called once per tick with the object's current transform.
type Handle interface {
	Apply(Transform)
}

// NopHandle discards every transform. Useful for headless runs and tests.
type NopHandle struct{}

// Apply implements Handle.
func (NopHandle) Apply(Transform) {}
