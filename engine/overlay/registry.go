package overlay

import "fmt"

// TextureRegistry maps stable logical texture names to the opaque
// handles the renderer assigned at registration time. Lookups during UI
// declaration must only name textures registered during startup.
type TextureRegistry struct {
	handles map[string]TextureHandle
}

// NewTextureRegistry creates an empty registry.
//
// Returns:
//   - *TextureRegistry: the empty registry
func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{handles: make(map[string]TextureHandle)}
}

// Register binds a name to a handle. Re-registering a name replaces the
// previous binding.
//
// Parameters:
//   - name: the stable logical name
//   - handle: the renderer-assigned handle
func (r *TextureRegistry) Register(name string, handle TextureHandle) {
	r.handles[name] = handle
}

// Lookup resolves a name to its handle. An unregistered name is a
// programming error and panics.
//
// Parameters:
//   - name: the name to resolve
//
// Returns:
//   - TextureHandle: the handle registered under the name
func (r *TextureRegistry) Lookup(name string) TextureHandle {
	handle, ok := r.handles[name]
	if !ok {
		panic(fmt.Sprintf("overlay: texture %q referenced before registration", name))
	}
	return handle
}

// Has reports whether a name is registered.
//
// Parameters:
//   - name: the name to check
//
// Returns:
//   - bool: true if the name is registered
func (r *TextureRegistry) Has(name string) bool {
	_, ok := r.handles[name]
	return ok
}
