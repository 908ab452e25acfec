package tool

import "fmt"

// DuplicateToolError is returned when registering a name that already exists.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("tool '%s' already registered", e.Name)
}

// UnknownToolError is returned when looking up a name that was never
// registered. Its message is what callers see on a method-not-found failure,
// so the wording is part of the wire contract.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("tool '%s' not found", e.Name)
}

// Registry is the startup-built table of tool descriptors. All registration
// happens during process initialization; afterwards the registry is
// effectively immutable, so concurrent Lookup and List calls need no locking.
type Registry struct {
	byName map[string]Descriptor
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Descriptor),
	}
}

// Register adds a descriptor. It fails with DuplicateToolError when the name
// is already taken, and rejects descriptors missing a name or handler.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("registering tool: name is required")
	}
	if d.Handler == nil {
		return fmt.Errorf("registering tool '%s': handler is required", d.Name)
	}
	if _, exists := r.byName[d.Name]; exists {
		return &DuplicateToolError{Name: d.Name}
	}
	r.byName[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Lookup returns the descriptor registered under name, or UnknownToolError.
func (r *Registry) Lookup(name string) (Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return Descriptor{}, &UnknownToolError{Name: name}
	}
	return d, nil
}

// List returns all descriptors in stable insertion order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Len reports the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}
