package tool

// ParamType enumerates the primitive types a tool parameter may declare.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
	TypeBoolean ParamType = "boolean"
)

// ParamSpec declares one named parameter of a tool. Order within a
// descriptor's Params slice is the order exposed by discovery.
type ParamSpec struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Description string    `json:"description,omitempty"`
	Required    bool      `json:"required,omitempty"`
	Default     any       `json:"default,omitempty"`
}

// Handler is the pure function implementing a tool. It receives the
// normalized argument mapping (every declared parameter present, either an
// explicit value or the declared default) and returns a JSON-marshalable
// value. A returned error is surfaced to the caller as a tool execution
// failure; handlers must not perform I/O or touch shared state.
type Handler func(args map[string]any) (any, error)

// Descriptor is the registry record for one tool. Descriptors are created
// at startup and never mutated afterwards.
type Descriptor struct {
	Name        string
	Description string
	Params      []ParamSpec
	Handler     Handler
}
