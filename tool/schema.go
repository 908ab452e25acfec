package tool

// InputSchema renders the descriptor's parameter specs as a JSON-Schema-like
// object of the shape discovery clients expect:
//
//	{"type": "object", "properties": {...}, "required": [...]}
//
// Property order inside the map is irrelevant on the wire; the required list
// preserves declaration order.
func (d Descriptor) InputSchema() map[string]any {
	properties := make(map[string]any, len(d.Params))
	var required []string
	for _, p := range d.Params {
		prop := map[string]any{
			"type": string(p.Type),
		}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if !p.Required && p.Default != nil {
			prop["default"] = p.Default
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
