package tools

// ObjectSchema builds an object input schema from property descriptions and
// the list of required property names.
func ObjectSchema(properties map[string]any, required ...string) Schema {
	return Schema{Properties: properties, Required: required}
}

// StringProperty describes a string input field.
func StringProperty(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

// NumberProperty describes a numeric input field.
func NumberProperty(description string) map[string]any {
	return map[string]any{"type": "number", "description": description}
}

// IntegerProperty describes an integer input field.
func IntegerProperty(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

// BooleanProperty describes a boolean input field.
func BooleanProperty(description string) map[string]any {
	return map[string]any{"type": "boolean", "description": description}
}

// StringArrayProperty describes an array-of-strings input field.
func StringArrayProperty(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": description,
	}
}
