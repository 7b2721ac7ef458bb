package openapi

// NewComponents creates a Components set pre-populated with the shared
// schemas and error responses every domain module relies on.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer"},
					"page_size": {Type: "integer"},
					"search":    {Type: "string"},
					"sort": {
						Type:        "array",
						Description: "Sort fields applied in order",
						Items: &Schema{
							Type: "object",
							Properties: map[string]*Schema{
								"field":      {Type: "string"},
								"descending": {Type: "boolean"},
							},
						},
					},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": {Description: "Request is malformed or fails validation"},
			"NotFound":   {Description: "Referenced resource does not exist"},
			"Conflict":   {Description: "Operation is incompatible with current resource state"},
		},
	}
}

// AddSchemas merges the provided schemas into the component set.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// AddResponses merges the provided responses into the component set.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, response := range responses {
		c.Responses[name] = response
	}
}
