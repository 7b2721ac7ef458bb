package footprints

import "github.com/fieldsign/fieldsign/pkg/openapi"

type spec struct {
	Find            *openapi.Operation
	ListForDocument *openapi.Operation
}

var Spec = spec{
	Find: &openapi.Operation{
		Summary:     "Find footprint",
		Description: "Find a signing audit record by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Footprint ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Footprint details", "Footprint"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ListForDocument: &openapi.Operation{
		Summary:     "List document footprints",
		Description: "List the signing audit trail for a document, newest first",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("documentId", "Document ID"),
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Footprint list", "FootprintPageResult"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Footprint": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"document_id":  {Type: "string", Format: "uuid"},
				"contact_id":   {Type: "string", Format: "uuid"},
				"action":       {Type: "string", Enum: []string{"signed", "reset"}},
				"ip_address":   {Type: "string"},
				"forwarded_ip": {Type: "string"},
				"real_ip":      {Type: "string"},
				"user_agent":   {Type: "string"},
				"headers": {
					Type:        "object",
					Description: "Request headers captured as-seen; absent headers are omitted",
					Properties: map[string]*openapi.Schema{
						"referer":         {Type: "string"},
						"origin":          {Type: "string"},
						"accept_language": {Type: "string"},
						"accept_encoding": {Type: "string"},
						"accept":          {Type: "string"},
						"host":            {Type: "string"},
						"connection":      {Type: "string"},
						"cache_control":   {Type: "string"},
					},
				},
				"request_info": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"method":   {Type: "string"},
						"url":      {Type: "string"},
						"protocol": {Type: "string"},
						"secure":   {Type: "boolean"},
					},
				},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"FootprintPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Footprint")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
