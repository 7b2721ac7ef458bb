package documents

import "github.com/fieldsign/fieldsign/pkg/openapi"

type spec struct {
	List         *openapi.Operation
	Find         *openapi.Operation
	Search       *openapi.Operation
	Upload       *openapi.Operation
	Update       *openapi.Operation
	Delete       *openapi.Operation
	Download     *openapi.Operation
	Send         *openapi.Operation
	ListFields   *openapi.Operation
	CreateFields *openapi.Operation
	RemoveFields *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List documents",
		Description: "List documents with pagination and optional filters",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
			openapi.QueryParam("search", "string", "Search in name and filename", false),
			openapi.QueryParam("name", "string", "Filter by name (contains)", false),
			openapi.QueryParam("status", "string", "Filter by status", false),
			openapi.QueryParam("template_id", "string", "Filter by origin template", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Documents list", "DocumentPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find document",
		Description: "Find document by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document details", "Document"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Search: &openapi.Operation{
		Summary:     "Search documents",
		Description: "Search documents with pagination in request body",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("name", "string", "Filter by name (contains)", false),
			openapi.QueryParam("status", "string", "Filter by status", false),
		},
		RequestBody: openapi.RequestBodyJSON("PageRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Search results", "DocumentPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Upload: &openapi.Operation{
		Summary: "Upload document",
		Description: "Upload a document file with optional display name and origin template. " +
			"PDFs have page count extracted automatically. When template_id is set, the template's " +
			"field definitions are snapshotted onto the document.",
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {
					Schema: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"file":        {Type: "string", Description: "Document file to upload"},
							"name":        {Type: "string", Description: "Optional display name (defaults to filename)"},
							"template_id": {Type: "string", Format: "uuid", Description: "Template to instantiate fields from"},
						},
						Required: []string{"file"},
					},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Document uploaded", "Document"),
			400: openapi.ResponseRef("BadRequest"),
			413: {Description: "File too large"},
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update document",
		Description: "Update document display name",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateDocumentCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document updated", "Document"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete document",
		Description: "Delete document, its fields and footprints, and its stored file",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Document deleted"},
		},
	},
	Download: &openapi.Operation{
		Summary:     "Download document file",
		Description: "Retrieve the stored document file",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Document file content"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Send: &openapi.Operation{
		Summary:     "Send document",
		Description: "Move a draft document to sent once its field layout is final",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document sent", "Document"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	ListFields: &openapi.Operation{
		Summary:     "List document fields",
		Description: "List a document's field instances in creation order",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document fields", "DocumentFieldList"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	CreateFields: &openapi.Operation{
		Summary:     "Create ad hoc fields",
		Description: "Bulk-create fields directly on a draft document without a template origin; all-or-nothing",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		RequestBody: openapi.RequestBodyJSON("FieldSpecList", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Fields created", "DocumentFieldList"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	RemoveFields: &openapi.Operation{
		Summary:     "Remove all document fields",
		Description: "Clear a draft document's field layout before sending. Fails once the document has been sent.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Fields removed"},
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Document": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"name":         {Type: "string", Description: "Display name"},
				"filename":     {Type: "string", Description: "Original filename"},
				"content_type": {Type: "string", Description: "MIME type"},
				"size_bytes":   {Type: "integer", Format: "int64", Description: "File size in bytes"},
				"page_count":   {Type: "integer", Description: "Page count (PDFs only)"},
				"storage_key":  {Type: "string", Description: "Storage location key"},
				"template_id":  {Type: "string", Format: "uuid", Description: "Origin template; absent for ad hoc documents"},
				"status":       {Type: "string", Enum: []string{"draft", "sent", "completed"}},
				"created_at":   {Type: "string", Format: "date-time"},
				"updated_at":   {Type: "string", Format: "date-time"},
			},
		},
		"UpdateDocumentCommand": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Schema{
				"name": {Type: "string", Description: "New display name"},
			},
		},
		"DocumentPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Document")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
