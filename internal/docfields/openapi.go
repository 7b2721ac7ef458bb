package docfields

import "github.com/fieldsign/fieldsign/pkg/openapi"

type spec struct {
	Find         *openapi.Operation
	AssignSigner *openapi.Operation
	SetValue     *openapi.Operation
	UploadFile   *openapi.Operation
	DownloadFile *openapi.Operation
}

var Spec = spec{
	Find: &openapi.Operation{
		Summary:     "Find document field",
		Description: "Find a document field instance by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document field ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Field details", "DocumentField"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	AssignSigner: &openapi.Operation{
		Summary:     "Assign signer",
		Description: "Bind a signer contact to an unsigned field. Signed fields cannot be reassigned without a reset.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document field ID"),
		},
		RequestBody: openapi.RequestBodyJSON("AssignSignerCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Signer assigned", "DocumentField"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	SetValue: &openapi.Operation{
		Summary:     "Set field value",
		Description: "Set or clear a field's value before signing. Null clears the value.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document field ID"),
		},
		RequestBody: openapi.RequestBodyJSON("SetValueCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Value set", "DocumentField"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	UploadFile: &openapi.Operation{
		Summary:     "Upload signature asset",
		Description: "Store a signature image for a signature field and bind it as the field's file",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document field ID"),
		},
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {
					Schema: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"file": {Type: "string", Description: "Signature image to upload"},
						},
						Required: []string{"file"},
					},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Asset stored", "DocumentField"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
			413: {Description: "File too large"},
		},
	},
	DownloadFile: &openapi.Operation{
		Summary:     "Download signature asset",
		Description: "Retrieve the stored signature image bound to a field",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document field ID"),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Signature asset content"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"DocumentField": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                {Type: "string", Format: "uuid"},
				"document_id":       {Type: "string", Format: "uuid"},
				"template_field_id": {Type: "string", Format: "uuid", Description: "Origin definition; absent for ad hoc fields"},
				"position":          {Type: "integer", Description: "Authoring order; listing and batch signing follow it"},
				"kind":              {Type: "string", Enum: []string{"signature", "text", "checkbox", "date"}},
				"name":              {Type: "string"},
				"placeholder":       {Type: "string"},
				"geometry":          openapi.SchemaRef("FieldGeometry"),
				"required":          {Type: "boolean"},
				"metadata":          openapi.SchemaRef("FieldMetadata"),
				"contact_id":        {Type: "string", Format: "uuid", Description: "Assigned signer"},
				"value":             {Type: "string"},
				"file_key":          {Type: "string", Description: "Stored signature asset key"},
				"signed":            {Type: "boolean"},
				"signed_at":         {Type: "string", Format: "date-time"},
				"created_at":        {Type: "string", Format: "date-time"},
				"updated_at":        {Type: "string", Format: "date-time"},
			},
		},
		"DocumentFieldList": {
			Type:  "array",
			Items: openapi.SchemaRef("DocumentField"),
		},
		"AssignSignerCommand": {
			Type:     "object",
			Required: []string{"contact_id"},
			Properties: map[string]*openapi.Schema{
				"contact_id": {Type: "string", Format: "uuid"},
			},
		},
		"SetValueCommand": {
			Type:     "object",
			Required: []string{"value"},
			Properties: map[string]*openapi.Schema{
				"value": {Type: "string", Description: "Null clears the value"},
			},
		},
	}
}
