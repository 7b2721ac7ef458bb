package templates

import "github.com/fieldsign/fieldsign/pkg/openapi"

type spec struct {
	List          *openapi.Operation
	Find          *openapi.Operation
	Create        *openapi.Operation
	Update        *openapi.Operation
	Delete        *openapi.Operation
	ListFields    *openapi.Operation
	CreateField   *openapi.Operation
	ReplaceFields *openapi.Operation
	UpdateField   *openapi.Operation
	DeleteField   *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List templates",
		Description: "List templates with pagination and optional filters",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
			openapi.QueryParam("search", "string", "Search in name and description", false),
			openapi.QueryParam("name", "string", "Filter by name (contains)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Templates list", "TemplatePageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find template",
		Description: "Find template by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Template ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Template details", "Template"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create template",
		Description: "Create a new document template",
		RequestBody: openapi.RequestBodyJSON("CreateTemplateCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Template created", "Template"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update template",
		Description: "Update template name and description",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Template ID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateTemplateCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Template updated", "Template"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete template",
		Description: "Delete template and its field definitions. Fields already snapshotted onto documents are unaffected.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Template ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Template deleted"},
		},
	},
	ListFields: &openapi.Operation{
		Summary:     "List template fields",
		Description: "List field definitions for a template in creation order",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Template ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Field definitions", "TemplateFieldList"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	CreateField: &openapi.Operation{
		Summary:     "Create template field",
		Description: "Add a field definition to a template",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Template ID"),
		},
		RequestBody: openapi.RequestBodyJSON("FieldSpec", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Field created", "TemplateField"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ReplaceFields: &openapi.Operation{
		Summary:     "Replace template fields",
		Description: "Replace all field definitions on a template in one transaction, e.g. committing an authoring session",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Template ID"),
		},
		RequestBody: openapi.RequestBodyJSON("FieldSpecList", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Field definitions replaced", "TemplateFieldList"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	UpdateField: &openapi.Operation{
		Summary:     "Update template field",
		Description: "Patch a field definition; omitted attributes are unchanged",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("fieldId", "Field definition ID"),
		},
		RequestBody: openapi.RequestBodyJSON("FieldPatch", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Field updated", "TemplateField"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	DeleteField: &openapi.Operation{
		Summary:     "Delete template field",
		Description: "Delete a field definition without touching document snapshots",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("fieldId", "Field definition ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Field deleted"},
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Template": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string"},
				"description": {Type: "string"},
				"created_at":  {Type: "string", Format: "date-time"},
				"updated_at":  {Type: "string", Format: "date-time"},
			},
		},
		"CreateTemplateCommand": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Schema{
				"name":        {Type: "string"},
				"description": {Type: "string"},
			},
		},
		"UpdateTemplateCommand": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Schema{
				"name":        {Type: "string"},
				"description": {Type: "string"},
			},
		},
		"FieldGeometry": {
			Type:        "object",
			Description: "Normalized page placement; position and size are fractions of the page dimensions",
			Required:    []string{"page", "x_position", "y_position", "width", "height"},
			Properties: map[string]*openapi.Schema{
				"page":       {Type: "integer", Description: "1-based page number"},
				"x_position": {Type: "number"},
				"y_position": {Type: "number"},
				"width":      {Type: "number"},
				"height":     {Type: "number"},
			},
		},
		"FieldMetadata": {
			Type:        "object",
			Description: "Kind-specific field options",
			Properties: map[string]*openapi.Schema{
				"date_format":   {Type: "string", Description: "Date fields only"},
				"max_length":    {Type: "integer", Description: "Text fields only"},
				"checked_value": {Type: "string", Description: "Checkbox fields only"},
				"extra":         {Type: "object", Description: "Open scalar metadata"},
			},
		},
		"FieldSpec": {
			Type:     "object",
			Required: []string{"kind", "name", "geometry"},
			Properties: map[string]*openapi.Schema{
				"kind":        {Type: "string", Enum: []string{"signature", "text", "checkbox", "date"}},
				"name":        {Type: "string"},
				"placeholder": {Type: "string"},
				"geometry":    openapi.SchemaRef("FieldGeometry"),
				"required":    {Type: "boolean"},
				"metadata":    openapi.SchemaRef("FieldMetadata"),
			},
		},
		"FieldSpecList": {
			Type:  "array",
			Items: openapi.SchemaRef("FieldSpec"),
		},
		"FieldPatch": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":        {Type: "string"},
				"placeholder": {Type: "string"},
				"geometry":    openapi.SchemaRef("FieldGeometry"),
				"required":    {Type: "boolean"},
				"metadata":    openapi.SchemaRef("FieldMetadata"),
			},
		},
		"TemplateField": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"template_id": {Type: "string", Format: "uuid"},
				"position":    {Type: "integer"},
				"kind":        {Type: "string", Enum: []string{"signature", "text", "checkbox", "date"}},
				"name":        {Type: "string"},
				"placeholder": {Type: "string"},
				"geometry":    openapi.SchemaRef("FieldGeometry"),
				"required":    {Type: "boolean"},
				"metadata":    openapi.SchemaRef("FieldMetadata"),
				"created_at":  {Type: "string", Format: "date-time"},
				"updated_at":  {Type: "string", Format: "date-time"},
			},
		},
		"TemplateFieldList": {
			Type:  "array",
			Items: openapi.SchemaRef("TemplateField"),
		},
		"TemplatePageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Template")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
