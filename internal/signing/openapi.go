package signing

import "github.com/fieldsign/fieldsign/pkg/openapi"

type spec struct {
	BatchSign  *openapi.Operation
	Complete   *openapi.Operation
	ResetField *openapi.Operation
}

var Spec = spec{
	BatchSign: &openapi.Operation{
		Summary: "Batch sign",
		Description: "Sign every unsigned field on the document assigned to the contact that has its input present. " +
			"Runs atomically with exactly one audit footprint; a call that finds nothing to sign succeeds with a zero count and records nothing. " +
			"Safe to retry.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		RequestBody: openapi.RequestBodyJSON("BatchSignCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Batch sign outcome", "BatchResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Complete: &openapi.Operation{
		Summary:     "Check document completion",
		Description: "Report whether every required field on the document is signed. Derived at read time.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Completion state", "CompletionResult"),
		},
	},
	ResetField: &openapi.Operation{
		Summary:     "Reset signed field",
		Description: "Return a signed field to the assigned state. The reset is itself recorded in the audit trail.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document field ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Field reset"},
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"BatchSignCommand": {
			Type:     "object",
			Required: []string{"contact_id"},
			Properties: map[string]*openapi.Schema{
				"contact_id": {Type: "string", Format: "uuid", Description: "Signer contact identity"},
			},
		},
		"BatchResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success":             {Type: "boolean"},
				"signed_fields_count": {Type: "integer", Description: "Fields transitioned by this call"},
			},
		},
		"CompletionResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"document_id": {Type: "string", Format: "uuid"},
				"complete":    {Type: "boolean"},
			},
		},
	}
}
