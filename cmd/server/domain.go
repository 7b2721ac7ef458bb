package main

import (
	"github.com/fieldsign/fieldsign/internal/config"
	"github.com/fieldsign/fieldsign/internal/docfields"
	"github.com/fieldsign/fieldsign/internal/documents"
	"github.com/fieldsign/fieldsign/internal/footprints"
	"github.com/fieldsign/fieldsign/internal/infrastructure"
	"github.com/fieldsign/fieldsign/internal/signing"
	"github.com/fieldsign/fieldsign/internal/templates"
)

// Domain holds the assembled domain systems in dependency order.
type Domain struct {
	Templates  templates.System
	DocFields  docfields.System
	Footprints footprints.System
	Signing    signing.System
	Documents  documents.System
}

// NewDomain wires the domain systems against shared infrastructure.
func NewDomain(infra *infrastructure.Infrastructure, cfg *config.Config) *Domain {
	db := infra.Database.Connection()

	templateSys := templates.New(db, infra.Logger, cfg.Pagination)
	fieldSys := docfields.New(db, infra.Storage, infra.Logger)
	footprintSys := footprints.New(db, infra.Logger, cfg.Pagination)
	signingSys := signing.New(db, footprintSys, infra.Logger)
	documentSys := documents.New(
		db,
		infra.Storage,
		templateSys,
		fieldSys,
		signingSys,
		infra.Logger,
		cfg.Pagination,
	)

	return &Domain{
		Templates:  templateSys,
		DocFields:  fieldSys,
		Footprints: footprintSys,
		Signing:    signingSys,
		Documents:  documentSys,
	}
}
