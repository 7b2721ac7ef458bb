package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/fields"
	"github.com/fieldsign/fieldsign/pkg/layout"
)

func init() {
	registerSeeder(&TemplateSeeder{})
}

// TemplateSeedData represents the JSON structure for template seed files.
type TemplateSeedData struct {
	Templates []TemplateSeed `json:"templates"`
}

// TemplateSeed describes a single template and its field placements.
type TemplateSeed struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Fields      []fields.Spec `json:"fields"`
}

// TemplateSeeder implements Seeder for field placement templates.
// It loads seed data from an embedded file or an external file path.
type TemplateSeeder struct {
	file string
}

// Name returns "templates" as the seeder identifier.
func (s *TemplateSeeder) Name() string {
	return "templates"
}

// Description returns a human-readable description of this seeder.
func (s *TemplateSeeder) Description() string {
	return "Seeds field placement templates and their field definitions"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *TemplateSeeder) SetFile(path string) {
	s.file = path
}

// Seed loads template data and saves templates and their fields to the
// database. Templates upsert by name and fields are replaced wholesale, so
// repeated runs converge on the seed file's contents.
func (s *TemplateSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	for _, t := range data.Templates {
		specs, err := stageFields(t.Fields)
		if err != nil {
			return fmt.Errorf("validate fields for template %s: %w", t.Name, err)
		}

		templateID, err := s.saveTemplate(ctx, tx, t)
		if err != nil {
			return fmt.Errorf("save template %s: %w", t.Name, err)
		}

		if err := s.replaceFields(ctx, tx, templateID, specs); err != nil {
			return fmt.Errorf("save fields for template %s: %w", t.Name, err)
		}
	}

	return nil
}

// stageFields runs every seed field through a layout session so seed files
// get the same placement validation as interactive clients.
func stageFields(specs []fields.Spec) ([]fields.Spec, error) {
	session := layout.NewSession(layout.ModeTemplate)
	for _, spec := range specs {
		if _, err := session.AddField(spec); err != nil {
			return nil, fmt.Errorf("field %s: %w", spec.Name, err)
		}
	}
	return session.Specs(), nil
}

func (s *TemplateSeeder) loadSeedData() (*TemplateSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/starter_templates.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data TemplateSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	return &data, nil
}

func (s *TemplateSeeder) saveTemplate(ctx context.Context, tx *sql.Tx, t TemplateSeed) (uuid.UUID, error) {
	const query = `
		INSERT INTO templates (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE SET
			description = EXCLUDED.description,
			updated_at = NOW()
		RETURNING id`

	var returnedID uuid.UUID
	err := tx.QueryRowContext(ctx, query, uuid.New(), t.Name, t.Description).Scan(&returnedID)
	if err != nil {
		return uuid.Nil, err
	}

	return returnedID, nil
}

func (s *TemplateSeeder) replaceFields(ctx context.Context, tx *sql.Tx, templateID uuid.UUID, specs []fields.Spec) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM template_fields WHERE template_id = $1`, templateID); err != nil {
		return err
	}

	const query = `
		INSERT INTO template_fields (id, template_id, position, kind, name, placeholder, page,
			x_position, y_position, width, height, required, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	for i, spec := range specs {
		_, err := tx.ExecContext(ctx, query,
			uuid.New(), templateID, i, spec.Kind, spec.Name, spec.Placeholder,
			spec.Geometry.Page, spec.Geometry.X, spec.Geometry.Y,
			spec.Geometry.Width, spec.Geometry.Height, spec.Required, spec.Metadata,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
