package repository_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fieldsign/fieldsign/pkg/repository"
)

var (
	errNotFound  = errors.New("record not found")
	errDuplicate = errors.New("record already exists")
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows maps to not found", sql.ErrNoRows, errNotFound},
		{"wrapped no rows maps to not found", fmt.Errorf("query: %w", sql.ErrNoRows), errNotFound},
		{"unique violation maps to duplicate", &pgconn.PgError{Code: "23505"}, errDuplicate},
		{"other pg error passes through", &pgconn.PgError{Code: "23503"}, nil},
		{"unrelated error passes through", errors.New("connection reset"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.MapError(tt.err, errNotFound, errDuplicate)

			if tt.want != nil {
				if !errors.Is(got, tt.want) {
					t.Errorf("MapError() = %v, want %v", got, tt.want)
				}
				return
			}

			if got != tt.err {
				t.Errorf("MapError() = %v, want original error %v", got, tt.err)
			}
		})
	}
}
