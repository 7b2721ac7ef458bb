package documents

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		status  Status
		wantErr bool
	}{
		{StatusDraft, false},
		{StatusSent, false},
		{StatusCompleted, false},
		{Status("archived"), true},
		{Status(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			err := tt.status.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrDuplicate, http.StatusConflict},
		{ErrNotDraft, http.StatusConflict},
		{ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{ErrInvalidFile, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
