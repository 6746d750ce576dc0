package service

import (
	"errors"
	"testing"

	"novel-annotator/internal/editor"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "field and message",
			err: &ValidationError{
				Field:   "message",
				Message: "cannot be empty",
			},
			want: "validation error on field message: cannot be empty",
		},
		{
			name: "empty field",
			err: &ValidationError{
				Field:   "",
				Message: "invalid",
			},
			want: "validation error on field : invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		msg     string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "nil error",
			err:     nil,
			msg:     "context",
			wantNil: true,
		},
		{
			name:    "wrapped error",
			err:     errors.New("original error"),
			msg:     "context",
			wantNil: false,
			wantMsg: "context: original error",
		},
		{
			name:    "empty message",
			err:     errors.New("original error"),
			msg:     "",
			wantNil: false,
			wantMsg: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError(tt.err, tt.msg)
			if tt.wantNil {
				if got != nil {
					t.Errorf("WrapError() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Errorf("WrapError() = nil, want error")
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("WrapError() = %v, want %v", got.Error(), tt.wantMsg)
			}
			// Verify error wrapping
			if !errors.Is(got, tt.err) {
				t.Errorf("WrapError() should wrap original error")
			}
		})
	}
}

func TestValidationError_IsInvalidInput(t *testing.T) {
	err := WrapError(&ValidationError{Field: "title", Message: "cannot be empty"}, "create novel")
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("wrapped ValidationError should match ErrInvalidInput")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "title" {
		t.Errorf("errors.As() field = %v", vErr)
	}
}

func TestPersistError(t *testing.T) {
	cause := errors.New("disk full")
	err := error(&PersistError{Op: "truncate", Result: MutationResult{Novel: NovelView{ID: "n1"}}, Err: cause})

	if !errors.Is(err, ErrPersistence) {
		t.Error("PersistError should match ErrPersistence")
	}
	if !errors.Is(err, cause) {
		t.Error("PersistError should match its cause")
	}
	var pErr *PersistError
	if !errors.As(err, &pErr) || pErr.Result.Novel.ID != "n1" {
		t.Error("PersistError should carry the computed result")
	}
}

func TestEditorError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantIs    error
		wantField string
	}{
		{
			name:   "missing chapter is not found",
			err:    &editor.OpError{Op: "delete chapter", Err: editor.ErrChapterNotFound},
			wantIs: ErrNotFound,
		},
		{
			name:      "rejected selection is invalid input",
			err:       &editor.OpError{Op: "merge range", Err: editor.ErrNotContiguous},
			wantIs:    ErrInvalidInput,
			wantField: "chapterIds",
		},
		{
			name:   "other errors pass through",
			err:    errors.New("boom"),
			wantIs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := editorError(tt.err, "chapterIds")
			if tt.wantIs == nil {
				if got != tt.err {
					t.Errorf("editorError() = %v, want unchanged", got)
				}
				return
			}
			if !errors.Is(got, tt.wantIs) {
				t.Errorf("editorError() = %v, want match for %v", got, tt.wantIs)
			}
			var vErr *ValidationError
			if tt.wantField != "" && (!errors.As(got, &vErr) || vErr.Field != tt.wantField) {
				t.Errorf("editorError() field = %v, want %s", vErr, tt.wantField)
			}
		})
	}

	if editorError(nil, "x") != nil {
		t.Error("editorError(nil) should be nil")
	}
}
