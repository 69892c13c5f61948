package sharepoint

import (
	"errors"
	"testing"
)

func TestClassifyError_PathTooLong(t *testing.T) {
	body := `{"error":{"message":{"value":"The length of the URL for this request exceeds the configured maxUrlLength value."}}}`

	err := classifyError("download", "/sites/team/Documents/deep.docx", 400, body)
	if !errors.Is(err, ErrPathTooLong) {
		t.Errorf("expected ErrPathTooLong, got %v", err)
	}
}

func TestClassifyError_Other(t *testing.T) {
	err := classifyError("download", "/sites/team/Documents/a.docx", 500, "internal server error")

	if errors.Is(err, ErrPathTooLong) {
		t.Fatal("unexpected ErrPathTooLong classification")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if reqErr.StatusCode != 500 {
		t.Errorf("StatusCode = %d, want 500", reqErr.StatusCode)
	}
	if reqErr.Op != "download" {
		t.Errorf("Op = %q, want download", reqErr.Op)
	}
}

func TestClassifyError_EmptyBody(t *testing.T) {
	err := classifyError("list items", "Documents", 503, "")

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if reqErr.Message == "" {
		t.Error("expected a non-empty message")
	}
}
