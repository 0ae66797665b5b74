package pdfvalidation

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidatePDFBytesRejectsMissingHeader(t *testing.T) {
	result, err := ValidatePDFBytes([]byte("this is not a pdf"), DownloadLimits)
	if err != nil {
		t.Fatalf("ValidatePDFBytes() error = %v", err)
	}

	if result.Valid {
		t.Error("expected validation to fail for non-PDF content")
	}
	if !strings.Contains(result.Error, "missing PDF header") {
		t.Errorf("Error = %q, want mention of missing PDF header", result.Error)
	}
}

func TestValidatePDFBytesRejectsOversizedFile(t *testing.T) {
	limits := PDFLimits{MaxFileSizeMB: 1, MaxPages: 10, DocumentTypeName: "test"}
	content := bytes.Repeat([]byte("a"), 2*1024*1024)

	result, err := ValidatePDFBytes(content, limits)
	if err != nil {
		t.Fatalf("ValidatePDFBytes() error = %v", err)
	}

	if result.Valid {
		t.Error("expected validation to fail for oversized content")
	}
	if !strings.Contains(result.Error, "exceeds maximum allowed size") {
		t.Errorf("Error = %q, want size limit message", result.Error)
	}
}

func TestValidatePDFBytesSkipsLeadingJunk(t *testing.T) {
	// Content with junk before the header still fails page parsing, but the
	// header itself must be recognized.
	content := append([]byte("junkjunk"), []byte("%PDF-1.4 truncated")...)

	result, err := ValidatePDFBytes(content, DownloadLimits)
	if err != nil {
		t.Fatalf("ValidatePDFBytes() error = %v", err)
	}

	if strings.Contains(result.Error, "missing PDF header") {
		t.Errorf("header should be found past leading junk, got %q", result.Error)
	}
}
