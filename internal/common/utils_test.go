package common

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateUUID(t *testing.T) {
	uuid1 := GenerateUUID()
	uuid2 := GenerateUUID()

	if uuid1 == "" || uuid2 == "" {
		t.Error("Expected non-empty UUID")
	}

	if uuid1 == uuid2 {
		t.Error("Expected different UUIDs")
	}

	if _, err := uuid.Parse(uuid1); err != nil {
		t.Errorf("Generated UUID is not valid: %v", err)
	}
}

func TestCompressedName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report_compressed.pdf"},
		{"/tmp/uploads/scan.PDF", "scan_compressed.PDF"},
		{"noext", "noext_compressed.pdf"},
		{"a.b.pdf", "a.b_compressed.pdf"},
	}

	for _, tt := range tests {
		if got := CompressedName(tt.in); got != tt.want {
			t.Errorf("CompressedName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{int64(3) * 1024 * 1024 * 1024, "3.0 GB"},
	}

	for _, tt := range tests {
		if got := FormatFileSize(tt.size); got != tt.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
