package util

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "photo.png", expected: "photo.png"},
		{name: "spaces", input: "my photo (1).png", expected: "my_photo__1_.png"},
		{name: "unix path", input: "../../etc/passwd", expected: "passwd"},
		{name: "windows path", input: `C:\Users\me\cv.pdf`, expected: "cv.pdf"},
		{name: "dots only", input: "..", expected: "file"},
		{name: "empty", input: "", expected: "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SanitizeFileName(tt.input); got != tt.expected {
				t.Fatalf("SanitizeFileName(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUploadObjectName(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1_700_000_000_123)

	got := UploadObjectName("file", "my cat.jpg", now, 42)
	if want := "file-1700000000123-42-my_cat.jpg"; got != want {
		t.Fatalf("UploadObjectName() = %s, want %s", got, want)
	}
}
