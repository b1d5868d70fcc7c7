package util

import "testing"

func TestFileExtension(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "photo.jpg", "jpg"},
		{"multiple dots", "archive.tar.gz", "gz"},
		{"no extension", "README", ""},
		{"trailing dot", "weird.", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExtension(tt.in); got != tt.want {
				t.Errorf("FileExtension(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFileNameWithoutExtension(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "photo.jpg", "photo"},
		{"with path", "uploads/photo.jpg", "photo"},
		{"windows path", `uploads\photo.jpg`, "photo"},
		{"no extension", "README", "README"},
		{"hidden file", ".env", ".env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileNameWithoutExtension(tt.in); got != tt.want {
				t.Errorf("FileNameWithoutExtension(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
