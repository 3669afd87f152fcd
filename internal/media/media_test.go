package media

import (
	"path/filepath"
	"testing"
)

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"jpeg lowercase", "photo.jpg", true},
		{"jpeg uppercase", "PHOTO.JPG", true},
		{"mixed case", "Clip.Mp4", true},
		{"nested path", filepath.Join("a", "b", "img.png"), true},
		{"canon raw", "IMG_0001.CR2", true},
		{"sony raw", "DSC00123.arw", true},
		{"hasselblad raw", "shot.3fr", true},
		{"heic", "IMG_2301.HEIC", true},
		{"video m2ts", "00001.m2ts", true},
		{"pro video", "A001_C001.braw", true},
		{"text file", "notes.txt", false},
		{"executable", "setup.exe", false},
		{"no extension", "README", false},
		{"trailing dot", "weird.", false},
		{"dotfile only", ".jpg", false},
		{"dotfile with media ext", ".hidden.png", true},
		{"extension-like directory name", filepath.Join("backup.jpg", "file.txt"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMediaFile(tt.path); got != tt.want {
				t.Errorf("IsMediaFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsMediaExt(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want bool
	}{
		{"dotted lowercase", ".mkv", true},
		{"dotted uppercase", ".MKV", true},
		{"unknown", ".doc", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMediaExt(tt.ext); got != tt.want {
				t.Errorf("IsMediaExt(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestExtensionCount(t *testing.T) {
	if got := ExtensionCount(); got < 100 {
		t.Errorf("ExtensionCount() = %d, expected the full classifier set", got)
	}
}
