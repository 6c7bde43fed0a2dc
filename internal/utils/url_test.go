package utils

import "testing"

func TestAttachmentURL(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		gateway string
		want    string
	}{
		{"no gateway", "/uploads/a.png", "", "/uploads/a.png"},
		{"gateway", "/uploads/a.png", "https://cdn.example.com", "https://cdn.example.com/uploads/a.png"},
		{"gateway trailing slash", "/uploads/a.png", "https://cdn.example.com/", "https://cdn.example.com/uploads/a.png"},
		{"blank path", "  ", "https://cdn.example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttachmentURL(tt.path, tt.gateway); got != tt.want {
				t.Errorf("AttachmentURL(%q, %q) = %q, want %q", tt.path, tt.gateway, got, tt.want)
			}
		})
	}
}

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"photo.png", "photo.png"},
		{"../../etc/passwd", "passwd"},
		{"C:\\Users\\me\\pic.jpg", "pic.jpg"},
		{"weird name!.png", "weird_name_.png"},
		{"", "upload"},
		{"///", "upload"},
	}
	for _, tt := range tests {
		if got := SafeFileName(tt.input); got != tt.want {
			t.Errorf("SafeFileName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
