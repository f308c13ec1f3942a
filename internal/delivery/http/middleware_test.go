package http

import "testing"

func TestIsAllowedOrigin(t *testing.T) {
	allowed := []string{"http://localhost:3000", "chrome-extension://*"}

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"exact match", "http://localhost:3000", true},
		{"wildcard prefix match", "chrome-extension://abcdef", true},
		{"different port", "http://localhost:4000", false},
		{"empty origin", "", false},
		{"unlisted origin", "https://evil.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAllowedOrigin(tt.origin, allowed); got != tt.want {
				t.Errorf("isAllowedOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}
