package util

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"10MB", 10 * 1024 * 1024},
		{"512KB", 512 * 1024},
		{"2GB", 2 * 1024 * 1024 * 1024},
		{"1024", 1024},
		{"64B", 64},
		{"  10MB  ", 10 * 1024 * 1024},
		{"10mb", 10 * 1024 * 1024},
		{"1 KB", 1024},
		{"0", 0},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseSize(tc.input, 0)
			if err != nil {
				t.Fatalf("ParseSize(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseSize_Default(t *testing.T) {
	defaultVal := int64(5 * 1024 * 1024)
	got, err := ParseSize("", defaultVal)
	if err != nil || got != defaultVal {
		t.Errorf("expected default %d, got %d (err %v)", defaultVal, got, err)
	}
}

func TestParseSize_Invalid(t *testing.T) {
	for _, input := range []string{"invalid", "MB", "-1KB", "1.5MB", "99999999999GB"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseSize(input, 1); err == nil {
				t.Errorf("ParseSize(%q) should fail", input)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1 << 20, "1MB"},
		{64 << 10, "64KB"},
		{1500, "1500B"},
		{0, "0B"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatSize(tc.n); got != tc.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tc.n, got, tc.want)
			}
		})
	}
}
