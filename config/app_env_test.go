package config

import "testing"

func TestGetValueFromEnvironmentVariable(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "value")

	if got := GetValueFromEnvironmentVariable("SOME_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("expected set value, got %q", got)
	}

	if got := GetValueFromEnvironmentVariable("UNSET_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGetAppEnv_NormalizesValue(t *testing.T) {
	t.Setenv(AppEnvKey, "  Production ")

	if got := GetAppEnv(); got != "production" {
		t.Fatalf("expected lowercased trimmed env, got %q", got)
	}
}

func TestSanitizeEnv(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"  padded  ", "padded"},
		{`"double-quoted"`, "double-quoted"},
		{"'single-quoted'", "single-quoted"},
		{`"`, `"`},
		{"", ""},
	}

	for _, tt := range tests {
		if got := sanitizeEnv(tt.in); got != tt.want {
			t.Fatalf("sanitizeEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
