package main

import (
	"strings"
	"testing"
)

func TestParseManifest(t *testing.T) {
	input := `# layer element counts
400

72
10
`
	counts, err := parseManifest(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseManifest failed: %v", err)
	}

	want := []int{400, 72, 10}
	if len(counts) != len(want) {
		t.Fatalf("expected %d counts, got %d", len(want), len(counts))
	}
	for i, n := range want {
		if counts[i] != n {
			t.Errorf("count %d: expected %d, got %d", i, n, counts[i])
		}
	}
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errText string
	}{
		{"not a number", "12\nforty\n", "bad element count"},
		{"zero count", "0\n", "must be positive"},
		{"negative count", "-3\n", "must be positive"},
		{"empty", "# nothing here\n", "no tensors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseManifest(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("expected error containing %q, got %q", tt.errText, err.Error())
			}
		})
	}
}
