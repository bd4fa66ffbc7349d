package template

import "testing"

func TestExtractValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "bareword", input: "bareword", want: "bareword", wantOK: true},
		{name: "double quoted", input: `"hello world"`, want: "hello world", wantOK: true},
		{name: "single quoted", input: `'hello'`, want: "hello", wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "whitespace only", input: "   ", wantOK: false},
		{name: "empty quotes", input: `""`, wantOK: false},
		{name: "run ends at quote", input: `a"b`, want: "a", wantOK: true},
		{name: "leading quote skipped", input: `"value" trailing`, want: "value", wantOK: true},
		{name: "spaces inside run", input: "hello world", want: "hello world", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractValue(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ExtractValue(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
