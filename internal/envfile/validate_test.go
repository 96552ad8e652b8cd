package envfile

import (
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []Diagnostic
	}{
		{
			name:     "clean file",
			content:  "A=1\nB=2\n# comment\n\nC=3",
			expected: nil,
		},
		{
			name:    "line without equals",
			content: "not an assignment",
			expected: []Diagnostic{
				{1, MsgInvalidSyntax, SeverityError},
			},
		},
		{
			name:    "empty key",
			content: "=value",
			expected: []Diagnostic{
				{1, MsgEmptyKey, SeverityError},
			},
		},
		{
			name:    "empty key wins over invalid key",
			content: " =value",
			expected: []Diagnostic{
				{1, MsgEmptyKey, SeverityError},
			},
		},
		{
			name:    "invalid key starting with digit",
			content: "1BAD=x",
			expected: []Diagnostic{
				{1, MsgInvalidKey, SeverityError},
			},
		},
		{
			name:    "invalid key with hyphen",
			content: "BAD-KEY=x",
			expected: []Diagnostic{
				{1, MsgInvalidKey, SeverityError},
			},
		},
		{
			name:    "duplicate key flagged on second occurrence only",
			content: "A=1\nA=2",
			expected: []Diagnostic{
				{2, MsgDuplicateKey, SeverityError},
			},
		},
		{
			name:    "triplicate key flagged twice",
			content: "A=1\nA=2\nA=3",
			expected: []Diagnostic{
				{2, MsgDuplicateKey, SeverityError},
				{3, MsgDuplicateKey, SeverityError},
			},
		},
		{
			name:    "unquoted value with spaces",
			content: "KEY=two words",
			expected: []Diagnostic{
				{1, MsgUnquotedSpaces, SeverityWarning},
			},
		},
		{
			name:     "quoted value with spaces is fine",
			content:  `KEY="two words"`,
			expected: nil,
		},
		{
			name:     "export prefix accepted",
			content:  "export KEY=value",
			expected: nil,
		},
		{
			name:     "empty value is fine",
			content:  "KEY=",
			expected: nil,
		},
		{
			name:    "diagnostics ordered by line",
			content: "GOOD=1\nbad line\n2BAD=x\nGOOD=2",
			expected: []Diagnostic{
				{2, MsgInvalidSyntax, SeverityError},
				{3, MsgInvalidKey, SeverityError},
				{4, MsgDuplicateKey, SeverityError},
			},
		},
		{
			name:    "continuation line validated after backslash strip",
			content: "KEY=a\\\nloose line",
			expected: []Diagnostic{
				{2, MsgInvalidSyntax, SeverityError},
			},
		},
		{
			name:     "continuation assignment line itself passes",
			content:  "KEY=a\\\nB=2",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.content)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Validate(%q) = %v, want %v", tt.content, got, tt.expected)
			}
		})
	}
}

func TestValidate_NoSharedState(t *testing.T) {
	// The duplicate tracker must be scoped to one call.
	if diags := Validate("A=1"); len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if diags := Validate("A=1"); len(diags) != 0 {
		t.Errorf("second call flagged a duplicate from a previous call: %v", diags)
	}
}
