package ops

import (
	"testing"

	"github.com/envtools/envctl/internal/scan"
)

func TestScan_CrossReference(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "app.ts", "const url = process.env.DATABASE_URL;\nconst secret = process.env.SECRET;\n")
	env := writeFixture(t, dir, ".env", "DATABASE_URL=x\nUNUSED_KEY=y\n")

	result, err := Scan(scan.Options{Root: dir, Extensions: []string{".ts"}}, env)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(result.Missing) != 1 || result.Missing[0] != "SECRET" {
		t.Errorf("Missing = %v, want [SECRET]", result.Missing)
	}
	if len(result.Unused) != 1 || result.Unused[0].Key != "UNUSED_KEY" {
		t.Fatalf("Unused = %v, want [UNUSED_KEY]", result.Unused)
	}
	if result.Unused[0].Line != 2 {
		t.Errorf("Unused[0].Line = %d, want 2", result.Unused[0].Line)
	}
}

func TestScan_NoEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "app.ts", "process.env.API_KEY;\n")

	result, err := Scan(scan.Options{Root: dir, Extensions: []string{".ts"}}, "")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(result.Missing) != 0 || len(result.Unused) != 0 {
		t.Errorf("cross-reference populated without an env file: %+v", result)
	}
	if got := result.Scan.Keys(); len(got) != 1 || got[0] != "API_KEY" {
		t.Errorf("Keys() = %v, want [API_KEY]", got)
	}
}
