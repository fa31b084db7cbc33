package html

import (
	"strings"
	"testing"
)

func TestPage_EmbedsDSL(t *testing.T) {
	page, err := Page("demo", "op0=>operation: x = 1\n")
	if err != nil {
		t.Fatalf("Page() error: %v", err)
	}

	got := string(page)
	if !strings.Contains(got, "<title>demo</title>") {
		t.Errorf("title missing:\n%v", got)
	}
	if !strings.Contains(got, "flowchart.parse(") {
		t.Errorf("parse call missing:\n%v", got)
	}
	if !strings.Contains(got, "op0=\\u003e") && !strings.Contains(got, "op0=>") {
		t.Errorf("DSL not embedded:\n%v", got)
	}
}

func TestPage_EscapesScriptBreakout(t *testing.T) {
	page, err := Page("", "op0=>operation: </script><script>alert(1)\n")
	if err != nil {
		t.Fatalf("Page() error: %v", err)
	}
	if strings.Contains(string(page), "</script><script>alert(1)") {
		t.Error("DSL embedded unescaped")
	}
}
