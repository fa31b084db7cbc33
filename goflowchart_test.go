package goflowchart_test

import (
	"strings"
	"testing"

	"github.com/cdfmlr/goflowchart"
)

func TestFromCode_Defaults(t *testing.T) {
	// Inner and simplify default on: the snippet charts as its bare body
	// with the one-statement conditional collapsed.
	dsl, err := goflowchart.FromCode("a()\nif x == 1 {\n\tb()\n}")
	if err != nil {
		t.Fatalf("FromCode() error: %v", err)
	}

	for _, want := range []string{
		"sub0=>subroutine: a()\n",
		"cond1=>operation: b() if x == 1\n",
		"sub0->cond1\n",
	} {
		if !strings.Contains(dsl, want) {
			t.Errorf("missing %q in:\n%v", want, dsl)
		}
	}
}

func TestFromCode_FieldAndFrame(t *testing.T) {
	src := `package main

func fizzbuzz(n int) {
	for i := 1; i <= n; i++ {
		report(i)
	}
}`
	dsl, err := goflowchart.FromCode(src,
		goflowchart.WithField("fizzbuzz"),
		goflowchart.WithInner(false),
		goflowchart.WithSimplify(false),
	)
	if err != nil {
		t.Fatalf("FromCode() error: %v", err)
	}

	for _, want := range []string{
		"st0=>start: start fizzbuzz\n",
		"io1=>inputoutput: input: n\n",
		"cond2=>condition: for i := 1; i <= n; i++\n",
		"(left)->cond2\n",
	} {
		if !strings.Contains(dsl, want) {
			t.Errorf("missing %q in:\n%v", want, dsl)
		}
	}
}

func TestFromCode_ParseError(t *testing.T) {
	if _, err := goflowchart.FromCode("for if func )"); err == nil {
		t.Error("expected error for unparsable source")
	}
}

func TestChart_ExposesGraph(t *testing.T) {
	fc, err := goflowchart.Chart("work()")
	if err != nil {
		t.Fatalf("Chart() error: %v", err)
	}
	if fc.Root() == nil {
		t.Fatal("chart has no root")
	}
	if got := fc.Render(); !strings.Contains(got, "sub0=>subroutine: work()") {
		t.Errorf("unexpected render:\n%v", got)
	}
}
