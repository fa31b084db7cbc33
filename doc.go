/*
Package goflowchart turns Go source code into flowchart.js DSL text.

It parses a file or a bare statement snippet, lowers each construct to a
typed flowchart box (operation, condition, input/output, subroutine) and
renders the resulting graph as the two-block DSL flowchart.js consumes:
node definitions, a blank line, then connections.

# Usage

The one-call surface is FromCode:

	package main

	import (
		"fmt"
		"log"

		"github.com/cdfmlr/goflowchart"
	)

	func main() {
		dsl, err := goflowchart.FromCode(`
	func fizzbuzz(n int) {
		for i := 1; i <= n; i++ {
			report(i)
		}
	}`, goflowchart.WithField("fizzbuzz"), goflowchart.WithInner(false))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(dsl)
	}

Paste the output into any flowchart.js host, for example
http://flowchart.js.org, to see the diagram.

# Options

  - WithField selects one function ("Foo", "Bar.Method", "Foo.closure").
  - WithInner charts the bare body instead of the framed function.
  - WithSimplify collapses one-statement conditionals and loops.
  - WithCondsAlign emits layout hints for stacked conditionals.

Chart returns the graph itself for callers that want to adjust nodes, for
example to set edge directions, before rendering.

Beyond the library, cmd/goflowchart ships the same pipeline as a CLI, an
HTTP service with optional Redis caching, and an MCP stdio server.
*/
package goflowchart
