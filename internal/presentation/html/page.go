// Package html wraps DSL text in a self-contained page that renders the
// diagram with flowchart.js in the browser.
package html

import (
	"bytes"
	"fmt"
	"html/template"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{.Title}}</title>
</head>
<body>
<div id="diagram"></div>
<script src="https://cdnjs.cloudflare.com/ajax/libs/raphael/2.3.0/raphael.min.js"></script>
<script src="https://cdnjs.cloudflare.com/ajax/libs/flowchart/1.18.0/flowchart.min.js"></script>
<script>
    var chart = flowchart.parse({{.DSL}});
    chart.drawSVG('diagram');
</script>
</body>
</html>
`))

type pageData struct {
	Title string
	DSL   string
}

// Page renders the DSL into a standalone HTML document. The text is passed
// through the template engine, which escapes it for the script context.
func Page(title, dsl string) ([]byte, error) {
	if title == "" {
		title = "flowchart"
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pageData{Title: title, DSL: dsl}); err != nil {
		return nil, fmt.Errorf("render html page: %w", err)
	}
	return buf.Bytes(), nil
}
