package renderer

import (
	"bytes"
	"html"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// converter renders GitHub flavoured markdown, tables included.
var converter = goldmark.New(goldmark.WithExtensions(extension.GFM))

const pageHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>`

const pageStyle = `</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border-bottom: 1px solid #999; padding: 4px 8px; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
`

const pageFooter = `</body>
</html>
`

// HTML converts a markdown document into a standalone printable HTML page.
func HTML(title, markdown string) (string, error) {
	var body bytes.Buffer
	if err := converter.Convert([]byte(markdown), &body); err != nil {
		return "", errors.Wrap(err, "convert markdown")
	}
	var page bytes.Buffer
	page.WriteString(pageHeader)
	page.WriteString(html.EscapeString(title))
	page.WriteString(pageStyle)
	page.Write(body.Bytes())
	page.WriteString(pageFooter)
	return page.String(), nil
}
