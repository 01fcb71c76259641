// Package templates renders the transactional email bodies.
package templates

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

var parsed = template.Must(template.New("mail").Funcs(template.FuncMap{}).ParseFS(files, "*.html"))

const (
	Verification = "verification.html"
	Receipt      = "receipt.html"
	Cancellation = "cancellation.html"
)

func Render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
