// file: internals/views/views.go
package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"

	helper "biblioteca_backend/internals/helpers"
)

//go:embed templates
var templateFS embed.FS

// Engine monta o renderer de views embutidas. Embutir os templates no
// binário mantém o deploy em um artefato só e deixa os testes de rota
// renderizarem as páginas reais.
func Engine() *html.Engine {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("brdate", helper.FormatDateBR)
	engine.AddFunc("brdatep", helper.FormatDateBRPtr)
	return engine
}
