package views

import (
	"embed"
	"net/http"
	"strconv"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// NewEngine html engine over the embedded templates
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFunc("rate", func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	})
	return engine
}
