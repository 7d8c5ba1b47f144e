package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const redocPage = `<!DOCTYPE html>
<html>
  <head>
    <title>Game Server API Reference</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>body { margin: 0; padding: 0; }</style>
  </head>
  <body>
    <redoc spec-url="/docs/doc.json"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
  </body>
</html>`

// Redoc serves the alternate API documentation UI on top of the same
// swagger document that backs /docs.
func Redoc(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(redocPage))
}
