package resource

import (
	"os"
	"path/filepath"
	"strings"

	"grams-mcp-be/internal/pkg/logger"
)

// WidgetURI is the fixed identifier the widget document is served under.
const WidgetURI = "grams://widget"

const (
	cssPlaceholder = "<!-- CSS_PLACEHOLDER -->"
	jsPlaceholder  = "<!-- JS_PLACEHOLDER -->"
)

// fallbackHTML is served when the widget sub-documents cannot be read. The
// read must still succeed, so the failure is recovered locally.
const fallbackHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Grams Widget</title>
</head>
<body>
  <div style="padding: 20px; text-align: center;">
    <h2>👵 Grams Widget</h2>
    <p>Error loading widget. Check server logs.</p>
  </div>
</body>
</html>
`

// WidgetResource assembles the chat widget from three sub-documents (markup,
// styling, behavior) by placeholder substitution.
type WidgetResource struct {
	dir    string
	logger logger.ILogger
}

func NewWidgetResource(dir string, log logger.ILogger) *WidgetResource {
	return &WidgetResource{dir: dir, logger: log}
}

// HTML returns the bundled widget document, or the inline fallback when any
// sub-document is missing or unreadable.
func (w *WidgetResource) HTML() string {
	html, err := os.ReadFile(filepath.Join(w.dir, "index.html"))
	if err != nil {
		return w.fallback(err)
	}
	css, err := os.ReadFile(filepath.Join(w.dir, "styles.css"))
	if err != nil {
		return w.fallback(err)
	}
	js, err := os.ReadFile(filepath.Join(w.dir, "script.js"))
	if err != nil {
		return w.fallback(err)
	}

	bundled := strings.Replace(string(html), cssPlaceholder, "<style>"+string(css)+"</style>", 1)
	bundled = strings.Replace(bundled, jsPlaceholder, "<script>"+string(js)+"</script>", 1)
	return bundled
}

func (w *WidgetResource) fallback(err error) string {
	w.logger.Warn("widget_resource", "failed to read widget files, serving fallback", map[string]interface{}{
		"error": err.Error(),
		"dir":   w.dir,
	})
	return fallbackHTML
}
