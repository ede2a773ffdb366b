package markdown

import (
	"bytes"
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/yuin/goldmark/util"
)

// languageAliases maps fence info strings to the canonical chroma lexer name.
// Anything not listed here is passed to chroma as-is; chroma keeps its own
// alias table on top of this one.
var languageAliases = map[string]string{
	"rb":         "ruby",
	"rs":         "rust",
	"py":         "python",
	"sh":         "bash",
	"shell":      "bash",
	"zsh":        "bash",
	"yml":        "yaml",
	"c++":        "cpp",
	"golang":     "go",
	"js":         "javascript",
	"ts":         "typescript",
	"md":         "markdown",
	"dockerfile": "docker",
}

func normalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if canonical, ok := languageAliases[language]; ok {
		return canonical
	}
	return language
}

// highlighter renders fenced code through chroma, degrading to an escaped
// <pre><code> block when the language is unknown or tokenizing fails.
type highlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

const defaultCodeStyle = "github"

func newHighlighter(styleName string) *highlighter {
	if styleName == "" {
		styleName = defaultCodeStyle
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &highlighter{
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
		style:     style,
	}
}

func (h *highlighter) writeCodeBlock(w util.BufWriter, language, code string) error {
	if language != "" {
		if h.writeHighlighted(w, normalizeLanguage(language), code) {
			return nil
		}
	}
	return h.writePlain(w, code)
}

func (h *highlighter) writeHighlighted(w util.BufWriter, language, code string) bool {
	lexer := lexers.Get(language)
	if lexer == nil {
		return false
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return false
	}
	// Format into a scratch buffer first so a mid-stream failure can still
	// fall back to the plain block without emitting partial markup.
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return false
	}
	_, err = w.Write(buf.Bytes())
	return err == nil
}

// writePlain escapes &, <, >, " and ' so literal markup inside the block
// survives untouched.
func (h *highlighter) writePlain(w util.BufWriter, code string) error {
	if _, err := w.WriteString("<pre><code>"); err != nil {
		return err
	}
	if _, err := w.WriteString(html.EscapeString(code)); err != nil {
		return err
	}
	_, err := w.WriteString("</code></pre>\n")
	return err
}
