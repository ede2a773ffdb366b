package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// underlineNode is an inline node for __text__ runs.
type underlineNode struct {
	ast.BaseInline
}

var kindUnderline = ast.NewNodeKind("Underline")

func (n *underlineNode) Kind() ast.NodeKind {
	return kindUnderline
}

func (n *underlineNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type underlineDelimiterProcessor struct{}

func (p *underlineDelimiterProcessor) IsDelimiter(b byte) bool {
	return b == '_'
}

func (p *underlineDelimiterProcessor) CanOpenCloser(opener, closer *parser.Delimiter) bool {
	return opener.Char == closer.Char
}

func (p *underlineDelimiterProcessor) OnMatch(consumes int) ast.Node {
	return &underlineNode{}
}

var defaultUnderlineDelimiterProcessor = &underlineDelimiterProcessor{}

type underlineParser struct{}

var defaultUnderlineParser = &underlineParser{}

func (s *underlineParser) Trigger() []byte {
	return []byte{'_'}
}

func (s *underlineParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	// Single underscores stay with the default emphasis parser.
	line, segment := block.PeekLine()
	if len(line) < 2 || line[1] != '_' {
		return nil
	}
	before := block.PrecendingCharacter()
	node := parser.ScanDelimiter(line, before, 2, defaultUnderlineDelimiterProcessor)
	if node == nil {
		return nil
	}
	node.Segment = segment.WithStop(segment.Start + node.OriginalLength)
	block.Advance(node.OriginalLength)
	pc.PushDelimiter(node)
	return node
}

type underlineHTMLRenderer struct{}

func (r *underlineHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindUnderline, r.renderUnderline)
}

func (r *underlineHTMLRenderer) renderUnderline(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<u>")
	} else {
		_, _ = w.WriteString("</u>")
	}
	return ast.WalkContinue, nil
}

type underlineExtension struct{}

// Underline renders __text__ as <u>text</u> instead of <strong>text</strong>.
// Double asterisks keep their usual strong-emphasis meaning.
var Underline = &underlineExtension{}

func (e *underlineExtension) Extend(m goldmark.Markdown) {
	// Must outrank the built-in emphasis parser (priority 500) to claim
	// double underscores before it does.
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(defaultUnderlineParser, 490),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&underlineHTMLRenderer{}, 550),
	))
}
