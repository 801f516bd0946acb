package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	xhtml "golang.org/x/net/html"

	"git.home.luguber.info/inful/attrdoc/internal/catalog"
)

// HTML renders the registry to a standalone HTML page: the Markdown
// rendering converted with goldmark, then round-tripped through an
// HTML parse so the result is always a well-formed document with the
// heading anchors the Markdown inheritance links point at.
func HTML(title string, reg *catalog.Registry) ([]byte, error) {
	renderer, err := New(FormatMarkdown)
	if err != nil {
		return nil, err
	}
	src, err := renderer.Registry(title, reg)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	var body bytes.Buffer
	if err := md.Convert(src, &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	doc, err := xhtml.Parse(&body)
	if err != nil {
		return nil, fmt.Errorf("parse rendered html: %w", err)
	}
	var out bytes.Buffer
	if err := xhtml.Render(&out, doc); err != nil {
		return nil, fmt.Errorf("serialize html: %w", err)
	}
	return out.Bytes(), nil
}
