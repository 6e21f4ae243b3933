package checks

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/dotdoctor/pkg/types"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

// LinkCheck validates relative links between markdown documents
type LinkCheck struct {
	Root string
	// Documents are patterns relative to Root
	Documents []string

	markdown goldmark.Markdown
}

// BrokenLink is a relative .md link whose target does not exist
type BrokenLink struct {
	// Document is relative to the root, slash-separated
	Document    string
	Destination string
}

func (b BrokenLink) String() string {
	return b.Document + ": " + b.Destination
}

func (c *LinkCheck) Name() string     { return "documentation" }
func (c *LinkCheck) Category() string { return types.CategoryLinks }

func (c *LinkCheck) Run(ctx context.Context) types.CheckOutcome {
	cat, name := c.Category(), c.Name()

	docs, err := MatchFiles(c.Root, c.Documents)
	if err != nil {
		return types.Warn(cat, name, err.Error(), "fix links.documents")
	}
	if len(docs) == 0 {
		return types.Pass(cat, name, "no documents")
	}

	var broken []BrokenLink
	for _, doc := range docs {
		if ctx.Err() != nil {
			return failure(cat, name, ctx.Err(), "")
		}
		found, err := c.scan(doc)
		if err != nil {
			return types.Warn(cat, name, err.Error(), "")
		}
		broken = append(broken, found...)
	}

	if len(broken) == 0 {
		return types.Pass(cat, name, plural(len(docs), "document")+" checked")
	}

	items := make([]string, len(broken))
	for i, b := range broken {
		items[i] = b.String()
	}
	detail := fmt.Sprintf("%s, first: %s", plural(len(broken), "broken link"), broken[0])
	return types.Warn(cat, name, detail, "fix or remove the broken links").WithItems(items)
}

// scan parses one document and returns its broken relative links in
// document order
func (c *LinkCheck) scan(doc string) ([]BrokenLink, error) {
	if c.markdown == nil {
		c.markdown = goldmark.New()
	}

	source, err := os.ReadFile(filepath.Join(c.Root, filepath.FromSlash(doc)))
	if err != nil {
		return nil, err
	}

	var destinations []string
	root := c.markdown.Parser().Parse(text.NewReader(source))
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := n.(*ast.Link); ok {
			destinations = append(destinations, string(link.Destination))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	var broken []BrokenLink
	dir := path.Dir(doc)
	for _, dest := range destinations {
		target, ok := LocalMarkdownTarget(dest)
		if !ok {
			continue
		}
		resolved := filepath.Join(c.Root, filepath.FromSlash(path.Join(dir, target)))
		if _, err := os.Stat(resolved); err != nil {
			broken = append(broken, BrokenLink{Document: doc, Destination: dest})
		}
	}
	return broken, nil
}

// LocalMarkdownTarget returns the file part of a relative link to a
// markdown document. It reports false for URLs, absolute paths, pure
// fragments and non-markdown targets.
func LocalMarkdownTarget(dest string) (string, bool) {
	if dest == "" || schemePattern.MatchString(dest) || strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//") {
		return "", false
	}

	target := dest
	if i := strings.IndexAny(target, "#?"); i >= 0 {
		target = target[:i]
	}
	if unescaped, err := url.PathUnescape(target); err == nil {
		target = unescaped
	}
	if !strings.HasSuffix(strings.ToLower(target), ".md") {
		return "", false
	}
	return target, true
}
