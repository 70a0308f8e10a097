package conv

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags | html.HrefTargetBlank
	tgPolicy   = bluemonday.NewPolicy()

	// html2text decorates emphasis and headings, speech should not read them out
	decorations = strings.NewReplacer("*", "", "_", "")
)

func init() {
	// Allowed tags https://core.telegram.org/bots/api#html-style
	tgPolicy.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	tgPolicy.AllowAttrs("href").OnElements("a")
	tgPolicy.AllowAttrs("class").OnElements("code")
}

func render(md []byte) []byte {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	return markdown.Render(p.Parse(md), renderer)
}

func MarkdownToTelegramHTML(md []byte) string {
	return string(tgPolicy.SanitizeBytes(render(md)))
}

// MarkdownToPlainText strips Markdown down to readable text, used as
// speech synthesis input and for terminal output.
func MarkdownToPlainText(md []byte) (string, error) {
	text, err := html2text.FromString(string(render(md)), html2text.Options{OmitLinks: true})
	if err != nil {
		return "", err
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Trim(line, "*-= ") == "" && line != "" {
			continue // heading underline
		}
		out = append(out, decorations.Replace(line))
	}
	return strings.TrimSpace(strings.Join(out, "\n")), nil
}
