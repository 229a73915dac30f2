package notes

import (
	"bytes"
	"strings"

	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const (
	previewParagraphs = 2
	previewWidth      = 60
)

// Summary is what the picker shows about the highlighted note.
type Summary struct {
	Heading string // Front-matter title, else the first level 1 heading
	Preview string // Start of the first paragraphs
}

// ReadSummary reads the note at path and summarizes it.
func ReadSummary(fs afero.Fs, path string) (Summary, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return Summary{}, ioError("read", path, err)
	}
	return Summarize(content), nil
}

// Summarize extracts the heading and a short preview from markdown content.
func Summarize(content []byte) Summary {
	fmTitle, body := splitFrontmatter(content)

	doc := goldmark.DefaultParser().Parse(text.NewReader(body))

	var heading string
	var preview strings.Builder
	paragraphs := 0

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindHeading:
			if heading == "" && n.(*ast.Heading).Level == 1 {
				heading = string(n.Text(body))
			}
			return ast.WalkSkipChildren, nil

		case ast.KindParagraph:
			if paragraphs >= previewParagraphs {
				return ast.WalkStop, nil
			}
			if t := string(n.Text(body)); t != "" {
				if preview.Len() > 0 {
					preview.WriteString(" ")
				}
				preview.WriteString(t)
				paragraphs++
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	if fmTitle != "" {
		heading = fmTitle
	}

	return Summary{
		Heading: heading,
		Preview: truncate(preview.String(), previewWidth),
	}
}

type noteFrontmatter struct {
	Title string `yaml:"title"`
}

// splitFrontmatter returns the front-matter title, if any, and the content
// following the front-matter block.
func splitFrontmatter(content []byte) (string, []byte) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return "", content
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}
	if fmEnd == 0 {
		return "", content
	}

	body := bytes.Join(lines[fmEnd+1:], []byte("\n"))

	var fm noteFrontmatter
	if err := yaml.Unmarshal(bytes.Join(lines[1:fmEnd], []byte("\n")), &fm); err != nil {
		return "", body
	}
	return strings.TrimSpace(fm.Title), body
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
