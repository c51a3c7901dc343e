package changelog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Document is a parsed Markdown changelog: a title, introductory prose,
// and one version section per "##" heading.
type Document struct {
	Title    string
	Intro    []string
	Sections []Section
}

// Section is one version section of a Markdown changelog.
type Section struct {
	// Heading is the raw heading text after "## ".
	Heading string
	// Line is the 1-based line number of the heading.
	Line int
	// Version is the parsed version identifier ("1.0.0" or "Unreleased"),
	// or empty if the heading does not follow the convention.
	Version string
	// Date is the parsed YYYY-MM-DD release date, if present.
	Date string
	// Categories lists "###" subheadings in order of appearance.
	Categories []string
	// Bullets lists the section's change entries across all categories.
	Bullets []Bullet
}

// Bullet is a single change entry line.
type Bullet struct {
	Text string
	Line int
}

// IsUnreleased reports whether the section is the Unreleased section.
func (s Section) IsUnreleased() bool {
	return strings.EqualFold(s.Version, "unreleased")
}

// headingPattern matches the conventional version heading forms:
//
//	## 1.0.0 - 2024-01-15
//	## [1.0.0] - 2024-01-15
//	## [Unreleased]
//
// Group 1 captures the version identifier, group 2 the date.
var headingPattern = regexp.MustCompile(
	`^## \[?(Unreleased|v?\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?)\]?(?:\s+-\s+(\d{4}-\d{2}-\d{2}))?\s*$`)

// ParseMarkdownFile parses a Markdown changelog from the given path.
func ParseMarkdownFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening changelog file: %w", err)
	}
	defer f.Close()

	doc, err := ParseMarkdown(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// ParseMarkdown parses a Markdown changelog. Parsing is deliberately
// tolerant: malformed headings still produce sections (with an empty
// Version) so that Lint can report them with line numbers instead of the
// parser failing on the first defect.
func ParseMarkdown(r io.Reader) (*Document, error) {
	doc := &Document{}
	var current *Section

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()

		switch {
		case strings.HasPrefix(text, "## "):
			if current != nil {
				doc.Sections = append(doc.Sections, *current)
			}
			current = parseSectionHeading(text, line)

		case strings.HasPrefix(text, "# ") && doc.Title == "":
			doc.Title = strings.TrimSpace(strings.TrimPrefix(text, "# "))

		case strings.HasPrefix(text, "### "):
			if current != nil {
				current.Categories = append(current.Categories,
					strings.TrimSpace(strings.TrimPrefix(text, "### ")))
			}

		case isBullet(text):
			if current != nil {
				current.Bullets = append(current.Bullets, Bullet{
					Text: strings.TrimSpace(text[strings.IndexAny(text, "-*+")+1:]),
					Line: line,
				})
			}

		default:
			if current == nil && strings.TrimSpace(text) != "" && !strings.HasPrefix(text, "#") {
				doc.Intro = append(doc.Intro, text)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading changelog: %w", err)
	}

	if current != nil {
		doc.Sections = append(doc.Sections, *current)
	}

	return doc, nil
}

// parseSectionHeading builds a Section from a "##" heading line.
func parseSectionHeading(text string, line int) *Section {
	s := &Section{
		Heading: strings.TrimSpace(strings.TrimPrefix(text, "## ")),
		Line:    line,
	}
	if m := headingPattern.FindStringSubmatch(text); m != nil {
		s.Version = strings.TrimPrefix(m[1], "v")
		s.Date = m[2]
	}
	return s
}

// isBullet reports whether the line is a top-level Markdown list item.
func isBullet(text string) bool {
	trimmed := strings.TrimLeft(text, " \t")
	if len(trimmed) < 2 {
		return false
	}
	switch trimmed[0] {
	case '-', '*', '+':
		return trimmed[1] == ' '
	default:
		return false
	}
}
