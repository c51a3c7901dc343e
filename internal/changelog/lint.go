package changelog

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Rule identifies a lint rule.
type Rule string

const (
	// RuleHeading flags a version heading that does not match
	// "## X.Y.Z - YYYY-MM-DD" (or the bracketed/Unreleased forms).
	RuleHeading Rule = "heading"
	// RuleOrder flags versions that are not in non-decreasing order from
	// top to bottom of the document.
	RuleOrder Rule = "order"
	// RuleDuplicate flags a version that appears more than once.
	RuleDuplicate Rule = "duplicate"
	// RuleEmptySection flags a version section with no change bullets.
	RuleEmptySection Rule = "empty-section"
	// RuleNoSections flags a document with no version sections at all.
	RuleNoSections Rule = "no-sections"
)

// Finding is a single lint violation, located by line number.
type Finding struct {
	Line    int
	Rule    Rule
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("line %d: [%s] %s", f.Line, f.Rule, f.Message)
}

// Lint checks the structural properties of a Markdown changelog:
//
//  1. every version heading matches "## X.Y.Z - YYYY-MM-DD" (bracketed
//     versions allowed; the Unreleased section needs no date),
//  2. version numbers are non-decreasing in document order from top to
//     bottom, with Unreleased permitted only as the final section,
//  3. every version section contains at least one bullet.
//
// All violations are reported, ordered by line number.
func Lint(doc *Document) []Finding {
	var findings []Finding

	if len(doc.Sections) == 0 {
		return []Finding{{Line: 1, Rule: RuleNoSections,
			Message: "changelog has no version sections"}}
	}

	var prev *semver.Version
	prevHeading := ""
	seen := make(map[string]int)

	for i, s := range doc.Sections {
		findings = append(findings, lintHeading(s)...)

		if s.Bullets == nil {
			findings = append(findings, Finding{
				Line:    s.Line,
				Rule:    RuleEmptySection,
				Message: fmt.Sprintf("section %q contains no change entries", s.Heading),
			})
		}

		if s.Version == "" || s.IsUnreleased() {
			if s.IsUnreleased() && i != len(doc.Sections)-1 {
				findings = append(findings, Finding{
					Line:    s.Line,
					Rule:    RuleOrder,
					Message: "Unreleased must be the final section",
				})
			}
			continue
		}

		if firstLine, dup := seen[s.Version]; dup {
			findings = append(findings, Finding{
				Line:    s.Line,
				Rule:    RuleDuplicate,
				Message: fmt.Sprintf("version %s already appeared on line %d", s.Version, firstLine),
			})
		} else {
			seen[s.Version] = s.Line
		}

		ver, err := semver.StrictNewVersion(s.Version)
		if err != nil {
			continue
		}
		if prev != nil && ver.LessThan(prev) {
			findings = append(findings, Finding{
				Line:    s.Line,
				Rule:    RuleOrder,
				Message: fmt.Sprintf("version %s is lower than preceding %s", s.Version, prevHeading),
			})
		}
		prev = ver
		prevHeading = s.Version
	}

	return findings
}

// lintHeading validates a single section heading.
func lintHeading(s Section) []Finding {
	if s.Version == "" {
		return []Finding{{
			Line:    s.Line,
			Rule:    RuleHeading,
			Message: fmt.Sprintf("heading %q does not match \"## X.Y.Z - YYYY-MM-DD\"", s.Heading),
		}}
	}
	if !s.IsUnreleased() && s.Date == "" {
		return []Finding{{
			Line:    s.Line,
			Rule:    RuleHeading,
			Message: fmt.Sprintf("version %s is missing its YYYY-MM-DD date", s.Version),
		}}
	}
	return nil
}

// LintFile parses and lints a Markdown changelog file.
func LintFile(path string) ([]Finding, error) {
	doc, err := ParseMarkdownFile(path)
	if err != nil {
		return nil, err
	}
	return Lint(doc), nil
}
