package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// DefaultMaxDescription caps the frontmatter description length. Descriptions
// are surfaced to the model during skill discovery, so they have to stay short.
const DefaultMaxDescription = 1024

var (
	namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

	// Matches [text](path) or [text](path#anchor); the capture is the path without the anchor.
	linkPattern = regexp.MustCompile(`\[[^\]]*\]\(([^)#]+)(?:#[^)]*)?\)`)
)

// Issue describes a single validation finding for a skill.
type Issue struct {
	Skill   string // Skill name, or directory name if the skill failed to load
	File    string // Offending file, relative to the skill directory
	Rule    string // Which rule produced the issue
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s [%s]", i.Skill, i.File, i.Message, i.Rule)
}

// Validator checks skills against the collection's structural rules:
// frontmatter schema, name format, internal link integrity, and optional
// per-skill reference checklists.
type Validator struct {
	maxDescription int
	checklists     map[string][]string
}

// ValidatorOption configures a Validator
type ValidatorOption func(*Validator)

// WithMaxDescription overrides the description length cap
func WithMaxDescription(limit int) ValidatorOption {
	return func(v *Validator) {
		v.maxDescription = limit
	}
}

// WithChecklist declares files that must exist under the named skill's
// directory, mirroring the reference lists a SKILL.md commits to.
func WithChecklist(skillName string, files ...string) ValidatorOption {
	return func(v *Validator) {
		v.checklists[skillName] = append(v.checklists[skillName], files...)
	}
}

// NewValidator creates a validator with the default rule configuration
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		maxDescription: DefaultMaxDescription,
		checklists:     make(map[string][]string),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every rule against a loaded skill and returns all findings.
// An empty slice means the skill is valid.
func (v *Validator) Validate(skill *Skill) []Issue {
	var issues []Issue
	issues = append(issues, v.checkName(skill)...)
	issues = append(issues, v.checkDescription(skill)...)
	issues = append(issues, v.checkLinks(skill)...)
	issues = append(issues, v.checkChecklist(skill)...)
	return issues
}

// ValidateDir validates every skill directory under root. Directories whose
// SKILL.md fails to load (missing file, missing frontmatter fields) are
// reported as issues rather than skipped, unlike discovery which tolerates
// them silently.
func (v *Validator) ValidateDir(root string) ([]Issue, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read skills directory %s", root)
	}

	var issues []Issue
	for _, entry := range entries {
		entryPath := filepath.Join(root, entry.Name())

		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}

		skill, err := LoadSkill(filepath.Join(entryPath, SkillFileName))
		if err != nil {
			issues = append(issues, Issue{
				Skill:   entry.Name(),
				File:    SkillFileName,
				Rule:    "frontmatter",
				Message: err.Error(),
			})
			continue
		}

		issues = append(issues, v.Validate(skill)...)
	}

	return issues, nil
}

// Err converts a set of issues into a single aggregated error, or nil if the
// set is empty.
func Err(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}

	var result *multierror.Error
	for _, issue := range issues {
		result = multierror.Append(result, errors.New(issue.String()))
	}
	return result.ErrorOrNil()
}

// checkName enforces the naming rules: lowercase a-z, digits, and hyphens,
// no consecutive/leading/trailing hyphens, and the name must match the
// skill's directory basename.
func (v *Validator) checkName(skill *Skill) []Issue {
	var issues []Issue

	fail := func(message string) {
		issues = append(issues, Issue{
			Skill:   skill.Name,
			File:    SkillFileName,
			Rule:    "name-format",
			Message: message,
		})
	}

	name := skill.Name
	if name != strings.ToLower(name) {
		fail("name must be lowercase")
	}
	if strings.Contains(name, "--") {
		fail("name must not contain consecutive hyphens")
	}
	if strings.HasPrefix(name, "-") {
		fail("name must not start with a hyphen")
	}
	if strings.HasSuffix(name, "-") {
		fail("name must not end with a hyphen")
	}
	if !namePattern.MatchString(name) {
		fail("name must contain only a-z, 0-9, and hyphens")
	}

	if dirName := filepath.Base(skill.Directory); name != dirName {
		issues = append(issues, Issue{
			Skill:   skill.Name,
			File:    SkillFileName,
			Rule:    "name-dir-match",
			Message: fmt.Sprintf("name '%s' does not match directory '%s'", name, dirName),
		})
	}

	return issues
}

func (v *Validator) checkDescription(skill *Skill) []Issue {
	if len(skill.Description) <= v.maxDescription {
		return nil
	}

	return []Issue{{
		Skill:   skill.Name,
		File:    SkillFileName,
		Rule:    "description-length",
		Message: fmt.Sprintf("description is %d characters, max is %d", len(skill.Description), v.maxDescription),
	}}
}

// checkLinks verifies that every internal markdown link in SKILL.md and the
// references/ tree resolves to an existing file.
func (v *Validator) checkLinks(skill *Skill) []Issue {
	var issues []Issue

	for _, mdFile := range collectMarkdownFiles(skill) {
		content, err := os.ReadFile(mdFile)
		if err != nil {
			continue
		}

		relFile, relErr := filepath.Rel(skill.Directory, mdFile)
		if relErr != nil {
			relFile = mdFile
		}

		baseDir := filepath.Dir(mdFile)
		for _, link := range extractInternalLinks(string(content)) {
			target := link
			if !filepath.IsAbs(target) {
				target = filepath.Join(baseDir, link)
			}
			if _, err := os.Stat(target); err != nil {
				issues = append(issues, Issue{
					Skill:   skill.Name,
					File:    relFile,
					Rule:    "links",
					Message: fmt.Sprintf("broken link '%s' (resolved to %s)", link, target),
				})
			}
		}
	}

	return issues
}

// checkChecklist verifies the explicit must-exist file list for the skill
func (v *Validator) checkChecklist(skill *Skill) []Issue {
	var issues []Issue

	for _, relPath := range v.checklists[skill.Name] {
		fullPath := filepath.Join(skill.Directory, relPath)
		if _, err := os.Stat(fullPath); err != nil {
			issues = append(issues, Issue{
				Skill:   skill.Name,
				File:    relPath,
				Rule:    "references",
				Message: "referenced file does not exist",
			})
		}
	}

	return issues
}

// collectMarkdownFiles gathers SKILL.md plus everything under references/
func collectMarkdownFiles(skill *Skill) []string {
	files := []string{skill.Path}

	pattern := filepath.Join(skill.Directory, "references", "**", "*.md")
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return files
	}

	return append(files, matches...)
}

// extractInternalLinks returns the relative link targets in markdown content,
// with anchors stripped. External links (http, https, mailto) are ignored.
func extractInternalLinks(content string) []string {
	var links []string

	for _, match := range linkPattern.FindAllStringSubmatch(content, -1) {
		raw := strings.TrimSpace(match[1])
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, "mailto:") {
			continue
		}
		links = append(links, raw)
	}

	return links
}
