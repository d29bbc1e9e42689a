// Package skills manages collections of agent skills. Skills are packaged
// as directories containing a SKILL.md file with YAML frontmatter describing
// the skill's purpose and instructions, optionally alongside a references/
// tree of supporting markdown documents. The package handles discovering
// skills from configured directories and validating their structure.
package skills

// SkillFileName is the canonical skill definition file within a skill directory.
const SkillFileName = "SKILL.md"

// Skill represents a discovered skill with its metadata
type Skill struct {
	Name        string                 // Unique name from frontmatter
	Description string                 // Brief description for model decision-making
	License     string                 // Optional license identifier from frontmatter
	Directory   string                 // Full path to the skill directory
	Path        string                 // Full path to the SKILL.md file
	Content     string                 // Full content of SKILL.md (body, not frontmatter)
	Frontmatter map[string]interface{} // Raw frontmatter fields as parsed
}

// Metadata returns the optional metadata mapping (author, version) from the
// frontmatter, or nil if none was declared. The YAML parser behind
// goldmark-meta yields nested maps keyed by interface{}, so both shapes are
// handled.
func (s *Skill) Metadata() map[string]interface{} {
	if s.Frontmatter == nil {
		return nil
	}

	switch meta := s.Frontmatter["metadata"].(type) {
	case map[string]interface{}:
		return meta
	case map[interface{}]interface{}:
		converted := make(map[string]interface{}, len(meta))
		for k, v := range meta {
			if key, ok := k.(string); ok {
				converted[key] = v
			}
		}
		return converted
	default:
		return nil
	}
}
