package main

import (
	"path/filepath"
	"testing"

	"github.com/skillforge/skillet/pkg/skills"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Files the rust-ffmpeg SKILL.md commits to shipping.
var rustFFmpegReferences = []string{
	"references/quick_start.md",
	"references/installation.md",
	"references/library_selection.md",
	"references/ffmpeg_sidecar.md",
	"references/ez_ffmpeg.md",
	"references/ez_ffmpeg/cli_migration.md",
	"references/ffmpeg_next.md",
	"references/ffmpeg_sys_next.md",
	"references/ffmpeg_sys_next/custom_io.md",
	"references/scenarios/video_transcoding.md",
	"references/scenarios/transcoding.md",
	"references/scenarios/audio_extraction.md",
	"references/scenarios/streaming_rtmp_hls.md",
	"references/scenarios/hardware_acceleration.md",
	"references/scenarios/batch_processing.md",
	"references/scenarios/subtitles.md",
	"references/scenarios/modern_codecs.md",
	"references/scenarios/debugging.md",
	"references/scenarios/filters_effects.md",
	"references/scenarios/image_sequences.md",
	"references/scenarios/testing.md",
	"references/scenarios/integration.md",
	"references/scenarios/gif_creation.md",
	"references/scenarios/metadata_chapters.md",
	"references/scenarios/capture.md",
}

func bundledSkillsDir() string {
	return filepath.Join("..", "..", "skills")
}

func TestBundledSkillsAreValid(t *testing.T) {
	validator := skills.NewValidator(
		skills.WithChecklist("rust-ffmpeg", rustFFmpegReferences...),
	)

	issues, err := validator.ValidateDir(bundledSkillsDir())
	require.NoError(t, err)

	for _, issue := range issues {
		t.Errorf("bundled skill issue: %s", issue)
	}
}

func TestBundledSkillsDiscoverable(t *testing.T) {
	discovery, err := skills.NewDiscovery(skills.WithSkillDirs(bundledSkillsDir()))
	require.NoError(t, err)

	allSkills, err := discovery.DiscoverSkills()
	require.NoError(t, err)

	require.Contains(t, allSkills, "media-assistant")
	require.Contains(t, allSkills, "rust-ffmpeg")

	media := allSkills["media-assistant"]
	assert.Contains(t, media.Content, "skillet ffmpeg-path")

	rust := allSkills["rust-ffmpeg"]
	assert.Equal(t, "MIT", rust.License)
	assert.LessOrEqual(t, len(rust.Description), skills.DefaultMaxDescription)
}

func TestNewDiscoveryConfigOverride(t *testing.T) {
	viper.Set("skills.dirs", []string{"/custom/skills"})
	defer viper.Set("skills.dirs", nil)

	discovery, err := newDiscovery()
	require.NoError(t, err)
	assert.Equal(t, []string{"/custom/skills"}, discovery.SkillDirs())
}
