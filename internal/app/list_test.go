package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/settings"
)

func listFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixture(t, docWith("code",
		settings.Project{Name: "api", Path: "/work/api"},
		settings.Project{Name: "web", Path: "/work/web", Editor: "vim"},
	))
}

func wantListing() listing {
	return listing{
		CommandToOpen: "code",
		Projects: []listingEntry{
			{Name: "api", Path: "/work/api", Editor: "default", Command: "code"},
			{Name: "web", Path: "/work/web", Editor: "vim", Command: "vim"},
		},
	}
}

func TestList_Text(t *testing.T) {
	f := listFixture(t)

	require.NoError(t, f.app.List(f.ctx, FormatText))

	lines := strings.Split(strings.TrimRight(f.out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[1], "api")
	assert.Contains(t, lines[1], "/work/api")
	assert.Contains(t, lines[1], "code (default)")
	assert.Contains(t, lines[2], "web")
	assert.Contains(t, lines[2], "vim")
	assert.NotContains(t, lines[2], "(default)")
}

func TestList_TextEmpty(t *testing.T) {
	f := newFixture(t, docWith("code"))

	require.NoError(t, f.app.List(f.ctx, FormatText))
	assert.Contains(t, f.out.String(), "No projects saved yet")
}

func TestList_Structured(t *testing.T) {
	tests := []struct {
		format    Format
		unmarshal func([]byte, any) error
	}{
		{FormatJSON, json.Unmarshal},
		{FormatYAML, yaml.Unmarshal},
		{FormatTOML, toml.Unmarshal},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f := listFixture(t)

			require.NoError(t, f.app.List(f.ctx, tt.format))

			var got listing
			require.NoError(t, tt.unmarshal(bytes.Clone(f.out.Bytes()), &got))
			assert.Equal(t, wantListing(), got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "json", "yaml", "toml"} {
		got, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), got)
	}

	got, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, got)

	_, err = ParseFormat("xml")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestHelp(t *testing.T) {
	var buf bytes.Buffer
	Help(&buf)

	for _, want := range []string{
		"Usage: pm <command>",
		"open|o [projectName]",
		"add|save [projectDirectory]",
		"remove [projectName]",
		"seteditor [commandToOpen]",
		"edit",
	} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestCommandNotFound(t *testing.T) {
	var buf bytes.Buffer
	CommandNotFound(&buf, "frobnicate")

	assert.True(t, strings.HasPrefix(buf.String(), "Command 'frobnicate' not found\n"))
	assert.Contains(t, buf.String(), "Usage: pm <command>")
}
