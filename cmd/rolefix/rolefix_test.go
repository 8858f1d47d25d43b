package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rolelattice/network"
	"github.com/katalvlaran/rolelattice/projection"
)

const starConfig = `
actors: [ann, ben, cleo]
ties:
  - [ann, cleo]
  - [ben, cleo]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rolefix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func lines(s string) []string {
	out := strings.Split(strings.TrimSpace(s), "\n")
	slices.Sort(out)

	return out
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig([]byte(starConfig))
	require.NoError(t, err)
	assert.Equal(t, []string{"ann", "ben", "cleo"}, cfg.Actors)
	assert.Equal(t, [][2]string{{"ann", "cleo"}, {"ben", "cleo"}}, cfg.Ties)
	assert.False(t, cfg.Loops)
	assert.Equal(t, "equivalence", cfg.Structure)
	assert.Equal(t, "restriction", cfg.Direction)
	assert.Equal(t, "covers", cfg.Engine)
	assert.Zero(t, cfg.Limit)
}

func TestParseConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		body string
		want error
	}{
		{"structure", starConfig + "structure: lattice\n", ErrUnknownStructure},
		{"direction", starConfig + "direction: sideways\n", ErrUnknownDirection},
		{"engine", starConfig + "engine: magic\n", ErrUnknownEngine},
		{"self tie", "ties:\n  - [ann, ann]\n", network.ErrLoopNotAllowed},
		{"duplicate tie", "ties:\n  - [0, 1]\n  - [0, 1]\n", network.ErrDuplicateTie},
		{"empty actor", "actors: [ann, \"\"]\n", network.ErrEmptyActorID},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig([]byte(tc.body))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := parseConfig([]byte("actors: [1"))
	assert.Error(t, err)
}

func TestRunStarEquivalences(t *testing.T) {
	cfg, err := parseConfig([]byte(starConfig))
	require.NoError(t, err)

	var out bytes.Buffer
	n, err := run(context.Background(), cfg, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "{0 1}{2}\n{0}{1}{2}\n", out.String())

	cfg.Engine = "projections"
	_, err = run(context.Background(), cfg, &out)
	assert.ErrorIs(t, err, projection.ErrNoMaximalCompletion)
}

func TestConfigNetwork(t *testing.T) {
	cfg, err := parseConfig([]byte("actors: [zoe]\nloops: true\nties:\n  - [ann, zoe]\n  - [zoe, zoe]\n"))
	require.NoError(t, err)
	net, err := cfg.network()
	require.NoError(t, err)
	assert.Equal(t, []string{"zoe", "ann"}, net.Actors())
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}}, net.Ties())
	assert.Equal(t, "0=zoe 1=ann", legend(net))

	var out bytes.Buffer
	cfg.Structure, cfg.Direction = "relation", "extension"
	n, err := run(context.Background(), cfg, &out)
	require.NoError(t, err)
	assert.Equal(t, 13, n, "transitive relations on two actors")
}

func TestRunEnginesAgree(t *testing.T) {
	body := "ties:\n  - [0, 1]\n  - [1, 2]\n  - [2, 0]\n  - [0, 2]\n"
	for _, c := range []struct{ structure, direction string }{
		{"relation", "restriction"},
		{"relation", "extension"},
		{"equivalence", "extension"},
		{"ranking", "extension"},
	} {
		t.Run(c.structure+"/"+c.direction, func(t *testing.T) {
			cfg, err := parseConfig([]byte(body))
			require.NoError(t, err)
			cfg.Structure, cfg.Direction = c.structure, c.direction

			var covers, projections bytes.Buffer
			_, err = run(context.Background(), cfg, &covers)
			require.NoError(t, err)
			cfg.Engine = "projections"
			_, err = run(context.Background(), cfg, &projections)
			require.NoError(t, err)
			assert.Equal(t, lines(covers.String()), lines(projections.String()))
		})
	}
}

func TestEnumerateCommand(t *testing.T) {
	path := writeConfig(t, starConfig)

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"enumerate", "--config", path, "--limit", "1"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "{0 1}{2}\n", out.String())
	assert.Contains(t, errOut.String(), "actors: 0=ann 1=ben 2=cleo")
	assert.Contains(t, errOut.String(), "1 equivalence structure(s)")

	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"enumerate", "--config", path, "--engine", "warp"})
	assert.ErrorIs(t, root.Execute(), ErrUnknownEngine)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "rolefix dev\n", out.String())
}
