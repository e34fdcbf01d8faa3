package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/modularity/community"
	"github.com/katalvlaran/modularity/graphio"
)

const (
	karateGML   = "../../graphio/testdata/karate.gml"
	karateEdges = "../../graphio/testdata/karate.edges"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestPartitionCmd_Text(t *testing.T) {
	out, _, err := run(t, "partition", karateGML)
	require.NoError(t, err)

	res, err := graphio.ReadText(strings.NewReader(out))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Q, 0.40)
	assert.GreaterOrEqual(t, len(res.Groups), 2)

	var total int
	for _, grp := range res.Groups {
		total += len(grp)
	}
	assert.Equal(t, 34, total)
}

func TestPartitionCmd_YAMLRefined(t *testing.T) {
	out, _, err := run(t, "partition", karateEdges, "--refine", "-o", "yaml", "--solver", "jacobi")
	require.NoError(t, err)

	var res community.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.GreaterOrEqual(t, res.Q, 0.40)
	assert.Len(t, res.Splits, len(res.Groups)-1)
}

func TestPartitionCmd_MaxLevelsAndLogging(t *testing.T) {
	out, logs, err := run(t, "partition", karateGML, "--max-levels", "1", "--log-level", "debug", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"levels": 1`)
	assert.Contains(t, logs, "graph loaded")
	assert.Contains(t, logs, "level limit reached")
}

func TestPartitionCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modsplit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\nalgorithm:\n  max_levels: 1\n"), 0o600))

	out, _, err := run(t, "--config", path, "partition", karateGML)
	require.NoError(t, err)
	assert.Contains(t, out, `"levels": 1`)

	out, _, err = run(t, "--config", path, "partition", karateGML, "-o", "text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Q="), "flag wins over file")
}

func TestPartitionCmd_Errors(t *testing.T) {
	_, _, err := run(t, "partition")
	assert.Error(t, err)

	_, _, err = run(t, "partition", "does-not-exist.gml")
	assert.Error(t, err)

	_, _, err = run(t, "partition", karateGML, "--solver", "lanczos")
	assert.Error(t, err)

	_, _, err = run(t, "partition", karateGML, "-o", "gml")
	assert.ErrorIs(t, err, graphio.ErrUnsupportedFormat)

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "partition", karateGML)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.edges")
	require.NoError(t, os.WriteFile(empty, []byte("a\nb\n"), 0o600))
	_, _, err = run(t, "partition", empty)
	assert.ErrorIs(t, err, community.ErrMalformedGraph)
}

func TestDiagnoseCmd(t *testing.T) {
	out, _, err := run(t, "diagnose", karateGML)
	require.NoError(t, err)
	assert.Contains(t, out, "graph_components=1")

	groups := filepath.Join(t.TempDir(), "groups.txt")
	require.NoError(t, os.WriteFile(groups, []byte("Q=0\n"+strings.Join(karateIDs(1, 17), ",")+"\n"+strings.Join(karateIDs(18, 34), ",")+"\n"), 0o600))
	out, _, err = run(t, "diagnose", karateGML, "--groups", groups, "-o", "yaml")
	require.NoError(t, err)
	var d community.Diagnostics
	require.NoError(t, yaml.Unmarshal([]byte(out), &d))
	require.Len(t, d.Groups, 2)
	assert.Equal(t, 17, d.Groups[0].Size)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("Q=0\n1,2\n"), 0o600))
	_, _, err = run(t, "diagnose", karateGML, "--groups", bad)
	assert.ErrorIs(t, err, community.ErrInvalidPartition)
}

func TestConfigCmd(t *testing.T) {
	t.Setenv("MODSPLIT_ALGORITHM_SOLVER", "jacobi")
	out, _, err := run(t, "config", "--log-level", "warn")
	require.NoError(t, err)

	var settings map[string]map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &settings))
	assert.Equal(t, "jacobi", settings["algorithm"]["solver"])
	assert.Equal(t, "warn", settings["logging"]["level"])
}

func TestPartitionCmd_MetricsAndWorkers(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "modsplit.prom")
	out, logs, err := run(t, "partition", karateGML, "--workers", "4", "--metrics-file", metrics)
	require.NoError(t, err)

	seq, _, err := run(t, "partition", karateGML)
	require.NoError(t, err)
	assert.Equal(t, seq, out, "workers do not change the result")
	assert.Contains(t, logs, "workers=4")
	assert.Regexp(t, `run=[0-9a-f-]{36}`, logs)

	res, err := graphio.ReadText(strings.NewReader(out))
	require.NoError(t, err)

	raw, err := os.ReadFile(metrics)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "modsplit_splits_total "+strconv.Itoa(len(res.Groups)-1))
	assert.Contains(t, text, "modsplit_groups "+strconv.Itoa(len(res.Groups)))
	assert.Contains(t, text, "modsplit_nodes 34")
	assert.Contains(t, text, "modsplit_split_delta_q_count "+strconv.Itoa(len(res.Groups)-1))
	assert.Contains(t, text, "modsplit_modularity ")
}

func karateIDs(from, to int) []string {
	var ids []string
	for i := from; i <= to; i++ {
		ids = append(ids, strconv.Itoa(i))
	}

	return ids
}
