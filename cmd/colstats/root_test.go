package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashank-93rao/colstats/pkg/dataset"
	"github.com/shashank-93rao/colstats/pkg/reduce"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestStatCommands(t *testing.T) {
	for _, tc := range []struct {
		args   []string
		in     string
		expect string
	}{
		{[]string{"mean"}, `{"x": [1, 2, 3, 4]}`, "{\n    \"x\": 2.5\n}\n"},
		{[]string{"median"}, `{"x": [1, 5, 2]}`, "{\n    \"x\": 2.0\n}\n"},
		{[]string{"stddev"}, `{"x": [2, 4, 4, 4, 5, 5, 7, 9]}`, "{\n    \"x\": 2.0\n}\n"},
		{[]string{"sd"}, `{"x": [2, 4, 4, 4, 5, 5, 7, 9]}`, "{\n    \"x\": 2.0\n}\n"},
		{[]string{"average"}, `{"a": [1,2,3], "b": [10,20,30]}`, "{\n    \"a\": 2.0,\n    \"b\": 20.0\n}\n"},
		{[]string{"mean", "-i", "-"}, `{}`, "{}\n"},
	} {
		out, err := execute(t, tc.in, tc.args...)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.expect, out, tc.args)
	}
}

func TestInputFilesAreAppended(t *testing.T) {
	first := writeFile(t, "first.json", `{"x": [1, 2], "y": [10]}`)
	second := writeFile(t, "second.json", `{"x": [3, 4]}`)

	out, err := execute(t, `{"y": [30]}`, "mean", "-i", first, "--input", second, "-i", "-")
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"x\": 2.5,\n    \"y\": 20.0\n}\n", out)
}

func TestSchemaFlag(t *testing.T) {
	schema := writeFile(t, "schema.json", `{"properties": {
		"qty": {"type": "array", "items": {"type": "number"}},
		"id": {"type": "string"}
	}}`)

	out, err := execute(t, `{"id": ["a"], "qty": [1, 3]}`, "mean", "--schema", schema)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"qty\": 2.0\n}\n", out)
}

func TestSchemaFromEnvironment(t *testing.T) {
	schema := writeFile(t, "schema.json", `{"properties": {"qty": {"type": "array", "items": {"type": "number"}}}}`)
	t.Setenv("COLSTATS_SCHEMA", schema)

	out, err := execute(t, `{"id": ["a"], "qty": [4]}`, "median")
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"qty\": 4.0\n}\n", out)
}

func TestCommandErrors(t *testing.T) {
	_, err := execute(t, `{"x": [1, "a"]}`, "mean")
	var perr *dataset.ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Contains(t, err.Error(), "stdin")

	_, err = execute(t, `not json`, "median")
	assert.ErrorIs(t, err, dataset.ErrInvalidJSON)

	_, err = execute(t, `{"x": []}`, "stddev")
	var rerr *reduce.ReductionError
	assert.True(t, errors.As(err, &rerr))

	_, err = execute(t, `{}`, "mean", "-i", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, `{}`, "mean", "--log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, `{}`, "mean", "extra")
	assert.Error(t, err)

	_, err = execute(t, `{}`, "mean", "--schema", writeFile(t, "bad.json", `{}`))
	assert.ErrorIs(t, err, dataset.ErrInvalidSchema)
}
