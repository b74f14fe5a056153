package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-shaping-utils/render"
)

const groupPlan = `
groupBy:
  field: dept
  label: department
  subList: people
  deleteField: true
  orderBy:
    - field: age
      order: desc
`

const orderPlan = `
orderBy:
  - field: age
    order: desc
  - field: name
`

const people = `{"data": {"people": [
  {"name": "ann", "dept": "ops", "age": 30},
  {"name": "bob", "dept": "eng", "age": 25},
  {"name": "cat", "dept": "ops", "age": 41},
  {"name": "abe", "dept": "eng", "age": 25}
]}}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_GroupJSONFromStdin(t *testing.T) {
	planPath := writeFile(t, "plan.yaml", groupPlan)

	code, out, stderr := runCLI(t, people, "-plan", planPath, "-path", "data.people")

	require.Equal(t, 0, code, stderr)
	assert.Equal(t,
		`[{"department":"ops","people":[{"age":41,"name":"cat"},{"age":30,"name":"ann"}]},`+
			`{"department":"eng","people":[{"age":25,"name":"bob"},{"age":25,"name":"abe"}]}]`+"\n",
		out)
	assert.Contains(t, stderr, "input loaded")
}

func TestRun_OrderYAMLFromFile(t *testing.T) {
	planPath := writeFile(t, "plan.yaml", orderPlan)
	inputPath := writeFile(t, "people.json", people)

	code, out, stderr := runCLI(t, "", "-plan", planPath, "-input", inputPath,
		"-path", "data.people", "-output", "yaml")

	require.Equal(t, 0, code, stderr)
	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 4)
	var names []string
	for _, rec := range decoded {
		names = append(names, rec["name"].(string))
	}
	assert.Equal(t, []string{"cat", "ann", "abe", "bob"}, names)
}

func TestRun_Digest(t *testing.T) {
	planPath := writeFile(t, "plan.yaml", groupPlan)

	code, out, _ := runCLI(t, people, "-plan", planPath, "-path", "data.people")
	require.Equal(t, 0, code)
	code, digest, _ := runCLI(t, people, "-plan", planPath, "-path", "data.people", "-digest")
	require.Equal(t, 0, code)

	assert.Equal(t, render.Digest([]byte(out))+"\n", digest)
}

func TestRun_Stringify(t *testing.T) {
	planPath := writeFile(t, "plan.yaml", orderPlan)
	input := `[{"name":"x","age":1,"tags":[2,true,{"n":3}]},{"name":"y","age":2}]`

	code, out, stderr := runCLI(t, input, "-plan", planPath, "-stringify")

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, `[{"age":"2","name":"y"},{"age":"1","name":"x","tags":["2","true",{"n":"3"}]}]`+"\n", out)
}

func TestRun_TopLevelArray(t *testing.T) {
	planPath := writeFile(t, "plan.yaml", orderPlan)

	code, out, stderr := runCLI(t, `[{"name":"x","age":1},{"name":"y","age":2}]`, "-plan", planPath)

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, `[{"age":2,"name":"y"},{"age":1,"name":"x"}]`+"\n", out)
}

func TestRun_Failures(t *testing.T) {
	goodPlan := writeFile(t, "plan.yaml", orderPlan)
	badPlan := writeFile(t, "bad.yaml", "orderBy:\n  - order: sideways\n")

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"invalid plan", people, []string{"-plan", badPlan, "-path", "data.people"}, "invalid plan"},
		{"missing plan", people, []string{"-plan", filepath.Join(t.TempDir(), "nope.yaml")}, "no such file"},
		{"missing path", people, []string{"-plan", goodPlan, "-path", "data.nobody"}, "path not found"},
		{"not an array", people, []string{"-plan", goodPlan}, "not an array"},
		{"array of scalars", "[1, 2]", []string{"-plan", goodPlan}, "not an array"},
		{"invalid json", "{", []string{"-plan", goodPlan}, "not valid JSON"},
		{"unknown output", people, []string{"-plan", goodPlan, "-output", "xml"}, "unknown output format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, stderr := runCLI(t, tt.stdin, append(tt.args, "-log-format", "json")...)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.Contains(t, stderr, "shape failed")
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestRun_LoggerFlags(t *testing.T) {
	code, _, stderr := runCLI(t, "", "-log-level", "loud")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to initialize logger")

	code, _, stderr = runCLI(t, "", "-log-format", "xml")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown log format")
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runCLI(t, "", "-version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "shape version dev")
}

func TestRun_BadFlag(t *testing.T) {
	code, _, _ := runCLI(t, "", "-frobnicate")
	assert.Equal(t, 2, code)
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("SHAPE_TEST_VALUE", "set")
	assert.Equal(t, "set", getEnvOrDefault("SHAPE_TEST_VALUE", "default"))
	assert.Equal(t, "default", getEnvOrDefault("SHAPE_TEST_UNSET", "default"))
}

func TestParseFlags_EnvFallbacks(t *testing.T) {
	t.Setenv("SHAPE_PLAN", "from-env.yaml")
	t.Setenv("SHAPE_OUTPUT", "yaml")

	flags, err := parseFlags(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "from-env.yaml", flags.planPath)
	assert.Equal(t, "yaml", flags.output)
	assert.Equal(t, "-", flags.inputPath)
}
