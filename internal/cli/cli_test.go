package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"value-objects/coerce"
	"value-objects/internal/analyze"
	"value-objects/internal/diagnostic"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	color.NoColor = true

	var stdout, stderr bytes.Buffer

	cmd := NewRootCommand("1.2.3")
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		stdin  string
		args   []string
		expect string
	}{
		{"json passthrough", `{"b":1,"a":[true,null]}`, nil, "{\"b\":1,\"a\":[true,null]}\n"},
		{"json to yaml", `{"b":1,"a":"x"}`, []string{"--to", "yaml"}, "b: 1\na: x\n"},
		{"yaml to json", "b: 1\na: [1, 2]\n", []string{"--from", "yml"}, "{\"b\":1,\"a\":[1,2]}\n"},
		{"typed", `{"a":"1","b":2.0}`, []string{"--type", "integer"}, "{\"a\":1,\"b\":2}\n"},
		{"typed candidates", `["1","x",2.5]`, []string{"-t", "int,string"}, "[1,\"x\",\"2.5\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.stdin, append([]string{"convert"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, out)
		})
	}
}

func TestConvertFile(t *testing.T) {
	path := writeFile(t, "doc.yaml", "- 1\n- '2'\n")

	out, _, err := run(t, "", "convert", "--type", "float", path)
	require.NoError(t, err)
	assert.Equal(t, "[1.0,2.0]\n", out)
}

func TestConvertErrors(t *testing.T) {
	_, _, err := run(t, `["x"]`, "convert", "--type", "integer")
	assert.ErrorIs(t, err, coerce.ErrTypeMismatch)

	_, _, err = run(t, `[1]`, "convert", "--type", "datetime")
	assert.ErrorIs(t, err, coerce.ErrUnknownType)

	_, _, err = run(t, `[1]`, "convert", "--to", "xml")
	assert.EqualError(t, err, `unknown format "xml", expected json or yaml`)

	_, _, err = run(t, `{`, "convert")
	assert.ErrorContains(t, err, "stdin: ")

	_, _, err = run(t, "", "convert", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStrict(t *testing.T) {
	_, _, err := run(t, `["1"]`, "--strict", "convert", "--type", "integer")
	assert.ErrorIs(t, err, coerce.ErrTypeMismatch)

	out, _, err := run(t, `[1.0]`, "--strict", "convert", "--type", "integer")
	require.NoError(t, err)
	assert.Equal(t, "[1]\n", out)
}

func TestVerbose(t *testing.T) {
	_, stderr, err := run(t, `["1"]`, "-v", "convert", "--type", "integer")
	require.NoError(t, err)
	assert.Equal(t, "✓ \"1\" -> integer 1\n", stderr)

	_, stderr, err = run(t, `["x"]`, "--verbose", "convert", "--type", "integer")
	require.Error(t, err)
	assert.Equal(t, "✗ \"x\" integer only accepts values that are of type integer, string given\n", stderr)
}

func TestMerge(t *testing.T) {
	left := writeFile(t, "left.json", `{"8":"a","foo":"b"}`)
	right := writeFile(t, "right.yaml", "0: b\nfoo: d\n8: c\n")

	out, _, err := run(t, "", "merge", left, right)
	require.NoError(t, err)
	assert.Equal(t, "{\"8\":\"a\",\"foo\":\"d\",\"9\":\"b\",\"10\":\"c\"}\n", out)
}

func TestMergeUnique(t *testing.T) {
	left := writeFile(t, "left.json", `[1,2]`)
	right := writeFile(t, "right.json", `["2",3,3.0]`)

	out, _, err := run(t, "", "merge", "--unique", "--type", "integer", left, right)
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]\n", out)

	out, _, err = run(t, "", "merge", "--type", "integer", "--to", "yaml", left, right)
	require.NoError(t, err)
	assert.Equal(t, "- 1\n- 2\n- 2\n- 3\n- 3\n", out)
}

func TestMergeArgs(t *testing.T) {
	_, _, err := run(t, "", "merge", "only-one.json")
	assert.Error(t, err)
}

func TestPrintError(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	PrintError(&buf, assert.AnError)
	assert.Equal(t, "✗ "+assert.AnError.Error()+"\n", buf.String())
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, `["1","x",null,2]`, "check", "--type", "integer")
	require.ErrorIs(t, err, diagnostic.ErrCheckFailed)
	assert.EqualError(t, err, "check failed: 1: [mismatch] only accepts values that are of type integer, string given (accepted by string)")
	assert.Equal(t, `error   1: [mismatch] only accepts values that are of type integer, string given (accepted by string)
warning 2: [null] null passes every declared type
info    0: [coerced] "1" -> 1
4 checked, 1 errors, 1 warnings
`, out)
}

func TestCheckQuiet(t *testing.T) {
	path := writeFile(t, "doc.yaml", "a: '1.5'\nb: [1]\n")

	out, _, err := run(t, "", "check", "-q", "-t", "float", path)
	require.ErrorIs(t, err, diagnostic.ErrCheckFailed)
	assert.Equal(t, `error   b: [mismatch] only accepts values that are of type float, sequence given (accepted by sequence)
2 checked, 1 errors, 0 warnings
`, out)
}

func TestCheckPasses(t *testing.T) {
	out, _, err := run(t, `{"a":1,"b":2.5}`, "check", "-t", "float")
	require.NoError(t, err)
	assert.Equal(t, "info    a: [coerced] 1 -> 1.0\n2 checked, 0 errors, 0 warnings\n", out)
}

func TestCheckRequiresType(t *testing.T) {
	_, _, err := run(t, `[1]`, "check")
	assert.Error(t, err)
}

func TestLayout(t *testing.T) {
	out, _, err := run(t, "", "layout", "../analyze/testdata/roster", "Audit")
	require.NoError(t, err)
	assert.Equal(t, `{"created_by":{"go":"CreatedBy","type":"string","nullable":false},`+
		`"Revision":{"go":"Revision","type":"integer","nullable":false}}`+"\n", out)

	_, _, err = run(t, "", "layout", "../analyze/testdata/roster", "Status")
	assert.ErrorIs(t, err, analyze.ErrNotStruct)
}
