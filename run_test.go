package twprefix

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/twprefix/internal/prefixer"
)

const buttonSource = `export function Button() {
  return <button className="flex bg-blue-500 hover:bg-blue-700">Go</button>;
}
`

const buttonPrefixed = `export function Button() {
  return <button className="tw-flex tw-bg-blue-500 hover:tw-bg-blue-700">Go</button>;
}
`

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunWritesFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"src/Button.tsx": buttonSource,
		"src/plain.ts":   `export const answer = 42;`,
		"src/app.css":    ".btn { @apply px-4 py-2; }\n",
	})

	result, err := Run(Config{
		Paths:  []string{filepath.Join(dir, "src", "**", "*")},
		Prefix: "tw-",
		Jobs:   4,
	})
	require.NoError(t, err)

	assert.Equal(t, buttonPrefixed, readFile(t, filepath.Join(dir, "src", "Button.tsx")))
	assert.Equal(t, ".btn { @apply tw-px-4 tw-py-2; }\n", readFile(t, filepath.Join(dir, "src", "app.css")))
	assert.Equal(t, `export const answer = 42;`, readFile(t, filepath.Join(dir, "src", "plain.ts")))

	assert.Equal(t, "tw-", result.Prefix)
	assert.Equal(t, "flag", result.PrefixSource)
	assert.Equal(t, 2, result.FilesChanged)
	assert.Equal(t, 2, result.LiteralsChanged)
	assert.Equal(t, 5, result.TokensChanged)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Len(t, result.Files, 3)
	assert.Len(t, result.Issues, 2)
	assert.False(t, result.Failed(true))

	// Running again is a no-op
	again, err := Run(Config{
		Paths:  []string{filepath.Join(dir, "src", "**", "*")},
		Prefix: "tw-",
	})
	require.NoError(t, err)
	assert.True(t, again.NothingToChange())
}

func TestRunDryRun(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"Button.tsx": buttonSource,
	})
	path := filepath.Join(dir, "Button.tsx")

	result, err := Run(Config{
		Paths:  []string{path},
		Prefix: "tw-",
		DryRun: true,
	})
	require.NoError(t, err)

	assert.Equal(t, buttonSource, readFile(t, path), "dry run must not write")
	assert.Equal(t, 1, result.LiteralsChanged)
	require.Len(t, result.Issues, 1)

	issue := result.Issues[0]
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Equal(t, 2, issue.Pos.Line)
	assert.Equal(t, 28, issue.Pos.Column)
	assert.Equal(t, `"tw-flex tw-bg-blue-500 hover:tw-bg-blue-700"`, issue.Replacement.NewText)
	assert.False(t, result.Files[0].Written)

	assert.False(t, result.Failed(false), "soft gate passes pending changes")
	assert.True(t, result.Failed(true), "strict dry run fails on pending changes")
}

func TestRunRenameAndRemove(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"Button.tsx": buttonPrefixed,
	})
	path := filepath.Join(dir, "Button.tsx")

	_, err := Run(Config{Paths: []string{path}, Mode: ModeRename, From: "tw-", To: "ui-"})
	require.NoError(t, err)
	assert.Contains(t, readFile(t, path), `className="ui-flex ui-bg-blue-500 hover:ui-bg-blue-700"`)

	result, err := Run(Config{Paths: []string{path}, Mode: ModeRename, From: "ui-"})
	require.NoError(t, err)
	assert.Equal(t, buttonSource, readFile(t, path))
	assert.Equal(t, ModeRename, result.Mode)
}

func TestRunParseErrorIsPerFile(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"broken.tsx": "const = ;\n",
		"ok.tsx":     buttonSource,
	})

	result, err := Run(Config{
		Paths:  []string{filepath.Join(dir, "*.tsx")},
		Prefix: "tw-",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 1, result.FilesChanged)
	assert.True(t, result.Failed(false))
	assert.Equal(t, buttonPrefixed, readFile(t, filepath.Join(dir, "ok.tsx")))
	assert.Equal(t, "const = ;\n", readFile(t, filepath.Join(dir, "broken.tsx")))

	var parseIssues int
	for _, issue := range result.Issues {
		if issue.Severity == SeverityError {
			parseIssues++
			assert.Equal(t, GetRelativePath(filepath.Join(dir, "broken.tsx")), issue.Pos.Filename)
			assert.Positive(t, issue.Pos.Line)
		}
	}
	assert.Equal(t, 1, parseIssues)

	var broken FileResult
	for _, f := range result.Files {
		if filepath.Base(f.Path) == "broken.tsx" {
			broken = f
		}
	}
	_, ok := prefixer.AsParseError(broken.Err)
	assert.True(t, ok)
}

func TestRunDiscoversPrefix(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"tailwind.config.js": "module.exports = { prefix: 'tw-' };\n",
		"src/Button.tsx":     buttonSource,
	})

	result, err := Run(Config{
		Paths:         []string{filepath.Join(dir, "src", "*.tsx")},
		WorkspaceRoot: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, "tw-", result.Prefix)
	assert.Equal(t, filepath.Join(dir, "tailwind.config.js"), result.PrefixSource)
	assert.Equal(t, buttonPrefixed, readFile(t, filepath.Join(dir, "src", "Button.tsx")))
}

func TestRunDiscoversPrefixPerFile(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app/tailwind.config.js": "module.exports = { prefix: \"tw-\" };\n",
		"app/src/a.tsx":          buttonSource,
		"site/tailwind.config.ts": "export default { prefix: \"ui-\" };\n",
		"site/b.tsx":              buttonSource,
		"lib/c.tsx":               buttonSource,
	})

	result, err := Run(Config{
		Paths:         []string{filepath.Join(root, "**", "*.tsx")},
		WorkspaceRoot: root,
	})
	require.NoError(t, err)

	assert.Equal(t, buttonPrefixed, readFile(t, filepath.Join(root, "app", "src", "a.tsx")))
	assert.Equal(t, strings.ReplaceAll(buttonPrefixed, "tw-", "ui-"), readFile(t, filepath.Join(root, "site", "b.tsx")))
	assert.Equal(t, buttonSource, readFile(t, filepath.Join(root, "lib", "c.tsx")))

	assert.Equal(t, 2, result.FilesChanged)
	assert.Equal(t, 1, result.ErrorCount)
	var noPrefix []Issue
	for _, issue := range result.Issues {
		if issue.Severity == SeverityError {
			noPrefix = append(noPrefix, issue)
		}
	}
	require.Len(t, noPrefix, 1)
	assert.Equal(t, IssueNoPrefix, noPrefix[0].Text)
	assert.Equal(t, GetRelativePath(filepath.Join(root, "lib", "c.tsx")), noPrefix[0].Pos.Filename)
}

func TestRunIssuesUseRelativePaths(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"src/Button.tsx": buttonSource,
	})
	t.Chdir(dir)

	result, err := Run(Config{
		Paths:  []string{filepath.Join(dir, "src", "*.tsx")},
		Prefix: "tw-",
		DryRun: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, filepath.Join("src", "Button.tsx"), result.Issues[0].Pos.Filename)
}

func TestRunEmptyPrefix(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"Button.tsx": buttonSource,
	})

	_, err := Run(Config{
		Paths:         []string{filepath.Join(dir, "*.tsx")},
		WorkspaceRoot: dir,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyPrefix))
}

func TestRunCustomUtilitiesAndHelpers(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.ts": `const c = styles("btn flex card");`,
	})
	path := filepath.Join(dir, "a.ts")

	_, err := Run(Config{
		Paths:     []string{path},
		Prefix:    "ds-",
		Helpers:   []string{"styles"},
		Utilities: []string{"btn"},
	})
	require.NoError(t, err)
	assert.Equal(t, `const c = styles("ds-btn ds-flex card");`, readFile(t, path))
}

func TestRunNoFiles(t *testing.T) {
	dir := t.TempDir()

	result, err := Run(Config{Paths: []string{filepath.Join(dir, "*.tsx")}, Prefix: "tw-"})
	require.NoError(t, err)
	assert.True(t, result.NothingToChange())
	require.Len(t, result.Warnings, 1)
}

func TestWriteJSON(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"Button.tsx": buttonSource,
	})

	result, err := Run(Config{
		Paths:  []string{filepath.Join(dir, "*.tsx")},
		Prefix: "tw-",
		DryRun: true,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, result))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "add", out.Mode)
	assert.Equal(t, "tw-", out.Prefix)
	assert.True(t, out.DryRun)
	assert.Equal(t, 1, out.Summary.LiteralsChanged)
	assert.Equal(t, 3, out.Summary.TokensChanged)
	require.Len(t, out.Files, 1)
	assert.Equal(t, "tsx", out.Files[0].Kind)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, "twprefix", out.Issues[0].Linter)
	require.Len(t, out.Families, 2)
	assert.Equal(t, string(prefixer.FamilyBackgrounds), out.Families[0].Family)
	assert.Equal(t, 2, out.Families[0].Tokens)
}
