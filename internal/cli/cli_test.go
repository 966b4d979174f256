package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	t   *testing.T
	dir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "blog.db"))
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOG_LEVEL", "error")
	return &testEnv{t: t, dir: dir}
}

func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	root, a := newRoot()
	defer a.close()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	require.NoError(e.t, err, out)
	return out
}

func (e *testEnv) writeFile(name, body string) string {
	e.t.Helper()
	p := filepath.Join(e.dir, name)
	require.NoError(e.t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

var idPattern = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f-]{27}`)

var body = strings.Repeat("word ", 60)

func TestCLI_RequiresMigration(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runErr("author", "create", "--name", "Jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run migrations first")

	env.run("migrate")
	out := env.run("author", "create", "--name", "Jane")
	assert.Contains(t, out, "Created author")
}

func TestCLI_Author(t *testing.T) {
	env := newTestEnv(t)
	env.run("migrate")

	out := env.run("author", "create", "--name", "Jane", "--phone", "5551234567")
	id := idPattern.FindString(out)
	require.NotEmpty(t, id)

	_, err := env.runErr("author", "create", "--name", "Jane")
	require.Error(t, err)
	assert.Equal(t, "DUPLICATE_VALUE name: Author name must be unique.", err.Error())

	_, err = env.runErr("author", "create", "--name", "John", "--phone", "555-123-45")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_FORMAT phone_number")

	_, err = env.runErr("author", "create")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUIRED_FIELD name")

	out = env.run("author", "update", id, "--phone", "0000000000", "-o", "json")
	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Jane", resp["name"])
	assert.Equal(t, "0000000000", resp["phone_number"])
}

func TestCLI_Post(t *testing.T) {
	env := newTestEnv(t)
	env.run("migrate")

	contentFile := env.writeFile("body.txt", body)
	out := env.run("post", "create",
		"--title", "The Secret Life of Go",
		"-f", contentFile,
		"--category", "Non-Fiction",
	)
	id := idPattern.FindString(out)
	require.NotEmpty(t, id)

	_, err := env.runErr("post", "update", id, "--category", "Poetry")
	require.Error(t, err)
	assert.Equal(t, "CONTENT_POLICY category: Category must be Fiction or Non-Fiction.", err.Error())

	_, err = env.runErr("post", "create", "--title", "Top", "--content", "too short", "--category", "Fiction")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_LENGTH content")

	out = env.run("post", "update", id, "--summary", "Now summarised.")
	assert.Contains(t, out, "Updated post")
}

func TestCLI_Check(t *testing.T) {
	env := newTestEnv(t)
	env.run("migrate")
	env.run("author", "create", "--name", "Stored")

	good := env.writeFile("good.yaml", `
authors:
  - name: Fresh
    phone_number: "5551234567"
posts:
  - title: Guess Again
    content: "`+body+`"
    category: Fiction
`)
	out := env.run("check", good)
	assert.Contains(t, out, "authors[0]: ok")
	assert.Contains(t, out, "posts[0]: ok")

	bad := env.writeFile("bad.yaml", `
authors:
  - name: Stored
  - name: Twin
  - name: Twin
posts:
  - title: Hello
    content: "`+body+`"
    category: Fiction
`)
	out, err := env.runErr("check", bad)
	require.Error(t, err)
	assert.Equal(t, "3 of 4 records invalid", err.Error())
	assert.Contains(t, out, "authors[0]: DUPLICATE_VALUE name")
	assert.Contains(t, out, "authors[1]: ok")
	assert.Contains(t, out, "authors[2]: DUPLICATE_VALUE name")
	assert.Contains(t, out, "posts[0]: CONTENT_POLICY title")

	// check never writes.
	out = env.run("author", "create", "--name", "Fresh")
	assert.Contains(t, out, "Created author")
}

func TestCLI_InvalidOutputFormat(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runErr("migrate", "-o", "xml")
	assert.Error(t, err)
}
