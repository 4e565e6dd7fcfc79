package app

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/weave/component"
	"github.com/vk/weave/internal/testutil"
)

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer) {
	t.Helper()
	config, err := NewConfig(cfg)
	require.NoError(t, err)
	var out bytes.Buffer
	return NewApp(&out, config), &out
}

func TestBuild_Demo(t *testing.T) {
	// --- Arrange ---
	a, out := newTestApp(t, Config{Demo: true, LogLevel: "debug"})
	demo := a.Controller().(*DemoController)
	day := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	demo.now = func() time.Time { return day }

	// --- Act ---
	root, err := a.Build(context.Background(), "")

	// --- Assert ---
	require.NoError(t, err)
	assert.Same(t, root, a.Root())

	title, ok := component.FindByID(root, "title")
	require.True(t, ok)
	assert.Equal(t, "<b>weave</b> demo", title.(*component.Label).Value())

	date, ok := component.FindByID(root, "date")
	require.True(t, ok)
	assert.Equal(t, day, date.(*component.DateField).Value())

	people, ok := component.FindByID(root, "person-list")
	require.True(t, ok)
	assert.Equal(t, 2, people.(*component.Table).CollectionDataSource().Size())

	require.NotNil(t, demo.Status)
	button, ok := component.FindByID(root, "button")
	require.True(t, ok)
	button.(*component.Button).Click()

	field, ok := component.FindByID(root, "value-field")
	require.True(t, ok)
	require.NoError(t, field.(*component.TextField).SetValue("42"))

	assert.Equal(t, []string{
		`Button "button" clicked`,
		`Value of "value-field" is now 42`,
	}, demo.Notifications())
	assert.Equal(t, `Value of "value-field" is now 42`, demo.Status.Value())
	assert.Contains(t, out.String(), "notifications=2")

	toolbar, ok := component.FindByID(root, "toolbar")
	require.True(t, ok)
	another, ok := component.FindByID(root, "another-button")
	require.True(t, ok)
	assert.Equal(t, component.MiddleRight, toolbar.(*component.HorizontalLayout).ComponentAlignment(another))
}

func TestBuild_FileWithMessages(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"views/main.yaml": "type: Label\nattributes:\n  id: hello\n  caption: $greeting\n",
		"messages.yaml":   "greeting: Hello there\n",
	})
	a, _ := newTestApp(t, Config{
		LayoutPath:   filepath.Join(dir, "views"),
		MessagesPath: filepath.Join(dir, "messages.yaml"),
	})

	paths, err := a.LayoutPaths()
	require.NoError(t, err)
	require.Len(t, paths, 1)

	root, err := a.Build(context.Background(), paths[0])
	require.NoError(t, err)
	assert.Equal(t, "Hello there", root.(*component.Label).Caption())
	assert.Nil(t, a.Controller())
}

func TestBuild_Errors(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"broken.hcl":  `component "Label" {`,
		"unbound.hcl": "component \"VerticalLayout\" {\n}\n",
	})

	a, _ := newTestApp(t, Config{LayoutPath: dir})
	_, err := a.Build(context.Background(), filepath.Join(dir, "broken.hcl"))
	require.ErrorContains(t, err, "failed to build layout")

	// The demo controller expects components the layout does not declare.
	demo, _ := newTestApp(t, Config{LayoutPath: dir, Demo: true})
	_, err = demo.Build(context.Background(), filepath.Join(dir, "unbound.hcl"))
	require.ErrorContains(t, err, "failed to bind layout")

	withMissingMessages, _ := newTestApp(t, Config{LayoutPath: dir, MessagesPath: filepath.Join(dir, "none.yaml")})
	_, err = withMissingMessages.Build(context.Background(), filepath.Join(dir, "unbound.hcl"))
	require.ErrorContains(t, err, "failed to read messages")
}

func TestLayoutPaths(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"a.hcl":         "",
		"nested/b.yml":  "",
		"notes.txt":     "",
		"empty/.keep":   "",
		"nested/c.YAML": "",
	})

	a, _ := newTestApp(t, Config{LayoutPath: dir})
	paths, err := a.LayoutPaths()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "nested", "b.yml"),
		filepath.Join(dir, "nested", "c.YAML"),
	}, paths)

	empty, _ := newTestApp(t, Config{LayoutPath: filepath.Join(dir, "empty")})
	_, err = empty.LayoutPaths()
	require.ErrorContains(t, err, "no layout found")

	demo, _ := newTestApp(t, Config{Demo: true})
	paths, err = demo.LayoutPaths()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestRun_PrintsEveryLayout(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"one.hcl":  "component \"Label\" {\n  id = \"first\"\n}\n",
		"two.yaml": "type: Button\nattributes:\n  id: second\n",
	})
	a, out := newTestApp(t, Config{LayoutPath: dir})

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), "#first")
	assert.Contains(t, out.String(), "#second")
}

func TestRun_SingleLayoutWhenServing(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"one.hcl": "component \"Label\" {}\n",
		"two.hcl": "component \"Label\" {}\n",
	})
	a, _ := newTestApp(t, Config{LayoutPath: dir, ServePort: 8089})

	err := a.Run(context.Background())

	require.ErrorContains(t, err, "needs a single layout")
}
