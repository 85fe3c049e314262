package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/catalog/internal/config"
	"github.com/five82/catalog/internal/prefs"
)

type harness struct {
	config string
	prefs  string
}

func newHarness(t *testing.T) harness {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf("data_dir = %q\n", filepath.Join(dir, "data"))
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o644))
	return harness{config: configPath, prefs: filepath.Join(dir, "prefs.toml")}
}

func (h harness) exec(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", h.config, "--prefs", h.prefs}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

var addedID = regexp.MustCompile(`^added (\d+) `)

func (h harness) add(t *testing.T, name, category, price string) string {
	t.Helper()
	out, err := h.exec(t, "add", "--name", name, "--category", category, "--price", price)
	require.NoError(t, err)
	m := addedID.FindStringSubmatch(out)
	require.Len(t, m, 2, "unexpected output %q", out)
	return m[1]
}

func TestAddAndList(t *testing.T) {
	h := newHarness(t)
	h.add(t, "Table", "Furniture", "200")
	h.add(t, "Apple", "Fruit", "1")
	h.add(t, "Chair", "Furniture", "50")
	h.add(t, "Banana", "Fruit", "2")

	out, err := h.exec(t, "list")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Apple"), strings.Index(out, "Table"))
	assert.Contains(t, out, "4 of 4 products")

	out, err = h.exec(t, "list", "--search", "furn", "--sort", "price", "--desc")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Table"), strings.Index(out, "Chair"))
	assert.NotContains(t, out, "Apple")
	assert.Contains(t, out, "2 of 4 products")

	out, err = h.exec(t, "list", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Table")
	assert.NotContains(t, out, "Chair")
	assert.Contains(t, out, "page 2/2")
}

func TestAddRejectsInvalidInput(t *testing.T) {
	h := newHarness(t)

	_, err := h.exec(t, "add", "--name", "Chair1", "--category", "Furniture", "--price", "10")
	assert.ErrorContains(t, err, "name must contain letters only")

	_, err = h.exec(t, "add", "--name", "Chair")
	assert.ErrorContains(t, err, "all fields are required")

	out, err := h.exec(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no products")
}

func TestEditAndRemove(t *testing.T) {
	h := newHarness(t)
	id := h.add(t, "Chair", "Furniture", "10")

	out, err := h.exec(t, "edit", id, "--price", "12")
	require.NoError(t, err)
	assert.Equal(t, "updated "+id+" Chair\n", out)

	out, err = h.exec(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "12")

	out, err = h.exec(t, "rm", id)
	require.NoError(t, err)
	assert.Equal(t, "removed "+id+" Chair\n", out)

	_, err = h.exec(t, "rm", id)
	assert.ErrorContains(t, err, "product not found")

	_, err = h.exec(t, "edit", "abc")
	assert.ErrorContains(t, err, "invalid product id")
}

func TestListRejectsUnknownSortKey(t *testing.T) {
	h := newHarness(t)
	_, err := h.exec(t, "list", "--sort", "color")
	assert.ErrorContains(t, err, "unknown sort key")
}

func TestPathFlagsShowDefaults(t *testing.T) {
	root := newRootCmd()
	assert.Contains(t, root.PersistentFlags().Lookup("config").Usage, config.DefaultPath())
	assert.Contains(t, root.PersistentFlags().Lookup("prefs").Usage, prefs.DefaultPath())
}
