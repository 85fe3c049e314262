package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/catalog/internal/catalog"
	"github.com/five82/catalog/internal/logtail"
	"github.com/five82/catalog/internal/state"
)

func testOptions(t *testing.T, backend string) Options {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf("data_dir = %q\nbackend = %q\nslot_key = \"productos\"\n", filepath.Join(dir, "data"), backend)
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o644))
	return Options{
		ConfigPath: configPath,
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
	}
}

func openEnv(t *testing.T, opts Options) *Env {
	t.Helper()
	env, err := Open(context.Background(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = env.Close() })
	return env
}

func TestOpen_PersistsAcrossRestarts(t *testing.T) {
	for _, backend := range []string{"file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			opts := testOptions(t, backend)

			env, err := Open(ctx, opts)
			require.NoError(t, err)
			added, err := env.Add(ctx, catalog.Draft{Name: "Lamp", Category: "Lighting", Price: "15"})
			require.NoError(t, err)
			require.NoError(t, env.Close())

			reopened := openEnv(t, opts)
			assert.Equal(t, []catalog.Product{added}, reopened.Store.Products())
		})
	}
}

func TestOpen_WritesStructuredLog(t *testing.T) {
	ctx := context.Background()
	opts := testOptions(t, "file")
	opts.Verbose = true

	env, err := Open(ctx, opts)
	require.NoError(t, err)
	_, err = env.Add(ctx, catalog.Draft{Name: "Desk", Category: "Furniture", Price: "80"})
	require.NoError(t, err)
	require.NoError(t, env.Close())

	entries, err := logtail.Read(env.Config.LogPath(), 50)
	require.NoError(t, err)
	var messages []string
	for _, e := range entries {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "catalog opened")
	assert.Contains(t, messages, "product added")
}

func TestOpen_BadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("backend = \"redis\"\n"), 0o644))

	_, err := Open(context.Background(), Options{ConfigPath: configPath})
	assert.ErrorContains(t, err, "load config")
}

func seed(t *testing.T, env *Env, drafts ...catalog.Draft) []catalog.Product {
	t.Helper()
	out := make([]catalog.Product, 0, len(drafts))
	for _, d := range drafts {
		p, err := env.Add(context.Background(), d)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestList(t *testing.T) {
	env := openEnv(t, testOptions(t, "file"))
	seed(t, env,
		catalog.Draft{Name: "Table", Category: "Furniture", Price: "200"},
		catalog.Draft{Name: "Apple", Category: "Fruit", Price: "1"},
		catalog.Draft{Name: "chair", Category: "Furniture", Price: "50"},
		catalog.Draft{Name: "Banana", Category: "Fruit", Price: "2"},
	)

	names := func(ps []catalog.Product) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.Name
		}
		return out
	}

	all := env.List(ListOptions{})
	assert.Equal(t, 4, all.Total)
	assert.Equal(t, []string{"Apple", "Banana", "chair", "Table"}, names(all.Products))

	furniture := env.List(ListOptions{Search: "FURN", Sort: catalog.SortByPrice, Desc: true})
	assert.Equal(t, 2, furniture.Matches)
	assert.Equal(t, []string{"Table", "chair"}, names(furniture.Products))

	page2 := env.List(ListOptions{Page: 2})
	assert.Equal(t, 2, page2.Page.TotalPages)
	assert.Equal(t, []string{"Table"}, names(page2.Products))

	beyond := env.List(ListOptions{Page: 5})
	assert.Empty(t, beyond.Products)
}

func TestAdd_ValidationFailureWritesNothing(t *testing.T) {
	env := openEnv(t, testOptions(t, "file"))

	_, err := env.Add(context.Background(), catalog.Draft{Name: "Chair1", Category: "Furniture", Price: "10"})
	assert.ErrorIs(t, err, catalog.ErrNameLetters)
	assert.Equal(t, 0, env.Store.Len())

	_, err = os.Stat(env.Config.DataFilePath())
	assert.True(t, os.IsNotExist(err))
}

func TestEdit(t *testing.T) {
	ctx := context.Background()
	env := openEnv(t, testOptions(t, "file"))
	p := seed(t, env, catalog.Draft{Name: "Chair", Category: "Furniture", Price: "10"})[0]

	updated, err := env.Edit(ctx, p.ID, catalog.Draft{Price: "12"})
	require.NoError(t, err)
	assert.Equal(t, catalog.Product{ID: p.ID, Name: "Chair", Category: "Furniture", Price: 12}, updated)

	_, err = env.Edit(ctx, p.ID, catalog.Draft{Price: "-3"})
	assert.ErrorIs(t, err, catalog.ErrPriceInvalid)

	_, err = env.Edit(ctx, p.ID+1, catalog.Draft{Name: "Stool"})
	assert.ErrorIs(t, err, state.ErrNotFound)
	assert.Equal(t, []catalog.Product{updated}, env.Store.Products())
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	env := openEnv(t, testOptions(t, "sqlite"))
	ps := seed(t, env,
		catalog.Draft{Name: "Chair", Category: "Furniture", Price: "10"},
		catalog.Draft{Name: "Lamp", Category: "Lighting", Price: "15"},
	)

	removed, err := env.Remove(ctx, ps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, ps[0], removed)
	assert.Equal(t, []catalog.Product{ps[1]}, env.Store.Products())

	_, err = env.Remove(ctx, ps[0].ID)
	assert.ErrorIs(t, err, state.ErrNotFound)
	assert.Equal(t, 1, env.Store.Len())
}

func TestEnvCloseNil(t *testing.T) {
	var env *Env
	assert.NoError(t, env.Close())
}
