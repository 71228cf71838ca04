package resolver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lode/internal/adapters/fs"
	"go.trai.ch/lode/internal/adapters/script"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/lode/internal/core/ports/mocks"
	"go.trai.ch/lode/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

// fixture wires a resolver against the reference engine and the real file
// system adapters.
type fixture struct {
	engCtx ports.EngineContext
	res    *resolver.Resolver
	dir    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	engCtx, err := script.NewEngine().NewContext()
	require.NoError(t, err)

	res := resolver.New(engCtx, fs.NewLoader(log), fs.NewNormalizer())
	t.Cleanup(func() {
		_ = res.Close()
		_ = engCtx.Close()
	})

	return &fixture{
		engCtx: engCtx,
		res:    res,
		dir:    t.TempDir(),
	}
}

func (f *fixture) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func refCount(t *testing.T, v domain.Value) int64 {
	t.Helper()
	sv, ok := v.(*script.Value)
	require.True(t, ok)
	return sv.RefCount()
}

func TestResolve_RelativeToReferrer(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "a.js", `import "./b.js";`)
	f.writeFile(t, "b.js", `const x = 1;`)

	ctx := context.Background()

	a, err := f.res.Resolve(ctx, filepath.Join(f.dir, "a.js"), nil)
	require.NoError(t, err)
	defer a.Release()

	b, err := f.res.Resolve(ctx, "b.js", a)
	require.NoError(t, err)
	defer b.Release()

	meta, ok := f.engCtx.ModuleData(b)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(f.dir, "b.js"), meta.CanonicalPath.String())
	assert.Equal(t, f.dir+string(os.PathSeparator), meta.BasePath())
}

func TestResolve_MissingFileBecomesSyntaxError(t *testing.T) {
	f := newFixture(t)

	errVal := f.res.HostResolve(context.Background(), filepath.Join(f.dir, "missing.js"), nil)
	defer errVal.Release()

	sv, ok := errVal.(*script.Value)
	require.True(t, ok)
	assert.False(t, errVal.IsObject())
	assert.Equal(t, "SyntaxError: Module file not found", sv.Message())
}

func TestResolve_AtMostOneParse(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "a.js", `const x = 1;`)

	ctx := context.Background()
	abs := filepath.Join(f.dir, "a.js")

	first, err := f.res.Resolve(ctx, abs, nil)
	require.NoError(t, err)
	defer first.Release()

	// An equivalent but differently spelled specifier hits the same entry.
	second, err := f.res.Resolve(ctx, filepath.Join(f.dir, ".", "a.js"), nil)
	require.NoError(t, err)
	defer second.Release()

	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, 1, f.res.Len())
}

func TestResolve_LoadsAndParsesExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockSourceLoader(ctrl)
	loader.EXPECT().Load("/proj/a.js").Return([]byte(`const x = 1;`), nil).Times(1)

	engCtx, err := script.NewEngine().NewContext()
	require.NoError(t, err)
	defer engCtx.Close() //nolint:errcheck // Cleanup in test

	res := resolver.New(engCtx, loader, fs.NewNormalizer())
	defer res.Close() //nolint:errcheck // Cleanup in test

	ctx := context.Background()
	for range 3 {
		module, err := res.Resolve(ctx, "/proj/a.js", nil)
		require.NoError(t, err)
		module.Release()
	}
}

func TestResolve_CrossRealmIsolationAndEviction(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "a.js", `const x = 1;`)

	engCtx := f.engCtx.(*script.Context)
	ctx := context.Background()
	abs := filepath.Join(f.dir, "a.js")

	realm1 := f.engCtx.Global()
	inR1, err := f.res.Resolve(ctx, abs, nil)
	require.NoError(t, err)
	defer inR1.Release()

	realm2 := engCtx.NewRealm()
	require.NoError(t, engCtx.SwitchRealm(realm2))

	inR2, err := f.res.Resolve(ctx, abs, nil)
	require.NoError(t, err)
	defer inR2.Release()

	// Same path, distinct realms, distinct identities.
	assert.NotEqual(t, inR1.ID(), inR2.ID())
	assert.Equal(t, 2, f.res.Len())

	r2Refs := refCount(t, inR2)

	assert.Equal(t, 1, f.res.EvictRealm(realm1))
	assert.Equal(t, 1, f.res.Len())

	// The surviving realm's entry and its reference counts are untouched.
	assert.Equal(t, r2Refs, refCount(t, inR2))

	// A fresh resolution under realm1 parses again.
	require.NoError(t, engCtx.SwitchRealm(realm1))
	again, err := f.res.Resolve(ctx, abs, nil)
	require.NoError(t, err)
	defer again.Release()
	assert.NotEqual(t, inR1.ID(), again.ID())
	_ = realm1
}

func TestResolve_NoInsertOnFailure(t *testing.T) {
	t.Run("normalize failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		normalizer := mocks.NewMockPathNormalizer(ctrl)
		normalizer.EXPECT().Normalize("a.js", "").Return("", domain.ErrBaseUnresolvable)
		loader := mocks.NewMockSourceLoader(ctrl)

		engCtx, err := script.NewEngine().NewContext()
		require.NoError(t, err)
		defer engCtx.Close() //nolint:errcheck // Cleanup in test

		res := resolver.New(engCtx, loader, normalizer)
		defer res.Close() //nolint:errcheck // Cleanup in test

		_, err = res.Resolve(context.Background(), "a.js", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBaseUnresolvable)
		assert.Equal(t, 0, res.Len())
	})

	t.Run("load failure", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.res.Resolve(context.Background(), filepath.Join(f.dir, "missing.js"), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSourceNotFound)
		assert.Equal(t, 0, f.res.Len())
	})

	t.Run("parse failure", func(t *testing.T) {
		f := newFixture(t)
		f.writeFile(t, "bad.js", `import x from "./unterminated`)

		realm := f.engCtx.Global()
		realmRefs := refCount(t, realm)

		_, err := f.res.Resolve(context.Background(), filepath.Join(f.dir, "bad.js"), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrParse)
		assert.Equal(t, 0, f.res.Len())

		// No realm reference leaked on the failure path.
		assert.Equal(t, realmRefs, refCount(t, realm))
	})
}

func TestResolve_CacheOwnsOneReferencePerEntry(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "a.js", `const x = 1;`)

	ctx := context.Background()
	abs := filepath.Join(f.dir, "a.js")

	module, err := f.res.Resolve(ctx, abs, nil)
	require.NoError(t, err)

	// One reference held by the cache, one by the caller.
	assert.Equal(t, int64(2), refCount(t, module))

	module.Release()
	assert.Equal(t, int64(1), refCount(t, module))

	// Close evicts everything, releasing the cache's reference.
	require.NoError(t, f.res.Close())
	assert.Equal(t, int64(0), refCount(t, module))
}

func TestResolve_CyclicGraphTerminates(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "a.js", `import "./b.js";`)
	f.writeFile(t, "b.js", `import "./a.js";`)

	ctx := context.Background()

	a, err := f.res.Resolve(ctx, filepath.Join(f.dir, "a.js"), nil)
	require.NoError(t, err)
	defer a.Release()

	b, err := f.res.Resolve(ctx, "b.js", a)
	require.NoError(t, err)
	defer b.Release()

	// b's request for a hits the cache: identical module identity.
	aAgain, err := f.res.Resolve(ctx, "a.js", b)
	require.NoError(t, err)
	defer aAgain.Release()

	assert.Equal(t, a.ID(), aAgain.ID())
	assert.Equal(t, 2, f.res.Len())
}

func TestResolve_CanceledContext(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "a.js", `const x = 1;`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.res.Resolve(ctx, filepath.Join(f.dir, "a.js"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, f.res.Len())
}
