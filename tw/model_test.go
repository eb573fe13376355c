package tw

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelRelevanceGrowsWithUsage(t *testing.T) {
	m := NewModel(DefaultTheme(V3))

	for _, raw := range []string{"p-4", "hover:bg-[#112233]", "foo-bar"} {
		t.Run(raw, func(t *testing.T) {
			prev := m.Resolve(raw).Relevance
			for i := 0; i < 2000; i++ {
				m.RecordUsage(raw)
				got := m.Resolve(raw).Relevance
				require.GreaterOrEqual(t, got, prev)
				prev = got
			}
		})
	}

	// The usage term saturates.
	fresh := NewModel(DefaultTheme(V3))
	assert.Equal(t, float64(1000), fresh.Resolve("p-4").Relevance)
	assert.Equal(t, float64(1100), m.Resolve("p-4").Relevance)
}

func TestModelRecordUsageCountsTheBase(t *testing.T) {
	m := NewModel(nil)

	assert.Equal(t, 1, m.RecordUsage("p-4"))
	assert.Equal(t, 2, m.RecordUsage("md:hover:p-4"))
	assert.Equal(t, 1, m.RecordUsage("dark:flex"))

	assert.Equal(t, []string{"p-4", "flex"}, m.MostUsed(5))
	assert.InDelta(t, 10+10*math.Log2(3), m.Resolve("hover:p-4").Relevance, 1e-9)

	m.ResetUsage()
	assert.Empty(t, m.MostUsed(5))
	assert.Equal(t, float64(10), m.Resolve("hover:p-4").Relevance)
}

func TestModelComplete(t *testing.T) {
	m := NewModel(DefaultTheme(V3))

	all := m.Complete("bg-slate-", 0)
	require.Len(t, all, 11)
	for _, pc := range all {
		assert.True(t, strings.HasPrefix(pc.Raw, "bg-slate-"))
		assert.Equal(t, CategoryBackground, pc.Category)
	}

	m.RecordUsage("bg-slate-700")
	top := m.Complete("md:bg-slate-", 3)
	require.Len(t, top, 3)
	assert.Equal(t, "md:bg-slate-700", top[0].Raw)
	assert.Equal(t, []string{"md"}, top[0].Variants)
	assert.Equal(t, "md:bg-slate-100", top[1].Raw)
	assert.Equal(t, "md:bg-slate-200", top[2].Raw)

	assert.Empty(t, m.Complete("zzz", 10))
}

func TestModelSuggest(t *testing.T) {
	m := NewModel(DefaultTheme(V3))

	got := m.Suggest("hover:bg-slat-500", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, Suggestion{Class: "hover:bg-slate-500", Distance: 1}, got[0])
}

func TestModelRebuild(t *testing.T) {
	m := NewModel(DefaultTheme(V3))
	require.Equal(t, uint64(1), m.Generation())
	m.RecordUsage("p-4")

	m.Rebuild(MergeTheme(Tree{"theme": Tree{"extend": Tree{"colors": Tree{"brand": "#123456"}}}}, nil, nil))

	assert.Equal(t, uint64(2), m.Generation())
	assert.Equal(t, "#123456", m.Resolve("bg-brand").Val())
	assert.Equal(t, 1, m.Ledger().Count("p-4"), "usage survives rebuilds")
}

func TestModelRebuildAsync(t *testing.T) {
	t.Run("publishes", func(t *testing.T) {
		m := NewModel(DefaultTheme(V3))
		err := <-m.RebuildAsync(context.Background(), DefaultTheme(V4))
		require.NoError(t, err)
		assert.Equal(t, V4, m.Version())
		assert.Equal(t, uint64(2), m.Generation())
	})

	t.Run("cancelled", func(t *testing.T) {
		m := NewModel(DefaultTheme(V3))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := <-m.RebuildAsync(ctx, DefaultTheme(V4))
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, V3, m.Version())
		assert.Equal(t, uint64(1), m.Generation())
	})

	t.Run("older rebuild never wins", func(t *testing.T) {
		m := NewModel(DefaultTheme(V3))
		first := m.RebuildAsync(context.Background(), DefaultTheme(V2))
		second := m.RebuildAsync(context.Background(), DefaultTheme(V4))

		require.NoError(t, <-second)
		if err := <-first; err != nil {
			assert.ErrorIs(t, err, ErrSuperseded)
		}
		assert.Equal(t, V4, m.Version())
		assert.Equal(t, uint64(3), m.Generation())
	})

	t.Run("cancelled newer rebuild does not block an older one", func(t *testing.T) {
		m := NewModel(DefaultTheme(V3))
		brand := MergeTheme(Tree{"theme": Tree{"extend": Tree{"colors": Tree{"brand": "#123456"}}}}, nil, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		older := m.RebuildAsync(context.Background(), brand)
		newer := m.RebuildAsync(ctx, DefaultTheme(V3))

		require.ErrorIs(t, <-newer, context.Canceled)
		require.NoError(t, <-older)
		assert.Equal(t, "#123456", m.Resolve("bg-brand").Val())
		assert.Equal(t, uint64(2), m.Generation())
	})

	t.Run("channel closes", func(t *testing.T) {
		m := NewModel(nil)
		ch := m.RebuildAsync(context.Background(), nil)
		<-ch
		_, open := <-ch
		assert.False(t, open)
	})
}

func TestModelPinnedVersion(t *testing.T) {
	m := NewModel(DefaultTheme(V2), WithVersion(V4))
	assert.Equal(t, V4, m.Version())

	m.Rebuild(DefaultTheme(V3))
	assert.Equal(t, V4, m.Version())
}

func TestModelConcurrentReadsDuringRebuild(t *testing.T) {
	m := NewModel(DefaultTheme(V3))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				pc := m.Resolve("md:p-4")
				assert.Equal(t, "1rem", pc.Val())
				m.RecordUsage("md:p-4")
			}
		}()
	}
	for i := 0; i < 3; i++ {
		<-m.RebuildAsync(context.Background(), DefaultTheme(V3))
	}
	wg.Wait()

	assert.Equal(t, 8*200, m.Ledger().Count("p-4"))
}

func TestModelLogsBuilds(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	NewModel(nil, WithLogger(logger))

	assert.Contains(t, buf.String(), `"msg":"vocabulary built"`)
	assert.Contains(t, buf.String(), `"version":"v3"`)
}

func TestModelCSSAndTemplates(t *testing.T) {
	m := NewModel(nil)
	assert.Equal(t, ".p-4 {\n  padding: 1rem;\n}\n", m.CSS("p-4"))
	assert.NotEmpty(t, m.Templates())
	assert.Positive(t, m.Stats().CSSEntries)
}
