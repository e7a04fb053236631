package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/vfsh/internal/metrics"
	"github.com/aretw0/vfsh/pkg/domain"
	"github.com/aretw0/vfsh/pkg/vpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	m := metrics.New()
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnCommand(ctx, &domain.CommandEvent{Verb: "ls", Outcome: "ok", Duration: time.Millisecond})
	hooks.OnCommand(ctx, &domain.CommandEvent{Verb: "ls", Outcome: "ok", Duration: time.Millisecond})
	hooks.OnCommand(ctx, &domain.CommandEvent{
		Verb:    "cd",
		Outcome: "not_found",
		Err:     domain.NewCommandError(domain.ErrNotFound, vpath.ErrEscape, "Error: directory '..' not found or access denied."),
	})

	out := filepath.Join(t.TempDir(), "vfsh.prom")
	require.NoError(t, m.WriteTextfile(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, `vfsh_commands_total{outcome="ok",verb="ls"} 2`)
	assert.Contains(t, text, `vfsh_commands_total{outcome="not_found",verb="cd"} 1`)
	assert.Contains(t, text, `vfsh_command_duration_seconds_count{verb="ls"} 2`)
	assert.Contains(t, text, "vfsh_sandbox_escapes_total 1")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a, b := metrics.New(), metrics.New()
	a.Hooks().OnCommand(context.Background(), &domain.CommandEvent{Verb: "tree", Outcome: "ok"})

	families, err := b.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		assert.NotEqual(t, "vfsh_commands_total", f.GetName(), "vectors without samples are not gathered")
	}
}

func TestMetrics_WriteTextfileError(t *testing.T) {
	err := metrics.New().WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	assert.Error(t, err)
}
