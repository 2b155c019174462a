package query

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/marmos91/mountinfo/pkg/mounts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Helpers
// ============================================================================

var scenario = mounts.Static{
	{Source: "/dev/sda1", Target: "/", FSType: "ext4", Options: "rw,relatime"},
	{Source: "tmpfs", Target: "/run", FSType: "tmpfs", Options: "rw,nosuid"},
}

func runCapture(src mounts.Source, f *Filter) (string, Stats, error) {
	var buf bytes.Buffer
	stats, err := Run(src, f, LineEmitter(&buf), nil)
	return buf.String(), stats, err
}

type recorder struct {
	decisions []Decision
	stats     []Stats
}

func (r *recorder) ObserveDecision(_ mounts.Record, d Decision) {
	r.decisions = append(r.decisions, d)
}

func (r *recorder) ObserveStats(s Stats) {
	r.stats = append(r.stats, s)
}

type failingEmitter struct {
	emitErr  error
	closeErr error
	emitted  []string
	closed   bool
}

func (e *failingEmitter) Emit(v string) error {
	if e.emitErr != nil {
		return e.emitErr
	}
	e.emitted = append(e.emitted, v)
	return nil
}

func (e *failingEmitter) Close() error {
	e.closed = true
	return e.closeErr
}

// ============================================================================
// Scenario Tests
// ============================================================================

func TestRun_Scenario(t *testing.T) {
	t.Parallel()

	t.Run("select fstype without filters", func(t *testing.T) {
		t.Parallel()
		out, stats, err := runCapture(scenario, &Filter{Select: FieldFSType})
		require.NoError(t, err)
		assert.Equal(t, "tmpfs\next4\n", out)
		assert.Equal(t, 2, stats.Records)
		assert.Equal(t, 2, stats.Emitted)
	})

	t.Run("select fstype with matching fstype regex", func(t *testing.T) {
		t.Parallel()
		out, _, err := runCapture(scenario, &Filter{Select: FieldFSType, FSTypeInclude: MustCompilePattern("^ext")})
		require.NoError(t, err)
		assert.Equal(t, "ext4\n", out)
	})

	t.Run("select fstype with unmatched fstype regex", func(t *testing.T) {
		t.Parallel()
		out, stats, err := runCapture(scenario, &Filter{Select: FieldFSType, FSTypeInclude: MustCompilePattern("^xfs")})
		assert.ErrorIs(t, err, ErrNoMatch)
		assert.Empty(t, out)
		assert.Equal(t, 0, stats.Emitted)
		assert.Equal(t, 2, stats.Rejected[StageFSTypeInclude])
	})

	t.Run("default selects mount points", func(t *testing.T) {
		t.Parallel()
		out, _, err := runCapture(scenario, &Filter{})
		require.NoError(t, err)
		assert.Equal(t, "/run\n/\n", out)
	})
}

// ============================================================================
// Ordering and Deduplication
// ============================================================================

func TestRun_DescendingAndDistinct(t *testing.T) {
	t.Parallel()

	src := mounts.Static{
		{Source: "/dev/sda1", Target: "/", FSType: "ext4", Options: "rw"},
		{Source: "/dev/sda2", Target: "/home", FSType: "ext4", Options: "rw"},
		{Source: "proc", Target: "/proc", FSType: "proc", Options: "rw"},
		{Source: "/dev/sdb1", Target: "/boot", FSType: "vfat", Options: "rw"},
		{Source: "sysfs", Target: "/sys", FSType: "sysfs", Options: "rw"},
	}

	out, stats, err := runCapture(src, &Filter{Select: FieldFSType})
	require.NoError(t, err)
	assert.Equal(t, "vfat\nsysfs\nproc\next4\n", out)
	assert.Equal(t, 5, stats.Records)
	assert.Equal(t, 4, stats.Selected)
}

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()

	f := &Filter{Select: FieldSource}
	first, _, err := runCapture(scenario, f)
	require.NoError(t, err)
	second, _, err := runCapture(scenario, f)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// ============================================================================
// Point Filter
// ============================================================================

func TestRun_PointFilter(t *testing.T) {
	t.Parallel()

	src := mounts.Static{
		{Source: "/dev/sda2", Target: "/home", FSType: "ext4", Options: "rw"},
		{Source: "tmpfs", Target: "/tmp", FSType: "tmpfs", Options: "rw"},
	}

	t.Run("include applies to selected value", func(t *testing.T) {
		t.Parallel()
		out, _, err := runCapture(src, &Filter{Select: FieldFSType, PointInclude: MustCompilePattern("^ext")})
		require.NoError(t, err)
		assert.Equal(t, "ext4\n", out)
	})

	t.Run("include does not see the mount point when another field is selected", func(t *testing.T) {
		t.Parallel()
		out, _, err := runCapture(src, &Filter{Select: FieldFSType, PointInclude: MustCompilePattern("^/home$")})
		assert.ErrorIs(t, err, ErrNoMatch)
		assert.Empty(t, out)
	})

	t.Run("exclude skips without stopping", func(t *testing.T) {
		t.Parallel()
		out, stats, err := runCapture(src, &Filter{PointExclude: MustCompilePattern("^/tmp")})
		require.NoError(t, err)
		assert.Equal(t, "/home\n", out)
		assert.Equal(t, 2, stats.Selected)
		assert.Equal(t, 1, stats.Emitted)
	})

	t.Run("include then exclude", func(t *testing.T) {
		t.Parallel()
		f := &Filter{PointInclude: MustCompilePattern("^/"), PointExclude: MustCompilePattern("home")}
		out, _, err := runCapture(src, f)
		require.NoError(t, err)
		assert.Equal(t, "/tmp\n", out)
	})
}

// ============================================================================
// Quiet and Exit Status
// ============================================================================

func TestRun_Quiet(t *testing.T) {
	t.Parallel()

	t.Run("matching record succeeds with no output", func(t *testing.T) {
		t.Parallel()
		e := &failingEmitter{}
		stats, err := Run(scenario, &Filter{Quiet: true}, e, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Emitted)
		assert.Empty(t, e.emitted)
		assert.False(t, e.closed)
	})

	t.Run("no match still fails", func(t *testing.T) {
		t.Parallel()
		_, err := Run(scenario, &Filter{Quiet: true, FSTypeInclude: MustCompilePattern("nosuchfs")}, nil, nil)
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("nil emitter behaves as quiet", func(t *testing.T) {
		t.Parallel()
		stats, err := Run(scenario, &Filter{}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Emitted)
	})
}

func TestRun_EmptyTable(t *testing.T) {
	t.Parallel()

	out, stats, err := runCapture(mounts.Static{}, &Filter{})
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Empty(t, out)
	assert.Equal(t, 0, stats.Records)
}

// ============================================================================
// Errors
// ============================================================================

func TestRun_SourceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cause error
		code  ErrorCode
	}{
		{"mount table", fmt.Errorf("%w: open /nope: no such file", mounts.ErrMountTable), ErrMountTable},
		{"enumeration", fmt.Errorf("%w: getfsstat: EIO", mounts.ErrEnumeration), ErrEnumeration},
		{"unsupported", fmt.Errorf("%w: plan9", mounts.ErrUnsupportedPlatform), ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := mounts.SourceFunc(func(func(mounts.Record)) error { return tt.cause })

			out, _, err := runCapture(src, &Filter{})
			require.Error(t, err)
			assert.True(t, IsCode(err, tt.code), "got %v", err)
			assert.ErrorIs(t, err, tt.cause)
			assert.NotErrorIs(t, err, ErrNoMatch)
			assert.Empty(t, out)
		})
	}

	t.Run("unclassified", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		src := mounts.SourceFunc(func(func(mounts.Record)) error { return boom })

		_, _, err := runCapture(src, &Filter{})
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "enumerate mounts")
	})

	t.Run("failure after partial enumeration emits nothing", func(t *testing.T) {
		t.Parallel()
		src := mounts.SourceFunc(func(visit func(mounts.Record)) error {
			visit(scenario[0])
			return mounts.ErrEnumeration
		})

		out, _, err := runCapture(src, &Filter{})
		assert.True(t, IsCode(err, ErrEnumeration))
		assert.Empty(t, out)
	})
}

func TestRun_OutputErrors(t *testing.T) {
	t.Parallel()

	t.Run("emit", func(t *testing.T) {
		t.Parallel()
		e := &failingEmitter{emitErr: errors.New("broken pipe")}
		_, err := Run(scenario, &Filter{}, e, nil)
		assert.True(t, IsCode(err, ErrOutput))
		assert.Contains(t, err.Error(), "broken pipe")
	})

	t.Run("close", func(t *testing.T) {
		t.Parallel()
		e := &failingEmitter{closeErr: errors.New("disk full")}
		_, err := Run(scenario, &Filter{}, e, nil)
		assert.True(t, IsCode(err, ErrOutput))
		assert.Equal(t, []string{"/run", "/"}, e.emitted)
	})
}

// ============================================================================
// Observer
// ============================================================================

func TestRun_Observer(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	f := &Filter{Select: FieldFSType, NodeExclude: MustCompilePattern("^tmpfs$")}
	stats, err := Run(scenario, f, nil, rec)
	require.NoError(t, err)

	require.Len(t, rec.decisions, 2)
	assert.Equal(t, Decision{Outcome: Accept, Stage: StageSelect, Value: "ext4"}, rec.decisions[0])
	assert.Equal(t, StageNodeExclude, rec.decisions[1].Stage)

	require.Len(t, rec.stats, 1)
	assert.Equal(t, stats, rec.stats[0])
	assert.Equal(t, 1, stats.Rejected[StageNodeExclude])
}

func TestSelect_Ascending(t *testing.T) {
	t.Parallel()

	set, stats, err := Select(scenario, &Filter{Select: FieldOptions}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"rw,nosuid", "rw,relatime"}, set.Values())
	assert.Equal(t, 2, stats.Selected)
}
