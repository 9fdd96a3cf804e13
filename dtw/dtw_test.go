package dtw_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixviews/dtw"
)

// naive fills the cost matrix row by row for comparison.
func naive(a, b []float64, o dtw.Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	d := make([][]float64, n+1)
	for i := range d {
		d[i] = make([]float64, m+1)
		for j := range d[i] {
			d[i][j] = inf
		}
	}
	d[0][0] = 0
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if o.Window != dtw.NoWindow && math.Abs(float64(i-j)) > float64(o.Window) {
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			d[i][j] = cost + min(d[i-1][j]+o.SlopePenalty, d[i][j-1]+o.SlopePenalty, d[i-1][j-1])
		}
	}

	return d[n][m]
}

func TestDTW_Identical(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	dist, path, err := dtw.DTW(a, a, &dtw.Options{Window: dtw.NoWindow, ReturnPath: true})
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	want := []dtw.Coord{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	if diff := cmp.Diff(want, path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestDTW_Warped(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	dist, path, err := dtw.DTW(a, b, &dtw.Options{Window: dtw.NoWindow, ReturnPath: true})
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	require.Len(t, path, 4)
	assert.Equal(t, dtw.Coord{I: 0, J: 0}, path[0])
	assert.Equal(t, dtw.Coord{I: 2, J: 3}, path[len(path)-1])
	for _, c := range path {
		assert.Equal(t, a[c.I], b[c.J], "aligned values differ at %v", c)
	}
}

func TestDTW_NilOptions(t *testing.T) {
	dist, path, err := dtw.DTW([]float64{0, 1}, []float64{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist)
	assert.Nil(t, path)
}

func TestDTW_MatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	opts := []dtw.Options{
		dtw.DefaultOptions(),
		{Window: 2},
		{Window: dtw.NoWindow, SlopePenalty: 0.5},
		{Window: 1, SlopePenalty: 0.25},
	}
	for trial := 0; trial < 40; trial++ {
		a := make([]float64, 1+rng.Intn(9))
		b := make([]float64, 1+rng.Intn(9))
		for i := range a {
			a[i] = float64(rng.Intn(10))
		}
		for i := range b {
			b[i] = float64(rng.Intn(10))
		}
		for _, o := range opts {
			got, _, err := dtw.DTW(a, b, &o)
			require.NoError(t, err)
			want := naive(a, b, o)
			if math.IsInf(want, 1) {
				assert.True(t, math.IsInf(got, 1), "a=%v b=%v opts=%+v", a, b, o)
				continue
			}
			assert.InDelta(t, want, got, 1e-9, "a=%v b=%v opts=%+v", a, b, o)
		}
	}
}

func TestDTW_PathCostMatchesDistance(t *testing.T) {
	a := []float64{0, 3, 1, 4, 1, 5}
	b := []float64{0, 1, 4, 4, 5}
	dist, path, err := dtw.DTW(a, b, &dtw.Options{Window: dtw.NoWindow, ReturnPath: true})
	require.NoError(t, err)

	var sum float64
	for k, c := range path {
		sum += math.Abs(a[c.I] - b[c.J])
		if k > 0 {
			prev := path[k-1]
			di, dj := c.I-prev.I, c.J-prev.J
			assert.True(t, di >= 0 && di <= 1 && dj >= 0 && dj <= 1 && di+dj > 0, "bad step %v -> %v", prev, c)
		}
	}
	assert.InDelta(t, dist, sum, 1e-9)
}

func TestDTW_WindowTooNarrow(t *testing.T) {
	dist, _, err := dtw.DTW([]float64{1, 2, 3, 4, 5}, []float64{1, 2}, &dtw.Options{Window: 1})
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1))

	// no path may leave the band, so none is returned
	dist, path, err := dtw.DTW([]float64{1, 2, 3, 4, 5}, []float64{1}, &dtw.Options{Window: 1, ReturnPath: true})
	assert.ErrorIs(t, err, dtw.ErrNoPath)
	assert.True(t, math.IsInf(dist, 1))
	assert.Nil(t, path)
}

func TestDTW_PathStaysInWindow(t *testing.T) {
	a := []float64{0, 1, 2, 3, 2, 1, 0}
	b := []float64{0, 0, 1, 3, 3, 1, 0}
	const w = 1
	_, path, err := dtw.DTW(a, b, &dtw.Options{Window: w, ReturnPath: true})
	require.NoError(t, err)
	for _, c := range path {
		assert.LessOrEqual(t, abs(c.I-c.J), w, "cell %v outside the band", c)
	}
}

func TestDTW_RollingWavesMatchesFullMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 30; trial++ {
		a := make([]float64, 1+rng.Intn(12))
		b := make([]float64, 1+rng.Intn(12))
		for i := range a {
			a[i] = rng.Float64() * 10
		}
		for i := range b {
			b[i] = rng.Float64() * 10
		}
		for _, w := range []int{dtw.NoWindow, 0, 2} {
			full := dtw.Options{Window: w, SlopePenalty: 0.3}
			rolling := full
			rolling.MemoryMode = dtw.RollingWaves

			want, _, err := dtw.DTW(a, b, &full)
			require.NoError(t, err)
			got, _, err := dtw.DTW(a, b, &rolling)
			require.NoError(t, err)
			if math.IsInf(want, 1) {
				assert.True(t, math.IsInf(got, 1), "a=%v b=%v w=%d", a, b, w)
				continue
			}
			assert.InDelta(t, want, got, 1e-9, "a=%v b=%v w=%d", a, b, w)
			assert.InDelta(t, naive(a, b, full), got, 1e-9)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestDTW_Errors(t *testing.T) {
	_, _, err := dtw.DTW(nil, []float64{1}, nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)

	_, _, err = dtw.DTW([]float64{1}, []float64{}, nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)

	_, _, err = dtw.DTW([]float64{1}, []float64{1}, &dtw.Options{Window: -2})
	assert.ErrorIs(t, err, dtw.ErrBadInput)

	_, _, err = dtw.DTW([]float64{1}, []float64{1}, &dtw.Options{Window: dtw.NoWindow, MemoryMode: dtw.MemoryMode(9)})
	assert.ErrorIs(t, err, dtw.ErrBadInput)

	_, _, err = dtw.DTW([]float64{1}, []float64{1}, &dtw.Options{Window: dtw.NoWindow, MemoryMode: dtw.RollingWaves, ReturnPath: true})
	assert.ErrorIs(t, err, dtw.ErrPathNeedsFullMatrix)
}

func BenchmarkDTW(b *testing.B) {
	x := make([]float64, 200)
	y := make([]float64, 180)
	for i := range x {
		x[i] = math.Sin(float64(i) / 10)
	}
	for i := range y {
		y[i] = math.Sin(float64(i) / 9)
	}
	for _, mode := range []struct {
		name string
		mode dtw.MemoryMode
	}{{"full", dtw.FullMatrix}, {"rolling", dtw.RollingWaves}} {
		o := dtw.DefaultOptions()
		o.MemoryMode = mode.mode
		b.Run(mode.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _, _ = dtw.DTW(x, y, &o)
			}
		})
	}
}
