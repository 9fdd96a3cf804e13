package grid_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixviews/grid"
)

// one and four are compile-time extents.
type one struct{}

func (one) Get() int { return 1 }

type four struct{}

func (four) Get() int { return 4 }

//----------------------------------------------------------------------------//
// Index
//----------------------------------------------------------------------------//

func TestIndex_EqualityIsStructural(t *testing.T) {
	require.Equal(t, grid.Index{Row: 1, Column: 2}, grid.At(1, 2))
	require.True(t, grid.At(1, 2) == grid.At(1, 2))
	require.False(t, grid.At(1, 2) == grid.At(2, 1))
}

func TestIndex_AddAndString(t *testing.T) {
	i := grid.At(3, 4)
	require.Equal(t, grid.At(2, 6), i.Add(-1, 2))
	require.Equal(t, grid.At(3, 4), i, "Add must not modify the receiver")
	require.Equal(t, "(-1,7)", grid.At(-1, 7).String())
}

//----------------------------------------------------------------------------//
// Directions
//----------------------------------------------------------------------------//

func TestDirections_Advance(t *testing.T) {
	start := grid.At(5, 5)
	require.Equal(t, grid.At(5, 8), grid.Row{}.Advance(start, 3))
	require.Equal(t, grid.At(8, 5), grid.Column{}.Advance(start, 3))
	require.Equal(t, grid.At(8, 8), grid.Diagonal{}.Advance(start, 3))
	require.Equal(t, grid.At(8, 2), grid.Antidiagonal{}.Advance(start, 3))
	require.Equal(t, grid.At(2, 8), grid.Antidiagonal{}.Advance(start, -3))
}

func TestDirections_Distance(t *testing.T) {
	a, b := grid.At(0, 5), grid.At(5, 0)
	require.Equal(t, 5, grid.Row{}.Distance(a, b))
	require.Equal(t, -5, grid.Column{}.Distance(a, b))
	require.Equal(t, -5, grid.Diagonal{}.Distance(a, b))
	require.Equal(t, 5, grid.Antidiagonal{}.Distance(b, a))
}

func TestDirections_Length(t *testing.T) {
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"Row", grid.Row{}.Length(grid.At(0, 0), 3, 4), 4},
		{"RowUsesStartRow", grid.Row{}.Length(grid.At(1, 3), 3, 4), 3},
		{"Column", grid.Column{}.Length(grid.At(0, 0), 3, 4), 3},
		{"ColumnUsesStartColumn", grid.Column{}.Length(grid.At(2, 1), 3, 4), 2},
		{"DiagonalBottomEdge", grid.Diagonal{}.Length(grid.At(0, 0), 3, 4), 3},
		{"DiagonalRightEdge", grid.Diagonal{}.Length(grid.At(0, 2), 3, 4), 2},
		{"Antidiagonal", grid.Antidiagonal{}.Length(grid.At(0, 3), 3, 4), 3},
		{"AntidiagonalLeftEdge", grid.Antidiagonal{}.Length(grid.At(0, 1), 3, 4), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got)
		})
	}
}

func TestDirections_String(t *testing.T) {
	require.Equal(t, "row", grid.Row{}.String())
	require.Equal(t, "column", grid.Column{}.String())
	require.Equal(t, "diagonal", grid.Diagonal{}.String())
	require.Equal(t, "antidiagonal", grid.Antidiagonal{}.String())
}

func TestDirections_ZeroSize(t *testing.T) {
	require.Zero(t, unsafe.Sizeof(grid.Row{}))
	require.Zero(t, unsafe.Sizeof(grid.Column{}))
	require.Zero(t, unsafe.Sizeof(grid.Diagonal{}))
	require.Zero(t, unsafe.Sizeof(grid.Antidiagonal{}))
}

//----------------------------------------------------------------------------//
// Cells
//----------------------------------------------------------------------------//

func TestCell_CompileTime(t *testing.T) {
	var c four
	require.Zero(t, unsafe.Sizeof(c))
	require.Equal(t, 4, c.Get())
	require.False(t, grid.IsRuntime[four, int]())
}

func TestCell_Runtime(t *testing.T) {
	v := grid.NewRuntime[int64](2)
	require.Equal(t, unsafe.Sizeof(int64(0)), unsafe.Sizeof(v))
	require.Equal(t, int64(2), v.Get())
	require.True(t, grid.IsRuntime[grid.Runtime[int64], int64]())
}

func TestCell_RuntimeSetAndCopy(t *testing.T) {
	v1 := grid.NewRuntime(4)
	v2 := grid.NewRuntime(5)
	v1.Set(6)
	require.Equal(t, 6, v1.Get())

	v1 = v2
	require.Equal(t, 5, v1.Get())
}

func TestMake(t *testing.T) {
	require.Equal(t, 6, grid.Make[grid.Dynamic](6).Get())
	// compile-time cells ignore the runtime argument
	require.Equal(t, 1, grid.Make[one](7).Get())
	require.Equal(t, 3, grid.NewDynamic(3).Get())
}
