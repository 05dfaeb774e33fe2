package routemat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c-h-david/rapidgo/internal/muskingum"
	"github.com/c-h-david/rapidgo/internal/routemat"
)

// fiveReachNetwork builds a small reference network:
// 10->30, 20->30, 30->50, 40->50, 50->outlet; sub-basin = [10,20,30,40,50].
func fiveReachNetwork(t *testing.T) *routemat.Network {
	t.Helper()
	reachBasin := []int32{10, 20, 30, 40, 50}
	hashDomain := map[int32]int{10: 0, 20: 1, 30: 2, 40: 3, 50: 4}
	hashBasin := map[int32]int{10: 0, 20: 1, 30: 2, 40: 3, 50: 4}
	downDomain := []int32{30, 30, 50, 50, 0}
	return routemat.BuildNetwork(reachBasin, hashDomain, hashBasin, downDomain)
}

func TestBuildNetwork_EdgesMatchConnectivity(t *testing.T) {
	net := fiveReachNetwork(t)
	require.Len(t, net.Edges, 4)

	want := map[[2]int]bool{{2, 0}: true, {2, 1}: true, {4, 2}: true, {4, 3}: true}
	for _, e := range net.Edges {
		require.True(t, want[[2]int{e.Down, e.Up}], "unexpected edge %+v", e)
		delete(want, [2]int{e.Down, e.Up})
	}
	require.Empty(t, want)
}

func fiveReachCoeffs(t *testing.T) *muskingum.Coeffs {
	t.Helper()
	k := []float64{9000, 9000, 9000, 9000, 9000}
	x := []float64{0.25, 0.25, 0.25, 0.25, 0.25}
	c, err := muskingum.NewCoeffs(k, x, 900)
	require.NoError(t, err)
	return c
}

func TestAssemble_LIsUnitLowerTriangular(t *testing.T) {
	net := fiveReachNetwork(t)
	c := fiveReachCoeffs(t)
	routing := routemat.Assemble(net, c)

	for j := 0; j < routing.L.N; j++ {
		p0 := routing.L.ColPtr[j]
		require.Equal(t, j, routing.L.RowIdx[p0], "diagonal entry must be first")
		require.Equal(t, 1.0, routing.L.Val[p0])
		for p := p0 + 1; p < routing.L.ColPtr[j+1]; p++ {
			require.Greater(t, routing.L.RowIdx[p], j, "L must be strictly lower off the diagonal")
		}
	}
}

func TestInterval_ScenarioS1(t *testing.T) {
	net := fiveReachNetwork(t)
	c := fiveReachCoeffs(t)
	routing := routemat.Assemble(net, c)
	solver := routemat.NewSolver(routing)

	q := []float64{0, 0, 0, 0, 0}
	qe := []float64{1, 1, 1, 1, 1}
	qbar := make([]float64, 5)

	require.NoError(t, solver.Interval(q, qe, qbar, 2))

	want := []float64{0.0625, 0.0625, 0.03125, 0.0625, 0.0390625}
	for i := range want {
		require.InDelta(t, want[i], qbar[i], 1e-9)
	}
	require.InDelta(t, qbar[0], qbar[1], 1e-12)
	require.InDelta(t, qbar[1], qbar[3], 1e-12)
}

func TestInterval_ScenarioS2(t *testing.T) {
	net := fiveReachNetwork(t)
	c := fiveReachCoeffs(t)
	routing := routemat.Assemble(net, c)
	solver := routemat.NewSolver(routing)

	q := []float64{1, 1, 1, 1, 1}
	qe := []float64{1, 1, 1, 1, 1}
	qbar := make([]float64, 5)

	require.NoError(t, solver.Interval(q, qe, qbar, 2))

	want := []float64{1.0, 1.0, 1.125, 1.0, 1.09375}
	for i := range want {
		require.InDelta(t, want[i], qbar[i], 1e-9)
	}
}

func TestInterval_ZeroForcingZeroState(t *testing.T) {
	// Zero forcing and zero initial state must produce an exactly zero mean and final state.
	net := fiveReachNetwork(t)
	c := fiveReachCoeffs(t)
	solver := routemat.NewSolver(routemat.Assemble(net, c))

	q := make([]float64, 5)
	qe := make([]float64, 5)
	qbar := make([]float64, 5)
	require.NoError(t, solver.Interval(q, qe, qbar, 12))

	for i := range qbar {
		require.Equal(t, 0.0, qbar[i])
		require.Equal(t, 0.0, q[i])
	}
}

func TestInterval_SingleSubStepRoundTrip(t *testing.T) {
	// A single sub-step (S=1, dt=T) reduces the interval to one solve.
	net := fiveReachNetwork(t)
	c := fiveReachCoeffs(t)
	solver := routemat.NewSolver(routemat.Assemble(net, c))

	q := []float64{0, 0, 0, 0, 0}
	qe := []float64{1, 1, 1, 1, 1}
	qbar := make([]float64, 5)
	require.NoError(t, solver.Interval(q, qe, qbar, 1))

	// q̄ over a single sub-step equals the pre-solve state, i.e. q_init (all zero).
	for i := range qbar {
		require.Equal(t, 0.0, qbar[i])
	}
	// q is mutated in place to q_fin, the post-solve state.
	require.InDelta(t, 0.125, q[0], 1e-9)
}

func TestDenseWindow_ExtractsRequestedPositions(t *testing.T) {
	net := fiveReachNetwork(t)
	c := fiveReachCoeffs(t)
	routing := routemat.Assemble(net, c)

	win, err := routemat.DenseWindow(routing.L, []int{2, 4}, []int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Len(t, win, 2)
	require.Len(t, win[0], 4)
	// L[2,0] = -C1[2] = 0.25
	require.InDelta(t, 0.25, win[0][0], 1e-9)
	require.InDelta(t, 0.25, win[0][1], 1e-9)
	require.InDelta(t, 0.0, win[0][3], 1e-9)
}

func TestDenseWindow_OutOfRangePosition(t *testing.T) {
	net := fiveReachNetwork(t)
	c := fiveReachCoeffs(t)
	routing := routemat.Assemble(net, c)

	_, err := routemat.DenseWindow(routing.L, []int{99}, []int{0})
	require.Error(t, err)
}

func TestBuildNetwork_ToCCMatrixMatchesEdges(t *testing.T) {
	net := fiveReachNetwork(t)
	cc := net.ToCCMatrix()

	require.Equal(t, net.N, cc.M)
	require.Equal(t, net.N, cc.N)

	got := map[[2]int]bool{}
	for col := 0; col < cc.N; col++ {
		for p := cc.Ap[col]; p < cc.Ap[col+1]; p++ {
			require.Equal(t, 1.0, cc.Ax[p])
			got[[2]int{cc.Ai[p], col}] = true
		}
	}

	want := map[[2]int]bool{{2, 0}: true, {2, 1}: true, {4, 2}: true, {4, 3}: true}
	require.Equal(t, want, got)
}

func TestCSC_MulVec(t *testing.T) {
	m := &routemat.CSC{
		N:      2,
		ColPtr: []int{0, 1, 2},
		RowIdx: []int{0, 1},
		Val:    []float64{2.0, 3.0},
	}
	y := make([]float64, 2)
	m.MulVec(y, []float64{1, 1})
	require.Equal(t, []float64{2.0, 3.0}, y)
}
