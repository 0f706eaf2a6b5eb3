package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/roadnet/core"
)

type GraphSuite struct {
	suite.Suite
	g *testGraph
}

func (s *GraphSuite) SetupTest() {
	s.g = newTriangle()
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddNodeIsIdempotent() {
	require := require.New(s.T())

	before := s.g.NodeCount()
	s.g.AddNode(NodeX, place{Name: "overwritten?"})
	require.Equal(before, s.g.NodeCount(), "re-adding a node must not change count")

	data, ok := s.g.NodeData(NodeX)
	require.True(ok)
	require.Equal(place{Name: NodeX}, data, "re-adding a node must not overwrite its payload")
}

func (s *GraphSuite) TestNodeExists() {
	require := require.New(s.T())
	require.True(s.g.NodeExists(NodeX))
	require.False(s.g.NodeExists(NodeW))
}

func (s *GraphSuite) TestKeysFollowInsertionOrder() {
	s.g.AddNode(NodeW, place{Name: NodeW})
	require.Equal(s.T(), []string{NodeX, NodeY, NodeZ, NodeW}, s.g.Keys())
}

func (s *GraphSuite) TestAddEdgeMissingEndpointIsNoop() {
	require := require.New(s.T())

	s.g.AddEdge(NodeX, NodeW, label{"xw"}, 3, true)

	require.False(s.g.NodeExists(NodeW), "AddEdge must not create nodes")
	_, ok := s.g.Weight(NodeX, NodeW)
	require.False(ok)
	_, ok = s.g.Edge(NodeX, NodeW)
	require.False(ok)
	require.False(s.g.IsDisabled(NodeX, NodeW))
	require.Equal(3, s.g.EdgeCount())
}

func (s *GraphSuite) TestSymmetry() {
	require := require.New(s.T())

	for _, e := range s.g.GetEdges() {
		fw, ok := s.g.Weight(e.From, e.To)
		require.True(ok)
		bw, ok := s.g.Weight(e.To, e.From)
		require.True(ok)
		require.Equal(fw, bw, "weight table must be symmetric for %v", e)

		fwdNeighbors, err := s.g.Neighbors(e.From)
		require.NoError(err)
		require.Contains(fwdNeighbors, e.To)
		revNeighbors, err := s.g.Neighbors(e.To)
		require.NoError(err)
		require.Contains(revNeighbors, e.From)

		fwd, ok := s.g.Edge(e.From, e.To)
		require.True(ok)
		rev, ok := s.g.Edge(e.To, e.From)
		require.True(ok)
		require.Equal(fwd.Data, rev.Data)
		require.Equal(fwd.Blocked, rev.Blocked)
	}
}

func (s *GraphSuite) TestBlockedOnInsertPopulatesDisabledSet() {
	want := map[core.Pair[string]]struct{}{
		{From: NodeX, To: NodeZ}: {},
		{From: NodeZ, To: NodeX}: {},
	}
	if diff := cmp.Diff(want, s.g.GetDisabledEdges()); diff != "" {
		s.T().Fatalf("disabled set mismatch (-want +got):\n%s", diff)
	}
}

func (s *GraphSuite) TestDisableEdgeMarksBothDirections() {
	require := require.New(s.T())

	require.NoError(s.g.DisableEdge(NodeY, NodeX))

	require.True(s.g.IsDisabled(NodeX, NodeY))
	require.True(s.g.IsDisabled(NodeY, NodeX))
	fwd, _ := s.g.Edge(NodeX, NodeY)
	rev, _ := s.g.Edge(NodeY, NodeX)
	require.True(fwd.Blocked)
	require.True(rev.Blocked)
}

func (s *GraphSuite) TestDisableEdgeErrors() {
	require := require.New(s.T())

	require.ErrorIs(s.g.DisableEdge(NodeX, NodeW), core.ErrNodeNotFound)
	require.ErrorIs(s.g.DisableEdge(NodeW, NodeX), core.ErrNodeNotFound)

	s.g.AddNode(NodeW, place{Name: NodeW})
	require.ErrorIs(s.g.DisableEdge(NodeX, NodeW), core.ErrEdgeNotFound)
	require.Len(s.g.GetDisabledEdges(), 2, "failed DisableEdge must not mutate the disabled set")
}

func (s *GraphSuite) TestEnableEdgeClearsBothDirections() {
	require := require.New(s.T())

	require.NoError(s.g.EnableEdge(NodeZ, NodeX))

	require.Empty(s.g.GetDisabledEdges())
	fwd, _ := s.g.Edge(NodeX, NodeZ)
	rev, _ := s.g.Edge(NodeZ, NodeX)
	require.False(fwd.Blocked)
	require.False(rev.Blocked)
}

func (s *GraphSuite) TestReAddOverwritesWeightAndBlockState() {
	require := require.New(s.T())

	s.g.AddEdge(NodeZ, NodeX, label{"zx"}, 4, false)

	w, _ := s.g.Weight(NodeX, NodeZ)
	require.Equal(4.0, w)
	w, _ = s.g.Weight(NodeZ, NodeX)
	require.Equal(4.0, w)
	require.False(s.g.IsDisabled(NodeX, NodeZ))
	require.False(s.g.IsDisabled(NodeZ, NodeX))

	e, _ := s.g.Edge(NodeX, NodeZ)
	require.Equal(label{"zx"}, e.Data)
	require.False(e.Blocked)
	require.Equal(3, s.g.EdgeCount(), "re-adding must not create a second logical edge")
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())

	require.NoError(s.g.RemoveEdge(NodeZ, NodeX))

	for _, e := range s.g.GetEdges() {
		require.NotEqual([2]string{NodeX, NodeZ}, undirectedKey(e), "removed edge still listed")
	}
	_, ok := s.g.Weight(NodeX, NodeZ)
	require.False(ok)
	_, ok = s.g.Weight(NodeZ, NodeX)
	require.False(ok)
	require.Empty(s.g.GetDisabledEdges(), "removal must clear disabled pairs")

	xs, err := s.g.Neighbors(NodeX)
	require.NoError(err)
	require.NotContains(xs, NodeZ)
	zs, err := s.g.Neighbors(NodeZ)
	require.NoError(err)
	require.NotContains(zs, NodeX)

	require.ErrorIs(s.g.RemoveEdge(NodeX, NodeZ), core.ErrEdgeNotFound)
	require.Equal(2, s.g.EdgeCount())
}

func (s *GraphSuite) TestRemoveEdgeUnknownNodes() {
	require.ErrorIs(s.T(), s.g.RemoveEdge(NodeW, NodeX), core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestNeighborsUnknownNode() {
	_, err := s.g.Neighbors(NodeW)
	require.ErrorIs(s.T(), err, core.ErrNodeNotFound)
}

func (s *GraphSuite) TestGetEdgesDeduplicates() {
	require := require.New(s.T())

	edges := s.g.GetEdges()
	require.Len(edges, 3)

	got := make(map[[2]string]label, len(edges))
	for _, e := range edges {
		_, dup := got[undirectedKey(e)]
		require.False(dup, "edge %v listed twice", e)
		got[undirectedKey(e)] = e.Data
	}
	want := map[[2]string]label{
		{NodeX, NodeY}: {"xy"},
		{NodeY, NodeZ}: {"yz"},
		{NodeX, NodeZ}: {"xz"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Fatalf("GetEdges mismatch (-want +got):\n%s", diff)
	}
}

func (s *GraphSuite) TestSnapshotsAreCopies() {
	require := require.New(s.T())

	nodes := s.g.GetNodesData()
	nodes[NodeW] = place{Name: NodeW}
	delete(nodes, NodeX)
	require.True(s.g.NodeExists(NodeX))
	require.False(s.g.NodeExists(NodeW))

	disabled := s.g.GetDisabledEdges()
	delete(disabled, core.Pair[string]{From: NodeX, To: NodeZ})
	require.True(s.g.IsDisabled(NodeX, NodeZ))

	adj := s.g.Adjacency()
	adj[NodeX] = nil
	require.Len(s.g.Adjacency()[NodeX], 2)
}

func (s *GraphSuite) TestAdjacencyView() {
	s.g.AddNode(NodeW, place{Name: NodeW})

	want := map[string][]core.Neighbor[string]{
		NodeX: {{ID: NodeY, Weight: Weight1}, {ID: NodeZ, Weight: Weight10}},
		NodeY: {{ID: NodeX, Weight: Weight1}, {ID: NodeZ, Weight: Weight2}},
		NodeZ: {{ID: NodeY, Weight: Weight2}, {ID: NodeX, Weight: Weight10}},
		NodeW: {},
	}
	if diff := cmp.Diff(want, s.g.Adjacency()); diff != "" {
		s.T().Fatalf("Adjacency mismatch (-want +got):\n%s", diff)
	}
}

func (s *GraphSuite) TestSelfLoop() {
	require := require.New(s.T())

	s.g.AddEdge(NodeX, NodeX, label{"loop"}, 1, false)
	require.Equal(4, s.g.EdgeCount())
	require.Len(s.g.GetEdges(), 4)

	require.NoError(s.g.DisableEdge(NodeX, NodeX))
	require.True(s.g.IsDisabled(NodeX, NodeX))

	require.NoError(s.g.RemoveEdge(NodeX, NodeX))
	require.Equal(3, s.g.EdgeCount())
}

func TestEdge_Equal(t *testing.T) {
	a := core.Edge[string, label]{From: NodeX, To: NodeY, Data: label{"r"}, Weight: 1}
	b := core.Edge[string, label]{From: NodeX, To: NodeY, Data: label{"r"}, Weight: 7}
	swapped := core.Edge[string, label]{From: NodeY, To: NodeX, Data: label{"r"}, Weight: 1}
	blocked := a
	blocked.Blocked = true

	require.True(t, a.Equal(b), "weight is not part of identity")
	require.False(t, a.Equal(swapped), "direction is part of identity")
	require.False(t, a.Equal(blocked), "blocked flag is part of identity")
}

func TestPair_Canonical(t *testing.T) {
	p := core.Pair[string]{From: NodeZ, To: NodeX}
	require.Equal(t, core.Pair[string]{From: NodeX, To: NodeZ}, p.Canonical())
	require.Equal(t, p.Canonical(), p.Reverse().Canonical())
}

func TestGetEdges_TwoEdgesNeverFour(t *testing.T) {
	// Insert nodes in an order that visits the middle node first.
	g := core.NewGraph[string, place, label]()
	for _, id := range []string{NodeY, NodeZ, NodeX} {
		g.AddNode(id, place{Name: id})
	}
	g.AddEdge(NodeX, NodeY, label{"ab"}, 1, false)
	g.AddEdge(NodeY, NodeZ, label{"bc"}, 1, false)

	require.Len(t, g.GetEdges(), 2)
}
