package dcel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theoCanji/hull3d/dcel"
	"github.com/theoCanji/hull3d/vector3"
)

func TestAddVertex_DedupByCoordinate(t *testing.T) {
	m := dcel.NewMesh()
	p := vector3.New(1, 2, 3)

	a := m.AddVertex(p)
	b := m.AddVertex(p)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, m.VertexCount())

	c := m.AddVertex(vector3.New(1, 2, 3.0000001))
	assert.NotEqual(t, a, c)
	assert.Equal(t, 2, m.VertexCount())
}

func TestHasVertex(t *testing.T) {
	m := dcel.NewMesh()
	p := vector3.New(5, 5, 5)
	if _, ok := m.HasVertex(p); ok {
		t.Fatal("expected HasVertex to report false before AddVertex")
	}
	id := m.AddVertex(p)
	got, ok := m.HasVertex(p)
	if !ok || got != id {
		t.Fatalf("HasVertex(%v) = (%v, %v); want (%v, true)", p, got, ok, id)
	}
}

func TestVertex_OutOfRange(t *testing.T) {
	m := dcel.NewMesh()
	_, err := m.Vertex(dcel.VertexID(0))
	assert.ErrorIs(t, err, dcel.ErrVertexNotFound)
}
