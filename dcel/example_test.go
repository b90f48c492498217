package dcel_test

import (
	"fmt"

	"github.com/theoCanji/hull3d/dcel"
	"github.com/theoCanji/hull3d/vector3"
)

// ExampleMesh_CreateFace builds a single triangle and reports the mesh's
// resulting size.
func ExampleMesh_CreateFace() {
	m := dcel.NewMesh()
	_, err := m.CreateFace(
		vector3.New(0, 0, 0),
		vector3.New(1, 0, 0),
		vector3.New(0, 1, 0),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m)
	// Output: dcel.Mesh: 3 vertices, 3 edges, 1 faces
}
