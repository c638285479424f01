package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/netisu/stellar"
)

func main() {
	path := flag.String("mesh", "", "mesh file (.obj, .gltf, .glb); a generated sphere when empty")
	segments := flag.Int("segments", stellar.DefaultSphereSegments, "sphere segments when no mesh is given")
	factor := flag.Float64("simplify", 0.25, "LOD ratio to test")
	flag.Parse()

	fmt.Println("--- STARTING DEBUG ---")
	var mesh *stellar.Mesh
	if *path != "" {
		var err error
		mesh, err = stellar.LoadMesh(*path)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		mesh = stellar.GenerateSphere(1, *segments)
	}

	box := mesh.BoundingBox()
	fmt.Printf("--- MESH STATS ---\n")
	fmt.Printf("Triangles: %d\n", mesh.TriangleCount())
	fmt.Printf("Bounding Box Min: %+v\n", box.Min)
	fmt.Printf("Bounding Box Max: %+v\n", box.Max)
	fmt.Printf("Bounding Box Center: %+v\n", box.Center())

	lod := mesh.Simplify(*factor)
	fmt.Printf("--- LOD %.2f ---\n", *factor)
	fmt.Printf("Triangles: %d\n", lod.TriangleCount())
	if lod.TriangleCount() == 0 {
		fmt.Printf("Simplification collapsed the mesh, distant bodies will use the full mesh\n")
	}
}
