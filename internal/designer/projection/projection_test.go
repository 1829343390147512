package projection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"plan-designer/internal/designer/scene"
	"plan-designer/internal/designer/units"
)

func snapshotFromDoc(t *testing.T, doc string) *scene.Snapshot {
	t.Helper()
	s, err := scene.Deserialize([]byte(doc))
	require.NoError(t, err)
	snap, err := s.Snapshot()
	require.NoError(t, err)
	return snap
}

const mixedSceneDoc = `{
	"width": 1000, "height": 1000, "cellSize": 50,
	"shapes": [
		{"id":"g1","kind":"line","x":0,"y":50,"x2":1000,"y2":50,"interactive":false,"style":{"stroke":"#e0e0e0","strokeWidth":1}},
		{"id":"r1","kind":"rectangle","x":100,"y":100,"width":200,"height":150,"scaleX":1,"scaleY":1,"interactive":true,"style":{"fill":"#cccccc","stroke":"#333333","strokeWidth":2}},
		{"id":"r2","kind":"rectangle","x":500,"y":500,"width":100,"height":100,"scaleX":1,"scaleY":1,"interactive":true,"style":{"fill":"#cccccc","stroke":"#333333","strokeWidth":2}},
		{"id":"c1","kind":"circle","x":700,"y":300,"radius":40,"scale":1,"interactive":true,"style":{"fill":"#dddddd","stroke":"#333333","strokeWidth":2}},
		{"id":"l1","kind":"line","x":100,"y":800,"x2":400,"y2":800,"interactive":true,"style":{"stroke":"#333333","strokeWidth":2}},
		{"id":"t1","kind":"label","x":50,"y":50,"text":"Kitchen","fontSize":18,"fill":"#333333","interactive":true}
	]
}`

func TestGenerateCoverage(t *testing.T) {
	snap := snapshotFromDoc(t, mixedSceneDoc)
	prims := Generate(snap, units.NewConverter(50))

	var boxes, cylinders, segments int
	for _, p := range prims {
		switch p.Type {
		case PrimitiveBox:
			boxes++
		case PrimitiveCylinder:
			cylinders++
		case PrimitiveSegment:
			segments++
		}
	}

	// 2 прямоугольника, 1 круг, 1 интерактивная линия; сетка и
	// подпись не проецируются
	require.Equal(t, 2, boxes)
	require.Equal(t, 1, cylinders)
	require.Equal(t, 1, segments)
	require.Len(t, prims, 4)
}

func TestGenerateRectGeometry(t *testing.T) {
	doc := `{"width":1000,"height":1000,"cellSize":50,"shapes":[
		{"id":"r1","kind":"rectangle","x":100,"y":100,"width":200,"height":150,"scaleX":1,"scaleY":1,"interactive":true,"style":{"fill":"#aabbcc"}}
	]}`
	snap := snapshotFromDoc(t, doc)

	prims := Generate(snap, units.NewConverter(50))
	require.Len(t, prims, 1)

	box := prims[0]
	require.Equal(t, PrimitiveBox, box.Type)
	require.Equal(t, "#aabbcc", box.Color)
	require.Equal(t, 4.0, box.Width)
	require.Equal(t, 3.0, box.Depth)
	require.Equal(t, WallHeight, box.Height)

	// центр фигуры (200,175) px при центре холста (500,500)
	require.InDelta(t, -6.0, box.Center.X, 1e-12)
	require.InDelta(t, WallHeight/2, box.Center.Y, 1e-12)
	require.InDelta(t, -6.5, box.Center.Z, 1e-12)
}

func TestGenerateCylinderGeometry(t *testing.T) {
	doc := `{"width":1000,"height":1000,"cellSize":50,"shapes":[
		{"id":"c1","kind":"circle","x":500,"y":500,"radius":50,"scale":2,"interactive":true,"style":{"fill":"#dddddd"}}
	]}`
	snap := snapshotFromDoc(t, doc)

	prims := Generate(snap, units.NewConverter(50))
	require.Len(t, prims, 1)

	cyl := prims[0]
	require.Equal(t, PrimitiveCylinder, cyl.Type)
	require.Equal(t, 2.0, cyl.Radius) // радиус 100px с учётом масштаба
	require.Equal(t, FixtureHeight, cyl.Height)
	require.Equal(t, Vector3{X: 0, Y: FixtureHeight / 2, Z: 0}, cyl.Center)
}

func TestGenerateSegmentAtWallHeight(t *testing.T) {
	doc := `{"width":1000,"height":1000,"cellSize":50,"shapes":[
		{"id":"l1","kind":"line","x":500,"y":500,"x2":600,"y2":500,"interactive":true,"style":{"stroke":"#333333"}}
	]}`
	snap := snapshotFromDoc(t, doc)

	prims := Generate(snap, units.NewConverter(50))
	require.Len(t, prims, 1)

	seg := prims[0]
	require.Equal(t, PrimitiveSegment, seg.Type)
	require.Equal(t, Vector3{X: 0, Y: WallHeight, Z: 0}, seg.Start)
	require.Equal(t, Vector3{X: 2, Y: WallHeight, Z: 0}, seg.End)
}

func TestGenerateDeterministic(t *testing.T) {
	snap := snapshotFromDoc(t, mixedSceneDoc)
	conv := units.NewConverter(50)

	require.Equal(t, Generate(snap, conv), Generate(snap, conv))
}

func TestGenerateEmptyScene(t *testing.T) {
	snap := snapshotFromDoc(t, `{"width":100,"height":100,"cellSize":50,"shapes":[]}`)
	require.Empty(t, Generate(snap, units.NewConverter(50)))
}
