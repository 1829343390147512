package export

import (
	"bytes"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

const rasterSceneDoc = `{"width":100,"height":80,"cellSize":50,"shapes":[
	{"id":"g1","kind":"line","x":50,"y":0,"x2":50,"y2":80,"interactive":false,"style":{"stroke":"#e0e0e0","strokeWidth":1}},
	{"id":"r1","kind":"rectangle","x":10,"y":10,"width":40,"height":30,"rotation":15,"scaleX":1,"scaleY":1,"interactive":true,"style":{"fill":"#cccccc","stroke":"#333333","strokeWidth":2}},
	{"id":"c1","kind":"circle","x":70,"y":40,"radius":15,"scale":1,"interactive":true,"style":{"fill":"#dddddd","stroke":"#333333","strokeWidth":2}},
	{"id":"l1","kind":"line","x":5,"y":70,"x2":95,"y2":70,"interactive":true,"style":{"stroke":"#333333","strokeWidth":2}},
	{"id":"t1","kind":"label","x":20,"y":60,"text":"Kitchen","fontSize":12,"fill":"#333333","interactive":true}
]}`

func TestPNGDimensions(t *testing.T) {
	snap := snapshotFromDoc(t, rasterSceneDoc)

	data, err := PNG(snap)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 100*SupersampleFactor, cfg.Width)
	require.Equal(t, 80*SupersampleFactor, cfg.Height)
}

func TestJPEGDecodes(t *testing.T) {
	snap := snapshotFromDoc(t, rasterSceneDoc)

	data, err := JPEG(snap)
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 100*SupersampleFactor, cfg.Width)
	require.Equal(t, 80*SupersampleFactor, cfg.Height)
}

func TestPNGFractionalCanvasRoundsUp(t *testing.T) {
	// дробный холст покрывается растром целиком, без усечения
	snap := snapshotFromDoc(t, `{"width":100.7,"height":80.3,"cellSize":50,"shapes":[]}`)

	data, err := PNG(snap)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 101*SupersampleFactor, cfg.Width)
	require.Equal(t, 81*SupersampleFactor, cfg.Height)
}

func TestRasterZeroCanvas(t *testing.T) {
	snap := snapshotFromDoc(t, `{"width":0,"height":0,"cellSize":50,"shapes":[]}`)

	_, err := PNG(snap)
	require.ErrorIs(t, err, ErrExportFailed)

	_, err = JPEG(snap)
	require.ErrorIs(t, err, ErrExportFailed)
}

func TestRasterDoesNotMutateScene(t *testing.T) {
	snap := snapshotFromDoc(t, rasterSceneDoc)

	before := snap.Shapes(true)
	_, err := PNG(snap)
	require.NoError(t, err)
	require.Equal(t, before, snap.Shapes(true))
}
