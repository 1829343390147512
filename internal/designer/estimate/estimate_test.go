package estimate

import (
	"encoding/json"
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

const singleRectDoc = `{"width":1000,"height":1000,"cellSize":50,"shapes":[
	{"id":"r1","kind":"rectangle","x":100,"y":100,"width":200,"height":150,"scaleX":1,"scaleY":1,"interactive":true,"style":{"fill":"#cccccc"}}
]}`

func TestEstimateSingleRectangle(t *testing.T) {
	snap := snapshotFromDoc(t, singleRectDoc)
	rates := RateTable{
		ConcretePerSqM:  150,
		BricksPerSqM:    80,
		LaborPerSqM:     200,
		FinishingPerSqM: 120,
	}

	b, err := Estimate(snap, units.NewConverter(50), rates)
	require.NoError(t, err)

	require.Equal(t, 12.0, b.AreaSqM) // 4m x 3m
	require.Equal(t, int64(1800), b.Concrete)
	require.Equal(t, int64(960), b.Bricks)
	require.Equal(t, int64(1440), b.Finishing)
	require.Equal(t, int64(4200), b.Materials)
	require.Equal(t, int64(2400), b.Labor)
	require.Equal(t, int64(6600), b.Total)
	require.Equal(t, rates, b.Rates)
}

func TestEstimateCountsOnlyRectangles(t *testing.T) {
	doc := `{"width":1000,"height":1000,"cellSize":50,"shapes":[
		{"id":"c1","kind":"circle","x":500,"y":500,"radius":100,"scale":1,"interactive":true,"style":{"fill":"#dddddd"}},
		{"id":"l1","kind":"line","x":0,"y":0,"x2":500,"y2":500,"interactive":true,"style":{"stroke":"#333333"}},
		{"id":"t1","kind":"label","x":10,"y":10,"text":"Hall","fontSize":18,"fill":"#333333","interactive":true}
	]}`
	snap := snapshotFromDoc(t, doc)

	b, err := Estimate(snap, units.NewConverter(50), RateTable{ConcretePerSqM: 100, LaborPerSqM: 100})
	require.NoError(t, err)
	require.Equal(t, 0.0, b.AreaSqM)
	require.Equal(t, int64(0), b.Total)
}

func TestEstimateExcludesGrid(t *testing.T) {
	// сетка не даёт площади даже при включённых ставках
	doc := `{"width":1000,"height":1000,"cellSize":50,"shapes":[
		{"id":"g1","kind":"line","x":0,"y":50,"x2":1000,"y2":50,"interactive":false,"style":{"stroke":"#e0e0e0"}}
	]}`
	snap := snapshotFromDoc(t, doc)

	b, err := Estimate(snap, units.NewConverter(50), RateTable{ConcretePerSqM: 500})
	require.NoError(t, err)
	require.Equal(t, 0.0, b.AreaSqM)
}

func TestEstimateDeterministic(t *testing.T) {
	snap := snapshotFromDoc(t, singleRectDoc)
	conv := units.NewConverter(50)
	rates := RateTable{ConcretePerSqM: 151.5, BricksPerSqM: 79.9, LaborPerSqM: 200.1, FinishingPerSqM: 120}

	first, err := Estimate(snap, conv, rates)
	require.NoError(t, err)
	second, err := Estimate(snap, conv, rates)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	require.Equal(t, firstJSON, secondJSON)
}

func TestRateTableValidate(t *testing.T) {
	require.NoError(t, RateTable{}.Validate())
	require.NoError(t, RateTable{ConcretePerSqM: 1e9}.Validate()) // верхней границы нет

	require.ErrorIs(t, RateTable{ConcretePerSqM: -1}.Validate(), ErrInvalidRate)
	require.ErrorIs(t, RateTable{BricksPerSqM: -0.01}.Validate(), ErrInvalidRate)
	require.ErrorIs(t, RateTable{LaborPerSqM: -100}.Validate(), ErrInvalidRate)
	require.ErrorIs(t, RateTable{FinishingPerSqM: -5}.Validate(), ErrInvalidRate)
}

func TestEstimateRejectsInvalidRates(t *testing.T) {
	snap := snapshotFromDoc(t, singleRectDoc)

	_, err := Estimate(snap, units.NewConverter(50), RateTable{ConcretePerSqM: -1})
	require.ErrorIs(t, err, ErrInvalidRate)
}
