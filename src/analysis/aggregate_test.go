package analysis

import (
	"testing"

	"github.com/Vanish0314/model-format-comparision/src/types"
)

func fp(v float64) *float64 { return &v }
func ip(v int64) *int64     { return &v }

// testTable builds a small sparse table in a fixed order:
//   dragon: fbx fully measured, obj missing import time
//   crate:  obj measured as zero texture size, gltf present but all nil
//   ghost:  format entries exist but every metric is nil
func testTable() *types.Table {
	t := types.NewTable()
	t.Append("dragon_v2", types.ModelRecord{
		FaceCountK: 120, TextureCount: 4,
		Formats: map[types.Format]types.FormatMetrics{
			types.FormatFBX: {
				SizeBeforeZipMB:        fp(400),
				SizeAfterZipMB:         fp(160),
				TextureSizeBeforeZipMB: fp(120),
				ImportTimeMs:           ip(5200),
			},
			types.FormatOBJ: {
				SizeBeforeZipMB: fp(650),
				SizeAfterZipMB:  fp(455),
			},
		},
	})
	t.Append("crate_small", types.ModelRecord{
		FaceCountK: 2, TextureCount: 0,
		Formats: map[types.Format]types.FormatMetrics{
			types.FormatOBJ: {
				SizeBeforeZipMB:        fp(4),
				SizeAfterZipMB:         fp(1),
				TextureSizeBeforeZipMB: fp(0),
				ImportTimeMs:           ip(80),
			},
			types.FormatGLTF: {},
		},
	})
	t.Append("ghost", types.ModelRecord{
		FaceCountK: 9, TextureCount: 1,
		Formats: map[types.Format]types.FormatMetrics{
			types.FormatFBX: {},
			types.FormatGLB: {},
		},
	})
	return t
}

func TestSelectModelsWithDataDropsAllMissing(t *testing.T) {
	table := testTable()
	ids, faces, textures := SelectModelsWithData(table, types.AllFormats(), []types.MetricKey{types.MetricSizeBeforeZipMB})
	if len(ids) != 2 || ids[0] != "dragon_v2" || ids[1] != "crate_small" {
		t.Fatalf("expected [dragon_v2 crate_small], got %v", ids)
	}
	if faces[0] != 120 || faces[1] != 2 {
		t.Fatalf("face counts misaligned: %v", faces)
	}
	if textures[0] != 4 || textures[1] != 0 {
		t.Fatalf("texture counts misaligned: %v", textures)
	}
}

func TestSelectModelsWithDataZeroDoesNotQualify(t *testing.T) {
	// crate_small's only texture-size measurement is exactly 0, which is a
	// valid measurement but not a positive one; it must not keep the model.
	table := testTable()
	ids, _, _ := SelectModelsWithData(table, []types.Format{types.FormatOBJ}, []types.MetricKey{types.MetricTextureSizeBeforeZipMB})
	if len(ids) != 1 || ids[0] != "dragon_v2" {
		t.Fatalf("expected only dragon_v2 (crate's 0 must not qualify), got %v", ids)
	}
}

func TestSelectModelsWithDataEmptyInputs(t *testing.T) {
	empty := types.NewTable()
	cases := []struct {
		name    string
		table   *types.Table
		formats []types.Format
		keys    []types.MetricKey
	}{
		{"empty table", empty, types.AllFormats(), []types.MetricKey{types.MetricSizeBeforeZipMB}},
		{"no formats", testTable(), nil, []types.MetricKey{types.MetricSizeBeforeZipMB}},
		{"no keys", testTable(), types.AllFormats(), nil},
		{"nil table", nil, types.AllFormats(), []types.MetricKey{types.MetricSizeBeforeZipMB}},
	}
	for _, tc := range cases {
		ids, faces, textures := SelectModelsWithData(tc.table, tc.formats, tc.keys)
		if ids == nil || faces == nil || textures == nil {
			t.Fatalf("%s: outputs must be empty, not nil", tc.name)
		}
		if len(ids) != 0 || len(faces) != 0 || len(textures) != 0 {
			t.Fatalf("%s: expected empty outputs, got %v %v %v", tc.name, ids, faces, textures)
		}
	}
}

func TestExtractSeriesPreservesNullZeroDistinction(t *testing.T) {
	table := testTable()
	ids := []string{"dragon_v2", "crate_small", "ghost"}

	series := ExtractSeries(table, ids, types.FormatOBJ, types.MetricTextureSizeBeforeZipMB)
	if len(series) != len(ids) {
		t.Fatalf("length mismatch: %d != %d", len(series), len(ids))
	}
	if series[0] != nil {
		t.Fatalf("dragon_v2 obj texture size was never measured, expected nil, got %v", *series[0])
	}
	if series[1] == nil || *series[1] != 0 {
		t.Fatalf("crate_small obj texture size measured as 0, expected 0, got %v", series[1])
	}
	if series[2] != nil {
		t.Fatalf("ghost has no obj entry, expected nil")
	}
}

func TestExtractSeriesAbsentFormat(t *testing.T) {
	table := testTable()
	ids := []string{"dragon_v2", "crate_small"}
	series := ExtractSeries(table, ids, types.FormatGLB, types.MetricSizeBeforeZipMB)
	for i, v := range series {
		if v != nil {
			t.Fatalf("index %d: glb never measured for these models, got %v", i, *v)
		}
	}
}

func TestExtractSeriesWidensIntegerMetrics(t *testing.T) {
	table := testTable()
	series := ExtractSeries(table, []string{"dragon_v2"}, types.FormatFBX, types.MetricImportTimeMs)
	if series[0] == nil || *series[0] != 5200 {
		t.Fatalf("expected 5200, got %v", series[0])
	}
}

func TestCompressionRatioGuards(t *testing.T) {
	cases := []struct {
		name   string
		before *float64
		after  *float64
		want   *float64
	}{
		{"nil before", nil, fp(5), nil},
		{"zero before", fp(0), fp(5), nil},
		{"nil after", fp(10), nil, nil},
		{"normal", fp(10), fp(4), fp(60)},
		{"inflation stays negative", fp(10), fp(12), fp(-20)},
		{"zero after is full compression", fp(10), fp(0), fp(100)},
	}
	for _, tc := range cases {
		got := CompressionRatio(tc.before, tc.after)
		if (got == nil) != (tc.want == nil) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
		if got != nil && !almostEqual(*got, *tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, *got, *tc.want)
		}
	}
}

func TestTextureShareAsymmetry(t *testing.T) {
	cases := []struct {
		name    string
		before  *float64
		texture *float64
		want    *float64
	}{
		{"zero texture is a valid share", fp(10), fp(0), fp(0)},
		{"nil texture", fp(10), nil, nil},
		{"nil before", nil, fp(2), nil},
		{"zero before", fp(0), fp(2), nil},
		{"normal", fp(10), fp(2.5), fp(25)},
	}
	for _, tc := range cases {
		got := TextureShare(tc.before, tc.texture)
		if (got == nil) != (tc.want == nil) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
		if got != nil && !almostEqual(*got, *tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, *got, *tc.want)
		}
	}
}

func TestShouldUseLogScaleBoundary(t *testing.T) {
	if ShouldUseLogScale([]*float64{fp(1), fp(99)}) {
		t.Fatalf("ratio 99 is below the threshold")
	}
	if !ShouldUseLogScale([]*float64{fp(1), fp(100)}) {
		t.Fatalf("ratio 100 must trigger log scale")
	}
}

func TestShouldUseLogScaleFiltersAndMinimumCount(t *testing.T) {
	if ShouldUseLogScale(nil) {
		t.Fatalf("no values")
	}
	if ShouldUseLogScale([]*float64{fp(500)}) {
		t.Fatalf("a single value has no dynamic range")
	}
	if ShouldUseLogScale([]*float64{nil, fp(-3), fp(0), fp(500)}) {
		t.Fatalf("nil and non-positive values must be discarded before counting")
	}
	if !ShouldUseLogScale([]*float64{nil, fp(0.5), fp(-1), fp(400)}) {
		t.Fatalf("0.5 vs 400 spans the threshold")
	}
}

func TestShouldUseLogScaleScaleInvariant(t *testing.T) {
	base := []*float64{fp(0.2), fp(3), fp(45), fp(19)}
	want := ShouldUseLogScale(base)
	for _, k := range []float64{0.001, 0.5, 7, 1e6} {
		scaled := make([]*float64, len(base))
		for i, v := range base {
			s := *v * k
			scaled[i] = &s
		}
		if got := ShouldUseLogScale(scaled); got != want {
			t.Fatalf("k=%v: expected %v, got %v (max/min ratio is scale-invariant)", k, want, got)
		}
	}
}

func TestCompressionSeriesAlignment(t *testing.T) {
	table := testTable()
	ids := []string{"dragon_v2", "crate_small", "ghost"}
	series := CompressionSeries(table, ids, types.FormatFBX)
	if len(series) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(series))
	}
	if series[0] == nil || !almostEqual(*series[0], 60) {
		t.Fatalf("dragon_v2 fbx: expected 60%%, got %v", series[0])
	}
	if series[1] != nil || series[2] != nil {
		t.Fatalf("models without fbx sizes must stay nil")
	}
}

func TestKeepIndices(t *testing.T) {
	a := []*float64{nil, fp(0), fp(3), nil}
	b := []*float64{fp(1), nil, nil, fp(-2)}
	keep := KeepIndices([][]*float64{a, b}, 4)
	if len(keep) != 2 || keep[0] != 0 || keep[1] != 2 {
		t.Fatalf("expected [0 2], got %v", keep)
	}
}

func TestScaleLeavesNils(t *testing.T) {
	out := Scale([]*float64{fp(5000), nil}, 1.0/1000)
	if out[0] == nil || *out[0] != 5 {
		t.Fatalf("expected 5, got %v", out[0])
	}
	if out[1] != nil {
		t.Fatalf("nil must stay nil")
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
