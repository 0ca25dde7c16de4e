package types

import "testing"

func TestParseFormatFoldsCasing(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"fbx", FormatFBX},
		{"FBX", FormatFBX},
		{"glTF", FormatGLTF},
		{" glb ", FormatGLB},
		{"Obj", FormatOBJ},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseFormatUnknown(t *testing.T) {
	if _, err := ParseFormat("usdz"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestParseFormatsRejectsWholeList(t *testing.T) {
	if _, err := ParseFormats([]string{"fbx", "dae"}); err == nil {
		t.Fatalf("one bad entry must fail the list")
	}
	out, err := ParseFormats([]string{"GLB", "obj"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0] != FormatGLB || out[1] != FormatOBJ {
		t.Fatalf("unexpected result: %v", out)
	}
}

func TestMetricValueWidensTimes(t *testing.T) {
	ms := int64(1500)
	m := FormatMetrics{ImportTimeMs: &ms}
	v := m.Value(MetricImportTimeMs)
	if v == nil || *v != 1500 {
		t.Fatalf("expected widened 1500, got %v", v)
	}
	if m.Value(MetricLoadTimeMs) != nil {
		t.Fatalf("unmeasured metric must be nil")
	}
	if m.Value(MetricKey("bogus")) != nil {
		t.Fatalf("unknown key must be nil")
	}
}

func TestTableAppendKeepsFirstAppearanceOrder(t *testing.T) {
	tbl := NewTable()
	tbl.Append("b", ModelRecord{FaceCountK: 1})
	tbl.Append("a", ModelRecord{FaceCountK: 2})
	tbl.Append("b", ModelRecord{FaceCountK: 3})
	if tbl.Len() != 2 {
		t.Fatalf("re-append must not duplicate, got len %d", tbl.Len())
	}
	if tbl.Order[0] != "b" || tbl.Order[1] != "a" {
		t.Fatalf("order wrong: %v", tbl.Order)
	}
	rec, ok := tbl.Model("b")
	if !ok || rec.FaceCountK != 3 {
		t.Fatalf("re-append must overwrite the record")
	}
}

func TestTableNilReceivers(t *testing.T) {
	var tbl *Table
	if tbl.Len() != 0 {
		t.Fatalf("nil table has length 0")
	}
	if _, ok := tbl.Model("x"); ok {
		t.Fatalf("nil table has no models")
	}
}
