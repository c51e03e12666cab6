package model

import "testing"

func TestStringList_ScanBytes(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["spring","walk"]`)); err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	if len(l) != 2 || l[0] != "spring" || l[1] != "walk" {
		t.Errorf("scanned %v", l)
	}
}

func TestStringList_ScanNull(t *testing.T) {
	var l StringList
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	if l == nil || len(l) != 0 {
		t.Errorf("NULL should scan to an empty list, got %v", l)
	}
}

func TestStringList_ValueNil(t *testing.T) {
	var l StringList
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value() unexpected error: %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("nil list should serialize as [], got %s", v)
	}
}

func TestJSONMap_RoundTrip(t *testing.T) {
	m := JSONMap{"brightness": 1.2, "filter": "warm"}
	v, err := m.Value()
	if err != nil {
		t.Fatalf("Value() unexpected error: %v", err)
	}

	var got JSONMap
	if err := got.Scan(v); err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	if got["filter"] != "warm" {
		t.Errorf("filter = %v, want warm", got["filter"])
	}
	if got["brightness"] != 1.2 {
		t.Errorf("brightness = %v, want 1.2", got["brightness"])
	}
}

func TestJSONMap_ValueNil(t *testing.T) {
	var m JSONMap
	v, err := m.Value()
	if err != nil {
		t.Fatalf("Value() unexpected error: %v", err)
	}
	if v != nil {
		t.Errorf("nil map should serialize as SQL NULL, got %v", v)
	}
}

func TestJSONMap_ScanNull(t *testing.T) {
	m := JSONMap{"stale": true}
	if err := m.Scan(nil); err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	if m != nil {
		t.Errorf("NULL should scan to nil, got %v", m)
	}
}
