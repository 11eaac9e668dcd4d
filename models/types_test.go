package models

import "testing"

func TestStringListScan(t *testing.T) {
	var l StringList
	if err := l.Scan(`["lavado","pulido"]`); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if len(l) != 2 || l[0] != "lavado" {
		t.Errorf("got %v", l)
	}

	if err := l.Scan([]byte(`["cera"]`)); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if len(l) != 1 || l[0] != "cera" {
		t.Errorf("got %v", l)
	}

	if err := l.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if l == nil || len(l) != 0 {
		t.Errorf("nil column should scan to empty list, got %v", l)
	}

	if err := l.Scan(42); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestStringListValue(t *testing.T) {
	v, err := StringList(nil).Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("nil list should serialize as empty array, got %s", v)
	}

	v, err = StringList{"detallado"}.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if string(v.([]byte)) != `["detallado"]` {
		t.Errorf("got %s", v)
	}
}
