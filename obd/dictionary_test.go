package obd

import "testing"

func TestDictionary_LookupAndContains(t *testing.T) {
	dict := NewDictionary(map[PID]DictionaryEntry{
		0x0C: {SizeInBytes: 2, Signals: []SignalFormula{{SignalID: "RPM"}}},
	})

	if !dict.Contains(0x0C) {
		t.Error("expected dictionary to contain 0x0C")
	}
	if dict.Contains(0x0D) {
		t.Error("expected dictionary not to contain 0x0D")
	}

	entry, ok := dict.Lookup(0x0C)
	if !ok || entry.SizeInBytes != 2 || len(entry.Signals) != 1 {
		t.Errorf("Lookup(0x0C) = %+v, %v; want size 2 with 1 signal", entry, ok)
	}

	if _, ok := dict.Lookup(0xFF); ok {
		t.Error("Lookup(0xFF) should miss")
	}
}

func TestDictionary_NilSafe(t *testing.T) {
	var dict *Dictionary
	if dict.Contains(0x0C) {
		t.Error("nil dictionary should never contain a PID")
	}
	if _, ok := dict.Lookup(0x0C); ok {
		t.Error("nil dictionary lookup should miss")
	}
	if pids := dict.PIDs(); pids != nil {
		t.Errorf("nil dictionary PIDs() = %v, want nil", pids)
	}
}
