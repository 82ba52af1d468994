package obd

import "testing"

func TestSID_positiveResponse(t *testing.T) {
	tests := []struct {
		name string
		sid  SID
		want byte
	}{
		{"current data", SIDCurrentData, 0x41},
		{"freeze frame", SIDFreezeFrame, 0x42},
		{"stored DTC", SIDStoredDTC, 0x43},
		{"pending DTC", SIDPendingDTC, 0x47},
		{"permanent DTC", SIDPermanentDTC, 0x4A},
		{"vehicle info", SIDVehicleInfo, 0x49},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sid.positiveResponse(); got != tt.want {
				t.Errorf("positiveResponse() = 0x%02X, want 0x%02X", got, tt.want)
			}
		})
	}
}

func TestIsRangeSelector(t *testing.T) {
	tests := []struct {
		pid  PID
		want bool
	}{
		{0x00, true}, {0x20, true}, {0x40, true}, {0x60, true},
		{0x80, true}, {0xA0, true}, {0xC0, true}, {0xE0, true},
		{0x01, false}, {0x0C, false}, {0x1F, false},
	}
	for _, tt := range tests {
		if got := isRangeSelector(tt.pid); got != tt.want {
			t.Errorf("isRangeSelector(0x%02X) = %v, want %v", byte(tt.pid), got, tt.want)
		}
	}
}

func TestBigEndianUint(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint64
	}{
		{"single byte", []byte{0xFF}, 0xFF},
		{"two bytes", []byte{0x1A, 0xF8}, 0x1AF8},
		{"four bytes", []byte{0x00, 0x00, 0x01, 0x00}, 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bigEndianUint(tt.data); got != tt.want {
				t.Errorf("bigEndianUint(% X) = %d, want %d", tt.data, got, tt.want)
			}
		})
	}
}
