// Package obd decodes SAE J1979 positive-response payloads: supported-PID
// bitmaps, emission signals, diagnostic trouble codes, and the VIN.
package obd

import "github.com/sirupsen/logrus"

var _lg = logrus.New()

// SetLogger swaps the package-level logger used for diagnostic warn/trace
// output. Logging is advisory only; no decode decision is ever made from it.
func SetLogger(lg *logrus.Logger) {
	_lg = lg
}

// SID is a J1979 service identifier.
type SID byte

const (
	SIDCurrentData  SID = 0x01
	SIDFreezeFrame  SID = 0x02
	SIDStoredDTC    SID = 0x03
	SIDPendingDTC   SID = 0x07
	SIDPermanentDTC SID = 0x0A
	SIDVehicleInfo  SID = 0x09
)

// positiveResponse returns the positive-response marker byte for sid.
func (sid SID) positiveResponse() byte {
	return 0x40 + byte(sid)
}

// PID is an 8-bit parameter identifier scoped within a SID.
type PID byte

// rangeSelectors are the PIDs that carry no data of their own and instead
// request the supported-PID bitmap for the next 32 PIDs.
var rangeSelectors = map[PID]bool{
	0x00: true, 0x20: true, 0x40: true, 0x60: true,
	0x80: true, 0xA0: true, 0xC0: true, 0xE0: true,
}

func isRangeSelector(pid PID) bool {
	return rangeSelectors[pid]
}

// bigEndianUint reads n bytes (n in [1,4]) from data as a big-endian
// unsigned integer, matching the on-wire byte order of J1979 data bytes.
func bigEndianUint(data []byte) uint64 {
	var v uint64
	for _, b := range data {
		v = v<<8 | uint64(b)
	}
	return v
}
