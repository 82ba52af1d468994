package obd

import "fmt"

const dtcMinLen = 2

var dtcDomainLetter = [4]byte{'P', 'C', 'B', 'U'}

// DTCInfo is the result of a DTC decode: the SID echoed back plus the
// DTCs found, in payload order.
type DTCInfo struct {
	SID  SID      `json:"sid"`
	DTCs []string `json:"dtcs"`
}

// DecodeDTCs decodes a Service 03/07/0A response into DTCInfo. A count of
// zero is a successful empty result; any length mismatch against the
// declared count is a corrupt-frame failure.
func DecodeDTCs(sid SID, data []byte) (*DTCInfo, error) {
	if err := validateEnvelope(sid, data, dtcMinLen); err != nil {
		return nil, err
	}

	count := int(data[1])
	if count == 0 {
		return &DTCInfo{SID: sid}, nil
	}

	if len(data) != 2+2*count {
		return nil, errInvalidResponseShape{
			reason: fmt.Sprintf("corrupt frame: count=%d implies length %d, got %d", count, 2+2*count, len(data)),
		}
	}

	dtcs := make([]string, 0, count)
	for i := 0; i < count; i++ {
		b0, b1 := data[2+2*i], data[2+2*i+1]
		dtcs = append(dtcs, formatDTC(b0, b1))
	}

	if len(dtcs) == 0 {
		return nil, errNoSignalsDecoded{}
	}
	return &DTCInfo{SID: sid, DTCs: dtcs}, nil
}

// formatDTC renders a 2-byte DTC code into its canonical 5-character form.
func formatDTC(b0, b1 byte) string {
	domain := dtcDomainLetter[b0>>6]
	digit1 := (b0 & 0x30) >> 4
	digit2 := b0 & 0x0F
	digit3 := b1 >> 4
	digit4 := b1 & 0x0F

	return fmt.Sprintf("%c%X%X%X%X", domain, digit1, digit2, digit3, digit4)
}
