package obd

import "sort"

// knownPIDs is the set of PID numbers the software recognizes for the
// supported-PID advertisement (SIDs 01/02 share this namespace). This is
// deliberately independent of the caller-supplied decoder dictionary:
// decode_supported_pids takes no dictionary argument (spec.md §6), so
// "known" here means "a PID this build of the decoder understands how to
// advertise", not "has an emission-signal layout". The set below is the
// common J1979 Mode 01 PID range.
var knownPIDs = map[PID]bool{
	0x01: true, 0x04: true, 0x05: true, 0x06: true, 0x07: true,
	0x08: true, 0x09: true, 0x0A: true, 0x0B: true, 0x0C: true,
	0x0D: true, 0x0E: true, 0x0F: true, 0x10: true, 0x11: true,
	0x1C: true, 0x1F: true, 0x2F: true, 0x31: true, 0x33: true,
	0x42: true, 0x46: true, 0x5C: true, 0xA4: true, 0xA6: true,
}

const supportedPIDsMinLen = 6

// DecodeSupportedPIDs decodes a Service 01/02 supported-PID bitmap response
// into a sorted, deduplicated list of PIDs the ECU advertises as supported.
func DecodeSupportedPIDs(sid SID, data []byte) ([]PID, error) {
	if err := validateEnvelope(sid, data, supportedPIDsMinLen); err != nil {
		return nil, err
	}

	found := map[PID]bool{}
	rangeIndex := 0
	for i := 1; i < len(data); i++ {
		if (i-1)%5 == 0 {
			rangeIndex++
			continue
		}

		b := data[i]
		for j := 0; j < 8; j++ {
			if b&(1<<uint(j)) == 0 {
				continue
			}
			advertised := PID((i-rangeIndex)*8 - j)
			if isRangeSelector(advertised) {
				continue
			}
			if !knownPIDs[advertised] {
				_lg.WithFields(unknownPIDEvent{pid: advertised}.Fields()).
					Trace("pids: discarding unrecognized advertised PID")
				continue
			}
			found[advertised] = true
		}
	}

	if len(found) == 0 {
		_lg.Warnf("pids: no supported PIDs decoded from payload % X", data)
		return nil, errNoSignalsDecoded{}
	}

	pids := make([]PID, 0, len(found))
	for pid := range found {
		pids = append(pids, pid)
	}
	sort.Slice(pids, func(a, b int) bool { return pids[a] < pids[b] })
	return pids, nil
}
