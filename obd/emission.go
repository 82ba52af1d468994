package obd

const emissionMinLen = 1

// EmissionInfo is the result of an emission decode: the SID echoed back
// plus a signal_id -> value map. Later entries for a duplicated signal_id
// overwrite earlier ones (last write wins), matching the dictionary's
// declared signal order for a given PID.
type EmissionInfo struct {
	SID     SID                `json:"sid"`
	Signals map[string]float64 `json:"signals"`
}

// DecodeEmissionPIDs decodes a Service 01/02 emission-data response. pids
// is the expected PID list the original request asked for; it must match,
// in order, the leading PID records in data. Records after the expected
// list are walked as well, and a PID missing from the dictionary ends the
// walk. Success requires at least one signal to have been decoded.
func (d *Decoder) DecodeEmissionPIDs(sid SID, pids []PID, data []byte) (*EmissionInfo, error) {
	if err := validateEnvelope(sid, data, emissionMinLen); err != nil {
		return nil, err
	}
	if d.dict == nil {
		return nil, errMissingDictionary{}
	}
	if err := isPIDResponseValid(d.dict, pids, data); err != nil {
		return nil, err
	}

	signals := map[string]float64{}

	cursor := 1
	for cursor < len(data) {
		pid := PID(data[cursor])
		entry, ok := d.dict.Lookup(pid)
		if !ok {
			_lg.WithFields(unknownPIDEvent{pid: pid}.Fields()).
				Warnf("emission: unknown PID at offset %d, aborting walk", cursor)
			break
		}

		dataStart := cursor + 1
		remaining := len(data) - dataStart
		if remaining < entry.SizeInBytes {
			_lg.Warnf("emission: PID 0x%02X record needs %d bytes, only %d remain; terminating walk",
				byte(pid), entry.SizeInBytes, remaining)
			break
		}

		for _, f := range entry.Signals {
			if !isFormulaValid(entry, f) {
				_lg.WithFields(invalidFormulaEvent{pid: pid, signalID: f.SignalID}.Fields()).
					Warn("emission: formula failed validation, skipping")
				continue
			}
			raw := extractRaw(data[dataStart:dataStart+entry.SizeInBytes], f)
			signals[f.SignalID] = float64(raw)*f.Factor + f.Offset
		}

		cursor = dataStart + entry.SizeInBytes
	}

	if len(signals) == 0 {
		return nil, errNoSignalsDecoded{}
	}
	return &EmissionInfo{SID: sid, Signals: signals}, nil
}

// extractRaw reads the bit field described by f out of a PID's data bytes.
// Sub-byte fields (size < 8) are read from one byte, right-shifted and
// masked; multi-byte fields (size >= 8, byte-aligned per isFormulaValid)
// are read big-endian across size_in_bits/8 consecutive bytes.
func extractRaw(pidData []byte, f SignalFormula) uint64 {
	byteIndex := f.FirstBitPosition / 8

	if f.SizeInBits < 8 {
		b := pidData[byteIndex]
		shift := uint(f.FirstBitPosition % 8)
		mask := byte(0xFF >> uint(8-f.SizeInBits))
		return uint64((b >> shift) & mask)
	}

	width := f.SizeInBits / 8
	return bigEndianUint(pidData[byteIndex : byteIndex+width])
}
