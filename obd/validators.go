package obd

import "fmt"

// isPIDResponseValid walks data starting at index 1, expecting, in order,
// each PID from pids followed by dict[pid].size_in_bytes data bytes. It
// fails if the payload ends early, a PID byte doesn't match the expected
// PID, or an expected PID is missing from the dictionary.
//
// It does not require the walk to land exactly on len(data): a response
// carrying bytes beyond the expected PID list (additional, possibly
// unrecognized, trailing records) is left for the decode walk itself to
// process and safely abort on, per the unknown-PID-aborts-the-walk
// behavior. It does fail if the expected list would run past the end of
// the payload, which is the ordinary "too short" case.
func isPIDResponseValid(dict *Dictionary, pids []PID, data []byte) error {
	cursor := 1
	for _, want := range pids {
		if cursor >= len(data) {
			return errInvalidResponseShape{reason: fmt.Sprintf("payload ends before expected PID 0x%02X", byte(want))}
		}
		got := PID(data[cursor])
		if got != want {
			return errInvalidResponseShape{reason: fmt.Sprintf("expected PID 0x%02X at offset %d, got 0x%02X", byte(want), cursor, byte(got))}
		}
		entry, ok := dict.Lookup(want)
		if !ok {
			return errInvalidResponseShape{reason: fmt.Sprintf("PID 0x%02X not in dictionary", byte(want))}
		}
		cursor += 1 + entry.SizeInBytes
	}

	if cursor > len(data) {
		return errInvalidResponseShape{reason: fmt.Sprintf("walk ended at offset %d, payload length is %d", cursor, len(data))}
	}
	return nil
}

// isFormulaValid reports whether f's bit range lies within its PID's data
// bytes and obeys byte-alignment when 8 bits or wider.
func isFormulaValid(entry DictionaryEntry, f SignalFormula) bool {
	totalBits := 8 * entry.SizeInBytes

	if f.FirstBitPosition < 0 || f.FirstBitPosition >= totalBits {
		return false
	}
	if f.FirstBitPosition+f.SizeInBits > totalBits {
		return false
	}
	if f.SizeInBits >= 8 && (f.SizeInBits%8 != 0 || f.FirstBitPosition%8 != 0) {
		return false
	}
	return true
}
