package obd

// Decoder holds a reference to the current decoder dictionary and exposes
// the emission decode, the one operation that needs a dictionary; the
// supported-PID, DTC and VIN decoders are package-level functions. It is
// stateless across calls
// except for that reference, and is safe for a single goroutine to reuse
// across many decode calls; it is not safe for concurrent use by multiple
// goroutines without external synchronization, matching the single-
// threaded synchronous call model the decoder is designed for.
type Decoder struct {
	dict *Dictionary
}

// NewDecoder creates a Decoder with no dictionary set. Emission decodes
// fail with errMissingDictionary until SetDictionary is called.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// SetDictionary replaces the decoder dictionary used by subsequent decode
// calls. The previous dictionary, if any, is left untouched: dictionaries
// are never mutated in place, only swapped by reference.
func (d *Decoder) SetDictionary(dict *Dictionary) {
	d.dict = dict
}

// validateEnvelope confirms data is at least minLen bytes and its first
// byte is the positive-response marker for sid.
func validateEnvelope(sid SID, data []byte, minLen int) error {
	want := sid.positiveResponse()
	if len(data) < minLen || data[0] != want {
		return errInvalidEnvelope{wantFirstByte: want, data: data}
	}
	return nil
}
