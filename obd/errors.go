package obd

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// errInvalidEnvelope means the payload was too short or its first byte was
// not the expected positive-response marker. Fatal to the current call.
type errInvalidEnvelope struct {
	wantFirstByte byte
	data          []byte
}

func (e errInvalidEnvelope) Error() string {
	return fmt.Sprintf("invalid envelope: want first byte 0x%02X, got % X", e.wantFirstByte, e.data)
}

// IsErrInvalidEnvelope reports whether err is an envelope validation failure.
func IsErrInvalidEnvelope(err error) bool {
	_, ok := err.(errInvalidEnvelope)
	return ok
}

// errInvalidResponseShape means the payload length or PID sequence didn't
// match what the dictionary expects. Fatal to the current call.
type errInvalidResponseShape struct {
	reason string
}

func (e errInvalidResponseShape) Error() string {
	return "invalid response shape: " + e.reason
}

// IsErrInvalidResponseShape reports whether err is a shape/alignment failure.
func IsErrInvalidResponseShape(err error) bool {
	_, ok := err.(errInvalidResponseShape)
	return ok
}

// errMissingDictionary means an emission decode was attempted with no
// dictionary set on the decoder.
type errMissingDictionary struct{}

func (e errMissingDictionary) Error() string {
	return "no decoder dictionary set"
}

// IsErrMissingDictionary reports whether err is a missing-dictionary failure.
func IsErrMissingDictionary(err error) bool {
	_, ok := err.(errMissingDictionary)
	return ok
}

// errNoSignalsDecoded means a decode walk completed without producing any
// output (no supported PIDs, no DTCs, no signals).
type errNoSignalsDecoded struct{}

func (e errNoSignalsDecoded) Error() string {
	return "decode produced no output"
}

// IsErrNoSignalsDecoded reports whether err is an empty-result failure.
func IsErrNoSignalsDecoded(err error) bool {
	_, ok := err.(errNoSignalsDecoded)
	return ok
}

// unknownPIDEvent records that a PID present in the payload was absent from
// the dictionary. It aborts the walk but is not itself returned as an error:
// signals decoded before the miss are kept and the decode still succeeds if
// at least one signal was emitted.
type unknownPIDEvent struct {
	pid PID
}

// Fields renders the event as logrus fields for the advisory warn/trace log.
func (e unknownPIDEvent) Fields() logrus.Fields {
	return logrus.Fields{"pid": fmt.Sprintf("0x%02X", byte(e.pid))}
}

// invalidFormulaEvent records that a signal formula failed isFormulaValid.
// The offending formula is skipped; other formulas on the same PID, and
// other PIDs, are unaffected.
type invalidFormulaEvent struct {
	pid      PID
	signalID string
}

// Fields renders the event as logrus fields for the advisory warn log.
func (e invalidFormulaEvent) Fields() logrus.Fields {
	return logrus.Fields{"pid": fmt.Sprintf("0x%02X", byte(e.pid)), "signal_id": e.signalID}
}
