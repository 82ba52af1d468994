package obd

import "fmt"

const (
	vinMinLen    = 3
	vinPID       = 0x02
	vinDataStart = 3
)

// DecodeVIN decodes a Service 09 / PID 02 response into the Vehicle
// Identification Number. No character-set validation is performed; that
// is left to a layer above.
func DecodeVIN(data []byte) (string, error) {
	if err := validateEnvelope(SIDVehicleInfo, data, vinMinLen); err != nil {
		return "", err
	}
	if data[1] != vinPID {
		return "", errInvalidResponseShape{reason: fmt.Sprintf("expected VIN PID 0x%02X, got 0x%02X", vinPID, data[1])}
	}

	if len(data) <= vinDataStart {
		_lg.Warnf("vin: no VIN bytes after count field in payload % X", data)
		return "", errNoSignalsDecoded{}
	}

	vin := string(data[vinDataStart:])
	if vin == "" {
		return "", errNoSignalsDecoded{}
	}
	return vin, nil
}
