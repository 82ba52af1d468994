// Command obddecode is a demonstration front-end for the obd package: it
// decodes a single hex-encoded J1979 payload and prints the result as
// JSON. It performs no transport, scheduling, or dictionary provisioning
// of its own — those remain the caller's responsibility per obd's
// contract; this is scaffolding to exercise the decoder end to end.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/obdtelemetry/j1979decoder/obd"
	"github.com/obdtelemetry/j1979decoder/obd/fixture"
)

var (
	sidFlag        string
	dictionaryFlag string
	pidsFlag       string
)

func main() {
	logger := logrus.New()
	obd.SetLogger(logger)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "obddecode",
		Short: "Decode SAE J1979 OBD-II response payloads",
	}
	root.PersistentFlags().StringVar(&sidFlag, "sid", "0x01", "service identifier, e.g. 0x01")

	root.AddCommand(newPIDsCmd(), newEmissionCmd(), newDTCCmd(), newVINCmd())
	return root
}

func newPIDsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pids <hex-payload>",
		Short: "Decode a supported-PID bitmap response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, err := parseSID(sidFlag)
			if err != nil {
				return err
			}
			data, err := parsePayload(args[0])
			if err != nil {
				return err
			}

			pids, err := obd.DecodeSupportedPIDs(sid, data)
			if err != nil {
				return err
			}
			return printJSON(cmd, pidNumbers(pids))
		},
	}
}

func newEmissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emission <hex-payload>",
		Short: "Decode an emission-data response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, err := parseSID(sidFlag)
			if err != nil {
				return err
			}
			data, err := parsePayload(args[0])
			if err != nil {
				return err
			}
			pids, err := parsePIDList(pidsFlag)
			if err != nil {
				return err
			}
			dict, err := fixture.LoadDictionary(dictionaryFlag)
			if err != nil {
				return err
			}

			decoder := obd.NewDecoder()
			decoder.SetDictionary(dict)

			info, err := decoder.DecodeEmissionPIDs(sid, pids, data)
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		},
	}
	cmd.Flags().StringVar(&dictionaryFlag, "dictionary", "", "path to a decoder dictionary YAML fixture")
	cmd.Flags().StringVar(&pidsFlag, "pids", "", "comma-separated expected PIDs, e.g. 0C,0D")
	_ = cmd.MarkFlagRequired("dictionary")
	_ = cmd.MarkFlagRequired("pids")
	return cmd
}

func newDTCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dtc <hex-payload>",
		Short: "Decode a stored/pending/permanent DTC response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, err := parseSID(sidFlag)
			if err != nil {
				return err
			}
			data, err := parsePayload(args[0])
			if err != nil {
				return err
			}

			info, err := obd.DecodeDTCs(sid, data)
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		},
	}
}

func newVINCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vin <hex-payload>",
		Short: "Decode a vehicle-information (VIN) response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parsePayload(args[0])
			if err != nil {
				return err
			}

			vin, err := obd.DecodeVIN(data)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]string{"vin": vin})
		},
	}
}

func parseSID(s string) (obd.SID, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid --sid %q: %w", s, err)
	}
	return obd.SID(v), nil
}

func parsePayload(hexStr string) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(hexStr, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex payload: %w", err)
	}
	return data, nil
}

func parsePIDList(s string) ([]obd.PID, error) {
	if s == "" {
		return nil, fmt.Errorf("--pids must not be empty")
	}
	parts := strings.Split(s, ",")
	pids := make([]obd.PID, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(p), "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid PID %q: %w", p, err)
		}
		pids = append(pids, obd.PID(v))
	}
	return pids, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// pidNumbers converts a []obd.PID to plain ints before marshaling. PID's
// underlying type is byte, and encoding/json base64-encodes any slice whose
// element kind is Uint8, so marshaling []obd.PID directly would produce an
// opaque string instead of a JSON array of PID numbers.
func pidNumbers(pids []obd.PID) []int {
	out := make([]int, len(pids))
	for i, p := range pids {
		out[i] = int(p)
	}
	return out
}
