package bead

import "encoding/json"

// Decode parses a JSON array of bead records. On failure it returns a
// *DecodeError wrapping the cause; no partial results are returned.
func Decode(data []byte) ([]Bead, error) {
	var beads []Bead
	if err := json.Unmarshal(data, &beads); err != nil {
		return nil, &DecodeError{Cause: err}
	}
	return beads, nil
}

// Encode serializes an analysis result to JSON. On failure it returns a
// *EncodeError wrapping the cause.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &EncodeError{Cause: err}
	}
	return data, nil
}
