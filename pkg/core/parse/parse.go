// Package parse decodes hand-written analysis input files. People edit
// these by hand, so strict JSON is only the first attempt: the decoder
// falls back to automatic JSON repair (trailing commas, single quotes,
// unquoted keys) and finally to Hjson, which additionally allows
// comments and optional commas.
package parse

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// Decode unmarshals input into out, trying strict JSON, repaired JSON
// and Hjson in that order. The error reports that all strategies failed,
// carrying the strict-JSON error as the most actionable diagnostic.
func Decode(input []byte, out interface{}) error {
	strictErr := json.Unmarshal(input, out)
	if strictErr == nil {
		return nil
	}

	if repaired, err := jsonrepair.RepairJSON(string(input)); err == nil {
		if err := json.Unmarshal([]byte(repaired), out); err == nil {
			return nil
		}
	}

	if err := hjson.Unmarshal(input, out); err == nil {
		return nil
	}

	return fmt.Errorf("input is not valid JSON, repairable JSON or Hjson: %w", strictErr)
}
