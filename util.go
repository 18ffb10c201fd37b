package sponsorblock

import "encoding/json"

// toURLArray serializes a list of strings into the single query-parameter
// value the API expects: a JSON array, e.g. ["sponsor","selfpromo"].
func toURLArray(values []string) string {
	if values == nil {
		values = []string{}
	}
	// Marshalling a []string cannot fail.
	out, _ := json.Marshal(values)
	return string(out)
}
