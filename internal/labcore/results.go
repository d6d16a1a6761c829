package labcore

import (
	"encoding/json"
	"strings"
)

// GlobalResultName is the parameter name given to legacy free-text results
// that predate the structured format.
const GlobalResultName = "Global Result"

// ResultParameter is one measured value with an optional unit and reference
// range. All fields are free text; Value may use a comma as decimal separator
// (automate output is often locale-formatted).
type ResultParameter struct {
	Name  string `json:"nom"`
	Value string `json:"valeur"`
	Unit  string `json:"unite,omitempty"`
	Min   string `json:"min,omitempty"`
	Max   string `json:"max,omitempty"`
}

// EncodeResults renders a parameter list into the single text blob stored in
// resultat_analyse. An empty list encodes to the empty string.
func EncodeResults(params []ResultParameter) string {
	if len(params) == 0 {
		return ""
	}
	data, err := json.Marshal(params)
	if err != nil {
		return ""
	}
	return string(data)
}

// DecodeResults parses a resultat_analyse blob back into a parameter list.
// Decoding is total: it never returns an error.
//   - Text starting with the list marker is parsed as the structured format;
//     anything malformed degrades to an empty list.
//   - Other non-empty text is the legacy free-text format and becomes a single
//     "Global Result" parameter holding the full text.
//   - Empty text decodes to an empty list.
func DecodeResults(text string) []ResultParameter {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []ResultParameter{}
	}
	if strings.HasPrefix(trimmed, "[") {
		var params []ResultParameter
		if err := json.Unmarshal([]byte(trimmed), &params); err != nil {
			return []ResultParameter{}
		}
		return params
	}
	return []ResultParameter{{Name: GlobalResultName, Value: text}}
}
