package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RankingEntry is one row of the ranking returned by the ranking endpoint.
// The JSON names are the remote service's wire format.
type RankingEntry struct {
	FirstName string `json:"imie"`
	LastName  string `json:"nazwisko"`
	Score     Score  `json:"punkty"`
}

// ScoreText returns the score as shown in the table.
func (e RankingEntry) ScoreText() string {
	return e.Score.String()
}

// Score holds the punkty value exactly as the ranking endpoint sent it.
// Any JSON value is accepted.
type Score json.RawMessage

// NumberScore builds a Score from a number.
func NumberScore(v float64) Score {
	return Score(strconv.FormatFloat(v, 'f', -1, 64))
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Score) UnmarshalJSON(data []byte) error {
	*s = append((*s)[:0], data...)
	return nil
}

// MarshalJSON implements json.Marshaler
func (s Score) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return s, nil
}

// String formats the score for display. Numbers use the shortest decimal
// form (10 -> "10", 10.50 -> "10.5"), strings are shown unquoted, null and
// booleans show nothing, and anything else is shown as raw JSON.
func (s Score) String() string {
	raw := bytes.TrimSpace(s)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case 'n', 't', 'f':
		return ""
	case '"':
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			return text
		}
	case '{', '[':
		return string(raw)
	}

	if v, err := strconv.ParseFloat(string(raw), 64); err == nil {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return string(raw)
}
