package domain

// StatusKind classifies a StatusMessage.
type StatusKind string

const (
	StatusIdle    StatusKind = "idle"
	StatusInfo    StatusKind = "info"
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// User-facing messages. Failures are collapsed into one message per widget;
// the distinguished cause travels in StatusMessage.Detail.
const (
	MessageNoFileSelected  = "Please select a file first."
	MessageUploadSucceeded = "File uploaded successfully!"
	MessageUploadFailed    = "Failed to upload file."
	MessageRankingFetched  = "Dane pobrane pomyślnie!"
	MessageRankingFailed   = "Błąd podczas pobierania danych."
)

// StatusMessage is the outcome of the last attempted operation of a widget.
type StatusMessage struct {
	Kind   StatusKind `json:"kind"`
	Text   string     `json:"text"`
	Detail string     `json:"detail,omitempty"`
}

// IdleStatus is the empty status shown before any attempt.
func IdleStatus() StatusMessage {
	return StatusMessage{Kind: StatusIdle}
}

// IsIdle reports whether no outcome is being shown.
func (s StatusMessage) IsIdle() bool {
	return s.Kind == "" || s.Kind == StatusIdle
}
