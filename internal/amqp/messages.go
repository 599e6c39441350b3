package amqp

import (
	"encoding/json"
	"time"
)

// ReportBuiltMessage tells downstream consumers that a dashboard was
// assembled for an anchor instant.
type ReportBuiltMessage struct {
	Anchor      time.Time `json:"anchor"`
	GeneratedAt time.Time `json:"generated_at"`
}

func NewReportBuiltMessage(anchor time.Time) *ReportBuiltMessage {
	return &ReportBuiltMessage{
		Anchor:      anchor,
		GeneratedAt: time.Now(),
	}
}

func (m *ReportBuiltMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ReportBuiltMessageFromJSON(data []byte) (*ReportBuiltMessage, error) {
	var msg ReportBuiltMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
