package relay

import (
	"encoding/json"

	"gitlab.com/toeic-drill.net/internal/domain"
)

// SubmitRequest is the write-path body
type SubmitRequest struct {
	Payload *domain.ResultEvent `json:"payload"`
	GasURL  string              `json:"gasUrl"`
}

// SubmitResponse wraps whatever the external endpoint answered
type SubmitResponse struct {
	Success     bool            `json:"success"`
	GasResponse json.RawMessage `json:"gasResponse"`
}
