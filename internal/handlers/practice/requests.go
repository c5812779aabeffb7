package practice

import "gitlab.com/toeic-drill.net/internal/domain"

// AnswerRequest carries the selected option per question id
type AnswerRequest struct {
	Answers map[string]domain.Option `json:"answers"`
}

type PartsResponse struct {
	Parts []domain.Part `json:"parts"`
}

type DifficultiesResponse struct {
	Part         domain.Part         `json:"part"`
	Difficulties []domain.Difficulty `json:"difficulties"`
}
