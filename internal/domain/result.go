package domain

import "strings"

// Part is the content section of the reading test
type Part string

const (
	PartFive  Part = "part5"
	PartSix   Part = "part6"
	PartSeven Part = "part7"
)

// Difficulty is the target-score band of a problem set
type Difficulty string

const (
	Difficulty600 Difficulty = "600"
	Difficulty700 Difficulty = "700"
	Difficulty800 Difficulty = "800"
)

// ProblemStatus is the outcome recorded for one problem
type ProblemStatus string

const (
	StatusCorrect    ProblemStatus = "correct"
	StatusIncorrect  ProblemStatus = "incorrect"
	StatusUnanswered ProblemStatus = "unanswered"
)

func (p Part) Valid() bool {
	switch p {
	case PartFive, PartSix, PartSeven:
		return true
	}
	return false
}

// Number returns the numeric part label, e.g. "5" for part5
func (p Part) Number() string {
	return strings.TrimPrefix(string(p), "part")
}

func (d Difficulty) Valid() bool {
	switch d {
	case Difficulty600, Difficulty700, Difficulty800:
		return true
	}
	return false
}

func (s ProblemStatus) Valid() bool {
	switch s {
	case StatusCorrect, StatusIncorrect, StatusUnanswered:
		return true
	}
	return false
}

// ResultEvent is one answer-completion record sent to the external endpoint
type ResultEvent struct {
	Timestamp string        `json:"timestamp"`
	ProblemID string        `json:"problemId"`
	Part      Part          `json:"part"`
	Level     Difficulty    `json:"level"`
	Result    ProblemStatus `json:"result"`
}

// ResultRecord is the latest known outcome of a problem as reported by the external endpoint
type ResultRecord struct {
	ProblemID string        `json:"problemId"`
	Result    ProblemStatus `json:"result"`
}

// ResultSet is the body the external endpoint returns for a scoped read
type ResultSet struct {
	Status string         `json:"status"`
	Data   []ResultRecord `json:"data"`
}
