package domain

import "github.com/google/uuid"

// ProblemSummary is one row of a problem list
type ProblemSummary struct {
	Index  int           `json:"index"`
	ID     string        `json:"id"`
	Status ProblemStatus `json:"status"`
}

// ProblemList is a (part, difficulty) set annotated with recorded results.
// ResultsLoaded is false when no results could be read and every row is unanswered.
type ProblemList struct {
	Part          Part             `json:"part"`
	Difficulty    Difficulty       `json:"difficulty"`
	Problems      []ProblemSummary `json:"problems"`
	ResultsLoaded bool             `json:"resultsLoaded"`
}

// ProblemView is a problem ready to be answered
type ProblemView struct {
	Part          Part          `json:"part"`
	Difficulty    Difficulty    `json:"difficulty"`
	Problem       PublicProblem `json:"problem"`
	NextProblemID *string       `json:"nextProblemId"`
}

// QuestionReview is the graded outcome of one question
type QuestionReview struct {
	QuestionID  string `json:"questionId"`
	Selected    Option `json:"selected"`
	Answer      Option `json:"answer"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

// AnswerOutcome is returned once a problem has been graded
type AnswerOutcome struct {
	ProblemID     string           `json:"problemId"`
	Status        ProblemStatus    `json:"status"`
	Reviews       []QuestionReview `json:"reviews"`
	NextProblemID *string          `json:"nextProblemId"`
	AttemptID     *uuid.UUID       `json:"attemptId,omitempty"`
}
