package domain

// Option is one of the four answer choices
type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"
)

var Options = []Option{OptionA, OptionB, OptionC, OptionD}

func (o Option) Valid() bool {
	switch o {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// Choices holds the text of each option
type Choices struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

// Question is a single multiple-choice item
type Question struct {
	ID          string  `json:"id"`
	Problem     string  `json:"problem"`
	Options     Choices `json:"options"`
	Answer      Option  `json:"answer"`
	Explanation string  `json:"explanation"`
}

// Problem groups one passage (possibly empty) with its questions.
// Part 5 problems carry exactly one question.
type Problem struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	Questions []Question `json:"questions"`
}

// PublicQuestion is a Question without the answer key
type PublicQuestion struct {
	ID      string  `json:"id"`
	Problem string  `json:"problem"`
	Options Choices `json:"options"`
}

// PublicProblem is a Problem safe to send before it is answered
type PublicProblem struct {
	ID        string           `json:"id"`
	Content   string           `json:"content"`
	Questions []PublicQuestion `json:"questions"`
}

func (p *Problem) Public() PublicProblem {
	qs := make([]PublicQuestion, 0, len(p.Questions))
	for _, q := range p.Questions {
		qs = append(qs, PublicQuestion{ID: q.ID, Problem: q.Problem, Options: q.Options})
	}
	return PublicProblem{ID: p.ID, Content: p.Content, Questions: qs}
}
