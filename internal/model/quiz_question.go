package model

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionText           QuestionType = "text"
	QuestionScale          QuestionType = "scale"
)

// QuizQuestion 测评题库条目。静态数据，只读。
// swagger:model QuizQuestion
type QuizQuestion struct {
	ID          string       `json:"id"`
	Question    string       `json:"question"`
	Type        QuestionType `json:"type"`
	Options     []string     `json:"options,omitempty"`
	Description string       `json:"description,omitempty"`
	Category    string       `json:"category"`
}
