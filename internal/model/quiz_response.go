package model

// AIAnalysis AI对单题答案的结构化分析结果
type AIAnalysis struct {
	Interests         []string `json:"interests"`
	CareerSuggestions []string `json:"careerSuggestions"`
	PersonalityTraits []string `json:"personalityTraits"`
	Analysis          string   `json:"analysis"`
	ConfidenceScore   float64  `json:"confidenceScore"`
}

// QuizResponse 测评答题记录，创建后不再修改
// swagger:model QuizResponse
type QuizResponse struct {
	Base
	UserID     string      `json:"userId"`
	QuestionID string      `json:"questionId"`
	Answer     string      `json:"answer"`
	AIAnalysis *AIAnalysis `json:"aiAnalysis,omitempty"`
}

type InsertQuizResponse struct {
	UserID     string      `json:"userId" binding:"required"`
	QuestionID string      `json:"questionId" binding:"required"`
	Answer     string      `json:"answer" binding:"required"`
	AIAnalysis *AIAnalysis `json:"aiAnalysis,omitempty"`
}
