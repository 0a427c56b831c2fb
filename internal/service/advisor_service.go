package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Shamanthsheni/SmartCareerAI/internal/config"
	"github.com/Shamanthsheni/SmartCareerAI/internal/llm"
	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
	"github.com/Shamanthsheni/SmartCareerAI/pkg/logger"
	"github.com/Shamanthsheni/SmartCareerAI/pkg/monitoring"

	"go.uber.org/zap"
)

// AdvisorService AI增强适配层。外部AI调用视为不可靠的远程依赖：
// 每个操作都带有限超时，任何失败（网络、超时、JSON格式错误）一律
// 替换为固定的降级结果，绝不向调用方抛错。
type AdvisorService struct {
	client  llm.Client
	timeout time.Duration
}

func NewAdvisorService(client llm.Client, cfg config.AIConfig) *AdvisorService {
	return &AdvisorService{
		client:  client,
		timeout: cfg.Timeout(),
	}
}

const chatFallbackReply = "I'm having trouble connecting right now. Please try asking your question again in a moment."

const chatEmptyReply = "I understand your question. Career planning in J&K offers many opportunities in both government and private sectors. Would you like to explore specific fields that interest you?"

// fallbackAnalysis 单题分析的降级结果，刻意通用、不做个性化
func fallbackAnalysis() model.AIAnalysis {
	return model.AIAnalysis{
		Interests:         []string{"Problem Solving", "Technology"},
		CareerSuggestions: []string{"Engineering", "Teaching"},
		PersonalityTraits: []string{"Analytical", "Creative"},
		Analysis:          "Based on your response, you show strong analytical thinking. Consider exploring technical fields that are growing in J&K.",
		ConfidenceScore:   0.7,
	}
}

var analysisSchema = &llm.Schema{
	Type: "object",
	Properties: map[string]*llm.Schema{
		"interests":         {Type: "array", Items: &llm.Schema{Type: "string"}},
		"careerSuggestions": {Type: "array", Items: &llm.Schema{Type: "string"}},
		"personalityTraits": {Type: "array", Items: &llm.Schema{Type: "string"}},
		"analysis":          {Type: "string"},
		"confidenceScore":   {Type: "number"},
	},
	Required: []string{"interests", "careerSuggestions", "personalityTraits", "analysis", "confidenceScore"},
}

// AnalyzeAnswer 将单题答案交给AI分析为结构化洞察
func (s *AdvisorService) AnalyzeAnswer(ctx context.Context, questionID, answer, userID string) model.AIAnalysis {
	system := fmt.Sprintf(`You are a career counselor for students in Jammu & Kashmir.
Analyze this career assessment response and provide insights in JSON format.

Question ID: %s
Student Answer: "%s"
User Context: {"userId":"%s"}

Focus on:
- J&K specific opportunities
- Government college recommendations
- Realistic career advice
- Local job market insights

Respond with JSON in this exact format:
{
  "interests": ["interest1", "interest2"],
  "careerSuggestions": ["career1", "career2"],
  "personalityTraits": ["trait1", "trait2"],
  "analysis": "brief explanation connecting answer to career insights",
  "confidenceScore": 0.85
}`, questionID, answer, userID)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.client.GenerateJSON(ctx, system, answer, analysisSchema)
	if err != nil {
		logger.Log.Warn("quiz analysis fell back", zap.String("questionId", questionID), zap.Error(err))
		monitoring.AIRequestCounter.WithLabelValues("analyze_answer", "fallback").Inc()
		return fallbackAnalysis()
	}

	var analysis model.AIAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil || analysis.Analysis == "" {
		logger.Log.Warn("quiz analysis returned malformed JSON", zap.String("questionId", questionID), zap.Error(err))
		monitoring.AIRequestCounter.WithLabelValues("analyze_answer", "fallback").Inc()
		return fallbackAnalysis()
	}

	monitoring.AIRequestCounter.WithLabelValues("analyze_answer", "ok").Inc()
	return analysis
}

// ChatReply 职业咨询问答。回复长度200词以内仅为提示词约束，不强制。
func (s *AdvisorService) ChatReply(ctx context.Context, message, userID string) string {
	system := fmt.Sprintf(`You are a career counselor for students in Jammu & Kashmir. Provide helpful, personalized career guidance.

User Context: {"userId":"%s"}
Student Question: "%s"

Guidelines:
- Focus on J&K specific opportunities and colleges
- Mention government job prospects and local businesses
- Be encouraging and supportive
- Provide actionable advice
- Keep responses under 200 words
- Reference local institutions like NIT Srinagar, University of Jammu when relevant`, userID, message)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.client.Generate(ctx, system, message)
	if err != nil {
		logger.Log.Warn("chat reply fell back", zap.String("userId", userID), zap.Error(err))
		monitoring.AIRequestCounter.WithLabelValues("chat_reply", "fallback").Inc()
		return chatFallbackReply
	}
	if strings.TrimSpace(reply) == "" {
		monitoring.AIRequestCounter.WithLabelValues("chat_reply", "ok").Inc()
		return chatEmptyReply
	}

	monitoring.AIRequestCounter.WithLabelValues("chat_reply", "ok").Inc()
	return reply
}

// rawRecommendation AI返回的推荐条目，字段可能缺失，缺失处回填默认值
type rawRecommendation struct {
	CareerTitle     string              `json:"careerTitle"`
	MatchPercentage int                 `json:"matchPercentage"`
	Description     string              `json:"description"`
	Requirements    []string            `json:"requirements"`
	SalaryRange     *model.SalaryRange  `json:"salaryRange"`
	Roadmap         []model.RoadmapStep `json:"roadmap"`
}

// SynthesizeRecommendations 汇总历史答题并生成推荐批次。
// 整体失败时返回固定的两条降级推荐，保证输出非空。
func (s *AdvisorService) SynthesizeRecommendations(ctx context.Context, userID string, responses []model.QuizResponse) []model.InsertCareerRecommendation {
	var sb strings.Builder
	for _, r := range responses {
		fmt.Fprintf(&sb, "Q: %s A: %s\n", r.QuestionID, r.Answer)
	}

	system := fmt.Sprintf(`Based on these career assessment responses from a J&K student, generate 3-5 personalized career recommendations.

Assessment Responses:
%s

For each career, provide:
- Career title
- Match percentage (realistic, 70-95%%)
- Description explaining why it matches
- Requirements and qualifications needed
- Salary range in INR for J&K region
- 4-5 step roadmap with timeline

Focus on careers available in J&K including:
- Engineering (NIT Srinagar, local IT companies)
- Teaching (government schools, private tutoring)
- Civil Services (JKAS, central govt jobs)
- Healthcare (government hospitals, private practice)
- Business (tourism, handicrafts, local trade)

Return JSON array format.`, sb.String())

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.client.GenerateJSON(ctx, system, "Generate career recommendations", nil)
	if err != nil {
		logger.Log.Warn("recommendation synthesis fell back", zap.String("userId", userID), zap.Error(err))
		monitoring.AIRequestCounter.WithLabelValues("synthesize_recommendations", "fallback").Inc()
		return fallbackRecommendations(userID)
	}

	var items []rawRecommendation
	if err := json.Unmarshal([]byte(raw), &items); err != nil || len(items) == 0 {
		logger.Log.Warn("recommendation synthesis returned malformed JSON", zap.String("userId", userID), zap.Error(err))
		monitoring.AIRequestCounter.WithLabelValues("synthesize_recommendations", "fallback").Inc()
		return fallbackRecommendations(userID)
	}

	monitoring.AIRequestCounter.WithLabelValues("synthesize_recommendations", "ok").Inc()

	out := make([]model.InsertCareerRecommendation, len(items))
	for i, item := range items {
		out[i] = backfillRecommendation(userID, item)
	}
	return out
}

// backfillRecommendation 缺失字段回填文档化的默认值
func backfillRecommendation(userID string, item rawRecommendation) model.InsertCareerRecommendation {
	rec := model.InsertCareerRecommendation{
		UserID:          userID,
		CareerTitle:     item.CareerTitle,
		MatchPercentage: item.MatchPercentage,
		Description:     item.Description,
		Requirements:    item.Requirements,
		Roadmap:         item.Roadmap,
	}
	if rec.CareerTitle == "" {
		rec.CareerTitle = "Career Path"
	}
	if rec.MatchPercentage == 0 {
		rec.MatchPercentage = 75
	}
	if rec.Description == "" {
		rec.Description = "A suitable career option based on your assessment."
	}
	if len(rec.Requirements) == 0 {
		rec.Requirements = []string{"Relevant education", "Skills development"}
	}
	if item.SalaryRange != nil {
		rec.SalaryRange = *item.SalaryRange
	} else {
		rec.SalaryRange = model.SalaryRange{Min: 300000, Max: 800000}
	}
	if len(rec.Roadmap) == 0 {
		rec.Roadmap = []model.RoadmapStep{
			{Step: "1", Title: "Education", Description: "Complete required education", Timeline: "2-4 years"},
			{Step: "2", Title: "Skills", Description: "Develop key skills", Timeline: "1-2 years"},
			{Step: "3", Title: "Experience", Description: "Gain practical experience", Timeline: "1-3 years"},
			{Step: "4", Title: "Career", Description: "Launch professional career", Timeline: "Ongoing"},
		}
	}
	return rec
}

// fallbackRecommendations 合成整体失败时的固定推荐：一技术一非技术
func fallbackRecommendations(userID string) []model.InsertCareerRecommendation {
	return []model.InsertCareerRecommendation{
		{
			UserID:          userID,
			CareerTitle:     "Software Engineering",
			MatchPercentage: 88,
			Description:     "High demand field with excellent growth prospects in J&K's expanding IT sector.",
			Requirements:    []string{"B.Tech Computer Science", "Programming Skills", "Problem-solving abilities"},
			SalaryRange:     model.SalaryRange{Min: 600000, Max: 1500000},
			Roadmap: []model.RoadmapStep{
				{Step: "1", Title: "Complete 12th", Description: "Focus on PCM subjects", Timeline: "Current"},
				{Step: "2", Title: "Engineering Entrance", Description: "Prepare for JEE Main", Timeline: "6 months"},
				{Step: "3", Title: "B.Tech", Description: "Complete Computer Science degree", Timeline: "4 years"},
				{Step: "4", Title: "Skills & Internships", Description: "Build portfolio and gain experience", Timeline: "During college"},
				{Step: "5", Title: "Career Launch", Description: "Join tech companies or startups", Timeline: "Post graduation"},
			},
		},
		{
			UserID:          userID,
			CareerTitle:     "Teaching",
			MatchPercentage: 82,
			Description:     "Noble profession with high demand for qualified teachers in J&K education system.",
			Requirements:    []string{"Subject expertise", "B.Ed qualification", "Communication skills"},
			SalaryRange:     model.SalaryRange{Min: 350000, Max: 700000},
			Roadmap: []model.RoadmapStep{
				{Step: "1", Title: "Graduate Degree", Description: "Complete B.A/B.Sc in chosen subject", Timeline: "3 years"},
				{Step: "2", Title: "B.Ed", Description: "Complete Bachelor of Education", Timeline: "1-2 years"},
				{Step: "3", Title: "TET Preparation", Description: "Prepare for Teacher Eligibility Test", Timeline: "6 months"},
				{Step: "4", Title: "Teaching Position", Description: "Apply for government or private schools", Timeline: "Ongoing"},
			},
		},
	}
}
