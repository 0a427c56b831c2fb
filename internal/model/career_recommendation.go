package model

// SalaryRange 年薪范围（INR）
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RoadmapStep 职业路线图中的一步
type RoadmapStep struct {
	Step        string `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
	Completed   bool   `json:"completed"`
}

// CareerRecommendation 职业推荐。每次生成请求产生一批记录，
// 历史批次不去重、不覆盖。
// swagger:model CareerRecommendation
type CareerRecommendation struct {
	Base
	UserID          string        `json:"userId"`
	CareerTitle     string        `json:"careerTitle"`
	MatchPercentage int           `json:"matchPercentage"`
	Description     string        `json:"description"`
	Requirements    []string      `json:"requirements"`
	SalaryRange     SalaryRange   `json:"salaryRange"`
	Roadmap         []RoadmapStep `json:"roadmap"`
}

type InsertCareerRecommendation struct {
	UserID          string        `json:"userId" binding:"required"`
	CareerTitle     string        `json:"careerTitle" binding:"required"`
	MatchPercentage int           `json:"matchPercentage"`
	Description     string        `json:"description"`
	Requirements    []string      `json:"requirements"`
	SalaryRange     SalaryRange   `json:"salaryRange"`
	Roadmap         []RoadmapStep `json:"roadmap"`
}
