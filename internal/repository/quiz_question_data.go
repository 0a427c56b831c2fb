package repository

import "github.com/Shamanthsheni/SmartCareerAI/internal/model"

// DefaultQuizQuestions 职业测评题库。题目顺序即展示顺序。
func DefaultQuizQuestions() []model.QuizQuestion {
	return []model.QuizQuestion{
		{
			ID:          "q1",
			Question:    "What type of work environment do you thrive in?",
			Type:        model.QuestionMultipleChoice,
			Description: "Think about where you feel most productive and comfortable. Your answer helps our AI understand your work style preferences.",
			Options: []string{
				"Collaborative Team Environment - Working closely with others, brainstorming, and team projects",
				"Independent Work Setting - Self-directed work with minimal supervision and distractions",
				"Mixed Environment - Balance of independent work and team collaboration",
				"Client-facing Environment - Regular interaction with customers or clients",
			},
			Category: "work_style",
		},
		{
			ID:       "q2",
			Question: "Which subjects did you enjoy most in school?",
			Type:     model.QuestionMultipleChoice,
			Options: []string{
				"Mathematics and Physics - Numbers, equations, and scientific concepts",
				"Languages and Literature - Reading, writing, and communication",
				"Science and Biology - Understanding how things work in nature",
				"History and Social Studies - Learning about people, cultures, and societies",
				"Arts and Creative Subjects - Drawing, music, or creative expression",
			},
			Category: "interests",
		},
		{
			ID:          "q3",
			Question:    "Describe a project or achievement you're most proud of",
			Type:        model.QuestionText,
			Description: "Tell us about something you accomplished that made you feel proud. It could be academic, personal, or extracurricular.",
			Category:    "personality",
		},
		{
			ID:          "q4",
			Question:    "How important is job security versus creative freedom to you?",
			Type:        model.QuestionScale,
			Description: "Rate on a scale where 1 means job security is most important, and 10 means creative freedom is most important.",
			Category:    "values",
		},
		{
			ID:       "q5",
			Question: "What motivates you most in your daily activities?",
			Type:     model.QuestionMultipleChoice,
			Options: []string{
				"Solving complex problems and finding solutions",
				"Helping others and making a positive impact",
				"Creating something new and innovative",
				"Leading and organizing people and projects",
				"Learning and gaining knowledge continuously",
			},
			Category: "personality",
		},
		{
			ID:       "q6",
			Question: "Which of these career aspects matters most to you?",
			Type:     model.QuestionMultipleChoice,
			Options: []string{
				"High salary and financial stability",
				"Work-life balance and flexible hours",
				"Opportunities for growth and advancement",
				"Making a difference in society",
				"Recognition and prestige",
			},
			Category: "values",
		},
		{
			ID:       "q7",
			Question: "How do you prefer to learn new things?",
			Type:     model.QuestionMultipleChoice,
			Options: []string{
				"Hands-on practice and experimentation",
				"Reading books and detailed documentation",
				"Watching videos and visual demonstrations",
				"Discussion and learning from others",
				"Trial and error with immediate feedback",
			},
			Category: "skills",
		},
		{
			ID:          "q8",
			Question:    "What's your approach to handling stress or pressure?",
			Type:        model.QuestionText,
			Description: "Describe how you typically handle stressful situations or tight deadlines.",
			Category:    "personality",
		},
		{
			ID:       "q9",
			Question: "Which activities do you enjoy in your free time?",
			Type:     model.QuestionMultipleChoice,
			Options: []string{
				"Reading, writing, or intellectual pursuits",
				"Sports, fitness, or physical activities",
				"Arts, crafts, or creative projects",
				"Social activities and spending time with friends",
				"Technology, gaming, or digital exploration",
			},
			Category: "interests",
		},
		{
			ID:          "q10",
			Question:    "How comfortable are you with public speaking or presentations?",
			Type:        model.QuestionScale,
			Description: "Rate your comfort level from 1 (very uncomfortable) to 10 (very comfortable).",
			Category:    "skills",
		},
		{
			ID:       "q11",
			Question: "What role do you usually take in group projects?",
			Type:     model.QuestionMultipleChoice,
			Options: []string{
				"The Leader - I organize and delegate tasks",
				"The Researcher - I gather and analyze information",
				"The Creative - I come up with innovative ideas",
				"The Executor - I focus on completing tasks efficiently",
				"The Mediator - I help resolve conflicts and maintain harmony",
			},
			Category: "work_style",
		},
		{
			ID:       "q12",
			Question: "What's your ideal work schedule?",
			Type:     model.QuestionMultipleChoice,
			Options: []string{
				"Traditional 9-5 weekdays with weekends off",
				"Flexible hours as long as work gets done",
				"Irregular schedule with variety and change",
				"Part-time or reduced hours for work-life balance",
				"Intensive periods followed by longer breaks",
			},
			Category: "work_style",
		},
		{
			ID:          "q13",
			Question:    "Describe your biggest strength and how you've used it",
			Type:        model.QuestionText,
			Description: "What would others say is your greatest strength? Share an example of how this strength has helped you.",
			Category:    "personality",
		},
		{
			ID:          "q14",
			Question:    "How important is it for you to see immediate results from your work?",
			Type:        model.QuestionScale,
			Description: "Rate from 1 (I'm patient with long-term projects) to 10 (I need to see quick results).",
			Category:    "work_style",
		},
		{
			ID:       "q15",
			Question: "What type of problems do you enjoy solving most?",
			Type:     model.QuestionMultipleChoice,
			Options: []string{
				"Technical or mathematical problems with clear solutions",
				"People-related issues that require empathy and communication",
				"Creative challenges that need innovative thinking",
				"Strategic problems that require planning and analysis",
				"Practical problems that improve daily life",
			},
			Category: "interests",
		},
		{
			ID:       "q16",
			Question: "Which work environment energizes you most?",
			Type:     model.QuestionMultipleChoice,
			Options: []string{
				"Fast-paced, dynamic environment with constant change",
				"Calm, organized environment with predictable routines",
				"Intellectual environment focused on learning and research",
				"Social environment with lots of human interaction",
				"Creative environment that encourages experimentation",
			},
			Category: "work_style",
		},
		{
			ID:       "q17",
			Question: "What aspects of technology interest you most?",
			Type:     model.QuestionMultipleChoice,
			Options: []string{
				"Programming and software development",
				"Understanding how devices and systems work",
				"Using technology to solve social problems",
				"The business and economic impact of technology",
				"I'm not particularly interested in technology",
			},
			Category: "interests",
		},
		{
			ID:          "q18",
			Question:    "How do you handle criticism or feedback?",
			Type:        model.QuestionText,
			Description: "Describe how you typically respond when someone gives you constructive feedback or criticism.",
			Category:    "personality",
		},
		{
			ID:       "q19",
			Question: "What size organization would you prefer to work for?",
			Type:     model.QuestionMultipleChoice,
			Options: []string{
				"Large corporation with established systems and benefits",
				"Medium-sized company with growth opportunities",
				"Small startup with flexibility and innovation",
				"Non-profit organization focused on social impact",
				"Government organization serving the public",
			},
			Category: "values",
		},
		{
			ID:          "q20",
			Question:    "Looking ahead 10 years, what would make you feel most successful?",
			Type:        model.QuestionText,
			Description: "Describe what success looks like to you in the long term. What would you want to have achieved?",
			Category:    "values",
		},
	}
}
