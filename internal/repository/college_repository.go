package repository

import (
	"strings"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
)

// CollegeFilter 院校目录筛选条件，空字段不参与过滤
type CollegeFilter struct {
	District string
	Type     string
	Course   string
}

// CollegeRepository 静态院校目录，构造后只读，无需加锁
type CollegeRepository struct {
	colleges []model.College
	byID     map[string]model.College
}

func NewCollegeRepository(colleges []model.College) *CollegeRepository {
	byID := make(map[string]model.College, len(colleges))
	for _, c := range colleges {
		byID[c.ID] = c
	}
	return &CollegeRepository{colleges: colleges, byID: byID}
}

func (r *CollegeRepository) GetByID(id string) (model.College, bool) {
	c, ok := r.byID[id]
	return c, ok
}

func (r *CollegeRepository) List(filter CollegeFilter) []model.College {
	out := make([]model.College, 0, len(r.colleges))
	for _, c := range r.colleges {
		if filter.District != "" && !strings.EqualFold(c.District, filter.District) {
			continue
		}
		if filter.Type != "" && !strings.EqualFold(string(c.Type), filter.Type) {
			continue
		}
		if filter.Course != "" && !collegeOffers(c, filter.Course) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func collegeOffers(c model.College, course string) bool {
	needle := strings.ToLower(course)
	for _, cc := range c.Courses {
		if strings.Contains(strings.ToLower(cc.Name), needle) {
			return true
		}
	}
	return false
}
