package service

import (
	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
	"github.com/Shamanthsheni/SmartCareerAI/internal/repository"
	"github.com/Shamanthsheni/SmartCareerAI/internal/util"
)

type CollegeService struct {
	repo *repository.CollegeRepository
}

func NewCollegeService(repo *repository.CollegeRepository) *CollegeService {
	return &CollegeService{repo: repo}
}

func (s *CollegeService) List(filter repository.CollegeFilter) []model.College {
	return s.repo.List(filter)
}

func (s *CollegeService) Get(id string) (model.College, error) {
	college, ok := s.repo.GetByID(id)
	if !ok {
		return model.College{}, util.ErrCollegeNotFound
	}
	return college, nil
}
