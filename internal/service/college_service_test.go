package service

import (
	"testing"

	"github.com/Shamanthsheni/SmartCareerAI/internal/repository"
	"github.com/Shamanthsheni/SmartCareerAI/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollegeServiceGet(t *testing.T) {
	svc := NewCollegeService(repository.NewCollegeRepository(repository.DefaultColleges()))

	college, err := svc.Get("nit_srinagar_01")
	require.NoError(t, err)
	assert.Equal(t, "National Institute of Technology, Srinagar", college.Name)

	_, err = svc.Get("missing")
	assert.ErrorIs(t, err, util.ErrCollegeNotFound)
}

func TestCollegeServiceList(t *testing.T) {
	svc := NewCollegeService(repository.NewCollegeRepository(repository.DefaultColleges()))

	colleges := svc.List(repository.CollegeFilter{District: "Jammu"})
	require.Len(t, colleges, 1)
	assert.Equal(t, "gu_jammu_01", colleges[0].ID)
}
