package repository

import "github.com/Shamanthsheni/SmartCareerAI/internal/model"

// DefaultColleges J&K院校目录数据
func DefaultColleges() []model.College {
	return []model.College{
		{
			ID:       "gc_srinagar_01",
			Name:     "Government College for Women, Srinagar",
			Type:     model.CollegeGovernment,
			District: "Srinagar",
			Location: model.CollegeLocation{
				Coordinates: []float64{34.0837, 74.7973},
				Address:     "Maulana Azad Road, Srinagar, J&K 190001",
			},
			Courses: []model.CollegeCourse{
				{Name: "B.A. English Literature", Duration: "3 years", AnnualFees: 8000, SeatsTotal: 60, SeatsAvailable: 23, CutoffPercentage: 75, Medium: "English"},
				{Name: "B.Sc. Mathematics", Duration: "3 years", AnnualFees: 8500, SeatsTotal: 40, SeatsAvailable: 15, CutoffPercentage: 80, Medium: "English"},
				{Name: "B.Com", Duration: "3 years", AnnualFees: 7500, SeatsTotal: 80, SeatsAvailable: 35, CutoffPercentage: 70, Medium: "English"},
			},
			Facilities: []string{"Library", "Computer Lab", "Hostel", "Sports Ground", "Cafeteria"},
			Ratings:    model.CollegeRatings{Infrastructure: 4.2, Faculty: 4.0, Placement: 3.8, Overall: 4.0},
			PlacementStats: model.PlacementStats{
				PlacementRate:  65,
				AveragePackage: 350000,
				TopRecruiters:  []string{"J&K Government", "Private Schools", "NGOs"},
			},
		},
		{
			ID:       "nit_srinagar_01",
			Name:     "National Institute of Technology, Srinagar",
			Type:     model.CollegeCentralUniversity,
			District: "Srinagar",
			Location: model.CollegeLocation{
				Coordinates: []float64{34.0837, 74.7973},
				Address:     "Hazratbal, Srinagar, J&K 190006",
			},
			Courses: []model.CollegeCourse{
				{Name: "B.Tech Computer Science", Duration: "4 years", AnnualFees: 125000, SeatsTotal: 60, SeatsAvailable: 8, CutoffPercentage: 95, Medium: "English"},
				{Name: "B.Tech Electronics", Duration: "4 years", AnnualFees: 120000, SeatsTotal: 45, SeatsAvailable: 12, CutoffPercentage: 92, Medium: "English"},
				{Name: "B.Tech Civil", Duration: "4 years", AnnualFees: 115000, SeatsTotal: 50, SeatsAvailable: 18, CutoffPercentage: 88, Medium: "English"},
			},
			Facilities: []string{"Modern Labs", "Library", "Hostel", "Sports Complex", "WiFi Campus", "Research Centers"},
			Ratings:    model.CollegeRatings{Infrastructure: 4.8, Faculty: 4.7, Placement: 4.9, Overall: 4.8},
			PlacementStats: model.PlacementStats{
				PlacementRate:  92,
				AveragePackage: 1200000,
				TopRecruiters:  []string{"Google", "Microsoft", "Amazon", "TCS", "Infosys"},
			},
		},
		{
			ID:       "gu_jammu_01",
			Name:     "University of Jammu",
			Type:     model.CollegeCentralUniversity,
			District: "Jammu",
			Location: model.CollegeLocation{
				Coordinates: []float64{32.7266, 74.8570},
				Address:     "Jammu Tawi, Jammu, J&K 180006",
			},
			Courses: []model.CollegeCourse{
				{Name: "B.A. Political Science", Duration: "3 years", AnnualFees: 15000, SeatsTotal: 100, SeatsAvailable: 45, CutoffPercentage: 72, Medium: "English/Hindi"},
				{Name: "B.Sc. Physics", Duration: "3 years", AnnualFees: 18000, SeatsTotal: 60, SeatsAvailable: 25, CutoffPercentage: 78, Medium: "English"},
				{Name: "BBA", Duration: "3 years", AnnualFees: 25000, SeatsTotal: 80, SeatsAvailable: 30, CutoffPercentage: 75, Medium: "English"},
			},
			Facilities: []string{"Central Library", "Computer Center", "Sports Complex", "Hostels", "Medical Center"},
			Ratings:    model.CollegeRatings{Infrastructure: 4.3, Faculty: 4.2, Placement: 4.1, Overall: 4.2},
			PlacementStats: model.PlacementStats{
				PlacementRate:  78,
				AveragePackage: 450000,
				TopRecruiters:  []string{"Government Departments", "Private Companies", "Banks"},
			},
		},
		{
			ID:       "gc_baramulla_01",
			Name:     "Government Degree College, Baramulla",
			Type:     model.CollegeGovernment,
			District: "Baramulla",
			Location: model.CollegeLocation{
				Coordinates: []float64{34.2093, 74.3436},
				Address:     "Baramulla, J&K 193101",
			},
			Courses: []model.CollegeCourse{
				{Name: "B.A. History", Duration: "3 years", AnnualFees: 6000, SeatsTotal: 50, SeatsAvailable: 28, CutoffPercentage: 65, Medium: "English/Urdu"},
				{Name: "B.Com", Duration: "3 years", AnnualFees: 6500, SeatsTotal: 60, SeatsAvailable: 32, CutoffPercentage: 68, Medium: "English"},
			},
			Facilities: []string{"Library", "Basic Labs", "Playground"},
			Ratings:    model.CollegeRatings{Infrastructure: 3.5, Faculty: 3.8, Placement: 3.2, Overall: 3.5},
			PlacementStats: model.PlacementStats{
				PlacementRate:  45,
				AveragePackage: 250000,
				TopRecruiters:  []string{"Local Businesses", "Government Offices", "Schools"},
			},
		},
	}
}
