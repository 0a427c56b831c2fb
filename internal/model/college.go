package model

type CollegeType string

const (
	CollegeGovernment        CollegeType = "Government"
	CollegePrivate           CollegeType = "Private"
	CollegeDeemedUniversity  CollegeType = "Deemed University"
	CollegeCentralUniversity CollegeType = "Central University"
)

type CollegeLocation struct {
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address"`
}

type CollegeCourse struct {
	Name             string  `json:"name"`
	Duration         string  `json:"duration"`
	AnnualFees       int     `json:"annualFees"`
	SeatsTotal       int     `json:"seatsTotal"`
	SeatsAvailable   int     `json:"seatsAvailable"`
	CutoffPercentage float64 `json:"cutoffPercentage"`
	Medium           string  `json:"medium"`
}

type CollegeRatings struct {
	Infrastructure float64 `json:"infrastructure"`
	Faculty        float64 `json:"faculty"`
	Placement      float64 `json:"placement"`
	Overall        float64 `json:"overall"`
}

type PlacementStats struct {
	PlacementRate  float64  `json:"placementRate"`
	AveragePackage int      `json:"averagePackage"`
	TopRecruiters  []string `json:"topRecruiters"`
}

// College 院校目录条目。静态数据，只读。
// swagger:model College
type College struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           CollegeType     `json:"type"`
	District       string          `json:"district"`
	Location       CollegeLocation `json:"location"`
	Courses        []CollegeCourse `json:"courses"`
	Facilities     []string        `json:"facilities"`
	Ratings        CollegeRatings  `json:"ratings"`
	PlacementStats PlacementStats  `json:"placementStats"`
}
