package models

// DialysisStatus is the answer to "Are you currently on dialysis?".
type DialysisStatus string

const (
	DialysisYes DialysisStatus = "Yes"
	DialysisNo  DialysisStatus = "No"
)

// ApplicantData is the validated input the eligibility engine consumes.
// GFR is a pointer because it is only collected (and only meaningful)
// when the applicant is not on dialysis.
type ApplicantData struct {
	Age              int
	OnDialysis       DialysisStatus
	GFR              *float64
	ActiveCancer     bool
	ActiveInfection  bool
	SubstanceAbuse   bool
	HeartLungDisease bool
	SocialSupport    bool
}

// ScreeningRequest is the wire form of one screening submission. Required
// fields are pointers so binding can tell "absent" from a zero value.
type ScreeningRequest struct {
	Age              *int     `json:"age" binding:"required,gte=0,lte=120"`
	OnDialysis       *string  `json:"on_dialysis" binding:"required,oneof=Yes No"`
	GFR              *float64 `json:"gfr" binding:"omitempty,gte=0"`
	HeightFeet       *int     `json:"height_feet" binding:"required,gte=1,lte=8"`
	HeightInches     *int     `json:"height_inches" binding:"omitempty,gte=0,lte=11"`
	WeightPounds     *float64 `json:"weight_pounds" binding:"required,gt=0"`
	ActiveCancer     bool     `json:"active_cancer"`
	ActiveInfection  bool     `json:"active_infection"`
	SubstanceAbuse   bool     `json:"substance_abuse"`
	HeartLungDisease bool     `json:"heart_lung_disease"`
	SocialSupport    *bool    `json:"social_support" binding:"required"`
}
