package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anantdinesh/selfreferral/models"
	"github.com/anantdinesh/selfreferral/services"
	"github.com/anantdinesh/selfreferral/utils"
)

// Contact card shown to applicants who can self-refer. Static presentation
// data, not part of the screening rules.
type ContactCard struct {
	Phone    string `json:"phone"`
	AltPhone string `json:"alt_phone"`
	Building string `json:"building"`
	Address  string `json:"address"`
}

var transplantCenterContact = ContactCard{
	Phone:    "(701) 234-6246",
	AltPhone: "(701) 234-3360",
	Building: "Sanford Broadway Medical Building",
	Address:  "736 Broadway N, Fargo, ND 58102",
}

const (
	nextStepsSelfRefer  = "You do not need a doctor's referral to start the process. You can self-refer by contacting the Sanford Transplant Center directly."
	nextStepsIneligible = "Please speak with your primary doctor or nephrologist to manage the conditions listed above. If your situation changes (e.g., cancer remission, infection cleared), you can re-apply."
)

type ScreeningResponse struct {
	ScreeningID string          `json:"screening_id"`
	Status      string          `json:"status"`
	Messages    []string        `json:"messages"`
	Findings    []utils.Finding `json:"findings"`
	BMI         *float64        `json:"bmi,omitempty"`
	NextSteps   string          `json:"next_steps"`
	Contact     *ContactCard    `json:"contact,omitempty"`
}

type ScreeningController struct {
	Svc *services.ScreeningService
}

func NewScreeningController(svc *services.ScreeningService) *ScreeningController {
	return &ScreeningController{Svc: svc}
}

// Evaluate handles POST /screening/evaluate. The handler owns completeness
// validation; the rule engine itself assumes required fields are present.
func (sc *ScreeningController) Evaluate(c *gin.Context) {
	var req models.ScreeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// GFR is collected from non-dialysis applicants only, and must be a
	// real lab value when it is collected.
	if *req.OnDialysis == string(models.DialysisNo) && (req.GFR == nil || *req.GFR == 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gfr is required when not on dialysis"})
		return
	}

	heightIn := 0
	if req.HeightInches != nil {
		heightIn = *req.HeightInches
	}

	data := models.ApplicantData{
		Age:              *req.Age,
		OnDialysis:       models.DialysisStatus(*req.OnDialysis),
		GFR:              req.GFR,
		ActiveCancer:     req.ActiveCancer,
		ActiveInfection:  req.ActiveInfection,
		SubstanceAbuse:   req.SubstanceAbuse,
		HeartLungDisease: req.HeartLungDisease,
		SocialSupport:    *req.SocialSupport,
	}

	res := sc.Svc.Screen(data, *req.HeightFeet, heightIn, *req.WeightPounds)

	out := ScreeningResponse{
		ScreeningID: res.ScreeningID,
		Status:      string(res.Status),
		Messages:    utils.Messages(res.Findings),
		Findings:    res.Findings,
		BMI:         res.BMI,
		NextSteps:   nextStepsSelfRefer,
	}
	if res.Status == utils.Ineligible {
		out.NextSteps = nextStepsIneligible
	} else {
		// Applicants who are not ruled out get the self-referral card.
		card := transplantCenterContact
		out.Contact = &card
	}

	c.JSON(http.StatusOK, out)
}

// Contact handles GET /screening/contact.
func (sc *ScreeningController) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, transplantCenterContact)
}
