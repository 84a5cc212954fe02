package services

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/anantdinesh/selfreferral/models"
	"github.com/anantdinesh/selfreferral/utils"
)

// ScreeningResult is one completed evaluation. Nothing is persisted; the
// ScreeningID only gives the caller a reference to quote when phoning the
// transplant center.
type ScreeningResult struct {
	ScreeningID string
	Status      utils.EligibilityStatus
	Findings    []utils.Finding
	BMI         *float64
}

type ScreeningService struct {
	logger *slog.Logger
}

func NewScreeningService(logger *slog.Logger) *ScreeningService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScreeningService{logger: logger}
}

// Screen derives BMI from the body measurements, runs the eligibility rules
// and assembles the result. It never fails: undefined BMI just means the
// BMI rules are skipped.
func (s *ScreeningService) Screen(data models.ApplicantData, heightFt, heightIn int, weightLbs float64) ScreeningResult {
	var bmi *float64
	if v, ok := utils.CalculateBMI(heightFt, heightIn, weightLbs); ok {
		bmi = &v
	}

	status, findings := utils.DetermineEligibility(data, bmi)

	res := ScreeningResult{
		ScreeningID: uuid.NewString(),
		Status:      status,
		Findings:    findings,
		BMI:         bmi,
	}

	s.logger.Info("screening evaluated",
		"screening_id", res.ScreeningID,
		"status", string(status),
		"findings", len(findings),
	)
	return res
}
