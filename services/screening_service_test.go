package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anantdinesh/selfreferral/models"
	"github.com/anantdinesh/selfreferral/utils"
)

func testService() *ScreeningService {
	return NewScreeningService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestScreenEligible(t *testing.T) {
	svc := testService()
	gfr := 15.0
	data := models.ApplicantData{
		Age:           30,
		OnDialysis:    models.DialysisNo,
		GFR:           &gfr,
		SocialSupport: true,
	}

	res := svc.Screen(data, 5, 10, 160)

	assert.Equal(t, utils.Eligible, res.Status)
	assert.Empty(t, res.Findings)
	require.NotNil(t, res.BMI)
	assert.Equal(t, 23.0, *res.BMI)

	_, err := uuid.Parse(res.ScreeningID)
	assert.NoError(t, err, "screening id should be a uuid")
}

func TestScreenBMIUndefined(t *testing.T) {
	svc := testService()
	data := models.ApplicantData{
		Age:           85,
		OnDialysis:    models.DialysisYes,
		SocialSupport: true,
	}

	// Zero weight leaves BMI undefined; only the age rule fires.
	res := svc.Screen(data, 5, 10, 0)

	assert.Nil(t, res.BMI)
	assert.Equal(t, utils.Conditional, res.Status)
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "age_over_75", res.Findings[0].Code)
}

func TestScreenFreshIDPerEvaluation(t *testing.T) {
	svc := testService()
	data := models.ApplicantData{
		Age:           30,
		OnDialysis:    models.DialysisYes,
		SocialSupport: true,
	}

	a := svc.Screen(data, 5, 10, 160)
	b := svc.Screen(data, 5, 10, 160)

	assert.NotEqual(t, a.ScreeningID, b.ScreeningID)
	assert.Equal(t, a.Status, b.Status)
	assert.Equal(t, a.Findings, b.Findings)
}
