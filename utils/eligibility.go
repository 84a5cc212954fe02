package utils

import (
	"fmt"

	"github.com/anantdinesh/selfreferral/models"
)

// EligibilityStatus is the screening verdict. Severity only ever escalates
// during one evaluation: eligible -> conditional -> ineligible.
type EligibilityStatus string

const (
	Eligible    EligibilityStatus = "eligible"
	Conditional EligibilityStatus = "conditional"
	Ineligible  EligibilityStatus = "ineligible"
)

// Finding is one structured explanation you can show in your API / UI.
type Finding struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Messages flattens findings to their display strings, preserving order.
func Messages(fs []Finding) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Message)
	}
	return out
}

// DetermineEligibility applies the transplant-screening rules to applicant
// data plus an optional computed BMI and returns the verdict with ordered
// findings. Rules only fire when their inputs are present; missing optional
// inputs skip the rule rather than erroring. Callers are responsible for
// ensuring required fields were collected before evaluating.
func DetermineEligibility(data models.ApplicantData, bmi *float64) (EligibilityStatus, []Finding) {
	status := Eligible
	findings := []Finding{}

	// 1. Hard stops (likely ineligible). Each appends independently.
	if data.ActiveCancer {
		status = Ineligible
		findings = append(findings, Finding{
			Code:    "active_cancer",
			Message: "Active malignancy (cancer) is typically a contraindication. Generally, you must be cancer-free for a specific period (often 2-5 years) before being listed.",
		})
	}
	if data.ActiveInfection {
		status = Ineligible
		findings = append(findings, Finding{
			Code:    "active_infection",
			Message: "Active systemic infections must be fully treated and resolved before transplantation can proceed.",
		})
	}
	if data.SubstanceAbuse {
		status = Ineligible
		findings = append(findings, Finding{
			Code:    "substance_abuse",
			Message: "Active substance abuse is a contraindication. Programs typically require a demonstrated period of sobriety/abstinence.",
		})
	}

	// 2. Conditional / warnings. A hard stop suppresses all of these.
	if status != Ineligible {
		if data.HeartLungDisease {
			status = Conditional
			findings = append(findings, Finding{
				Code:    "heart_lung_disease",
				Message: "Severe heart or lung disease requires a detailed clearance by a specialist to ensure you are healthy enough for surgery.",
			})
		}

		// Only one BMI finding ever applies.
		if bmi != nil {
			if *bmi > 40 {
				status = Conditional
				findings = append(findings, Finding{
					Code:    "bmi_over_40",
					Message: fmt.Sprintf("Your calculated BMI is %.1f. A BMI over 40 may delay listing. The team may work with you on a weight loss plan prior to surgery.", *bmi),
				})
			} else if *bmi > 35 {
				status = Conditional
				findings = append(findings, Finding{
					Code:    "bmi_over_35",
					Message: fmt.Sprintf("Your calculated BMI is %.1f. While eligible, a BMI over 35 carries higher surgical risks.", *bmi),
				})
			}
		}

		if data.Age > 75 {
			status = Conditional
			findings = append(findings, Finding{
				Code:    "age_over_75",
				Message: "While there is no strict age limit, candidates over 75 undergo a more rigorous evaluation to ensure they can tolerate the surgery and medication.",
			})
		}

		if !data.SocialSupport {
			status = Conditional
			findings = append(findings, Finding{
				Code:    "no_support_system",
				Message: "Post-transplant care requires a dedicated support person. You will need to identify a support system to be listed.",
			})
		}

		// Kidney function check. GFR is only meaningful off dialysis.
		if data.OnDialysis == models.DialysisNo && data.GFR != nil && *data.GFR > 20 {
			status = Conditional
			findings = append(findings, Finding{
				Code:    "gfr_above_20",
				Message: "Typically, patients are listed for transplant when GFR drops below 20. If your GFR is between 20-30, you can still be evaluated, but waiting time may not accrue yet.",
			})
		}
	}

	return status, findings
}
