package models

import (
	"healthcamp-service/internal/pkg/constvars"
)

// LabRecord is one lab sub-record flattened into its result values.
type LabRecord struct {
	Results map[string]interface{}
	StaffAttribution
}

// LabRecords returns the lab sub-records present on the patient keyed by
// test type.
func (p Patient) LabRecords() map[string]LabRecord {
	records := make(map[string]LabRecord)

	if p.RandomBloodSugar != nil {
		records[constvars.LabTestBloodSugar] = LabRecord{
			Results: map[string]interface{}{
				"sugar": numberOrNil(p.RandomBloodSugar.Sugar),
			},
			StaffAttribution: p.RandomBloodSugar.StaffAttribution,
		}
	}
	if p.MalariaTest != nil {
		records[constvars.LabTestMalaria] = LabRecord{
			Results: map[string]interface{}{
				"result": p.MalariaTest.Result,
			},
			StaffAttribution: p.MalariaTest.StaffAttribution,
		}
	}
	if p.HIVScreening != nil {
		records[constvars.LabTestHIV] = LabRecord{
			Results: map[string]interface{}{
				"discordant_test_result": p.HIVScreening.DiscordantTestResult,
			},
			StaffAttribution: p.HIVScreening.StaffAttribution,
		}
	}
	if p.Urinalysis != nil {
		u := p.Urinalysis
		records[constvars.LabTestUrinalysis] = LabRecord{
			Results: map[string]interface{}{
				"leucocytes":       u.Leucocytes,
				"nitrites":         u.Nitrites,
				"urobilinogen":     u.Urobilinogen,
				"protein":          u.Protein,
				"ph":               numberOrNil(u.PH),
				"blood":            u.Blood,
				"specific_gravity": numberOrNil(u.SpecificGravity),
				"ketones":          u.Ketones,
				"bilirubin":        u.Bilirubin,
				"glucose":          u.Glucose,
				"reference_range":  u.ReferenceRange,
			},
			StaffAttribution: u.StaffAttribution,
		}
	}
	if p.DiseaseBurden != nil {
		records[constvars.LabTestHbA1c] = LabRecord{
			Results: map[string]interface{}{
				"hb1a_test": numberOrNil(p.DiseaseBurden.HbA1cTest),
			},
			StaffAttribution: p.DiseaseBurden.StaffAttribution,
		}
	}
	if p.CancerScreening != nil {
		c := p.CancerScreening
		records[constvars.LabTestCancerScreening] = LabRecord{
			Results: map[string]interface{}{
				"via":      c.VIA,
				"psa":      numberOrNil(c.PSA),
				"rapidPsa": c.RapidPSA,
				"ca125":    numberOrNil(c.CA125),
				"ca199":    numberOrNil(c.CA199),
				"cea":      numberOrNil(c.CEA),
			},
			StaffAttribution: c.StaffAttribution,
		}
	}

	return records
}

func numberOrNil(n *FlexibleNumber) interface{} {
	if n == nil {
		return nil
	}
	return float64(*n)
}
