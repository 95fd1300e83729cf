package utils

import (
	"sort"

	"healthcamp-service/internal/app/models"
	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/dto/responses"
)

func ConvertPatientToLabExport(patient models.Patient) responses.LabExport {
	export := responses.LabExport{
		ID:        patient.ID.Hex(),
		Name:      patient.Name,
		PatientID: patient.PatientID,
		Location:  patient.Location,
		Tests:     make(map[string]responses.LabTest),
	}

	if patient.Triage != nil {
		export.TriagedBy = &responses.StaffAttribution{
			Email: patient.Triage.UserEmail,
			Role:  patient.Triage.UserRole,
		}
	}

	for testType, record := range patient.LabRecords() {
		export.Tests[testType] = responses.LabTest{
			Results: record.Results,
			RecordedBy: responses.StaffAttribution{
				Email: record.UserEmail,
				Role:  record.UserRole,
			},
		}
	}

	return export
}

func ConvertPatientsToLabExports(patients []models.Patient) []responses.LabExport {
	exports := make([]responses.LabExport, 0, len(patients))
	for _, patient := range patients {
		exports = append(exports, ConvertPatientToLabExport(patient))
	}
	return exports
}

func ConvertDemographicsRows(rows []models.DemographicsRow) []responses.DemographicsGroup {
	groups := make([]responses.DemographicsGroup, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, responses.DemographicsGroup{
			ID: responses.DemographicsKey{
				Gender:   row.ID.Gender,
				AgeGroup: row.ID.AgeGroup,
			},
			Count: row.Count,
		})
	}
	return groups
}

func ConvertLocationCountRows(rows []models.LocationCountRow) []responses.LocationCount {
	counts := make([]responses.LocationCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, responses.LocationCount{ID: row.ID, Count: row.Count})
	}
	return counts
}

// ConvertCoverageRows attaches a percentage of the grand total to every status.
func ConvertCoverageRows(rows []models.CoverageRow) responses.CoverageStats {
	var total int64
	for _, row := range rows {
		total += row.Count
	}

	details := make([]responses.CoverageDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, responses.CoverageDetail{
			Status:     CoverageStatusLabel(row.ID),
			Count:      row.Count,
			Percentage: FormatPercentage(row.Count, total),
		})
	}

	return responses.CoverageStats{
		TotalPatients: total,
		Details:       details,
	}
}

func ConvertDiagnosisCountRows(rows []models.DiagnosisCountRow) []responses.DiagnosisCount {
	counts := make([]responses.DiagnosisCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, responses.DiagnosisCount{
			Code:  row.ID.Code,
			Name:  row.ID.Name,
			Count: row.Count,
		})
	}
	return counts
}

func ConvertNamedDiagnosisCountRows(rows []models.NamedDiagnosisCountRow) []responses.DiagnosisCount {
	counts := make([]responses.DiagnosisCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, responses.DiagnosisCount{
			Code:  row.Code,
			Name:  row.ID,
			Count: row.Count,
		})
	}
	return counts
}

func ConvertLabelCountRows(rows []models.LabelCountRow) []responses.LabelCount {
	counts := make([]responses.LabelCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, responses.LabelCount{Label: row.ID, Count: row.Count})
	}
	return counts
}

func ConvertConditionRows(rows []models.LabelCountRow) []responses.ConditionCount {
	counts := make([]responses.ConditionCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, responses.ConditionCount{Condition: row.ID, Count: row.Count})
	}
	return counts
}

// ConvertAgeBucketRows presents $bucket output in fixed range order.
func ConvertAgeBucketRows(rows []models.BucketRow) []responses.AgeDistribution {
	counts := make(map[string]int64)
	for _, row := range rows {
		counts[AgeBucketLabel(row.ID)] += row.Count
	}
	return orderedAgeDistribution(counts)
}

// ConvertAgeGroupRows presents $switch age groups in fixed range order.
func ConvertAgeGroupRows(rows []models.LabelCountRow) []responses.AgeDistribution {
	counts := make(map[string]int64)
	for _, row := range rows {
		counts[row.ID] += row.Count
	}
	return orderedAgeDistribution(counts)
}

var ageGroupOrder = []string{
	constvars.AgeGroup0To18,
	constvars.AgeGroup19To30,
	constvars.AgeGroup31To50,
	constvars.AgeGroup51To70,
	constvars.AgeGroupOver70,
}

func orderedAgeDistribution(counts map[string]int64) []responses.AgeDistribution {
	distribution := make([]responses.AgeDistribution, 0, len(ageGroupOrder))
	for _, label := range ageGroupOrder {
		distribution = append(distribution, responses.AgeDistribution{Range: label, Count: counts[label]})
	}
	return distribution
}

func ConvertGenderRows(rows []models.LabelCountRow) responses.GenderBreakdown {
	var breakdown responses.GenderBreakdown
	for _, row := range rows {
		switch row.ID {
		case constvars.GenderMale:
			breakdown.Male += row.Count
		case constvars.GenderFemale:
			breakdown.Female += row.Count
		}
	}
	return breakdown
}

// ConvertCoverageByLocationRows averages per location coverage rates with
// every location weighted equally.
func ConvertCoverageByLocationRows(rows []models.LocationCoverageRow) responses.InsuranceCoverage {
	coverage := responses.InsuranceCoverage{
		ByLocation: make([]responses.LocationCoverage, 0, len(rows)),
	}

	var rateSum float64
	for _, row := range rows {
		rate := SafeRatio(float64(row.Covered), float64(row.Total))
		rateSum += rate

		location := ""
		if row.ID != nil {
			location = *row.ID
		}
		coverage.ByLocation = append(coverage.ByLocation, responses.LocationCoverage{
			Location:     location,
			Total:        row.Total,
			Covered:      row.Covered,
			CoverageRate: RoundFloat(rate, 4),
		})
	}
	coverage.AverageCoverageRate = RoundFloat(SafeRatio(rateSum, float64(len(rows))), 4)

	return coverage
}

func ConvertBloodPressureRows(rows []models.BloodPressureRow) responses.BloodPressureSummary {
	var summary responses.BloodPressureSummary
	if len(rows) == 0 {
		return summary
	}
	row := rows[0]
	if row.AverageSystolic != nil {
		summary.AverageSystolic = RoundFloat(*row.AverageSystolic, 1)
	}
	if row.AverageDiastolic != nil {
		summary.AverageDiastolic = RoundFloat(*row.AverageDiastolic, 1)
	}
	summary.HypertensiveCount = row.HypertensiveCount
	summary.TotalMeasured = row.TotalMeasured
	return summary
}

func ConvertBMIRows(rows []models.LabelCountRow) responses.BMIDistribution {
	var distribution responses.BMIDistribution
	for _, row := range rows {
		switch row.ID {
		case constvars.BMICategoryUnderweight:
			distribution.Underweight += row.Count
		case constvars.BMICategoryNormal:
			distribution.Normal += row.Count
		case constvars.BMICategoryOverweight:
			distribution.Overweight += row.Count
		case constvars.BMICategoryObese:
			distribution.Obese += row.Count
		}
	}
	return distribution
}

func ConvertStaffRows(rows []models.StaffCountRow) []responses.StaffCount {
	counts := make([]responses.StaffCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, responses.StaffCount{Email: row.ID, Role: row.Role, Count: row.Count})
	}
	return counts
}

// ConvertComplaintGenderRows pivots complaint by gender counts into one row per complaint.
func ConvertComplaintGenderRows(rows []models.ComplaintGenderRow) []responses.ComplaintByGender {
	byComplaint := make(map[string]*responses.ComplaintByGender)
	for _, row := range rows {
		entry, ok := byComplaint[row.ID.Complaint]
		if !ok {
			entry = &responses.ComplaintByGender{Complaint: row.ID.Complaint}
			byComplaint[row.ID.Complaint] = entry
		}
		switch row.ID.Gender {
		case constvars.GenderMale:
			entry.Male += row.Count
		case constvars.GenderFemale:
			entry.Female += row.Count
		default:
			continue
		}
		entry.Total += row.Count
	}

	result := make([]responses.ComplaintByGender, 0, len(byComplaint))
	for _, entry := range byComplaint {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Complaint < result[j].Complaint
	})
	return result
}

func ConvertLabTestCounts(row models.LabTestCountsRow) responses.LabTestCounts {
	return responses.LabTestCounts{
		BloodSugar:      row.BloodSugar,
		Malaria:         row.Malaria,
		HIV:             row.HIV,
		Urinalysis:      row.Urinalysis,
		HbA1c:           row.HbA1c,
		CancerScreening: row.CancerScreening,
	}
}

func ConvertLabLocationRows(rows []models.LocationCountRow) []responses.LabLocationCount {
	counts := make([]responses.LabLocationCount, 0, len(rows))
	for _, row := range rows {
		location := ""
		if row.ID != nil {
			location = *row.ID
		}
		counts = append(counts, responses.LabLocationCount{Location: location, Count: row.Count})
	}
	return counts
}

func FirstCount(rows []models.CountRow) int64 {
	if len(rows) == 0 {
		return 0
	}
	return rows[0].Count
}
