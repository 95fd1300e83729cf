package utils

import (
	"math"
	"sort"
	"strconv"

	"healthcamp-service/internal/app/models"
	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/dto/responses"
)

var ageBucketLabels = map[int64]string{
	0:  constvars.AgeGroup0To18,
	19: constvars.AgeGroup19To30,
	31: constvars.AgeGroup31To50,
	51: constvars.AgeGroup51To70,
}

// AgeBucketLabel names a $bucket id, which is either the lower boundary or
// the default bucket.
func AgeBucketLabel(id interface{}) string {
	var boundary int64
	switch v := id.(type) {
	case int32:
		boundary = int64(v)
	case int64:
		boundary = v
	case int:
		boundary = int64(v)
	case float64:
		boundary = int64(v)
	default:
		return constvars.AgeGroupOver70
	}
	if label, ok := ageBucketLabels[boundary]; ok {
		return label
	}
	return constvars.AgeGroupOver70
}

func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// SafeRatio returns 0 instead of NaN or Inf for a zero denominator.
func SafeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// FormatPercentage renders count/total as "NN.N%", or "0%" when total is 0.
func FormatPercentage(count, total int64) string {
	if total == 0 {
		return constvars.ZeroPercentage
	}
	percentage := RoundFloat(SafeRatio(float64(count), float64(total))*100, 1)
	return strconv.FormatFloat(percentage, 'f', 1, 64) + "%"
}

func TotalPages(totalRecords, limit int64) int64 {
	if limit <= 0 || totalRecords <= 0 {
		return 0
	}
	return (totalRecords + limit - 1) / limit
}

func CoverageStatusLabel(status *bool) string {
	switch {
	case status == nil:
		return constvars.InsuranceStatusUnrecorded
	case *status:
		return constvars.InsuranceStatusCovered
	default:
		return constvars.InsuranceStatusNotCovered
	}
}

// TopDiagnoses counts the diagnoses carried by patients, grouped by code and name.
func TopDiagnoses(patients []models.Patient, limit int) []responses.DiagnosisCount {
	counts := make(map[models.DiagnosisEntry]int64)
	for _, patient := range patients {
		if patient.GeneralHealth == nil {
			continue
		}
		for _, entry := range patient.GeneralHealth.Diagnosis {
			counts[entry]++
		}
	}

	result := make([]responses.DiagnosisCount, 0, len(counts))
	for entry, count := range counts {
		result = append(result, responses.DiagnosisCount{Code: entry.Code, Name: entry.Name, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].Code < result[j].Code
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// FillHourlyCounts spreads grouped hour counts into a dense 24 slot slice.
func FillHourlyCounts(rows []models.HourlyCountRow) ([]int64, int64) {
	hourly := make([]int64, constvars.HoursInDay)
	var total int64
	for _, row := range rows {
		if row.ID < 0 || row.ID >= constvars.HoursInDay {
			continue
		}
		hourly[row.ID] += row.Count
		total += row.Count
	}
	return hourly, total
}
