package utils

import (
	"testing"

	"healthcamp-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePatientFilter(t *testing.T) {
	t.Run("Trims Every Field", func(t *testing.T) {
		filter := &requests.PatientFilter{
			Location:   "  Baringo ",
			Gender:     " female",
			AgeMin:     " 18 ",
			AgeMax:     "40 ",
			StartDate:  " 2024-01-01",
			EndDate:    "2024-01-31 ",
			Search:     "  jane  ",
			PatientID:  " 42 ",
			StaffEmail: " nurse@camp.org ",
		}

		SanitizePatientFilter(filter)

		assert.Equal(t, requests.PatientFilter{
			Location:   "Baringo",
			Gender:     "female",
			AgeMin:     "18",
			AgeMax:     "40",
			StartDate:  "2024-01-01",
			EndDate:    "2024-01-31",
			Search:     "jane",
			PatientID:  "42",
			StaffEmail: "nurse@camp.org",
		}, *filter)
	})

	t.Run("Keeps Case", func(t *testing.T) {
		filter := &requests.PatientFilter{Location: "Nakuru West", Gender: "Male"}

		SanitizePatientFilter(filter)

		assert.Equal(t, "Nakuru West", filter.Location)
		assert.Equal(t, "Male", filter.Gender, "gender is matched exactly so case must survive")
	})
}

func TestSanitizeDiagnosisSearchRequest(t *testing.T) {
	request := &requests.DiagnosisSearch{Query: "   ", Location: " Baringo "}

	SanitizeDiagnosisSearchRequest(request)

	assert.Empty(t, request.Query, "whitespace only query should become blank")
	assert.Equal(t, "Baringo", request.Location)
}

func TestSanitizeLocationPatientsRequest(t *testing.T) {
	request := &requests.LocationPatients{Location: "\tKisumu \n"}

	SanitizeLocationPatientsRequest(request)

	assert.Equal(t, "Kisumu", request.Location)
}
