package utils

import (
	"strings"

	"healthcamp-service/internal/pkg/dto/requests"
)

func SanitizePatientFilter(input *requests.PatientFilter) {
	input.Location = strings.TrimSpace(input.Location)
	input.Gender = strings.TrimSpace(input.Gender)
	input.AgeMin = strings.TrimSpace(input.AgeMin)
	input.AgeMax = strings.TrimSpace(input.AgeMax)
	input.StartDate = strings.TrimSpace(input.StartDate)
	input.EndDate = strings.TrimSpace(input.EndDate)
	input.Search = strings.TrimSpace(input.Search)
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.StaffEmail = strings.TrimSpace(input.StaffEmail)
}

func SanitizeDiagnosisSearchRequest(input *requests.DiagnosisSearch) {
	input.Query = strings.TrimSpace(input.Query)
	input.Location = strings.TrimSpace(input.Location)
}

func SanitizeLocationPatientsRequest(input *requests.LocationPatients) {
	input.Location = strings.TrimSpace(input.Location)
}
