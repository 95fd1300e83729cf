package responses

import (
	"healthcamp-service/internal/app/models"
)

type PatientList struct {
	Patients   []models.Patient `json:"patients"`
	Pagination Pagination       `json:"pagination"`
}

type DiagnosisCount struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type DiagnosisSearch struct {
	Patients     []models.Patient `json:"patients"`
	Pagination   Pagination       `json:"pagination"`
	TopDiagnoses []DiagnosisCount `json:"top_diagnoses"`
}

type GenderBreakdown struct {
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
}

type AgeRangeBreakdown struct {
	Age0To18  int64 `json:"0-18"`
	Age19To30 int64 `json:"19-30"`
	Age31To50 int64 `json:"31-50"`
	Age51To70 int64 `json:"51-70"`
	AgeOver70 int64 `json:"70+"`
}

type InsuranceBreakdown struct {
	Covered      int64  `json:"covered"`
	NotCovered   int64  `json:"not_covered"`
	CoverageRate string `json:"coverage_rate"`
}

type LocationSummary struct {
	TotalPatients int64              `json:"total_patients"`
	Gender        GenderBreakdown    `json:"gender"`
	AgeRanges     AgeRangeBreakdown  `json:"age_ranges"`
	Insurance     InsuranceBreakdown `json:"insurance"`
	TopDiagnoses  []DiagnosisCount   `json:"top_diagnoses"`
}

type LocationPatients struct {
	Location   string           `json:"location"`
	Patients   []models.Patient `json:"patients"`
	Pagination Pagination       `json:"pagination"`
	Summary    LocationSummary  `json:"summary"`
}

type HourlyRegistrations struct {
	Location           string  `json:"location"`
	Date               string  `json:"date"`
	HourlyCounts       []int64 `json:"hourly_counts"`
	TotalRegistrations int64   `json:"total_registrations"`
}
