package responses

import "time"

type StaffAttribution struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LabTest struct {
	Results    map[string]interface{} `json:"results"`
	RecordedBy StaffAttribution       `json:"recorded_by"`
}

type LabExport struct {
	ID        string             `json:"_id"`
	Name      string             `json:"name"`
	PatientID *int               `json:"patientId"`
	Location  string             `json:"location"`
	TriagedBy *StaffAttribution  `json:"triaged_by"`
	Tests     map[string]LabTest `json:"tests"`
}

type LabData struct {
	Records    []LabExport `json:"records"`
	Pagination Pagination  `json:"pagination"`
}

type LabTestCounts struct {
	BloodSugar      int64 `json:"blood_sugar"`
	Malaria         int64 `json:"malaria"`
	HIV             int64 `json:"hiv"`
	Urinalysis      int64 `json:"urinalysis"`
	HbA1c           int64 `json:"hba1c"`
	CancerScreening int64 `json:"cancer_screening"`
}

type LabLocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

type LabStaffStatistics struct {
	Email         string        `json:"email"`
	TotalPatients int64         `json:"total_patients"`
	TestsByType   LabTestCounts `json:"tests_by_type"`
}

type LabStatistics struct {
	TotalPatientsTested int64               `json:"total_patients_tested"`
	TestsByType         LabTestCounts       `json:"tests_by_type"`
	ByLocation          []LabLocationCount  `json:"by_location"`
	ByStaff             *LabStaffStatistics `json:"by_staff,omitempty"`
}

type LabExportSnapshot struct {
	ObjectName  string    `json:"object_name"`
	Bucket      string    `json:"bucket"`
	RecordCount int       `json:"record_count"`
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
	GeneratedAt time.Time `json:"generated_at"`
}
