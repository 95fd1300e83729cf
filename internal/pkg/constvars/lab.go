package constvars

// Stored field names of the lab sub-records.
const (
	LabFieldRandomBloodSugar = "randomBloodSugar"
	LabFieldMalariaTest      = "malaria_ag_test"
	LabFieldHIVScreening     = "hiv_screening"
	LabFieldUrinalysis       = "urinalysis"
	LabFieldDiseaseBurden    = "disease_burden"
	LabFieldCancerScreening  = "cancer_screening"
)

// Keys of the tests object in lab exports.
const (
	LabTestBloodSugar      = "blood_sugar"
	LabTestMalaria         = "malaria"
	LabTestHIV             = "hiv"
	LabTestUrinalysis      = "urinalysis"
	LabTestHbA1c           = "hba1c"
	LabTestCancerScreening = "cancer_screening"
)

var LabFields = []string{
	LabFieldRandomBloodSugar,
	LabFieldMalariaTest,
	LabFieldHIVScreening,
	LabFieldUrinalysis,
	LabFieldDiseaseBurden,
	LabFieldCancerScreening,
}

var LabTestsByField = map[string]string{
	LabFieldRandomBloodSugar: LabTestBloodSugar,
	LabFieldMalariaTest:      LabTestMalaria,
	LabFieldHIVScreening:     LabTestHIV,
	LabFieldUrinalysis:       LabTestUrinalysis,
	LabFieldDiseaseBurden:    LabTestHbA1c,
	LabFieldCancerScreening:  LabTestCancerScreening,
}

const (
	UnknownDiagnosisCode = "UNKNOWN"
)
