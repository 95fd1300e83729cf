package responses

type DemographicsKey struct {
	Gender   interface{} `json:"gender"`
	AgeGroup string      `json:"ageGroup"`
}

type DemographicsGroup struct {
	ID    DemographicsKey `json:"_id"`
	Count int64           `json:"count"`
}

type LocationCount struct {
	ID    *string `json:"_id"`
	Count int64   `json:"count"`
}

type CoverageDetail struct {
	Status     string `json:"status"`
	Count      int64  `json:"count"`
	Percentage string `json:"percentage"`
}

type CoverageStats struct {
	TotalPatients int64            `json:"total_patients"`
	Details       []CoverageDetail `json:"details"`
}

type AgeDistribution struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

type LocationCoverage struct {
	Location     string  `json:"location"`
	Total        int64   `json:"total"`
	Covered      int64   `json:"covered"`
	CoverageRate float64 `json:"coverage_rate"`
}

type InsuranceCoverage struct {
	AverageCoverageRate float64            `json:"average_coverage_rate"`
	ByLocation          []LocationCoverage `json:"by_location"`
}

type BloodPressureSummary struct {
	AverageSystolic   float64 `json:"average_systolic"`
	AverageDiastolic  float64 `json:"average_diastolic"`
	HypertensiveCount int64   `json:"hypertensive_count"`
	TotalMeasured     int64   `json:"total_measured"`
}

type BMIDistribution struct {
	Underweight int64 `json:"underweight"`
	Normal      int64 `json:"normal"`
	Overweight  int64 `json:"overweight"`
	Obese       int64 `json:"obese"`
}

type ConditionCount struct {
	Condition string `json:"condition"`
	Count     int64  `json:"count"`
}

type Analytics struct {
	TotalPatients      int64                `json:"total_patients"`
	AgeDistribution    []AgeDistribution    `json:"age_distribution"`
	GenderDistribution GenderBreakdown      `json:"gender_distribution"`
	InsuranceCoverage  InsuranceCoverage    `json:"insurance_coverage"`
	BloodPressure      BloodPressureSummary `json:"blood_pressure"`
	BMIDistribution    BMIDistribution      `json:"bmi_distribution"`
	TopConditions      []ConditionCount     `json:"top_conditions"`
	TopDiagnoses       []DiagnosisCount     `json:"top_diagnoses"`
}
