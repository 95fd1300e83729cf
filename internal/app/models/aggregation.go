package models

// Rows decoded from aggregation pipelines over the patients collection.

type CountRow struct {
	Count int64 `bson:"count"`
}

type DemographicsGroupKey struct {
	Gender   interface{} `bson:"gender"`
	AgeGroup string      `bson:"ageGroup"`
}

type DemographicsRow struct {
	ID    DemographicsGroupKey `bson:"_id"`
	Count int64                `bson:"count"`
}

type LocationCountRow struct {
	ID    *string `bson:"_id"`
	Count int64   `bson:"count"`
}

type CoverageRow struct {
	ID    *bool `bson:"_id"`
	Count int64 `bson:"count"`
}

type LabelCountRow struct {
	ID    string `bson:"_id"`
	Count int64  `bson:"count"`
}

type BucketRow struct {
	ID    interface{} `bson:"_id"`
	Count int64       `bson:"count"`
}

type DiagnosisKey struct {
	Code string `bson:"code"`
	Name string `bson:"name"`
}

type DiagnosisCountRow struct {
	ID    DiagnosisKey `bson:"_id"`
	Count int64        `bson:"count"`
}

// NamedDiagnosisCountRow groups diagnoses by name and keeps the first code seen.
type NamedDiagnosisCountRow struct {
	ID    string `bson:"_id"`
	Code  string `bson:"code"`
	Count int64  `bson:"count"`
}

type LocationCoverageRow struct {
	ID      *string `bson:"_id"`
	Total   int64   `bson:"total"`
	Covered int64   `bson:"covered"`
}

type BloodPressureRow struct {
	AverageSystolic   *float64 `bson:"averageSystolic"`
	AverageDiastolic  *float64 `bson:"averageDiastolic"`
	HypertensiveCount int64    `bson:"hypertensiveCount"`
	TotalMeasured     int64    `bson:"totalMeasured"`
}

type AnalyticsFacets struct {
	Total              []CountRow               `bson:"total"`
	AgeDistribution    []BucketRow              `bson:"ageDistribution"`
	GenderDistribution []LabelCountRow          `bson:"genderDistribution"`
	CoverageByLocation []LocationCoverageRow    `bson:"coverageByLocation"`
	BloodPressure      []BloodPressureRow       `bson:"bloodPressure"`
	BMIDistribution    []LabelCountRow          `bson:"bmiDistribution"`
	TopConditions      []LabelCountRow          `bson:"topConditions"`
	TopDiagnoses       []NamedDiagnosisCountRow `bson:"topDiagnoses"`
}

type StaffCountRow struct {
	ID    string `bson:"_id"`
	Role  string `bson:"role"`
	Count int64  `bson:"count"`
}

type ComplaintGenderKey struct {
	Complaint string `bson:"complaint"`
	Gender    string `bson:"gender"`
}

type ComplaintGenderRow struct {
	ID    ComplaintGenderKey `bson:"_id"`
	Count int64              `bson:"count"`
}

type GeneralHealthFacets struct {
	Total              []CountRow           `bson:"total"`
	TopDiagnoses       []DiagnosisCountRow  `bson:"topDiagnoses"`
	TopComplaints      []LabelCountRow      `bson:"topComplaints"`
	TopTreatments      []LabelCountRow      `bson:"topTreatments"`
	TopStaff           []StaffCountRow      `bson:"topStaff"`
	ComplaintsByGender []ComplaintGenderRow `bson:"complaintsByGender"`
	AgeDistribution    []LabelCountRow      `bson:"ageDistribution"`
}

type LabTestCountsRow struct {
	BloodSugar      int64 `bson:"bloodSugar"`
	Malaria         int64 `bson:"malaria"`
	HIV             int64 `bson:"hiv"`
	Urinalysis      int64 `bson:"urinalysis"`
	HbA1c           int64 `bson:"hba1c"`
	CancerScreening int64 `bson:"cancerScreening"`
}

type LabStaffCountsRow struct {
	TotalPatients    int64 `bson:"totalPatients"`
	LabTestCountsRow `bson:",inline"`
}

type LabStatisticsFacets struct {
	Tested     []CountRow          `bson:"tested"`
	TestCounts []LabTestCountsRow  `bson:"testCounts"`
	ByLocation []LocationCountRow  `bson:"byLocation"`
	ByStaff    []LabStaffCountsRow `bson:"byStaff"`
}

type HourlyCountRow struct {
	ID    int   `bson:"_id"`
	Count int64 `bson:"count"`
}

type PaginatedPatients struct {
	Metadata []CountRow `bson:"metadata"`
	Data     []Patient  `bson:"data"`
}
