package responses

type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type StaffCount struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

type ComplaintByGender struct {
	Complaint string `json:"complaint"`
	Male      int64  `json:"male"`
	Female    int64  `json:"female"`
	Total     int64  `json:"total"`
}

type GeneralHealthAnalytics struct {
	TotalRecords       int64               `json:"total_records"`
	TopDiagnoses       []DiagnosisCount    `json:"top_diagnoses"`
	TopComplaints      []LabelCount        `json:"top_complaints"`
	TopTreatments      []LabelCount        `json:"top_treatments"`
	TopStaff           []StaffCount        `json:"top_staff"`
	ComplaintsByGender []ComplaintByGender `json:"complaints_by_gender"`
	AgeDistribution    []AgeDistribution   `json:"age_distribution"`
}
