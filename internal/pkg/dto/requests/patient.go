package requests

// PatientFilter holds the raw filter values as they came in on the query string.
// Conversion into a store filter happens in the queries package so that
// malformed values surface from the query stage.
type PatientFilter struct {
	Location   string `query:"location" json:"location,omitempty"`
	Gender     string `query:"gender" json:"gender,omitempty"`
	AgeMin     string `query:"ageMin" json:"ageMin,omitempty"`
	AgeMax     string `query:"ageMax" json:"ageMax,omitempty"`
	StartDate  string `query:"startDate" json:"startDate,omitempty"`
	EndDate    string `query:"endDate" json:"endDate,omitempty"`
	Search     string `query:"search" json:"search,omitempty"`
	PatientID  string `query:"patientId" json:"patientId,omitempty"`
	StaffEmail string `query:"staffEmail" json:"staffEmail,omitempty"`
}

type PatientList struct {
	PatientFilter
	Pagination
}

type LocationPatients struct {
	Location string `query:"location" validate:"required"`
	Pagination
}

type DiagnosisSearch struct {
	Query    string `query:"query" validate:"required"`
	Location string `query:"location"`
	Pagination
}

type HourlyRegistrations struct {
	Location string `query:"location"`
}
