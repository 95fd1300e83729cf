package requests

type GeneralHealthAnalytics struct {
	Location  string `query:"location"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

type LabStatistics struct {
	Location   string `query:"location"`
	StartDate  string `query:"startDate"`
	EndDate    string `query:"endDate"`
	StaffEmail string `query:"staffEmail"`
}

type LabData struct {
	PatientFilter
	Pagination
}
