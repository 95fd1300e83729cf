package constvars

const (
	URLParamID = "id"
)

const (
	URLQueryParamLocation   = "location"
	URLQueryParamGender     = "gender"
	URLQueryParamAgeMin     = "ageMin"
	URLQueryParamAgeMax     = "ageMax"
	URLQueryParamStartDate  = "startDate"
	URLQueryParamEndDate    = "endDate"
	URLQueryParamSearch     = "search"
	URLQueryParamPatientID  = "patientId"
	URLQueryParamStaffEmail = "staffEmail"
	URLQueryParamQuery      = "query"
	URLQueryParamPage       = "page"
	URLQueryParamLimit      = "limit"
	URLQueryParamSortBy     = "sort_by"
	URLQueryParamSortOrder  = "sort_order"
)
