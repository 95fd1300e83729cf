package utils

import (
	"net/http"
	"strconv"
	"strings"

	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/dto/requests"
)

// BuildPaginationRequest reads page, limit, sort_by and sort_order. Invalid
// values fall back to the defaults instead of failing the request.
func BuildPaginationRequest(r *http.Request) requests.Pagination {
	query := r.URL.Query()

	page, err := strconv.ParseInt(strings.TrimSpace(query.Get(constvars.URLQueryParamPage)), 10, 64)
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}

	limit, err := strconv.ParseInt(strings.TrimSpace(query.Get(constvars.URLQueryParamLimit)), 10, 64)
	if err != nil || limit <= 0 {
		limit = constvars.DefaultLimit
	}

	sortBy := strings.TrimSpace(query.Get(constvars.URLQueryParamSortBy))
	if sortBy == "" {
		sortBy = constvars.DefaultSortBy
	}

	sortOrder := strings.ToLower(strings.TrimSpace(query.Get(constvars.URLQueryParamSortOrder)))
	if sortOrder != constvars.SortOrderAsc {
		sortOrder = constvars.SortOrderDesc
	}

	return requests.Pagination{
		Page:      page,
		Limit:     limit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
}

func BuildPatientFilterRequest(r *http.Request) requests.PatientFilter {
	query := r.URL.Query()
	filter := requests.PatientFilter{
		Location:   query.Get(constvars.URLQueryParamLocation),
		Gender:     query.Get(constvars.URLQueryParamGender),
		AgeMin:     query.Get(constvars.URLQueryParamAgeMin),
		AgeMax:     query.Get(constvars.URLQueryParamAgeMax),
		StartDate:  query.Get(constvars.URLQueryParamStartDate),
		EndDate:    query.Get(constvars.URLQueryParamEndDate),
		Search:     query.Get(constvars.URLQueryParamSearch),
		PatientID:  query.Get(constvars.URLQueryParamPatientID),
		StaffEmail: query.Get(constvars.URLQueryParamStaffEmail),
	}
	SanitizePatientFilter(&filter)
	return filter
}

func BuildPatientListRequest(r *http.Request) *requests.PatientList {
	return &requests.PatientList{
		PatientFilter: BuildPatientFilterRequest(r),
		Pagination:    BuildPaginationRequest(r),
	}
}

func BuildLabDataRequest(r *http.Request) *requests.LabData {
	return &requests.LabData{
		PatientFilter: BuildPatientFilterRequest(r),
		Pagination:    BuildPaginationRequest(r),
	}
}

func BuildLocationPatientsRequest(r *http.Request) *requests.LocationPatients {
	request := &requests.LocationPatients{
		Location:   r.URL.Query().Get(constvars.URLQueryParamLocation),
		Pagination: BuildPaginationRequest(r),
	}
	SanitizeLocationPatientsRequest(request)
	return request
}

func BuildDiagnosisSearchRequest(r *http.Request) *requests.DiagnosisSearch {
	query := r.URL.Query()
	request := &requests.DiagnosisSearch{
		Query:      query.Get(constvars.URLQueryParamQuery),
		Location:   query.Get(constvars.URLQueryParamLocation),
		Pagination: BuildPaginationRequest(r),
	}
	SanitizeDiagnosisSearchRequest(request)
	return request
}

func BuildLabStatisticsRequest(r *http.Request) *requests.LabStatistics {
	query := r.URL.Query()
	return &requests.LabStatistics{
		Location:   strings.TrimSpace(query.Get(constvars.URLQueryParamLocation)),
		StartDate:  strings.TrimSpace(query.Get(constvars.URLQueryParamStartDate)),
		EndDate:    strings.TrimSpace(query.Get(constvars.URLQueryParamEndDate)),
		StaffEmail: strings.TrimSpace(query.Get(constvars.URLQueryParamStaffEmail)),
	}
}

func BuildGeneralHealthRequest(r *http.Request) *requests.GeneralHealthAnalytics {
	query := r.URL.Query()
	return &requests.GeneralHealthAnalytics{
		Location:  strings.TrimSpace(query.Get(constvars.URLQueryParamLocation)),
		StartDate: strings.TrimSpace(query.Get(constvars.URLQueryParamStartDate)),
		EndDate:   strings.TrimSpace(query.Get(constvars.URLQueryParamEndDate)),
	}
}

func BuildHourlyRegistrationsRequest(r *http.Request) *requests.HourlyRegistrations {
	location := strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamLocation))
	if location == "" {
		location = constvars.DefaultHourlyLocation
	}
	return &requests.HourlyRegistrations{Location: location}
}

func BuildLocationScopeRequest(r *http.Request) *requests.LocationScope {
	return &requests.LocationScope{
		Location: strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamLocation)),
	}
}
