package queries

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"healthcamp-service/internal/pkg/dto/requests"
	"healthcamp-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	time.RFC1123,
	time.RFC1123Z,
}

// BuildPatientFilter translates the shared listing filters into a find
// filter. Unparseable dates are reported as errors, non-numeric numbers
// become NaN so that they match nothing.
func BuildPatientFilter(req requests.PatientFilter) (bson.M, error) {
	filter := bson.M{}
	var clauses []bson.M

	if req.Location != "" {
		filter[FieldLocation] = req.Location
	}
	if req.Gender != "" {
		filter[FieldGender] = req.Gender
	}
	if req.AgeMin != "" || req.AgeMax != "" {
		age := bson.M{}
		if req.AgeMin != "" {
			age["$gte"] = IntOrNaN(req.AgeMin)
		}
		if req.AgeMax != "" {
			age["$lte"] = IntOrNaN(req.AgeMax)
		}
		filter[FieldAge] = age
	}

	dateRange, err := DateRangeFilter(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if dateRange != nil {
		filter[FieldUpdatedAt] = dateRange
	}

	if req.PatientID != "" {
		filter[FieldPatientID] = IntOrNaN(req.PatientID)
	}
	if req.Search != "" {
		clauses = append(clauses, SearchFilter(req.Search))
	}
	if req.StaffEmail != "" {
		clauses = append(clauses, StaffEmailFilter(req.StaffEmail))
	}

	switch len(clauses) {
	case 0:
	case 1:
		for key, value := range clauses[0] {
			filter[key] = value
		}
	default:
		filter["$and"] = clauses
	}

	return filter, nil
}

// DateRangeFilter builds an inclusive range on updatedAt. It returns nil
// when neither bound is supplied.
func DateRangeFilter(startDate, endDate string) (bson.M, error) {
	if startDate == "" && endDate == "" {
		return nil, nil
	}

	dateRange := bson.M{}
	if startDate != "" {
		start, err := ParseDate(startDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err, startDate)
		}
		dateRange["$gte"] = start
	}
	if endDate != "" {
		end, err := ParseDate(endDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err, endDate)
		}
		dateRange["$lte"] = end
	}
	return dateRange, nil
}

func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), nil
	}
	return time.Time{}, lastErr
}

// IntOrNaN reads the leading integer of value. Input without one yields NaN,
// which never equals or orders against a stored number.
func IntOrNaN(value string) interface{} {
	value = strings.TrimSpace(value)
	end := 0
	if end < len(value) && (value[end] == '-' || value[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return math.NaN()
	}
	parsed, err := strconv.Atoi(value[:end])
	if err != nil {
		return math.NaN()
	}
	return parsed
}

func CaseInsensitiveContains(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: regexCaseInsensitive}
}

func CaseInsensitiveExact(term string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(term) + "$", Options: regexCaseInsensitive}
}

func SearchFilter(term string) bson.M {
	pattern := CaseInsensitiveContains(term)
	return bson.M{
		"$or": []bson.M{
			{FieldName: pattern},
			{FieldLocation: pattern},
		},
	}
}

func StaffEmailFilter(email string) bson.M {
	return bson.M{"$or": staffEmailClauses(SubRecordFields, email)}
}

func staffEmailClauses(fields []string, email string) []bson.M {
	clauses := make([]bson.M, 0, len(fields))
	for _, field := range fields {
		clauses = append(clauses, bson.M{field + "." + FieldUserEmail: email})
	}
	return clauses
}

// LocationFilter matches a single location or everything when location is empty.
func LocationFilter(location string) bson.M {
	if location == "" {
		return bson.M{}
	}
	return bson.M{FieldLocation: location}
}

// PatientIdentifierFilter accepts either a document id or a numeric patientId.
// A 24 digit value is always a document id since it overflows int.
func PatientIdentifierFilter(id string) (bson.M, bool) {
	if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{FieldID: objectID}, true
	}
	if patientID, err := strconv.Atoi(id); err == nil {
		return bson.M{FieldPatientID: patientID}, true
	}
	return nil, false
}
