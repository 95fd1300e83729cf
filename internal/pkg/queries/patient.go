package queries

import (
	"strings"

	"healthcamp-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SortDirection maps sort_order to a Mongo direction; anything but asc is desc.
func SortDirection(sortOrder string) int {
	if strings.EqualFold(sortOrder, constvars.SortOrderAsc) {
		return 1
	}
	return -1
}

// SortSpec sorts by field and breaks ties on _id so that pages partition
// the result set.
func SortSpec(sortBy, sortOrder string) bson.D {
	if sortBy == "" {
		sortBy = constvars.DefaultSortBy
	}
	sort := bson.D{{Key: sortBy, Value: SortDirection(sortOrder)}}
	if sortBy != FieldID {
		sort = append(sort, bson.E{Key: FieldID, Value: 1})
	}
	return sort
}

func PaginatedFindOptions(sortBy, sortOrder string, skip, limit int64) *options.FindOptions {
	return options.Find().
		SetSort(SortSpec(sortBy, sortOrder)).
		SetSkip(skip).
		SetLimit(limit)
}

func FirstHundredFindOptions() *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: FieldCreatedAt, Value: 1}, {Key: FieldID, Value: 1}}).
		SetLimit(constvars.FirstHundredSize)
}

func GenderCountFilter(location, gender string) bson.M {
	return bson.M{
		FieldLocation: location,
		FieldGender:   CaseInsensitiveExact(gender),
	}
}

type AgeRange struct {
	Label  string
	Filter bson.M
}

// AgeRangeCountFilters mirror AgeGroupExpression as independent count filters.
// The first range includes its lower bound, the others exclude it.
func AgeRangeCountFilters(location string) []AgeRange {
	withAge := func(age bson.M) bson.M {
		return bson.M{FieldLocation: location, FieldAge: age}
	}
	return []AgeRange{
		{Label: constvars.AgeGroup0To18, Filter: withAge(bson.M{"$gte": 0, "$lte": 18})},
		{Label: constvars.AgeGroup19To30, Filter: withAge(bson.M{"$gt": 18, "$lte": 30})},
		{Label: constvars.AgeGroup31To50, Filter: withAge(bson.M{"$gt": 30, "$lte": 50})},
		{Label: constvars.AgeGroup51To70, Filter: withAge(bson.M{"$gt": 50, "$lte": 70})},
		{Label: constvars.AgeGroupOver70, Filter: withAge(bson.M{"$gt": 70})},
	}
}

func CoveredFilter(location string) bson.M {
	return bson.M{
		FieldLocation: location,
		"$or": []bson.M{
			{FieldNHIF: true},
			{FieldSHIF: true},
		},
	}
}

func NotCoveredFilter(location string) bson.M {
	return bson.M{
		FieldLocation: location,
		FieldNHIF:     bson.M{"$ne": true},
		FieldSHIF:     bson.M{"$ne": true},
	}
}

func LocationDiagnosesFilter(location string) bson.M {
	return bson.M{
		FieldLocation:      location,
		FieldGeneralHealth: bson.M{"$ne": nil},
	}
}

func NonEmptyLocationFilter() bson.M {
	return bson.M{FieldLocation: bson.M{"$nin": bson.A{nil, ""}}}
}

// LabDataFilter narrows a patient filter to records with lab results.
func LabDataFilter(filter bson.M) bson.M {
	lab := AnyLabPresentFilter()
	if existing, ok := filter["$and"]; ok {
		merged := mergeFilters(filter)
		merged["$and"] = append(existing.([]bson.M), lab)
		return merged
	}
	if _, ok := filter["$or"]; ok {
		merged := bson.M{}
		for key, value := range filter {
			if key != "$or" {
				merged[key] = value
			}
		}
		merged["$and"] = []bson.M{{"$or": filter["$or"]}, lab}
		return merged
	}
	return mergeFilters(filter, lab)
}

// SortedFindOptions sorts without paging, for exports over the full filtered set.
func SortedFindOptions(sortBy, sortOrder string) *options.FindOptions {
	return options.Find().SetSort(SortSpec(sortBy, sortOrder))
}
