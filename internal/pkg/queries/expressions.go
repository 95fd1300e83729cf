package queries

import (
	"healthcamp-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
)

// AgeGroupExpression buckets $age into the inclusive reporting ranges.
func AgeGroupExpression() bson.M {
	age := fieldRef(FieldAge)
	return bson.M{
		"$switch": bson.M{
			"branches": []bson.M{
				{"case": bson.M{"$lte": bson.A{age, 18}}, "then": constvars.AgeGroup0To18},
				{"case": bson.M{"$lte": bson.A{age, 30}}, "then": constvars.AgeGroup19To30},
				{"case": bson.M{"$lte": bson.A{age, 50}}, "then": constvars.AgeGroup31To50},
				{"case": bson.M{"$lte": bson.A{age, 70}}, "then": constvars.AgeGroup51To70},
			},
			"default": constvars.AgeGroupOver70,
		},
	}
}

// NormalizedDiagnosesExpression resolves general_health.diagnosis to an
// array of {code, name}, treating a legacy string as one UNKNOWN entry.
// Array elements get the same treatment as models.Diagnoses on decode.
func NormalizedDiagnosesExpression() bson.M {
	diagnosis := fieldRef(FieldDiagnosis)
	diagnosisType := bson.M{"$type": diagnosis}
	code := bson.M{"$ifNull": bson.A{"$$entry.code", ""}}

	return bson.M{
		"$switch": bson.M{
			"branches": []bson.M{
				{
					"case": bson.M{"$eq": bson.A{diagnosisType, "array"}},
					"then": bson.M{
						"$map": bson.M{
							"input": bson.M{"$filter": bson.M{
								"input": diagnosis,
								"as":    "entry",
								"cond":  bson.M{"$in": bson.A{bson.M{"$type": "$$entry"}, bson.A{"string", "object"}}},
							}},
							"as": "entry",
							"in": bson.M{"$cond": bson.A{
								bson.M{"$eq": bson.A{bson.M{"$type": "$$entry"}, "string"}},
								bson.M{"code": constvars.UnknownDiagnosisCode, "name": "$$entry"},
								bson.M{
									"code": bson.M{"$cond": bson.A{
										bson.M{"$eq": bson.A{code, ""}},
										constvars.UnknownDiagnosisCode,
										bson.M{"$toString": "$$entry.code"},
									}},
									"name": "$$entry.name",
								},
							}},
						},
					},
				},
				{
					"case": bson.M{"$and": bson.A{
						bson.M{"$eq": bson.A{diagnosisType, "string"}},
						bson.M{"$ne": bson.A{diagnosis, ""}},
					}},
					"then": bson.A{bson.M{"code": constvars.UnknownDiagnosisCode, "name": diagnosis}},
				},
			},
			"default": bson.A{},
		},
	}
}

// InsuranceStatusExpression prefers shif and falls back to nhif.
func InsuranceStatusExpression() bson.M {
	return bson.M{"$ifNull": bson.A{fieldRef(FieldSHIF), fieldRef(FieldNHIF)}}
}

// CoveredExpression is true when either coverage flag is true.
func CoveredExpression() bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"$eq": bson.A{fieldRef(FieldNHIF), true}},
		bson.M{"$eq": bson.A{fieldRef(FieldSHIF), true}},
	}}
}

// PresentExpression is true when field exists and is not null.
func PresentExpression(field string) bson.M {
	return bson.M{"$ne": bson.A{bson.M{"$ifNull": bson.A{fieldRef(field), nil}}, nil}}
}

func countIf(condition interface{}) bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{condition, 1, 0}}}
}

func toDouble(field string, fallback interface{}) bson.M {
	return bson.M{"$convert": bson.M{
		"input":   fieldRef(field),
		"to":      "double",
		"onError": fallback,
		"onNull":  fallback,
	}}
}

// AnyLabPresentFilter matches records carrying at least one lab sub-record.
func AnyLabPresentFilter() bson.M {
	clauses := make([]bson.M, 0, len(constvars.LabFields))
	for _, field := range constvars.LabFields {
		clauses = append(clauses, bson.M{field: bson.M{"$ne": nil}})
	}
	return bson.M{"$or": clauses}
}

func countStage() bson.M {
	return bson.M{"$count": "count"}
}

func matchStage(filter bson.M) bson.M {
	return bson.M{"$match": filter}
}

func sortByCountStage() bson.M {
	return bson.M{"$sort": bson.D{{Key: "count", Value: -1}, {Key: FieldID, Value: 1}}}
}

func limitStage(limit int64) bson.M {
	return bson.M{"$limit": limit}
}

func groupCountStage(id interface{}) bson.M {
	return bson.M{"$group": bson.M{FieldID: id, "count": bson.M{"$sum": 1}}}
}

// locationMatch returns a leading $match on location, or nothing.
func locationMatch(location string) []bson.M {
	if location == "" {
		return []bson.M{}
	}
	return []bson.M{matchStage(LocationFilter(location))}
}

func mergeFilters(filters ...bson.M) bson.M {
	merged := bson.M{}
	for _, filter := range filters {
		for key, value := range filter {
			merged[key] = value
		}
	}
	return merged
}
