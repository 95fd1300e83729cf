package queries

import (
	"time"

	"healthcamp-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
)

var ageBucketBoundaries = bson.A{0, 19, 31, 51, 71}

func DemographicsPipeline(location string) []bson.M {
	return append(locationMatch(location),
		groupCountStage(bson.M{
			"gender":   fieldRef(FieldGender),
			"ageGroup": AgeGroupExpression(),
		}),
	)
}

func LocationStatsPipeline() []bson.M {
	return []bson.M{groupCountStage(fieldRef(FieldLocation))}
}

func CoverageStatsPipeline(location string) []bson.M {
	return append(locationMatch(location), groupCountStage(InsuranceStatusExpression()))
}

// AnalyticsPipeline runs every dashboard branch over the same input in one $facet.
func AnalyticsPipeline(location string) []bson.M {
	return append(locationMatch(location), bson.M{
		"$facet": bson.M{
			"total":              []bson.M{countStage()},
			"ageDistribution":    ageBucketFacet(),
			"genderDistribution": genderFacet(),
			"coverageByLocation": coverageByLocationFacet(),
			"bloodPressure":      bloodPressureFacet(),
			"bmiDistribution":    bmiFacet(),
			"topConditions":      topConditionsFacet(),
			"topDiagnoses":       topDiagnosesByNameFacet(),
		},
	})
}

func ageBucketFacet() []bson.M {
	return []bson.M{
		matchStage(bson.M{FieldAge: bson.M{"$type": "number"}}),
		{"$bucket": bson.M{
			"groupBy":    fieldRef(FieldAge),
			"boundaries": ageBucketBoundaries,
			"default":    constvars.AgeBucketOver70,
			"output":     bson.M{"count": bson.M{"$sum": 1}},
		}},
	}
}

func genderFacet() []bson.M {
	gender := fieldRef(FieldGender)
	return []bson.M{
		groupCountStage(bson.M{"$cond": bson.A{
			bson.M{"$eq": bson.A{bson.M{"$type": gender}, "string"}},
			bson.M{"$toLower": gender},
			constvars.GenderUnknown,
		}}),
	}
}

func coverageByLocationFacet() []bson.M {
	return []bson.M{
		{"$group": bson.M{
			FieldID:   fieldRef(FieldLocation),
			"total":   bson.M{"$sum": 1},
			"covered": countIf(CoveredExpression()),
		}},
		{"$sort": bson.D{{Key: FieldID, Value: 1}}},
	}
}

func bloodPressureFacet() []bson.M {
	return []bson.M{
		matchStage(bson.M{
			FieldTriageSystolicPressure:  bson.M{"$exists": true, "$ne": nil},
			FieldTriageDiastolicPressure: bson.M{"$exists": true, "$ne": nil},
		}),
		{"$project": bson.M{
			"systolic":  toDouble(FieldTriageSystolicPressure, nil),
			"diastolic": toDouble(FieldTriageDiastolicPressure, nil),
		}},
		{"$group": bson.M{
			FieldID:            nil,
			"averageSystolic":  bson.M{"$avg": "$systolic"},
			"averageDiastolic": bson.M{"$avg": "$diastolic"},
			"hypertensiveCount": countIf(bson.M{"$or": bson.A{
				bson.M{"$gte": bson.A{"$systolic", constvars.HypertensionSystolicLimit}},
				bson.M{"$gte": bson.A{"$diastolic", constvars.HypertensionDiastolicLimit}},
			}}),
			"totalMeasured": bson.M{"$sum": 1},
		}},
	}
}

func bmiFacet() []bson.M {
	return []bson.M{
		matchStage(bson.M{
			FieldTriageHeight: bson.M{"$exists": true, "$nin": bson.A{nil, 0, "0", ""}},
			FieldTriageWeight: bson.M{"$exists": true, "$ne": nil},
		}),
		{"$project": bson.M{
			"height": toDouble(FieldTriageHeight, 100),
			"weight": toDouble(FieldTriageWeight, 0),
		}},
		matchStage(bson.M{"height": bson.M{"$ne": 0}}),
		{"$project": bson.M{
			"bmi": bson.M{"$divide": bson.A{
				"$weight",
				bson.M{"$pow": bson.A{bson.M{"$divide": bson.A{"$height", 100}}, 2}},
			}},
		}},
		groupCountStage(bson.M{
			"$switch": bson.M{
				"branches": []bson.M{
					{"case": bson.M{"$lt": bson.A{"$bmi", 18.5}}, "then": constvars.BMICategoryUnderweight},
					{"case": bson.M{"$lt": bson.A{"$bmi", 25}}, "then": constvars.BMICategoryNormal},
					{"case": bson.M{"$lt": bson.A{"$bmi", 30}}, "then": constvars.BMICategoryOverweight},
				},
				"default": constvars.BMICategoryObese,
			},
		}),
	}
}

func topConditionsFacet() []bson.M {
	conditions := fieldRef(FieldMedicalConditions)
	return []bson.M{
		{"$project": bson.M{
			"conditions": bson.M{"$setUnion": bson.A{
				bson.M{"$cond": bson.A{bson.M{"$isArray": conditions}, conditions, bson.A{}}},
				bson.A{},
			}},
		}},
		{"$unwind": "$conditions"},
		groupCountStage("$conditions"),
		sortByCountStage(),
		limitStage(constvars.TopConditionsLimit),
	}
}

func topDiagnosesByNameFacet() []bson.M {
	return []bson.M{
		{"$project": bson.M{normalizedDiagnosesField: NormalizedDiagnosesExpression()}},
		{"$unwind": fieldRef(normalizedDiagnosesField)},
		{"$group": bson.M{
			FieldID: fieldRef(normalizedDiagnosesField + ".name"),
			"code":  bson.M{"$first": fieldRef(normalizedDiagnosesField + ".code")},
			"count": bson.M{"$sum": 1},
		}},
		sortByCountStage(),
		limitStage(constvars.TopDiagnosesLimit),
	}
}

// TopDiagnosesPipeline counts normalized diagnoses grouped by code and name.
func TopDiagnosesPipeline(filter bson.M, limit int64) []bson.M {
	return append([]bson.M{matchStage(filter)}, topDiagnosesFacet(limit)...)
}

func topDiagnosesFacet(limit int64) []bson.M {
	return []bson.M{
		{"$project": bson.M{normalizedDiagnosesField: NormalizedDiagnosesExpression()}},
		{"$unwind": fieldRef(normalizedDiagnosesField)},
		groupCountStage(bson.M{
			"code": fieldRef(normalizedDiagnosesField + ".code"),
			"name": fieldRef(normalizedDiagnosesField + ".name"),
		}),
		sortByCountStage(),
		limitStage(limit),
	}
}

// GeneralHealthPipeline reports over records that have a general_health sub-record.
func GeneralHealthPipeline(filter bson.M) []bson.M {
	nonEmpty := bson.M{"$nin": bson.A{nil, ""}}

	return []bson.M{
		matchStage(mergeFilters(filter, bson.M{FieldGeneralHealth: bson.M{"$ne": nil}})),
		{"$facet": bson.M{
			"total":        []bson.M{countStage()},
			"topDiagnoses": topDiagnosesFacet(constvars.TopDiagnosesLimit),
			"topComplaints": []bson.M{
				matchStage(bson.M{FieldChiefComplaint: nonEmpty}),
				groupCountStage(fieldRef(FieldChiefComplaint)),
				sortByCountStage(),
				limitStage(constvars.TopComplaintsLimit),
			},
			"topTreatments": []bson.M{
				matchStage(bson.M{FieldTreatment: nonEmpty}),
				groupCountStage(fieldRef(FieldTreatment)),
				sortByCountStage(),
				limitStage(constvars.TopTreatmentsLimit),
			},
			"topStaff": []bson.M{
				matchStage(bson.M{FieldGeneralHealthUserEmail: nonEmpty}),
				{"$group": bson.M{
					FieldID: fieldRef(FieldGeneralHealthUserEmail),
					"role":  bson.M{"$first": fieldRef(FieldGeneralHealthUserRole)},
					"count": bson.M{"$sum": 1},
				}},
				sortByCountStage(),
				limitStage(constvars.TopStaffLimit),
			},
			"complaintsByGender": []bson.M{
				matchStage(bson.M{FieldChiefComplaint: nonEmpty}),
				{"$project": bson.M{
					"complaint": fieldRef(FieldChiefComplaint),
					"gender":    bson.M{"$toLower": bson.M{"$ifNull": bson.A{fieldRef(FieldGender), ""}}},
				}},
				matchStage(bson.M{"gender": bson.M{"$in": bson.A{constvars.GenderMale, constvars.GenderFemale}}}),
				groupCountStage(bson.M{"complaint": "$complaint", "gender": "$gender"}),
				sortByCountStage(),
			},
			"ageDistribution": []bson.M{
				matchStage(bson.M{FieldAge: bson.M{"$type": "number"}}),
				groupCountStage(AgeGroupExpression()),
				{"$sort": bson.D{{Key: FieldID, Value: 1}}},
			},
		}},
	}
}

// LabStatisticsPipeline counts lab activity. The byStaff branch is only
// added when staffEmail is supplied.
func LabStatisticsPipeline(filter bson.M, staffEmail string) []bson.M {
	testCounts := bson.M{FieldID: nil}
	for _, field := range constvars.LabFields {
		testCounts[labCountKey(field)] = countIf(PresentExpression(field))
	}

	facets := bson.M{
		"tested": []bson.M{
			matchStage(AnyLabPresentFilter()),
			countStage(),
		},
		"testCounts": []bson.M{{"$group": testCounts}},
		"byLocation": []bson.M{
			matchStage(AnyLabPresentFilter()),
			groupCountStage(fieldRef(FieldLocation)),
			sortByCountStage(),
		},
	}

	if staffEmail != "" {
		staffCounts := bson.M{FieldID: nil, "totalPatients": bson.M{"$sum": 1}}
		for _, field := range constvars.LabFields {
			staffCounts[labCountKey(field)] = countIf(bson.M{
				"$eq": bson.A{fieldRef(field + "." + FieldUserEmail), staffEmail},
			})
		}
		facets["byStaff"] = []bson.M{
			matchStage(bson.M{"$or": staffEmailClauses(constvars.LabFields, staffEmail)}),
			{"$group": staffCounts},
		}
	}

	return []bson.M{matchStage(filter), {"$facet": facets}}
}

var labCountKeys = map[string]string{
	constvars.LabFieldRandomBloodSugar: "bloodSugar",
	constvars.LabFieldMalariaTest:      "malaria",
	constvars.LabFieldHIVScreening:     "hiv",
	constvars.LabFieldUrinalysis:       "urinalysis",
	constvars.LabFieldDiseaseBurden:    "hba1c",
	constvars.LabFieldCancerScreening:  "cancerScreening",
}

func labCountKey(field string) string {
	return labCountKeys[field]
}

// HourlyRegistrationsPipeline groups the records created in [start, end)
// by hour of day in timezone.
func HourlyRegistrationsPipeline(location string, start, end time.Time, timezone string) []bson.M {
	return []bson.M{
		matchStage(bson.M{
			FieldLocation:  location,
			FieldCreatedAt: bson.M{"$gte": start, "$lt": end},
		}),
		groupCountStage(bson.M{"$hour": bson.M{"date": fieldRef(FieldCreatedAt), "timezone": timezone}}),
		{"$sort": bson.D{{Key: FieldID, Value: 1}}},
	}
}

// DiagnosisSearchPipeline matches the query against normalized diagnosis
// codes and names and returns one page plus the total match count.
func DiagnosisSearchPipeline(query, location string, skip, limit int64) []bson.M {
	pattern := CaseInsensitiveContains(query)
	filter := mergeFilters(LocationFilter(location), bson.M{FieldGeneralHealth: bson.M{"$ne": nil}})

	return []bson.M{
		matchStage(filter),
		{"$addFields": bson.M{normalizedDiagnosesField: NormalizedDiagnosesExpression()}},
		matchStage(bson.M{"$or": []bson.M{
			{normalizedDiagnosesField + ".code": pattern},
			{normalizedDiagnosesField + ".name": pattern},
		}}),
		{"$project": bson.M{normalizedDiagnosesField: 0}},
		{"$sort": bson.D{{Key: FieldUpdatedAt, Value: -1}, {Key: FieldID, Value: 1}}},
		{"$facet": bson.M{
			"metadata": []bson.M{countStage()},
			"data":     []bson.M{{"$skip": skip}, limitStage(limit)},
		}},
	}
}
