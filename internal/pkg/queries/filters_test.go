package queries

import (
	"math"
	"net/http"
	"testing"
	"time"

	"healthcamp-service/internal/pkg/dto/requests"
	"healthcamp-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildPatientFilter(t *testing.T) {
	t.Run("Empty Request Matches Everything", func(t *testing.T) {
		filter, err := BuildPatientFilter(requests.PatientFilter{})
		require.NoError(t, err)
		assert.Empty(t, filter)
	})

	t.Run("Exact Fields And Age Range", func(t *testing.T) {
		filter, err := BuildPatientFilter(requests.PatientFilter{
			Location: "Nairobi",
			Gender:   "female",
			AgeMin:   "18",
			AgeMax:   "40",
		})
		require.NoError(t, err)

		assert.Equal(t, "Nairobi", filter[FieldLocation])
		assert.Equal(t, "female", filter[FieldGender])
		assert.Equal(t, bson.M{"$gte": 18, "$lte": 40}, filter[FieldAge])
	})

	t.Run("Non Numeric Age Matches Nothing", func(t *testing.T) {
		filter, err := BuildPatientFilter(requests.PatientFilter{AgeMin: "abc"})
		require.NoError(t, err)

		age := filter[FieldAge].(bson.M)
		assert.True(t, math.IsNaN(age["$gte"].(float64)))
		assert.NotContains(t, age, "$lte")
	})

	t.Run("Date Range", func(t *testing.T) {
		filter, err := BuildPatientFilter(requests.PatientFilter{
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
		})
		require.NoError(t, err)

		assert.Equal(t, bson.M{
			"$gte": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			"$lte": time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		}, filter[FieldUpdatedAt])
	})

	t.Run("Unparseable Date", func(t *testing.T) {
		filter, err := BuildPatientFilter(requests.PatientFilter{StartDate: "yesterday"})
		assert.Nil(t, filter)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	})

	t.Run("Single Or Clause Is Inlined", func(t *testing.T) {
		filter, err := BuildPatientFilter(requests.PatientFilter{Search: "jo"})
		require.NoError(t, err)

		assert.NotContains(t, filter, "$and")
		assert.Equal(t, SearchFilter("jo")["$or"], filter["$or"])
	})

	t.Run("Search And Staff Email Are Combined", func(t *testing.T) {
		filter, err := BuildPatientFilter(requests.PatientFilter{
			Search:     "jo",
			StaffEmail: "nurse@camp.org",
		})
		require.NoError(t, err)

		assert.NotContains(t, filter, "$or")
		clauses := filter["$and"].([]bson.M)
		require.Len(t, clauses, 2)
		assert.Equal(t, SearchFilter("jo"), clauses[0])
		assert.Equal(t, StaffEmailFilter("nurse@camp.org"), clauses[1])
	})

	t.Run("Patient Id", func(t *testing.T) {
		filter, err := BuildPatientFilter(requests.PatientFilter{PatientID: "1024"})
		require.NoError(t, err)
		assert.Equal(t, 1024, filter[FieldPatientID])
	})
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"Date Only", "2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"RFC3339", "2024-03-05T10:30:00Z", time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)},
		{"Slashes", "2024/03/05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"Epoch Millis", "1709634600000", time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestIntOrNaN(t *testing.T) {
	assert.Equal(t, 42, IntOrNaN("42"))
	assert.Equal(t, 42, IntOrNaN(" 42 "))
	assert.Equal(t, 12, IntOrNaN("12abc"))
	assert.Equal(t, -3, IntOrNaN("-3"))

	for _, input := range []string{"", "abc", "-", "x12"} {
		value, ok := IntOrNaN(input).(float64)
		require.True(t, ok, input)
		assert.True(t, math.IsNaN(value), input)
	}
}

func TestCaseInsensitiveContainsEscapesMetacharacters(t *testing.T) {
	assert.Equal(t, primitive.Regex{Pattern: `a\.b\(c`, Options: "i"}, CaseInsensitiveContains("a.b(c"))
	assert.Equal(t, primitive.Regex{Pattern: `^male$`, Options: "i"}, CaseInsensitiveExact("male"))
}

func TestStaffEmailFilterCoversEverySubRecord(t *testing.T) {
	clauses := StaffEmailFilter("nurse@camp.org")["$or"].([]bson.M)

	require.Len(t, clauses, len(SubRecordFields))
	assert.Equal(t, bson.M{"triage.userEmail": "nurse@camp.org"}, clauses[0])
	assert.Equal(t, bson.M{"patients_with_disabilities.userEmail": "nurse@camp.org"}, clauses[len(clauses)-1])
}

func TestLocationFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, LocationFilter(""))
	assert.Equal(t, bson.M{FieldLocation: "Kisumu"}, LocationFilter("Kisumu"))
}

func TestPatientIdentifierFilter(t *testing.T) {
	objectID := primitive.NewObjectID()

	filter, ok := PatientIdentifierFilter(objectID.Hex())
	assert.True(t, ok)
	assert.Equal(t, bson.M{FieldID: objectID}, filter)

	filter, ok = PatientIdentifierFilter("77")
	assert.True(t, ok)
	assert.Equal(t, bson.M{FieldPatientID: 77}, filter)

	allDigits := "123456789012345678901234"
	filter, ok = PatientIdentifierFilter(allDigits)
	assert.True(t, ok)
	expected, err := primitive.ObjectIDFromHex(allDigits)
	require.NoError(t, err)
	assert.Equal(t, bson.M{FieldID: expected}, filter)

	filter, ok = PatientIdentifierFilter("not-an-id")
	assert.False(t, ok)
	assert.Nil(t, filter)
}

func TestSortSpec(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "name", Value: 1}, {Key: FieldID, Value: 1}}, SortSpec("name", "ASC"))
	assert.Equal(t, bson.D{{Key: "age", Value: -1}, {Key: FieldID, Value: 1}}, SortSpec("age", "anything"))
	assert.Equal(t, bson.D{{Key: FieldID, Value: -1}}, SortSpec(FieldID, "desc"))
}

func TestPaginatedFindOptions(t *testing.T) {
	opts := PaginatedFindOptions("name", "asc", 20, 10)

	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(20), *opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)
	assert.Equal(t, SortSpec("name", "asc"), opts.Sort)
}

func TestLabDataFilter(t *testing.T) {
	lab := AnyLabPresentFilter()

	t.Run("Plain Filter Gains Lab Or", func(t *testing.T) {
		filter := LabDataFilter(bson.M{FieldLocation: "Nairobi"})
		assert.Equal(t, "Nairobi", filter[FieldLocation])
		assert.Equal(t, lab["$or"], filter["$or"])
	})

	t.Run("Existing Or Is Preserved", func(t *testing.T) {
		search := SearchFilter("jo")
		filter := LabDataFilter(bson.M{FieldLocation: "Nairobi", "$or": search["$or"]})

		assert.NotContains(t, filter, "$or")
		assert.Equal(t, []bson.M{{"$or": search["$or"]}, lab}, filter["$and"])
		assert.Equal(t, "Nairobi", filter[FieldLocation])
	})

	t.Run("Existing And Is Extended", func(t *testing.T) {
		base, err := BuildPatientFilter(requests.PatientFilter{Search: "jo", StaffEmail: "lab@camp.org"})
		require.NoError(t, err)

		filter := LabDataFilter(base)
		clauses := filter["$and"].([]bson.M)
		require.Len(t, clauses, 3)
		assert.Equal(t, lab, clauses[2])
	})
}

func TestDiagnosisSearchPipelinePaging(t *testing.T) {
	pipeline := DiagnosisSearchPipeline("mal", "", 40, 20)

	first := pipeline[0]["$match"].(bson.M)
	assert.NotContains(t, first, FieldLocation)

	facet := pipeline[len(pipeline)-1]["$facet"].(bson.M)
	assert.Equal(t, []bson.M{{"$skip": int64(40)}, {"$limit": int64(20)}}, facet["data"])
}
