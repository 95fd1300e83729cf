package utils

import (
	"strconv"
	"strings"
	"testing"

	"healthcamp-service/internal/app/models"
	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func boolPtr(v bool) *bool       { return &v }
func stringPtr(v string) *string { return &v }

func TestConvertCoverageRows(t *testing.T) {
	t.Run("Percentages Cover The Total", func(t *testing.T) {
		stats := ConvertCoverageRows([]models.CoverageRow{
			{ID: boolPtr(true), Count: 1},
			{ID: boolPtr(false), Count: 1},
			{ID: nil, Count: 1},
		})

		assert.Equal(t, int64(3), stats.TotalPatients)
		require.Len(t, stats.Details, 3)
		assert.Equal(t, constvars.InsuranceStatusCovered, stats.Details[0].Status)
		assert.Equal(t, constvars.InsuranceStatusNotCovered, stats.Details[1].Status)
		assert.Equal(t, constvars.InsuranceStatusUnrecorded, stats.Details[2].Status)

		var sum float64
		for _, detail := range stats.Details {
			assert.Equal(t, "33.3%", detail.Percentage)
			value, err := strconv.ParseFloat(strings.TrimSuffix(detail.Percentage, "%"), 64)
			require.NoError(t, err)
			sum += value
		}
		assert.InDelta(t, 100, sum, 0.5)
	})

	t.Run("No Patients", func(t *testing.T) {
		stats := ConvertCoverageRows(nil)

		assert.Equal(t, int64(0), stats.TotalPatients)
		assert.NotNil(t, stats.Details)
		assert.Empty(t, stats.Details)
	})

	t.Run("Zero Count Row", func(t *testing.T) {
		stats := ConvertCoverageRows([]models.CoverageRow{{ID: boolPtr(true), Count: 0}})
		assert.Equal(t, constvars.ZeroPercentage, stats.Details[0].Percentage)
	})
}

func TestConvertCoverageByLocationRows(t *testing.T) {
	coverage := ConvertCoverageByLocationRows([]models.LocationCoverageRow{
		{ID: stringPtr("Nairobi"), Total: 100, Covered: 100},
		{ID: stringPtr("Kisumu"), Total: 2, Covered: 0},
		{ID: nil, Total: 4, Covered: 1},
	})

	require.Len(t, coverage.ByLocation, 3)
	assert.Equal(t, 1.0, coverage.ByLocation[0].CoverageRate)
	assert.Equal(t, 0.0, coverage.ByLocation[1].CoverageRate)
	assert.Equal(t, "", coverage.ByLocation[2].Location)
	assert.Equal(t, 0.25, coverage.ByLocation[2].CoverageRate)
	// Each location counts once regardless of its size.
	assert.Equal(t, 0.4167, coverage.AverageCoverageRate)

	empty := ConvertCoverageByLocationRows(nil)
	assert.Equal(t, 0.0, empty.AverageCoverageRate)
	assert.NotNil(t, empty.ByLocation)
}

func TestConvertAgeBucketRows(t *testing.T) {
	distribution := ConvertAgeBucketRows([]models.BucketRow{
		{ID: int32(31), Count: 4},
		{ID: int32(0), Count: 2},
		{ID: constvars.AgeBucketOver70, Count: 1},
	})

	assert.Equal(t, []responses.AgeDistribution{
		{Range: constvars.AgeGroup0To18, Count: 2},
		{Range: constvars.AgeGroup19To30, Count: 0},
		{Range: constvars.AgeGroup31To50, Count: 4},
		{Range: constvars.AgeGroup51To70, Count: 0},
		{Range: constvars.AgeGroupOver70, Count: 1},
	}, distribution)
}

func TestConvertGenderRows(t *testing.T) {
	breakdown := ConvertGenderRows([]models.LabelCountRow{
		{ID: constvars.GenderMale, Count: 5},
		{ID: constvars.GenderFemale, Count: 7},
		{ID: constvars.GenderUnknown, Count: 3},
	})

	assert.Equal(t, int64(5), breakdown.Male)
	assert.Equal(t, int64(7), breakdown.Female)
}

func TestConvertBloodPressureRows(t *testing.T) {
	assert.Equal(t, responses.BloodPressureSummary{}, ConvertBloodPressureRows(nil))

	systolic, diastolic := 128.456, 81.04
	summary := ConvertBloodPressureRows([]models.BloodPressureRow{{
		AverageSystolic:   &systolic,
		AverageDiastolic:  &diastolic,
		HypertensiveCount: 3,
		TotalMeasured:     10,
	}})

	assert.Equal(t, 128.5, summary.AverageSystolic)
	assert.Equal(t, 81.0, summary.AverageDiastolic)
	assert.Equal(t, int64(3), summary.HypertensiveCount)
	assert.Equal(t, int64(10), summary.TotalMeasured)
}

func TestConvertComplaintGenderRows(t *testing.T) {
	rows := []models.ComplaintGenderRow{
		{ID: models.ComplaintGenderKey{Complaint: "Headache", Gender: constvars.GenderFemale}, Count: 3},
		{ID: models.ComplaintGenderKey{Complaint: "Cough", Gender: constvars.GenderMale}, Count: 4},
		{ID: models.ComplaintGenderKey{Complaint: "Headache", Gender: constvars.GenderMale}, Count: 2},
		{ID: models.ComplaintGenderKey{Complaint: "Cough", Gender: constvars.GenderUnknown}, Count: 9},
		{ID: models.ComplaintGenderKey{Complaint: "Back pain", Gender: constvars.GenderFemale}, Count: 4},
	}

	assert.Equal(t, []responses.ComplaintByGender{
		{Complaint: "Headache", Male: 2, Female: 3, Total: 5},
		{Complaint: "Back pain", Male: 0, Female: 4, Total: 4},
		{Complaint: "Cough", Male: 4, Female: 0, Total: 4},
	}, ConvertComplaintGenderRows(rows))
}

func TestConvertPatientToLabExport(t *testing.T) {
	id := primitive.NewObjectID()
	patientID := 12
	sugar := models.FlexibleNumber(6.1)

	export := ConvertPatientToLabExport(models.Patient{
		ID:        id,
		Name:      "Jane",
		PatientID: &patientID,
		Location:  "Nairobi",
		Triage: &models.Triage{
			StaffAttribution: models.StaffAttribution{UserEmail: "triage@camp.org", UserRole: "nurse"},
		},
		RandomBloodSugar: &models.RandomBloodSugar{
			Sugar:            &sugar,
			StaffAttribution: models.StaffAttribution{UserEmail: "lab@camp.org", UserRole: "lab"},
		},
	})

	assert.Equal(t, id.Hex(), export.ID)
	assert.Equal(t, &patientID, export.PatientID)
	assert.Equal(t, &responses.StaffAttribution{Email: "triage@camp.org", Role: "nurse"}, export.TriagedBy)
	require.Contains(t, export.Tests, constvars.LabTestBloodSugar)
	assert.Equal(t, 6.1, export.Tests[constvars.LabTestBloodSugar].Results["sugar"])
	assert.Equal(t, responses.StaffAttribution{Email: "lab@camp.org", Role: "lab"}, export.Tests[constvars.LabTestBloodSugar].RecordedBy)

	bare := ConvertPatientToLabExport(models.Patient{ID: id})
	assert.Nil(t, bare.TriagedBy)
	assert.NotNil(t, bare.Tests)
	assert.Empty(t, bare.Tests)
}

func TestFirstCount(t *testing.T) {
	assert.Equal(t, int64(0), FirstCount(nil))
	assert.Equal(t, int64(9), FirstCount([]models.CountRow{{Count: 9}}))
}
