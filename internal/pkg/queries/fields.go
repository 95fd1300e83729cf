package queries

// Field paths of the patients collection.
const (
	FieldID                = "_id"
	FieldPatientID         = "patientId"
	FieldName              = "name"
	FieldLocation          = "location"
	FieldAge               = "age"
	FieldGender            = "gender"
	FieldNHIF              = "nhif"
	FieldSHIF              = "shif"
	FieldMedicalConditions = "medical_conditions"
	FieldCreatedAt         = "createdAt"
	FieldUpdatedAt         = "updatedAt"
	FieldTriage            = "triage"
	FieldGeneralHealth     = "general_health"
	FieldUserEmail         = "userEmail"
	FieldUserRole          = "userRole"

	FieldTriageHeight            = "triage.height"
	FieldTriageWeight            = "triage.weight"
	FieldTriageSystolicPressure  = "triage.systolic_pressure"
	FieldTriageDiastolicPressure = "triage.diastolic_pressure"
	FieldDiagnosis               = "general_health.diagnosis"
	FieldChiefComplaint          = "general_health.chief_complaint"
	FieldTreatment               = "general_health.treatment"
	FieldGeneralHealthUserEmail  = "general_health.userEmail"
	FieldGeneralHealthUserRole   = "general_health.userRole"
)

// SubRecordFields lists every sub-record that carries staff attribution.
var SubRecordFields = []string{
	"triage",
	"general_health",
	"randomBloodSugar",
	"malaria_ag_test",
	"hiv_screening",
	"urinalysis",
	"disease_burden",
	"cancer_screening",
	"nutrition",
	"child_health",
	"non_comunicable_diseases",
	"maternal_health",
	"sexual_health",
	"fistula_camp_attendance",
	"dental_test",
	"reproductive_screening",
	"covid_test",
	"eye_ear_test_result",
	"mental_health",
	"patients_with_disabilities",
}

const (
	normalizedDiagnosesField = "normalizedDiagnoses"
	regexCaseInsensitive     = "i"
)

func fieldRef(path string) string {
	return "$" + path
}
