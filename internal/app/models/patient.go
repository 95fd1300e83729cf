package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient mirrors one document of the patients collection. Every clinical
// sub-record is optional and carries the attribution of the staff member
// who recorded it.
type Patient struct {
	ID                       primitive.ObjectID        `json:"_id" bson:"_id,omitempty"`
	PatientID                *int                      `json:"patientId,omitempty" bson:"patientId,omitempty"`
	Name                     string                    `json:"name,omitempty" bson:"name,omitempty"`
	Location                 string                    `json:"location,omitempty" bson:"location,omitempty"`
	Age                      *int                      `json:"age,omitempty" bson:"age,omitempty"`
	Gender                   string                    `json:"gender,omitempty" bson:"gender,omitempty"`
	PhoneNumber              interface{}               `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	Address                  string                    `json:"address,omitempty" bson:"address,omitempty"`
	Occupation               string                    `json:"occupation,omitempty" bson:"occupation,omitempty"`
	MaritalStatus            string                    `json:"marital_status,omitempty" bson:"marital_status,omitempty"`
	NHIF                     *bool                     `json:"nhif,omitempty" bson:"nhif,omitempty"`
	SHIF                     *bool                     `json:"shif,omitempty" bson:"shif,omitempty"`
	MedicalConditions        []string                  `json:"medical_conditions,omitempty" bson:"medical_conditions,omitempty"`
	Triage                   *Triage                   `json:"triage,omitempty" bson:"triage,omitempty"`
	GeneralHealth            *GeneralHealth            `json:"general_health,omitempty" bson:"general_health,omitempty"`
	RandomBloodSugar         *RandomBloodSugar         `json:"randomBloodSugar,omitempty" bson:"randomBloodSugar,omitempty"`
	MalariaTest              *MalariaTest              `json:"malaria_ag_test,omitempty" bson:"malaria_ag_test,omitempty"`
	HIVScreening             *HIVScreening             `json:"hiv_screening,omitempty" bson:"hiv_screening,omitempty"`
	Urinalysis               *Urinalysis               `json:"urinalysis,omitempty" bson:"urinalysis,omitempty"`
	DiseaseBurden            *DiseaseBurden            `json:"disease_burden,omitempty" bson:"disease_burden,omitempty"`
	CancerScreening          *CancerScreening          `json:"cancer_screening,omitempty" bson:"cancer_screening,omitempty"`
	Nutrition                *Nutrition                `json:"nutrition,omitempty" bson:"nutrition,omitempty"`
	ChildHealth              *ChildHealth              `json:"child_health,omitempty" bson:"child_health,omitempty"`
	NonCommunicableDiseases  *NonCommunicableDiseases  `json:"non_comunicable_diseases,omitempty" bson:"non_comunicable_diseases,omitempty"`
	MaternalHealth           *MaternalHealth           `json:"maternal_health,omitempty" bson:"maternal_health,omitempty"`
	SexualHealth             *SexualHealth             `json:"sexual_health,omitempty" bson:"sexual_health,omitempty"`
	FistulaCampAttendance    *FistulaCampAttendance    `json:"fistula_camp_attendance,omitempty" bson:"fistula_camp_attendance,omitempty"`
	DentalTest               *DentalTest               `json:"dental_test,omitempty" bson:"dental_test,omitempty"`
	ReproductiveScreening    *ReproductiveScreening    `json:"reproductive_screening,omitempty" bson:"reproductive_screening,omitempty"`
	CovidTest                *CovidTest                `json:"covid_test,omitempty" bson:"covid_test,omitempty"`
	EyeEarTestResult         *EyeEarTestResult         `json:"eye_ear_test_result,omitempty" bson:"eye_ear_test_result,omitempty"`
	MentalHealth             *MentalHealth             `json:"mental_health,omitempty" bson:"mental_health,omitempty"`
	PatientsWithDisabilities *PatientsWithDisabilities `json:"patients_with_disabilities,omitempty" bson:"patients_with_disabilities,omitempty"`
	CreatedAt                *time.Time                `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt                *time.Time                `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type StaffAttribution struct {
	UserEmail string `json:"userEmail,omitempty" bson:"userEmail,omitempty"`
	UserRole  string `json:"userRole,omitempty" bson:"userRole,omitempty"`
}

type Triage struct {
	Height             *FlexibleNumber `json:"height,omitempty" bson:"height,omitempty"`
	Weight             *FlexibleNumber `json:"weight,omitempty" bson:"weight,omitempty"`
	SystolicPressure   *FlexibleNumber `json:"systolic_pressure,omitempty" bson:"systolic_pressure,omitempty"`
	DiastolicPressure  *FlexibleNumber `json:"diastolic_pressure,omitempty" bson:"diastolic_pressure,omitempty"`
	Temperature        *FlexibleNumber `json:"temperature,omitempty" bson:"temperature,omitempty"`
	ArmCircumference   *FlexibleNumber `json:"arm_circumference,omitempty" bson:"arm_circumference,omitempty"`
	SpO2               *FlexibleNumber `json:"sp02,omitempty" bson:"sp02,omitempty"`
	PreviousAdmissions *bool           `json:"previous_admissions,omitempty" bson:"previous_admissions,omitempty"`
	PreviousSurgeries  *bool           `json:"previous_surgeries,omitempty" bson:"previous_surgeries,omitempty"`
	Employed           *bool           `json:"employed,omitempty" bson:"employed,omitempty"`
	Income             string          `json:"income,omitempty" bson:"income,omitempty"`
	Smoking            *bool           `json:"smoking,omitempty" bson:"smoking,omitempty"`
	Alcohol            *bool           `json:"alcohol,omitempty" bson:"alcohol,omitempty"`
	OnMedication       *bool           `json:"on_medication,omitempty" bson:"on_medication,omitempty"`
	FoodAllergy        *bool           `json:"food_allergy,omitempty" bson:"food_allergy,omitempty"`
	DrugAllergy        *bool           `json:"drug_allergy,omitempty" bson:"drug_allergy,omitempty"`
	VaccinationStatus  string          `json:"vaccination_status,omitempty" bson:"vaccination_status,omitempty"`
	StaffAttribution   `bson:",inline"`
}

type GeneralHealth struct {
	ChiefComplaint             string    `json:"chief_complaint,omitempty" bson:"chief_complaint,omitempty"`
	HistoryOfPresentingIllness string    `json:"history_of_presenting_illness,omitempty" bson:"history_of_presenting_illness,omitempty"`
	GeneralExam                string    `json:"general_exam,omitempty" bson:"general_exam,omitempty"`
	CVS                        string    `json:"cvs,omitempty" bson:"cvs,omitempty"`
	CNS                        string    `json:"cns,omitempty" bson:"cns,omitempty"`
	Resp                       string    `json:"resp,omitempty" bson:"resp,omitempty"`
	GIT                        string    `json:"git,omitempty" bson:"git,omitempty"`
	Systemic                   string    `json:"systemic,omitempty" bson:"systemic,omitempty"`
	Diagnosis                  Diagnoses `json:"diagnosis" bson:"diagnosis"`
	Treatment                  string    `json:"treatment,omitempty" bson:"treatment,omitempty"`
	StaffAttribution           `bson:",inline"`
}

type RandomBloodSugar struct {
	Sugar            *FlexibleNumber `json:"sugar,omitempty" bson:"sugar,omitempty"`
	StaffAttribution `bson:",inline"`
}

type MalariaTest struct {
	Result           string `json:"malaria_ag_test,omitempty" bson:"malaria_ag_test,omitempty"`
	StaffAttribution `bson:",inline"`
}

type HIVScreening struct {
	DiscordantTestResult string `json:"discordant_test_result,omitempty" bson:"discordant_test_result,omitempty"`
	StaffAttribution     `bson:",inline"`
}

type Urinalysis struct {
	Leucocytes       string          `json:"leucocytes,omitempty" bson:"leucocytes,omitempty"`
	Nitrites         string          `json:"nitrites,omitempty" bson:"nitrites,omitempty"`
	Urobilinogen     string          `json:"urobilinogen,omitempty" bson:"urobilinogen,omitempty"`
	Protein          string          `json:"protein,omitempty" bson:"protein,omitempty"`
	PH               *FlexibleNumber `json:"ph,omitempty" bson:"ph,omitempty"`
	Blood            string          `json:"blood,omitempty" bson:"blood,omitempty"`
	SpecificGravity  *FlexibleNumber `json:"specific_gravity,omitempty" bson:"specific_gravity,omitempty"`
	Ketones          string          `json:"ketones,omitempty" bson:"ketones,omitempty"`
	Bilirubin        string          `json:"bilirubin,omitempty" bson:"bilirubin,omitempty"`
	Glucose          string          `json:"glucose,omitempty" bson:"glucose,omitempty"`
	ReferenceRange   string          `json:"reference_range,omitempty" bson:"reference_range,omitempty"`
	StaffAttribution `bson:",inline"`
}

type DiseaseBurden struct {
	HbA1cTest        *FlexibleNumber `json:"hb1a_test,omitempty" bson:"hb1a_test,omitempty"`
	StaffAttribution `bson:",inline"`
}

type CancerScreening struct {
	VIA              string          `json:"via,omitempty" bson:"via,omitempty"`
	PSA              *FlexibleNumber `json:"psa,omitempty" bson:"psa,omitempty"`
	RapidPSA         string          `json:"rapidPsa,omitempty" bson:"rapidPsa,omitempty"`
	CA125            *FlexibleNumber `json:"ca125,omitempty" bson:"ca125,omitempty"`
	CA199            *FlexibleNumber `json:"ca199,omitempty" bson:"ca199,omitempty"`
	CEA              *FlexibleNumber `json:"cea,omitempty" bson:"cea,omitempty"`
	StaffAttribution `bson:",inline"`
}

type Nutrition struct {
	BMI              *FlexibleNumber `json:"bmi,omitempty" bson:"bmi,omitempty"`
	BMI5To17         string          `json:"bmi_5_17,omitempty" bson:"bmi_5_17,omitempty"`
	BMI18            string          `json:"bmi_18,omitempty" bson:"bmi_18,omitempty"`
	Weight           string          `json:"weight,omitempty" bson:"weight,omitempty"`
	MUAC             interface{}     `json:"muac" bson:"muac"`
	StaffAttribution `bson:",inline"`
}

type ChildHealth struct {
	DevelopmentMilestone string `json:"development_milestone,omitempty" bson:"development_milestone,omitempty"`
	AccessToCleanWater   *bool  `json:"access_to_clean_water,omitempty" bson:"access_to_clean_water,omitempty"`
	StaffAttribution     `bson:",inline"`
}

type NonCommunicableDiseases struct {
	DiagnosedWithNCD      []string   `json:"diagnosed_with_ncd,omitempty" bson:"diagnosed_with_ncd,omitempty"`
	CurrentTreatmentPlan  *bool      `json:"current_tratment_plan,omitempty" bson:"current_tratment_plan,omitempty"`
	FamilyHistoryOfNCD    *bool      `json:"family_history_of_ncd,omitempty" bson:"family_history_of_ncd,omitempty"`
	NCDDateOfDiagnosis    *time.Time `json:"ncd_date_of_diagnosis,omitempty" bson:"ncd_date_of_diagnosis,omitempty"`
	PhysicalActivityLevel string     `json:"physical_activity_level,omitempty" bson:"physical_activity_level,omitempty"`
	ExposureToToxins      *bool      `json:"exposure_to_toxins,omitempty" bson:"exposure_to_toxins,omitempty"`
	StaffAttribution      `bson:",inline"`
}

type MaternalHealth struct {
	Pregnant               *bool           `json:"pregnant,omitempty" bson:"pregnant,omitempty"`
	Breastfeeding          *bool           `json:"breastfeeding,omitempty" bson:"breastfeeding,omitempty"`
	PregnanciesNo          *FlexibleNumber `json:"pregnancies_no,omitempty" bson:"pregnancies_no,omitempty"`
	PostpartumCareReceived *bool           `json:"postpartum_care_received,omitempty" bson:"postpartum_care_received,omitempty"`
	PregnancyComplications *bool           `json:"pregnancy_complications,omitempty" bson:"pregnancy_complications,omitempty"`
	Miscarriages           *FlexibleNumber `json:"miscarriages,omitempty" bson:"miscarriages,omitempty"`
	WeeksOfPregnancy       *FlexibleNumber `json:"weeks_of_pregnancy,omitempty" bson:"weeks_of_pregnancy,omitempty"`
	PregnancyRapidTest     string          `json:"pregnancy_rapid_test,omitempty" bson:"pregnancy_rapid_test,omitempty"`
	StaffAttribution       `bson:",inline"`
}

type SexualHealth struct {
	SexuallyActive                *bool  `json:"sexually_active,omitempty" bson:"sexually_active,omitempty"`
	UsingContraceptives           *bool  `json:"using_contraceptives,omitempty" bson:"using_contraceptives,omitempty"`
	FrequencyOfContraceptive      string `json:"frequency_of_contraceptive,omitempty" bson:"frequency_of_contraceptive,omitempty"`
	HistoryOfUnintendedPregnancy  *bool  `json:"history_of_unintended_pregnancy,omitempty" bson:"history_of_unintended_pregnancy,omitempty"`
	KnowledgeOfContraceptiveTypes *bool  `json:"knowledge_of_contraceptive_types,omitempty" bson:"knowledge_of_contraceptive_types,omitempty"`
	HistoryOfSTI                  string `json:"history_of_sti,omitempty" bson:"history_of_sti,omitempty"`
	DataCollectionMethod          string `json:"data_collection_method,omitempty" bson:"data_collection_method,omitempty"`
	ContraceptiveFitted           string `json:"contraceptive_fitted,omitempty" bson:"contraceptive_fitted,omitempty"`
	Education                     string `json:"education,omitempty" bson:"education,omitempty"`
	StaffAttribution              `bson:",inline"`
}

type FistulaCampAttendance struct {
	ObstetricGynaecologicalHistory string `json:"obstetric_gynaecological_history,omitempty" bson:"obstetric_gynaecological_history,omitempty"`
	Examination                    string `json:"examination,omitempty" bson:"examination,omitempty"`
	Diagnosis                      string `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	MusclePower                    string `json:"muscle_power,omitempty" bson:"muscle_power,omitempty"`
	PlanOfAction                   string `json:"plan_of_action,omitempty" bson:"plan_of_action,omitempty"`
	CommentsObservations           string `json:"comments_observations,omitempty" bson:"comments_observations,omitempty"`
	StaffAttribution               `bson:",inline"`
}

type DentalTest struct {
	DentalHistory     string `json:"dental_history,omitempty" bson:"dental_history,omitempty"`
	TeethCondition    string `json:"teeth_condition,omitempty" bson:"teeth_condition,omitempty"`
	PainLevel         string `json:"pain_level,omitempty" bson:"pain_level,omitempty"`
	TreatmentReceived string `json:"treatment_received,omitempty" bson:"treatment_received,omitempty"`
	DentalMedication  string `json:"dental_medication,omitempty" bson:"dental_medication,omitempty"`
	StaffAttribution  `bson:",inline"`
}

type ReproductiveScreening struct {
	ChlamydiaTestResult string `json:"chlamydia_test_result,omitempty" bson:"chlamydia_test_result,omitempty"`
	GonorrheaTestResult string `json:"gonorrhea_test_result,omitempty" bson:"gonorrhea_test_result,omitempty"`
	Pregnancy           string `json:"pregnancy,omitempty" bson:"pregnancy,omitempty"`
	StaffAttribution    `bson:",inline"`
}

type CovidTest struct {
	CovidVaccineType     string `json:"covid_vaccine_type,omitempty" bson:"covid_vaccine_type,omitempty"`
	CovidVaccineDoses    string `json:"covid_vaccine_doses,omitempty" bson:"covid_vaccine_doses,omitempty"`
	CovidBoosterReceived *bool  `json:"covid_booster_received,omitempty" bson:"covid_booster_received,omitempty"`
	StaffAttribution     `bson:",inline"`
}

type EyeEarTestResult struct {
	EyeTestDiagnosis string `json:"eye_test_diagnosis,omitempty" bson:"eye_test_diagnosis,omitempty"`
	StaffAttribution `bson:",inline"`
}

type MentalHealth struct {
	MentalHealthDiagnosis string `json:"mental_health_diagnosis,omitempty" bson:"mental_health_diagnosis,omitempty"`
	StaffAttribution      `bson:",inline"`
}

type PatientsWithDisabilities struct {
	DisabilityDiagnosis string `json:"disability_diagnosis,omitempty" bson:"disability_diagnosis,omitempty"`
	StaffAttribution    `bson:",inline"`
}
