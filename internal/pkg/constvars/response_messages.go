package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	InsuranceStatusCovered    = "Covered"
	InsuranceStatusNotCovered = "Not Covered"
	InsuranceStatusUnrecorded = "Unrecorded"
)

const (
	AgeGroup0To18   = "0-18"
	AgeGroup19To30  = "19-30"
	AgeGroup31To50  = "31-50"
	AgeGroup51To70  = "51-70"
	AgeGroupOver70  = "70+"
	AgeBucketOver70 = "71+"
)

const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderUnknown = "unknown"
)

const (
	BMICategoryUnderweight = "underweight"
	BMICategoryNormal      = "normal"
	BMICategoryOverweight  = "overweight"
	BMICategoryObese       = "obese"
)

const (
	ZeroPercentage = "0%"
)
