package models

import (
	"strconv"

	"healthcamp-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type DiagnosisEntry struct {
	Code string `json:"code" bson:"code"`
	Name string `json:"name" bson:"name"`
}

// Diagnoses is the normalized form of general_health.diagnosis. Older
// records store a plain string, newer ones an ordered array of code/name
// pairs.
type Diagnoses []DiagnosisEntry

func (d *Diagnoses) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.String:
		*d = NewLegacyDiagnoses(raw.StringValue())
	case bsontype.Array:
		values, err := raw.Array().Values()
		if err != nil {
			return err
		}
		normalized := make(Diagnoses, 0, len(values))
		for _, value := range values {
			entry, ok := decodeDiagnosisEntry(value)
			if ok {
				normalized = append(normalized, entry)
			}
		}
		*d = normalized
	default:
		*d = Diagnoses{}
	}
	return nil
}

func (d Diagnoses) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]DiagnosisEntry(d))
}

// decodeDiagnosisEntry accepts a {code, name} document, with a string or
// numeric code, or a bare name string. Other element types are dropped.
func decodeDiagnosisEntry(value bson.RawValue) (DiagnosisEntry, bool) {
	switch value.Type {
	case bsontype.String:
		return DiagnosisEntry{Code: constvars.UnknownDiagnosisCode, Name: value.StringValue()}, true
	case bsontype.EmbeddedDocument:
		doc := value.Document()
		entry := DiagnosisEntry{Code: diagnosisCode(doc.Lookup("code"))}
		entry.Name, _ = doc.Lookup("name").StringValueOK()
		if entry.Code == "" {
			entry.Code = constvars.UnknownDiagnosisCode
		}
		return entry, true
	default:
		return DiagnosisEntry{}, false
	}
}

func diagnosisCode(value bson.RawValue) string {
	switch value.Type {
	case bsontype.String:
		return value.StringValue()
	case bsontype.Int32:
		return strconv.FormatInt(int64(value.Int32()), 10)
	case bsontype.Int64:
		return strconv.FormatInt(value.Int64(), 10)
	case bsontype.Double:
		return strconv.FormatFloat(value.Double(), 'f', -1, 64)
	default:
		return ""
	}
}

// NewLegacyDiagnoses converts a plain string diagnosis into its single entry form.
func NewLegacyDiagnoses(name string) Diagnoses {
	if name == "" {
		return Diagnoses{}
	}
	return Diagnoses{{Code: constvars.UnknownDiagnosisCode, Name: name}}
}
