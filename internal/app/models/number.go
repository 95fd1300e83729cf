package models

import (
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexibleNumber decodes clinical measurements that intake clients have
// written as numbers or as numeric strings. Anything unparseable or
// non-finite reads as 0.
type FlexibleNumber float64

func (n *FlexibleNumber) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.Double:
		*n = finiteNumber(raw.Double())
	case bsontype.Int32:
		*n = FlexibleNumber(raw.Int32())
	case bsontype.Int64:
		*n = FlexibleNumber(raw.Int64())
	case bsontype.Decimal128:
		*n = parseFlexibleNumber(raw.Decimal128().String())
	case bsontype.String:
		*n = parseFlexibleNumber(raw.StringValue())
	default:
		*n = 0
	}
	return nil
}

func parseFlexibleNumber(value string) FlexibleNumber {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return finiteNumber(parsed)
}

// finiteNumber keeps NaN and ±Inf out of responses; JSON cannot carry them.
func finiteNumber(value float64) FlexibleNumber {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return FlexibleNumber(value)
}
