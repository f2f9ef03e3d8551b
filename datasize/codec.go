package datasize

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"gopkg.in/yaml.v3"

	"github.com/jt0/quantity/gomerr"
)

var (
	_ attributevalue.Marshaler   = DataSize{}
	_ attributevalue.Unmarshaler = (*DataSize)(nil)
	_ yaml.Marshaler             = DataSize{}
	_ yaml.Unmarshaler           = (*DataSize)(nil)
	_ json.Marshaler             = DataSize{}
	_ json.Unmarshaler           = (*DataSize)(nil)
)

func (d DataSize) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DataSize) UnmarshalText(text []byte) error {
	parsed, ge := Parse(string(text))
	if ge != nil {
		return ge
	}
	*d = parsed
	return nil
}

// MarshalJSON writes the bit count as a JSON number.
func (d DataSize) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, d.bits, 10), nil
}

// UnmarshalJSON accepts either a number of bits or a string in Parse form.
func (d *DataSize) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return gomerr.Unmarshal("DataSize", string(data), d).Wrap(err)
		}
		return d.UnmarshalText([]byte(s))
	}

	return d.setBits(string(data))
}

func (d DataSize) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML accepts an integer number of bits, in any YAML integer
// notation, or a string in Parse form,
// so configuration files may say "maxUpload: 2 megabytes".
func (d *DataSize) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return gomerr.Unmarshal("DataSize", node.Value, d).AddAttribute("Line", node.Line)
	}

	switch node.ShortTag() {
	case "!!null":
		return nil
	case "!!int":
		var n uint64
		if err := node.Decode(&n); err != nil {
			return gomerr.Unmarshal("DataSize", node.Value, d).AddAttribute("Line", node.Line).Wrap(err)
		}
		d.bits = n
		return nil
	default:
		return d.UnmarshalText([]byte(node.Value))
	}
}

// MarshalDynamoDBAttributeValue stores the bit count as a number attribute.
func (d DataSize) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: strconv.FormatUint(d.bits, 10)}, nil
}

func (d *DataSize) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		return d.setBits(v.Value)
	case *types.AttributeValueMemberS:
		return d.UnmarshalText([]byte(v.Value))
	case *types.AttributeValueMemberNULL:
		return nil
	default:
		return gomerr.Unmarshal("DataSize", av, d)
	}
}

func (d *DataSize) setBits(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return gomerr.Unmarshal("DataSize", s, d).Wrap(err)
	}
	d.bits = n
	return nil
}
