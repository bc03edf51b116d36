package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Alternate is an add or deduct priced separately from the base bid.
type Alternate struct {
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
}

// Alternates is stored as a JSON text column.
type Alternates []Alternate

func (a Alternates) Value() (driver.Value, error) {
	return jsonValue(a)
}

func (a *Alternates) Scan(src interface{}) error {
	return jsonScan(src, a)
}

// StringList is stored as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return jsonValue(l)
}

func (l *StringList) Scan(src interface{}) error {
	return jsonScan(src, l)
}

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(src interface{}, dst interface{}) error {
	var raw []byte
	switch s := src.(type) {
	case nil:
		return nil
	case string:
		raw = []byte(s)
	case []byte:
		raw = s
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
