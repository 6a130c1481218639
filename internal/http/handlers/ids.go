package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// flexID accepts an id sent either as a JSON number or as a numeric string
type flexID uint

func (id *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return err
	}
	*id = flexID(v)
	return nil
}

func (id *flexID) ptr() *uint {
	if id == nil || *id == 0 {
		return nil
	}
	v := uint(*id)
	return &v
}

// queryID parses a numeric query value; anything else is treated as absent
func queryID(raw string) uint {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

var _ json.Unmarshaler = (*flexID)(nil)
