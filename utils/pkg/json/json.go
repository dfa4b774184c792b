/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package json

import (
	"bytes"
	"encoding/json"
)

// UnmarshalWithCheck decodes data into v and rejects fields that v does not declare.
func UnmarshalWithCheck(data []byte, v interface{}) error {
	d := json.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	if err := d.Decode(v); err != nil {
		return err
	}
	return nil
}

// MarshalSilently converts the given value to its JSON representation.
func MarshalSilently(v interface{}) []byte {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}

// MarshalIndentSilently renders v as indented JSON for human-facing output.
func MarshalIndentSilently(v interface{}) []byte {
	if v == nil {
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil
	}
	return data
}

// DecodeFromMapWithJson copies data into targetObject through a JSON round trip.
func DecodeFromMapWithJson(data interface{}, targetObject interface{}) error {
	jsonByte, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonByte, targetObject)
}
