package utils

import "encoding/json"

// ToJSON marshals v to JSON.
func ToJSON[T any](v T) ([]byte, error) {
	return json.Marshal(v)
}

// FromJSON unmarshals data into a value of type T.
func FromJSON[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
