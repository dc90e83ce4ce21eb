package requests

import (
	jsoniter "github.com/json-iterator/go"
)

// json sorts map keys, so argument maps always serialize in the same order.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode serializes a payload built by this package. It only fails when an
// argument map holds a value that has no JSON form.
func Encode(payload any) ([]byte, error) {
	return json.Marshal(payload)
}
