package adocint

import "encoding/json"

// ToJSON converts a value to a pretty-printed JSON string,
// used for debug output of API responses and derived structures
func ToJSON(data interface{}) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}
