package routes_test

import "encoding/json"

func decode(body []byte, target interface{}) error {
	return json.Unmarshal(body, target)
}
