package services

import (
	"encoding/json"
	"net/http"
)

func jsonDecode(r *http.Request, out interface{}) error {
	return json.NewDecoder(r.Body).Decode(out)
}
