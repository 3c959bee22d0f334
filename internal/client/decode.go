package client

import (
	"encoding/json"

	"github.com/xrplsale/xrplsale-go/internal/http"
	"github.com/xrplsale/xrplsale-go/pkg/xrplsale"
)

// unmarshalResponse decodes a successful response body into v. An empty body
// is valid for every verb and leaves v untouched rather than failing.
func unmarshalResponse(resp *http.Response, v interface{}) error {
	if resp == nil || v == nil || len(resp.Body) == 0 {
		return nil
	}

	err := json.Unmarshal(resp.Body, v)
	if err != nil {
		return &xrplsale.ParseError{Err: err}
	}

	return nil
}
