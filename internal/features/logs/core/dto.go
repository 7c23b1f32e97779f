package logs_core

import "encoding/json"

// IndexAck is the datastore acknowledgement for one indexed document.
// Raw keeps the response body verbatim; the decoded fields are a
// convenience on top of it.
type IndexAck struct {
	Index      string          `json:"index"`
	DocumentID string          `json:"documentId"`
	Result     string          `json:"result"`
	StatusCode int             `json:"statusCode"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}

type openSearchIndexResponse struct {
	Index  string `json:"_index"`
	ID     string `json:"_id"`
	Result string `json:"result"`
}
