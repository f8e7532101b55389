package extract

import "github.com/synadia-labs/protoprobe/wire"

// analyticsResultsField holds the query results of a GetAnalytics response.
const analyticsResultsField = 1

// AnalyticsResponse is the result of ParseAnalytics. The analytics
// payload has no fixed layout, so the decoded tree is the main output;
// QueryResults lists the messages of the repeated results field.
type AnalyticsResponse struct {
	Status
	RawData      *wire.Object   `json:"raw_data,omitempty"`
	ParsedData   *wire.Object   `json:"parsed_data,omitempty"`
	QueryResults []*wire.Object `json:"query_results"`
}

// ParseAnalytics extracts a GetAnalytics response body. The error is
// always nil.
func ParseAnalytics(body []byte) (*AnalyticsResponse, error) {
	tree, st := decodeBody(body)
	resp := &AnalyticsResponse{Status: st, RawData: tree, ParsedData: tree, QueryResults: []*wire.Object{}}
	if tree == nil {
		return resp, nil
	}
	resp.QueryResults = append(resp.QueryResults, repeatedMessages(tree, analyticsResultsField)...)
	return resp, nil
}
