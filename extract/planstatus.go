package extract

import "github.com/synadia-labs/protoprobe/wire"

// PlanStatusResponse is the result of ParsePlanStatus. The plan info
// fields are flattened into the response when present. Plan flags are true
// only for the value 1, as in ExtractPlan; any other varint reads as false.
type PlanStatusResponse struct {
	Status
	*PlanInfo
	TeamsTierName          string       `json:"teams_tier_name,omitempty"`
	PlanStart              *int64       `json:"plan_start,omitempty"`
	PlanEnd                *int64       `json:"plan_end,omitempty"`
	AvailableFlexCredits   *int64       `json:"available_flex_credits,omitempty"`
	UsedFlowCredits        *int64       `json:"used_flow_credits,omitempty"`
	UsedPromptCredits      *int64       `json:"used_prompt_credits,omitempty"`
	UsedFlexCredits        *int64       `json:"used_flex_credits,omitempty"`
	AvailablePromptCredits *int64       `json:"available_prompt_credits,omitempty"`
	AvailableFlowCredits   *int64       `json:"available_flow_credits,omitempty"`
	TopUpStatus            *int64       `json:"top_up_status,omitempty"`
	RawData                *wire.Object `json:"raw_data,omitempty"`
}

// ParsePlanStatus extracts a GetPlanStatus response body. It returns an
// error wrapping ErrMissingAnchor when the PlanStatus message is absent.
func ParsePlanStatus(body []byte) (*PlanStatusResponse, error) {
	tree, st := decodeBody(body)
	resp := &PlanStatusResponse{Status: st, RawData: tree}
	if tree == nil {
		return resp, nil
	}
	ps := view{o: tree}.msg(planStatusRoot)
	if !ps.present() {
		err := missingAnchor("plan status", planStatusRoot)
		resp.fail(err)
		return resp, err
	}

	if info := extractPlanInfo(ps.msg(planStatusPlanInfo)); info != nil {
		resp.PlanInfo = info
		resp.TeamsTierName = TeamsTierName(info.TeamsTier)
	}
	resp.PlanStart = ps.seconds(planStatusPlanStart)
	resp.PlanEnd = ps.seconds(planStatusPlanEnd)
	resp.AvailableFlexCredits = ps.optNum(planStatusAvailableFlexCredits)
	resp.UsedFlowCredits = ps.optNum(planStatusUsedFlowCredits)
	resp.UsedPromptCredits = ps.optNum(planStatusUsedPromptCredits)
	resp.UsedFlexCredits = ps.optNum(planStatusUsedFlexCredits)
	resp.AvailablePromptCredits = ps.optNum(planStatusAvailablePromptCredits)
	resp.AvailableFlowCredits = ps.optNum(planStatusAvailableFlowCredits)
	resp.TopUpStatus = ps.msg(planStatusTopUp).optNum(topUpStatusValue)
	return resp, nil
}
