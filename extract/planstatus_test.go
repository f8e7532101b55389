package extract_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/synadia-labs/protoprobe/extract"
)

func planStatusBody() pb {
	info := pb(nil).num(1, 2).str(2, "Pro").num(3, 1).num(12, 500).num(13, 2000)
	status := pb(nil).
		msg(1, info).
		msg(2, ts(nov14)).
		msg(3, ts(dec14)).
		num(4, 10).
		num(5, 20).
		num(6, 30).
		num(7, 40).
		num(8, 50).
		num(9, 60).
		msg(10, pb(nil).num(1, 1))
	return pb(nil).msg(1, status)
}

func TestParsePlanStatus(t *testing.T) {
	resp, err := extract.ParsePlanStatus(dataURI(planStatusBody()))
	require.NoError(t, err)
	require.True(t, resp.Success)

	require.NotNil(t, resp.PlanInfo)
	assert.Equal(t, int64(2), resp.TeamsTier)
	assert.Equal(t, "PRO", resp.TeamsTierName)
	assert.Equal(t, "Pro", resp.PlanName)
	assert.True(t, resp.HasAutocompleteFastMode)
	assert.Equal(t, int64(500), resp.MonthlyPromptCredits)
	assert.Equal(t, int64(2000), resp.MonthlyFlowCredits)

	require.NotNil(t, resp.PlanStart)
	assert.Equal(t, int64(nov14), *resp.PlanStart)
	require.NotNil(t, resp.PlanEnd)
	assert.Equal(t, int64(dec14), *resp.PlanEnd)

	credits := []*int64{
		resp.AvailableFlexCredits, resp.UsedFlowCredits, resp.UsedPromptCredits,
		resp.UsedFlexCredits, resp.AvailablePromptCredits, resp.AvailableFlowCredits,
	}
	for i, c := range credits {
		require.NotNil(t, c, "credit field %d", i+4)
		assert.Equal(t, int64(10*(i+1)), *c)
	}
	require.NotNil(t, resp.TopUpStatus)
	assert.Equal(t, int64(1), *resp.TopUpStatus)
}

func TestParsePlanStatusFlagsNeedOne(t *testing.T) {
	for _, c := range []struct {
		value uint64
		want  bool
	}{{0, false}, {1, true}, {2, false}} {
		info := pb(nil).str(2, "Pro").num(3, c.value)
		resp, err := extract.ParsePlanStatus(pb(nil).msg(1, pb(nil).msg(1, info)))
		require.NoError(t, err)
		require.NotNil(t, resp.PlanInfo)
		assert.Equal(t, c.want, resp.HasAutocompleteFastMode, "value %d", c.value)
	}
}

func TestParsePlanStatusJSONFlattensPlanInfo(t *testing.T) {
	resp, err := extract.ParsePlanStatus(planStatusBody())
	require.NoError(t, err)
	js, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.Equal(t, "Pro", gjson.GetBytes(js, "plan_name").String())
	assert.Equal(t, "PRO", gjson.GetBytes(js, "teams_tier_name").String())
	assert.Equal(t, int64(60), gjson.GetBytes(js, "available_flow_credits").Int())
	assert.True(t, gjson.GetBytes(js, "raw_data.subMesssage_1.subMesssage_1").IsObject())
}

func TestParsePlanStatusWithoutPlanInfo(t *testing.T) {
	resp, err := extract.ParsePlanStatus(pb(nil).msg(1, pb(nil).num(4, 3)))
	require.NoError(t, err)
	assert.Nil(t, resp.PlanInfo)
	assert.Empty(t, resp.TeamsTierName)
	require.NotNil(t, resp.AvailableFlexCredits)
	assert.Equal(t, int64(3), *resp.AvailableFlexCredits)
	assert.Nil(t, resp.TopUpStatus)
}

func TestParsePlanStatusMissingAnchor(t *testing.T) {
	resp, err := extract.ParsePlanStatus(pb(nil).num(2, 1))
	require.ErrorIs(t, err, extract.ErrMissingAnchor)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.RawData)
}

func TestTeamsTierName(t *testing.T) {
	names := []string{
		"UNSPECIFIED", "TEAMS", "PRO", "ENTERPRISE_SAAS", "HYBRID", "ENTERPRISE_SELF_HOSTED",
		"WAITLIST_PRO", "TEAMS_ULTIMATE", "PRO_ULTIMATE", "TRIAL", "ENTERPRISE_SELF_SERVE",
	}
	for i, want := range names {
		assert.Equal(t, want, extract.TeamsTierName(int64(i)))
	}
	assert.Equal(t, "UNKNOWN", extract.TeamsTierName(11))
	assert.Equal(t, "UNKNOWN", extract.TeamsTierName(-1))
}
