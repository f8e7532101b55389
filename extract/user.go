package extract

import "github.com/synadia-labs/protoprobe/wire"

// UserBasicInfo is the User message of a GetCurrentUser response.
type UserBasicInfo struct {
	APIKey               string  `json:"api_key"`
	Name                 string  `json:"name"`
	Email                string  `json:"email"`
	ID                   string  `json:"id"`
	TeamID               string  `json:"team_id"`
	TeamStatus           int64   `json:"team_status"`
	TeamStatusName       string  `json:"team_status_name"`
	Username             string  `json:"username"`
	Timezone             string  `json:"timezone"`
	PublicProfileEnabled bool    `json:"public_profile_enabled"`
	Pro                  bool    `json:"pro"`
	DisableCodeium       bool    `json:"disable_codeium"`
	Newsletter           bool    `json:"newsletter"`
	DisabledTelemetry    bool    `json:"disabled_telemetry"`
	SignupStage          *string `json:"signup_stage,omitempty"`
	UsedTrial            bool    `json:"used_trial"`
	UsedPromptCredits    int64   `json:"used_prompt_credits"`
	UsedFlowCredits      int64   `json:"used_flow_credits"`
	ReferralCode         *string `json:"referral_code,omitempty"`

	SignupTime              *int64 `json:"signup_time,omitempty"`
	LastUpdateTime          *int64 `json:"last_update_time,omitempty"`
	FirstWindsurfUseTime    *int64 `json:"first_windsurf_use_time,omitempty"`
	WindsurfProTrialEndTime *int64 `json:"windsurf_pro_trial_end_time,omitempty"`
}

// TeamInfo is the Team message of a GetCurrentUser response.
type TeamInfo struct {
	ID                           string  `json:"id"`
	Name                         string  `json:"name"`
	SignupTime                   *int64  `json:"signup_time,omitempty"`
	InviteID                     *string `json:"invite_id,omitempty"`
	UsedTrial                    bool    `json:"used_trial"`
	StripeSubscriptionID         *string `json:"stripe_subscription_id,omitempty"`
	SubscriptionActive           bool    `json:"subscription_active"`
	StripeCustomerID             *string `json:"stripe_customer_id,omitempty"`
	CurrentBillingPeriodStart    *int64  `json:"current_billing_period_start,omitempty"`
	NumSeatsCurrentBillingPeriod int64   `json:"num_seats_current_billing_period"`
	AttributionEnabled           bool    `json:"attribution_enabled"`
	SSOProviderID                *string `json:"sso_provider_id,omitempty"`
	OffersEnabled                bool    `json:"offers_enabled"`
	TeamsTier                    int64   `json:"teams_tier"`
	FlexCreditQuota              int64   `json:"flex_credit_quota"`
	UsedFlowCredits              int64   `json:"used_flow_credits"`
	UsedPromptCredits            int64   `json:"used_prompt_credits"`
	CurrentBillingPeriodEnd      *int64  `json:"current_billing_period_end,omitempty"`
	NumCascadeSeats              int64   `json:"num_cascade_seats"`
	CascadeUsageMonthStart       *int64  `json:"cascade_usage_month_start,omitempty"`
	CascadeUsageMonthEnd         *int64  `json:"cascade_usage_month_end,omitempty"`
	CascadeSeatType              int64   `json:"cascade_seat_type"`
	TopUpEnabled                 bool    `json:"top_up_enabled"`
	MonthlyTopUpAmount           int64   `json:"monthly_top_up_amount"`
	TopUpSpent                   int64   `json:"top_up_spent"`
	TopUpIncrement               int64   `json:"top_up_increment"`
	UsedFlexCredits              int64   `json:"used_flex_credits"`
	NumUsers                     int64   `json:"num_users"`
}

// SubscriptionInfo is derived from the team and plan messages; the
// response has no subscription message of its own.
type SubscriptionInfo struct {
	ID                   string `json:"id"`
	Email                string `json:"email"`
	StripeSubscriptionID string `json:"stripe_subscription_id"`
	StripeCustomerID     string `json:"stripe_customer_id"`
	Seats                int64  `json:"seats"`
	Usage                int64  `json:"usage"`
	Quota                int64  `json:"quota"`
	UsedQuota            int64  `json:"used_quota"`
	ExpiresAt            *int64 `json:"expires_at,omitempty"`
	SubscriptionActive   bool   `json:"subscription_active"`
	OnTrial              bool   `json:"on_trial"`
}

// PlanInfo is the PlanInfo message.
type PlanInfo struct {
	TeamsTier                          int64  `json:"teams_tier"`
	PlanName                           string `json:"plan_name"`
	HasAutocompleteFastMode            bool   `json:"has_autocomplete_fast_mode"`
	AllowStickyPremiumModels           bool   `json:"allow_sticky_premium_models"`
	HasForgeAccess                     bool   `json:"has_forge_access"`
	MaxNumPremiumChatMessages          int64  `json:"max_num_premium_chat_messages"`
	MaxNumChatInputTokens              int64  `json:"max_num_chat_input_tokens"`
	MaxCustomChatInstructionCharacters int64  `json:"max_custom_chat_instruction_characters"`
	MaxNumPinnedContextItems           int64  `json:"max_num_pinned_context_items"`
	MaxLocalIndexSize                  int64  `json:"max_local_index_size"`
	DisableCodeSnippetTelemetry        bool   `json:"disable_code_snippet_telemetry"`
	MonthlyPromptCredits               int64  `json:"monthly_prompt_credits"`
	MonthlyFlowCredits                 int64  `json:"monthly_flow_credits"`
	MonthlyFlexCreditPurchaseAmount    int64  `json:"monthly_flex_credit_purchase_amount"`
	AllowPremiumCommandModels          bool   `json:"allow_premium_command_models"`
	IsEnterprise                       bool   `json:"is_enterprise"`
	IsTeams                            bool   `json:"is_teams"`
	CanBuyMoreCredits                  bool   `json:"can_buy_more_credits"`
	CascadeWebSearchEnabled            bool   `json:"cascade_web_search_enabled"`
	CanCustomizeAppIcon                bool   `json:"can_customize_app_icon"`
	CascadeCanAutoRunCommands          bool   `json:"cascade_can_auto_run_commands"`
	HasTabToJump                       bool   `json:"has_tab_to_jump"`
	CanGenerateCommitMessages          bool   `json:"can_generate_commit_messages"`
	MaxUnclaimedSites                  int64  `json:"max_unclaimed_sites"`
	KnowledgeBaseEnabled               bool   `json:"knowledge_base_enabled"`
	CanShareConversations              bool   `json:"can_share_conversations"`
	CanAllowCascadeInBackground        bool   `json:"can_allow_cascade_in_background"`
	BrowserEnabled                     bool   `json:"browser_enabled"`
}

// UserRole is the UserRole message.
type UserRole struct {
	APIKey   string   `json:"api_key"`
	Roles    []string `json:"roles"`
	RoleID   string   `json:"role_id"`
	RoleName string   `json:"role_name"`
}

// AdminInfo is the older name of UserRole.
type AdminInfo = UserRole

// UserInfo gathers every record of a GetCurrentUser response.
type UserInfo struct {
	User         UserBasicInfo     `json:"user"`
	Roles        *string           `json:"roles,omitempty"`
	Subscription *SubscriptionInfo `json:"subscription,omitempty"`
	Plan         *PlanInfo         `json:"plan,omitempty"`
	Role         *UserRole         `json:"role,omitempty"`
	Admin        *AdminInfo        `json:"admin,omitempty"`
	IsRootAdmin  bool              `json:"is_root_admin"`
	Team         *TeamInfo         `json:"team,omitempty"`
	Permissions  *wire.Node        `json:"permissions,omitempty"`
	PlanFeatures *wire.Node        `json:"plan_features,omitempty"`
}

// CurrentUserResponse is the result of ParseCurrentUser.
type CurrentUserResponse struct {
	Status
	ParsedData *wire.Object `json:"parsed_data,omitempty"`
	UserInfo   *UserInfo    `json:"user_info,omitempty"`
}

// ParseCurrentUser extracts a GetCurrentUser response body.
//
// The returned error is non-nil only when the body decodes but lacks the
// User message; the response then still carries ParsedData.
func ParseCurrentUser(body []byte) (*CurrentUserResponse, error) {
	tree, st := decodeBody(body)
	resp := &CurrentUserResponse{Status: st, ParsedData: tree}
	if tree == nil {
		return resp, nil
	}
	info, err := ExtractUserInfo(tree)
	if err != nil {
		resp.fail(err)
		return resp, err
	}
	resp.UserInfo = info
	return resp, nil
}

// ExtractUserInfo builds a UserInfo from a decoded GetCurrentUser tree.
// It fails with ErrMissingAnchor when the root User message is absent.
func ExtractUserInfo(tree *wire.Object) (*UserInfo, error) {
	root := view{o: tree}
	u := root.msg(rootUser)
	if !u.present() {
		return nil, missingAnchor("current user", rootUser)
	}

	info := &UserInfo{
		User:         extractUser(u),
		Roles:        root.optStr(rootRoles),
		Subscription: ExtractSubscription(tree),
		Plan:         ExtractPlan(tree),
		Role:         ExtractRole(tree),
		Team:         ExtractTeam(tree),
	}
	info.Admin = info.Role
	info.IsRootAdmin = info.Roles != nil && *info.Roles == rootAdminRole

	if n, ok := tree.Get(msgKey(rootPermissions)); ok {
		info.Permissions = &n
	} else if n, ok := tree.Get(bytesKey(rootPermissions)); ok {
		info.Permissions = &n
	}
	if plan, ok := tree.Object(msgKey(rootPlan)); ok {
		if n, ok := plan.Get(msgKey(planFeatures)); ok {
			info.PlanFeatures = &n
		}
	}
	return info, nil
}

func extractUser(u view) UserBasicInfo {
	status := u.num(userTeamStatus)
	return UserBasicInfo{
		APIKey:               u.str(userAPIKey),
		Name:                 u.str(userName),
		Email:                u.str(userEmail),
		ID:                   u.str(userID),
		TeamID:               u.str(userTeamID),
		TeamStatus:           status,
		TeamStatusName:       TeamStatusName(status),
		Username:             u.str(userUsername),
		Timezone:             u.str(userTimezone),
		PublicProfileEnabled: u.flag(userPublicProfileEnabled),
		Pro:                  u.flag(userPro),
		DisableCodeium:       u.flag(userDisableCodeium),
		Newsletter:           u.flag(userNewsletter),
		DisabledTelemetry:    u.flag(userDisabledTelemetry),
		SignupStage:          u.optStr(userSignupStage),
		UsedTrial:            u.flag(userUsedTrial),
		UsedPromptCredits:    u.num(userUsedPromptCredits),
		UsedFlowCredits:      u.num(userUsedFlowCredits),
		ReferralCode:         u.optStr(userReferralCode),

		SignupTime:              u.seconds(userSignupTime),
		LastUpdateTime:          u.seconds(userLastUpdateTime),
		FirstWindsurfUseTime:    u.seconds(userFirstWindsurfUseTime),
		WindsurfProTrialEndTime: u.seconds(userWindsurfProTrialEndTime),
	}
}

// ExtractTeam reads the Team message of a GetCurrentUser tree, or returns
// nil when there is none.
func ExtractTeam(tree *wire.Object) *TeamInfo {
	t := view{o: tree}.msg(rootTeam)
	if !t.present() {
		return nil
	}
	return &TeamInfo{
		ID:                           t.str(teamID),
		Name:                         t.str(teamName),
		SignupTime:                   t.seconds(teamSignupTime),
		InviteID:                     t.optStr(teamInviteID),
		UsedTrial:                    t.flag(teamUsedTrial),
		StripeSubscriptionID:         t.optStr(teamStripeSubscriptionID),
		SubscriptionActive:           t.flag(teamSubscriptionActive),
		StripeCustomerID:             t.optStr(teamStripeCustomerID),
		CurrentBillingPeriodStart:    t.seconds(teamCurrentBillingPeriodStart),
		NumSeatsCurrentBillingPeriod: t.num(teamNumSeatsCurrentBillingPeriod),
		AttributionEnabled:           t.flag(teamAttributionEnabled),
		SSOProviderID:                t.optStr(teamSSOProviderID),
		OffersEnabled:                t.flag(teamOffersEnabled),
		TeamsTier:                    t.num(teamTeamsTier),
		FlexCreditQuota:              t.num(teamFlexCreditQuota),
		UsedFlowCredits:              t.num(teamUsedFlowCredits),
		UsedPromptCredits:            t.num(teamUsedPromptCredits),
		CurrentBillingPeriodEnd:      t.seconds(teamCurrentBillingPeriodEnd),
		NumCascadeSeats:              t.num(teamNumCascadeSeats),
		CascadeUsageMonthStart:       t.seconds(teamCascadeUsageMonthStart),
		CascadeUsageMonthEnd:         t.seconds(teamCascadeUsageMonthEnd),
		CascadeSeatType:              t.num(teamCascadeSeatType),
		TopUpEnabled:                 t.flag(teamTopUpEnabled),
		MonthlyTopUpAmount:           t.num(teamMonthlyTopUpAmount),
		TopUpSpent:                   t.num(teamTopUpSpent),
		TopUpIncrement:               t.num(teamTopUpIncrement),
		UsedFlexCredits:              t.num(teamUsedFlexCredits),
		NumUsers:                     1,
	}
}

// ExtractSubscription derives the subscription from the Team message. The
// quota is the plan's monthly prompt credits plus the team's flex credit
// quota. Seats fall back to the teams tier field when the billing-period
// seat count is absent.
func ExtractSubscription(tree *wire.Object) *SubscriptionInfo {
	root := view{o: tree}
	t := root.msg(rootTeam)
	if !t.present() {
		return nil
	}
	seatCount := t.num(teamTeamsTier)
	if n := t.optNum(teamNumSeatsCurrentBillingPeriod); n != nil {
		seatCount = *n
	}
	return &SubscriptionInfo{
		ID:                   t.str(teamID),
		Email:                t.str(teamName),
		StripeSubscriptionID: t.str(teamStripeSubscriptionID),
		StripeCustomerID:     t.str(teamStripeCustomerID),
		Seats:                seatCount,
		Usage:                1,
		Quota:                root.msg(rootPlan).num(planMonthlyPromptCredits) + t.num(teamFlexCreditQuota),
		UsedQuota:            t.num(teamUsedPromptCredits),
		ExpiresAt:            t.seconds(teamCurrentBillingPeriodEnd),
		SubscriptionActive:   t.flag(teamSubscriptionActive),
		OnTrial:              false,
	}
}

// ExtractPlan reads the PlanInfo message of a GetCurrentUser tree, or
// returns nil when there is none.
func ExtractPlan(tree *wire.Object) *PlanInfo {
	return extractPlanInfo(view{o: tree}.msg(rootPlan))
}

func extractPlanInfo(p view) *PlanInfo {
	if !p.present() {
		return nil
	}
	return &PlanInfo{
		TeamsTier:                          p.num(planTeamsTier),
		PlanName:                           p.str(planName),
		HasAutocompleteFastMode:            p.flag(planHasAutocompleteFastMode),
		AllowStickyPremiumModels:           p.flag(planAllowStickyPremiumModels),
		HasForgeAccess:                     p.flag(planHasForgeAccess),
		MaxNumPremiumChatMessages:          p.num(planMaxNumPremiumChatMessages),
		MaxNumChatInputTokens:              p.num(planMaxNumChatInputTokens),
		MaxCustomChatInstructionCharacters: p.num(planMaxCustomChatInstructionChars),
		MaxNumPinnedContextItems:           p.num(planMaxNumPinnedContextItems),
		MaxLocalIndexSize:                  p.num(planMaxLocalIndexSize),
		DisableCodeSnippetTelemetry:        p.flag(planDisableCodeSnippetTelemetry),
		MonthlyPromptCredits:               p.num(planMonthlyPromptCredits),
		MonthlyFlowCredits:                 p.num(planMonthlyFlowCredits),
		MonthlyFlexCreditPurchaseAmount:    p.num(planMonthlyFlexCreditPurchaseAmount),
		AllowPremiumCommandModels:          p.flag(planAllowPremiumCommandModels),
		IsEnterprise:                       p.flag(planIsEnterprise),
		IsTeams:                            p.flag(planIsTeams),
		CanBuyMoreCredits:                  p.flag(planCanBuyMoreCredits),
		CascadeWebSearchEnabled:            p.flag(planCascadeWebSearchEnabled),
		CanCustomizeAppIcon:                p.flag(planCanCustomizeAppIcon),
		CascadeCanAutoRunCommands:          p.flag(planCascadeCanAutoRunCommands),
		HasTabToJump:                       p.flag(planHasTabToJump),
		CanGenerateCommitMessages:          p.flag(planCanGenerateCommitMessages),
		MaxUnclaimedSites:                  p.num(planMaxUnclaimedSites),
		KnowledgeBaseEnabled:               p.flag(planKnowledgeBaseEnabled),
		CanShareConversations:              p.flag(planCanShareConversations),
		CanAllowCascadeInBackground:        p.flag(planCanAllowCascadeInBackground),
		BrowserEnabled:                     p.flag(planBrowserEnabled),
	}
}

// ExtractRole reads the UserRole message of a GetCurrentUser tree, or
// returns nil when there is none.
func ExtractRole(tree *wire.Object) *UserRole {
	r := view{o: tree}.msg(rootRole)
	if !r.present() {
		return nil
	}
	return extractRole(r)
}

// extractRole reads a UserRole message. The repeated roles field is a
// single string_2, an array under string_2 once it repeats, or an array
// under repeated_2.
func extractRole(r view) *UserRole {
	roles := []string{}
	if n, ok := r.o.Get(strKey(roleRoles)); ok {
		roles = append(roles, n.Strings()...)
	} else if n, ok := r.o.Get(repeatedRolesKey); ok {
		roles = append(roles, n.Strings()...)
	}
	return &UserRole{
		APIKey:   r.str(roleAPIKey),
		Roles:    roles,
		RoleID:   r.str(roleID),
		RoleName: r.str(roleName),
	}
}
