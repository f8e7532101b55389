package extract

// GetCurrentUser response root.
const (
	rootUser        = 1 // anchor
	rootRoles       = 2
	rootTeam        = 4
	rootPlan        = 6
	rootRole        = 7
	rootPermissions = 8
)

// User message.
const (
	userAPIKey                  = 1
	userName                    = 2
	userEmail                   = 3
	userSignupTime              = 4
	userLastUpdateTime          = 5
	userID                      = 6
	userTeamID                  = 7
	userTeamStatus              = 8
	userUsername                = 9
	userTimezone                = 10
	userPublicProfileEnabled    = 11
	userPro                     = 13
	userDisableCodeium          = 16
	userNewsletter              = 19
	userDisabledTelemetry       = 20
	userSignupStage             = 22
	userUsedTrial               = 25
	userFirstWindsurfUseTime    = 26
	userWindsurfProTrialEndTime = 27
	userUsedPromptCredits       = 28
	userUsedFlowCredits         = 29
	userReferralCode            = 30
)

// Team message.
const (
	teamID                           = 1
	teamName                         = 2
	teamSignupTime                   = 3
	teamInviteID                     = 4
	teamUsedTrial                    = 5
	teamStripeSubscriptionID         = 6
	teamSubscriptionActive           = 7
	teamStripeCustomerID             = 8
	teamCurrentBillingPeriodStart    = 9
	teamNumSeatsCurrentBillingPeriod = 10
	teamAttributionEnabled           = 11
	teamSSOProviderID                = 12
	teamOffersEnabled                = 13
	teamTeamsTier                    = 14
	teamFlexCreditQuota              = 15
	teamUsedFlowCredits              = 16
	teamUsedPromptCredits            = 17
	teamCurrentBillingPeriodEnd      = 18
	teamNumCascadeSeats              = 19
	teamCascadeUsageMonthStart       = 20
	teamCascadeUsageMonthEnd         = 21
	teamCascadeSeatType              = 22
	teamTopUpEnabled                 = 23
	teamMonthlyTopUpAmount           = 24
	teamTopUpSpent                   = 25
	teamTopUpIncrement               = 26
	teamUsedFlexCredits              = 27
)

// PlanInfo message. Also nested in PlanStatus.
const (
	planTeamsTier                       = 1
	planName                            = 2
	planHasAutocompleteFastMode         = 3
	planAllowStickyPremiumModels        = 4
	planHasForgeAccess                  = 5
	planMaxNumPremiumChatMessages       = 6
	planMaxNumChatInputTokens           = 7
	planMaxCustomChatInstructionChars   = 8
	planMaxNumPinnedContextItems        = 9
	planMaxLocalIndexSize               = 10
	planDisableCodeSnippetTelemetry     = 11
	planMonthlyPromptCredits            = 12
	planMonthlyFlowCredits              = 13
	planMonthlyFlexCreditPurchaseAmount = 14
	planAllowPremiumCommandModels       = 15
	planIsEnterprise                    = 16
	planIsTeams                         = 17
	planCanBuyMoreCredits               = 18
	planCascadeWebSearchEnabled         = 19
	planCanCustomizeAppIcon             = 20
	planCascadeCanAutoRunCommands       = 22
	planHasTabToJump                    = 23
	planFeatures                        = 24
	planCanGenerateCommitMessages       = 25
	planMaxUnclaimedSites               = 26
	planKnowledgeBaseEnabled            = 27
	planCanShareConversations           = 28
	planCanAllowCascadeInBackground     = 29
	planBrowserEnabled                  = 31
)

// UserRole message.
const (
	roleAPIKey = 1
	roleRoles  = 2
	roleID     = 3
	roleName   = 4
)

// rootAdminRole is the root roles string of a root administrator.
const rootAdminRole = "root.admin"

// repeatedRolesKey is an alternative key some producers use for the
// repeated roles field.
const repeatedRolesKey = "repeated_2"
