package extract

// GetPlanStatus response root.
const planStatusRoot = 1 // anchor

// PlanStatus message.
const (
	planStatusPlanInfo               = 1
	planStatusPlanStart              = 2
	planStatusPlanEnd                = 3
	planStatusAvailableFlexCredits   = 4
	planStatusUsedFlowCredits        = 5
	planStatusUsedPromptCredits      = 6
	planStatusUsedFlexCredits        = 7
	planStatusAvailablePromptCredits = 8
	planStatusAvailableFlowCredits   = 9
	planStatusTopUp                  = 10

	topUpStatusValue = 1
)
