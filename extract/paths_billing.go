package extract

// BillingUpdate message, at field 1 of UpdateSeats and UpdatePlan responses.
const (
	billingUpdateRoot = 1

	billingAmountDueImmediately = 1 // fixed32
	billingPricePerSeat         = 3 // fixed32
	billingNumSeats             = 4
	billingSubInterval          = 5
	billingAmountPerInterval    = 6 // fixed32
	billingStart                = 7
	billingEnd                  = 8
	billingUnusedPlanRefunded   = 9
	billingHasSSOAddOn          = 10
)

// UpdatePlan response root, beside the billing update.
const (
	updatePlanAppliedChanges         = 2
	updatePlanNextActionClientSecret = 3
	updatePlanPaymentFailureReason   = 4
	updatePlanRequiresPasswordReset  = 5
)

// GetTeamBilling response root.
const (
	teamBillingSubscriptionActive = 1
	teamBillingOnTrial            = 2
	teamBillingRenewalTime        = 3
	teamBillingNumSeats           = 5
	teamBillingPlanUnitAmount     = 6 // fixed32
	teamBillingSubInterval        = 7
	teamBillingCancelAtPeriodEnd  = 8
	teamBillingInvoices           = 9
	teamBillingPaymentMethod      = 10
	teamBillingSubscription       = 12
	teamBillingNumUsers           = 14
	teamBillingNumSeatsCurrent    = 15
	teamBillingNumCascadeUsers    = 16
	teamBillingNumCascadeSeats    = 17
	teamBillingNumCoreUsers       = 18
	teamBillingNumCoreSeats       = 19
	teamBillingFailedPayment      = 20
	teamBillingTopUpError         = 21
)

// Subscription message of a team billing response.
const (
	billingSubPlan         = 1
	billingSubExtraCredits = 4
	billingSubUsedQuota    = 6
	billingSubBaseQuota    = 8
	billingSubCacheLimit   = 9
)

// Nested fields of team billing sub-messages.
const (
	invoiceURL        = 1
	failedPaymentText = 1
	paymentMethodCard = 2
	cardType          = 1
	cardExpMonth      = 2
	cardExpYear       = 3
	cardLast4         = 4
)
