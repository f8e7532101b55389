package extract

// GetTeamCreditEntries response root.
const creditEntriesField = 1

// FlexCreditChronicleEntry message.
const (
	creditTeamID     = 1
	creditGrantDate  = 2
	creditNumCredits = 3
	creditType       = 4
	creditReferralID = 5
	creditInvoiceID  = 6
	creditReferrer   = 7
	creditAvery      = 8
	creditPurchase   = 9
)

// Reason messages.
const (
	referrerEmail = 1
	referredEmail = 2

	averyUserEmail   = 1
	averyTargetEmail = 2

	purchaseType = 1
)
