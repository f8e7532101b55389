package extract

// TeamsTierName names a TeamsTier enum value.
func TeamsTierName(tier int64) string {
	switch tier {
	case 0:
		return "UNSPECIFIED"
	case 1:
		return "TEAMS"
	case 2:
		return "PRO"
	case 3:
		return "ENTERPRISE_SAAS"
	case 4:
		return "HYBRID"
	case 5:
		return "ENTERPRISE_SELF_HOSTED"
	case 6:
		return "WAITLIST_PRO"
	case 7:
		return "TEAMS_ULTIMATE"
	case 8:
		return "PRO_ULTIMATE"
	case 9:
		return "TRIAL"
	case 10:
		return "ENTERPRISE_SELF_SERVE"
	}
	return "UNKNOWN"
}

// BillingIntervalName names a subscription interval. Anything but 1 is yearly.
func BillingIntervalName(interval int64) string {
	if interval == 1 {
		return "monthly"
	}
	return "yearly"
}

// CreditTypeName names a credit entry type.
func CreditTypeName(t int64) string {
	switch t {
	case 1:
		return "FLEX"
	case 2:
		return "PROMPT"
	case 3:
		return "FLOW"
	}
	return "UNKNOWN"
}

// TeamStatusName names a UserTeamStatus value.
func TeamStatusName(status int64) string {
	switch status {
	case 0:
		return "UNSPECIFIED"
	case 1:
		return "PENDING"
	case 2:
		return "APPROVED"
	case 3:
		return "REJECTED"
	}
	return "UNKNOWN"
}
