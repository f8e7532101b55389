package extract

// Sibling records of a GetUsers response. Users, user roles and cascade
// usage details share the low field numbers, so records are told apart
// by which fields they carry.
const (
	usersAPIKey       = 1
	usersName         = 2
	usersEmail        = 3
	usersFirebaseID   = 6
	usersTeamID       = 7
	usersTeamStatus   = 8
	usersUsername     = 9
	usersTimezone     = 10
	usersReferralCode = 30

	cascadeUserID      = 1
	cascadeUsageAmount = 2
)
