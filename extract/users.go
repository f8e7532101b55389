package extract

import (
	"strings"

	"github.com/synadia-labs/protoprobe/wire"
)

// UserSummary is a User record of a GetUsers response.
type UserSummary struct {
	APIKey       string `json:"api_key"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email"`
	FirebaseID   string `json:"firebase_id,omitempty"`
	TeamID       string `json:"team_id,omitempty"`
	TeamStatus   *int64 `json:"team_status,omitempty"`
	Username     string `json:"username,omitempty"`
	Timezone     string `json:"timezone,omitempty"`
	ReferralCode string `json:"referral_code,omitempty"`
}

// CascadeDetail is a per-user cascade usage record of a GetUsers response.
type CascadeDetail struct {
	UserID      string `json:"user_id"`
	UsageAmount int64  `json:"usage_amount"`
}

// UsersResponse is the result of ParseUsers.
type UsersResponse struct {
	Status
	Users              []UserSummary   `json:"users"`
	UserRoles          []UserRole      `json:"user_roles"`
	UserCascadeDetails []CascadeDetail `json:"user_cascade_details"`
	RawData            *wire.Object    `json:"raw_data,omitempty"`
}

// ParseUsers extracts a GetUsers response body. Each sibling message is
// classified by the fields it carries:
//
//   - api key at 1 and an email address at 3: a user;
//   - api key at 1 and a role name at 4: a user role;
//   - user id at 1 and a varint at 2: cascade usage.
//
// Anything else is skipped. The error is always nil.
func ParseUsers(body []byte) (*UsersResponse, error) {
	tree, st := decodeBody(body)
	resp := &UsersResponse{
		Status:             st,
		Users:              []UserSummary{},
		UserRoles:          []UserRole{},
		UserCascadeDetails: []CascadeDetail{},
		RawData:            tree,
	}
	if tree == nil {
		return resp, nil
	}
	for _, o := range siblingMessages(tree) {
		m := view{o: o}
		_, hasKey := o.String(strKey(usersAPIKey))
		email, hasEmail := o.String(strKey(usersEmail))
		switch {
		case hasKey && hasEmail && strings.Contains(email, "@"):
			resp.Users = append(resp.Users, extractUserSummary(m))
		case hasKey && o.Has(strKey(roleName)):
			resp.UserRoles = append(resp.UserRoles, *extractRole(m))
		case hasKey && o.Has(intKey(cascadeUsageAmount)):
			resp.UserCascadeDetails = append(resp.UserCascadeDetails, CascadeDetail{
				UserID:      m.str(cascadeUserID),
				UsageAmount: m.num(cascadeUsageAmount),
			})
		}
	}
	return resp, nil
}

func extractUserSummary(m view) UserSummary {
	return UserSummary{
		APIKey:       m.str(usersAPIKey),
		Name:         m.str(usersName),
		Email:        m.str(usersEmail),
		FirebaseID:   m.str(usersFirebaseID),
		TeamID:       m.str(usersTeamID),
		TeamStatus:   m.optNum(usersTeamStatus),
		Username:     m.str(usersUsername),
		Timezone:     m.str(usersTimezone),
		ReferralCode: m.str(usersReferralCode),
	}
}
