package extract

import "github.com/synadia-labs/protoprobe/wire"

// Credit reason kinds.
const (
	ReasonReferrer = "referrer"
	ReasonAvery    = "avery"
	ReasonPurchase = "purchase"
)

// CreditReason is the reason oneof of a credit entry.
type CreditReason struct {
	Type          string `json:"type"`
	ReferrerEmail string `json:"referrer_email,omitempty"`
	ReferredEmail string `json:"referred_email,omitempty"`
	UserEmail     string `json:"user_email,omitempty"`
	TargetEmail   string `json:"target_email,omitempty"`
	PurchaseType  *int64 `json:"purchase_type,omitempty"`
}

// CreditEntry is one FlexCreditChronicleEntry.
type CreditEntry struct {
	TeamID             string        `json:"team_id"`
	GrantDate          string        `json:"grant_date,omitempty"`
	GrantDateTimestamp *int64        `json:"grant_date_timestamp,omitempty"`
	NumCredits         *int64        `json:"num_credits,omitempty"`
	Type               string        `json:"type,omitempty"`
	TypeCode           *int64        `json:"type_code,omitempty"`
	ReferralID         *int64        `json:"referral_id,omitempty"`
	InvoiceID          *string       `json:"invoice_id,omitempty"`
	Reason             *CreditReason `json:"reason,omitempty"`
}

// TeamCreditEntriesResponse is the result of ParseTeamCreditEntries.
type TeamCreditEntriesResponse struct {
	Status
	Entries      []CreditEntry `json:"entries"`
	TotalEntries int           `json:"total_entries"`
	RawData      *wire.Object  `json:"raw_data,omitempty"`
}

// ParseTeamCreditEntries extracts a GetTeamCreditEntries response body.
// Entries without a team id are dropped. The error is always nil.
func ParseTeamCreditEntries(body []byte) (*TeamCreditEntriesResponse, error) {
	tree, st := decodeBody(body)
	resp := &TeamCreditEntriesResponse{Status: st, Entries: []CreditEntry{}, RawData: tree}
	if tree == nil {
		return resp, nil
	}
	for _, o := range repeatedMessages(tree, creditEntriesField) {
		if e, ok := extractCreditEntry(view{o: o}); ok {
			resp.Entries = append(resp.Entries, e)
		}
	}
	resp.TotalEntries = len(resp.Entries)
	return resp, nil
}

func extractCreditEntry(e view) (CreditEntry, bool) {
	teamID := e.optStr(creditTeamID)
	if teamID == nil {
		return CreditEntry{}, false
	}
	entry := CreditEntry{
		TeamID:     *teamID,
		NumCredits: e.optNum(creditNumCredits),
		TypeCode:   e.optNum(creditType),
		ReferralID: e.optNum(creditReferralID),
		InvoiceID:  e.optStr(creditInvoiceID),
		Reason:     extractCreditReason(e),
	}
	entry.GrantDate, entry.GrantDateTimestamp = e.stamp(creditGrantDate)
	if entry.TypeCode != nil {
		entry.Type = CreditTypeName(*entry.TypeCode)
	}
	return entry, true
}

// extractCreditReason reads the first reason present, in field order.
func extractCreditReason(e view) *CreditReason {
	if r := e.msg(creditReferrer); r.present() {
		return &CreditReason{
			Type:          ReasonReferrer,
			ReferrerEmail: r.str(referrerEmail),
			ReferredEmail: r.str(referredEmail),
		}
	}
	if r := e.msg(creditAvery); r.present() {
		return &CreditReason{
			Type:        ReasonAvery,
			UserEmail:   r.str(averyUserEmail),
			TargetEmail: r.str(averyTargetEmail),
		}
	}
	if r := e.msg(creditPurchase); r.present() {
		return &CreditReason{
			Type:         ReasonPurchase,
			PurchaseType: r.optNum(purchaseType),
		}
	}
	return nil
}
