package extract

import (
	"strings"

	"github.com/synadia-labs/protoprobe/wire"
)

// BillingUpdate is the BillingUpdate message shared by the seat and plan
// update responses. Timestamps appear rendered and as epoch seconds.
type BillingUpdate struct {
	AmountDueImmediately  *float64 `json:"amount_due_immediately,omitempty"`
	PricePerSeat          *float64 `json:"price_per_seat,omitempty"`
	NumSeats              *int64   `json:"num_seats,omitempty"`
	SubInterval           *int64   `json:"sub_interval,omitempty"`
	SubIntervalName       string   `json:"sub_interval_name,omitempty"`
	AmountPerInterval     *float64 `json:"amount_per_interval,omitempty"`
	BillingStart          string   `json:"billing_start,omitempty"`
	BillingStartTimestamp *int64   `json:"billing_start_timestamp,omitempty"`
	BillingEnd            string   `json:"billing_end,omitempty"`
	BillingEndTimestamp   *int64   `json:"billing_end_timestamp,omitempty"`
	UnusedPlanRefunded    *bool    `json:"unused_plan_refunded,omitempty"`
	HasSSOAddOn           *bool    `json:"has_sso_add_on,omitempty"`
}

func extractBillingUpdate(b view) *BillingUpdate {
	if !b.present() {
		return nil
	}
	u := &BillingUpdate{
		AmountDueImmediately: b.optFloat(billingAmountDueImmediately),
		PricePerSeat:         b.optFloat(billingPricePerSeat),
		NumSeats:             b.optNum(billingNumSeats),
		SubInterval:          b.optNum(billingSubInterval),
		AmountPerInterval:    b.optFloat(billingAmountPerInterval),
		UnusedPlanRefunded:   b.optFlag(billingUnusedPlanRefunded),
		HasSSOAddOn:          b.optFlag(billingHasSSOAddOn),
	}
	if u.SubInterval != nil {
		u.SubIntervalName = BillingIntervalName(*u.SubInterval)
	}
	u.BillingStart, u.BillingStartTimestamp = b.stamp(billingStart)
	u.BillingEnd, u.BillingEndTimestamp = b.stamp(billingEnd)
	return u
}

// UpdateSeatsResponse is the result of ParseUpdateSeats. The billing update
// is flattened into the response under seat-change names.
type UpdateSeatsResponse struct {
	Status
	AmountDueImmediately  *float64     `json:"amount_due_immediately,omitempty"`
	PricePerSeat          *float64     `json:"price_per_seat,omitempty"`
	TotalSeats            *int64       `json:"total_seats,omitempty"`
	BillingInterval       string       `json:"billing_interval,omitempty"`
	TotalMonthlyPrice     *float64     `json:"total_monthly_price,omitempty"`
	BillingStartTime      string       `json:"billing_start_time,omitempty"`
	BillingStartTimestamp *int64       `json:"billing_start_timestamp,omitempty"`
	NextBillingTime       string       `json:"next_billing_time,omitempty"`
	NextBillingTimestamp  *int64       `json:"next_billing_timestamp,omitempty"`
	UnusedPlanRefunded    *bool        `json:"unused_plan_refunded,omitempty"`
	HasSSOAddOn           *bool        `json:"has_sso_add_on,omitempty"`
	RawData               *wire.Object `json:"raw_data,omitempty"`
}

// ParseUpdateSeats extracts an UpdateSeats response body. The error is
// always nil; failures are reported through Status.
func ParseUpdateSeats(body []byte) (*UpdateSeatsResponse, error) {
	tree, st := decodeBody(body)
	resp := &UpdateSeatsResponse{Status: st, RawData: tree}
	u := extractBillingUpdate(view{o: tree}.msg(billingUpdateRoot))
	if u == nil {
		return resp, nil
	}
	resp.AmountDueImmediately = u.AmountDueImmediately
	resp.PricePerSeat = u.PricePerSeat
	resp.TotalSeats = u.NumSeats
	resp.BillingInterval = u.SubIntervalName
	resp.TotalMonthlyPrice = u.AmountPerInterval
	resp.BillingStartTime = u.BillingStart
	resp.BillingStartTimestamp = u.BillingStartTimestamp
	resp.NextBillingTime = u.BillingEnd
	resp.NextBillingTimestamp = u.BillingEndTimestamp
	resp.UnusedPlanRefunded = u.UnusedPlanRefunded
	resp.HasSSOAddOn = u.HasSSOAddOn
	return resp, nil
}

// UpdatePlanResponse is the result of ParseUpdatePlan.
type UpdatePlanResponse struct {
	Status
	BillingUpdate          *BillingUpdate `json:"billing_update,omitempty"`
	AppliedChanges         *bool          `json:"applied_changes,omitempty"`
	NextActionClientSecret *string        `json:"next_action_client_secret,omitempty"`
	PaymentFailureReason   *string        `json:"payment_failure_reason,omitempty"`
	RequiresPasswordReset  *bool          `json:"requires_password_reset,omitempty"`
	RawData                *wire.Object   `json:"raw_data,omitempty"`
}

// ParseUpdatePlan extracts an UpdatePlan response body. A payment failure
// reason marks the response unsuccessful. The error is always nil.
func ParseUpdatePlan(body []byte) (*UpdatePlanResponse, error) {
	tree, st := decodeBody(body)
	resp := &UpdatePlanResponse{Status: st, RawData: tree}
	if tree == nil {
		return resp, nil
	}
	root := view{o: tree}
	resp.BillingUpdate = extractBillingUpdate(root.msg(billingUpdateRoot))
	resp.AppliedChanges = root.optFlag(updatePlanAppliedChanges)
	resp.NextActionClientSecret = root.optStr(updatePlanNextActionClientSecret)
	resp.PaymentFailureReason = root.optStr(updatePlanPaymentFailureReason)
	resp.RequiresPasswordReset = root.optFlag(updatePlanRequiresPasswordReset)
	if resp.PaymentFailureReason != nil {
		resp.Success = false
	}
	return resp, nil
}

// PaymentMethod is the card on file of a team billing response.
type PaymentMethod struct {
	Type     string `json:"type"`
	Last4    string `json:"last4"`
	ExpMonth int64  `json:"exp_month"`
	ExpYear  int64  `json:"exp_year"`
}

// TeamBillingResponse is the result of ParseTeamBilling.
type TeamBillingResponse struct {
	Status
	SubscriptionActive           *bool          `json:"subscription_active,omitempty"`
	OnTrial                      *bool          `json:"on_trial,omitempty"`
	SubscriptionRenewalTime      string         `json:"subscription_renewal_time,omitempty"`
	NextBillingDate              string         `json:"next_billing_date,omitempty"`
	NumSeats                     *int64         `json:"num_seats,omitempty"`
	PlanUnitAmount               *float64       `json:"plan_unit_amount,omitempty"`
	MonthlyPrice                 *float64       `json:"monthly_price,omitempty"`
	SubInterval                  string         `json:"sub_interval,omitempty"`
	CancelAtPeriodEnd            *bool          `json:"cancel_at_period_end,omitempty"`
	NumUsers                     *int64         `json:"num_users,omitempty"`
	NumSeatsCurrentBillingPeriod *int64         `json:"num_seats_current_billing_period,omitempty"`
	NumCascadeUsers              *int64         `json:"num_cascade_users,omitempty"`
	NumCascadeSeats              *int64         `json:"num_cascade_seats,omitempty"`
	NumCoreUsers                 *int64         `json:"num_core_users,omitempty"`
	NumCoreSeats                 *int64         `json:"num_core_seats,omitempty"`
	InvoiceURL                   string         `json:"invoice_url,omitempty"`
	FailedPaymentMessage         string         `json:"failed_payment_message,omitempty"`
	TopUpError                   string         `json:"top_up_error,omitempty"`
	PlanName                     string         `json:"plan_name,omitempty"`
	BaseQuota                    *int64         `json:"base_quota,omitempty"`
	ExtraCredits                 *int64         `json:"extra_credits,omitempty"`
	TotalQuota                   *int64         `json:"total_quota,omitempty"`
	UsedQuota                    *int64         `json:"used_quota,omitempty"`
	CacheLimit                   *int64         `json:"cache_limit,omitempty"`
	PaymentMethod                *PaymentMethod `json:"payment_method,omitempty"`
	RawData                      *wire.Object   `json:"raw_data,omitempty"`
}

// ParseTeamBilling extracts a GetTeamBilling response body. The error is
// always nil.
func ParseTeamBilling(body []byte) (*TeamBillingResponse, error) {
	tree, st := decodeBody(body)
	resp := &TeamBillingResponse{Status: st, RawData: tree}
	if tree == nil {
		return resp, nil
	}
	root := view{o: tree}

	resp.SubscriptionActive = root.optFlag(teamBillingSubscriptionActive)
	resp.OnTrial = root.optFlag(teamBillingOnTrial)
	if sec := root.seconds(teamBillingRenewalTime); sec != nil {
		resp.SubscriptionRenewalTime = FormatTime(*sec)
		resp.NextBillingDate = formatDate(*sec)
	}
	resp.NumSeats = root.optNum(teamBillingNumSeats)
	resp.PlanUnitAmount = root.optFloat(teamBillingPlanUnitAmount)
	resp.MonthlyPrice = resp.PlanUnitAmount
	if iv := root.optNum(teamBillingSubInterval); iv != nil {
		resp.SubInterval = BillingIntervalName(*iv)
	}
	resp.CancelAtPeriodEnd = root.optFlag(teamBillingCancelAtPeriodEnd)

	resp.NumUsers = root.optNum(teamBillingNumUsers)
	resp.NumSeatsCurrentBillingPeriod = root.optNum(teamBillingNumSeatsCurrent)
	resp.NumCascadeUsers = root.optNum(teamBillingNumCascadeUsers)
	resp.NumCascadeSeats = root.optNum(teamBillingNumCascadeSeats)
	resp.NumCoreUsers = root.optNum(teamBillingNumCoreUsers)
	resp.NumCoreSeats = root.optNum(teamBillingNumCoreSeats)

	// Field 20 holds either an invoice link or a failure message.
	if text, ok := root.msg(teamBillingFailedPayment).o.String(strKey(failedPaymentText)); ok {
		if strings.HasPrefix(text, "http") {
			resp.InvoiceURL = text
		} else {
			resp.FailedPaymentMessage = text
		}
	}
	resp.TopUpError = root.str(teamBillingTopUpError)

	if sub := root.msg(teamBillingSubscription); sub.present() {
		resp.PlanName = sub.msg(billingSubPlan).str(planName)
		base := sub.num(billingSubBaseQuota)
		extra := sub.num(billingSubExtraCredits)
		total := base + extra
		used := sub.num(billingSubUsedQuota)
		limit := total
		if l := sub.optNum(billingSubCacheLimit); l != nil {
			limit = *l
		}
		resp.BaseQuota = &base
		if extra > 0 {
			resp.ExtraCredits = &extra
		}
		resp.TotalQuota = &total
		resp.UsedQuota = &used
		resp.CacheLimit = &limit
	}

	if card := root.msg(teamBillingPaymentMethod).msg(paymentMethodCard); card.present() {
		typ := "unknown"
		if s := card.optStr(cardType); s != nil {
			typ = *s
		}
		resp.PaymentMethod = &PaymentMethod{
			Type:     typ,
			Last4:    card.str(cardLast4),
			ExpMonth: card.num(cardExpMonth),
			ExpYear:  card.num(cardExpYear),
		}
	}

	// The first invoice wins; invoices may repeat.
	if n, ok := tree.Get(msgKey(teamBillingInvoices)); ok {
		for _, inv := range n.Objects() {
			if url, ok := inv.String(strKey(invoiceURL)); ok {
				resp.InvoiceURL = url
				break
			}
		}
	}
	return resp, nil
}
