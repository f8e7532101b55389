package extract

import "fmt"

// Shape names a response layout understood by Parse.
type Shape string

// Supported shapes.
const (
	ShapeUser          Shape = "user"
	ShapePlanStatus    Shape = "plan-status"
	ShapeUpdateSeats   Shape = "update-seats"
	ShapeUpdatePlan    Shape = "update-plan"
	ShapeTeamBilling   Shape = "team-billing"
	ShapeCreditEntries Shape = "credit-entries"
	ShapeUsers         Shape = "users"
	ShapeAnalytics     Shape = "analytics"
)

// Shapes lists every supported shape.
func Shapes() []Shape {
	return []Shape{
		ShapeUser, ShapePlanStatus, ShapeUpdateSeats, ShapeUpdatePlan,
		ShapeTeamBilling, ShapeCreditEntries, ShapeUsers, ShapeAnalytics,
	}
}

// Parse dispatches body to the Parse function of shape. The response is
// returned even when the error is non-nil.
func Parse(shape Shape, body []byte) (any, error) {
	switch shape {
	case ShapeUser:
		return ParseCurrentUser(body)
	case ShapePlanStatus:
		return ParsePlanStatus(body)
	case ShapeUpdateSeats:
		return ParseUpdateSeats(body)
	case ShapeUpdatePlan:
		return ParseUpdatePlan(body)
	case ShapeTeamBilling:
		return ParseTeamBilling(body)
	case ShapeCreditEntries:
		return ParseTeamCreditEntries(body)
	case ShapeUsers:
		return ParseUsers(body)
	case ShapeAnalytics:
		return ParseAnalytics(body)
	}
	return nil, fmt.Errorf("extract: unknown shape %q", shape)
}
