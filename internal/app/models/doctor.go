package models

// Doctor is read-only from the intake core's perspective.
type Doctor struct {
	ID               string   `bson:"_id" json:"id"`
	Name             string   `bson:"name" json:"name"`
	Specialist       []string `bson:"specialist,omitempty" json:"specialist,omitempty"`
	FirstVisitCharge float64  `bson:"firstVisitCharge" json:"firstVisitCharge"`
	FollowUpCharge   float64  `bson:"followUpCharge" json:"followUpCharge"`
}
