package models

import "time"

// PrimaryPatientRecord is the full projection of a patient identity in
// the primary registry, keyed by UHID. The identifier is duplicated
// into a visible field so exports keep it even when _id is stripped.
type PrimaryPatientRecord struct {
	ID              string    `bson:"_id"`
	UHID            string    `bson:"uhid"`
	Name            string    `bson:"name"`
	Phone           string    `bson:"phone"`
	Age             int       `bson:"age,omitempty"`
	DOB             string    `bson:"dob,omitempty"`
	Gender          string    `bson:"gender"`
	Address         string    `bson:"address,omitempty"`
	PhotoObjectName string    `bson:"photoObjectName,omitempty"`
	CreatedAt       time.Time `bson:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt"`
}

// MirrorPatientRecord is the reduced projection written to the mirror
// registry under the same key. It exists only for identities created
// through the new-patient path; edits to an existing identity never
// touch it.
type MirrorPatientRecord struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	Contact      string `bson:"contact"`
	Gender       string `bson:"gender"`
	DOB          string `bson:"dob,omitempty"`
	PatientID    string `bson:"patientId"`
	HospitalName string `bson:"hospitalName"`
}

// PatientFields are the editable identity fields merged into the
// primary record on every visit. Last writer wins; there is no
// versioning.
type PatientFields struct {
	Name            string
	Phone           string
	Age             int
	DOB             string
	Gender          string
	Address         string
	PhotoObjectName string
}
