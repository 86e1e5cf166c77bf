package directory

import (
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
)

// Candidate is the tagged union of the two registry record shapes.
// Search and selection only ever need the identifier, display name and
// phone, so those are exposed as thin accessors over whichever variant
// is set.
type Candidate struct {
	Kind    string
	Primary *models.PrimaryPatientRecord
	Mirror  *models.MirrorPatientRecord
}

func primaryCandidate(record models.PrimaryPatientRecord) Candidate {
	return Candidate{Kind: constvars.RegistrySourcePrimary, Primary: &record}
}

func mirrorCandidate(record models.MirrorPatientRecord) Candidate {
	return Candidate{Kind: constvars.RegistrySourceMirror, Mirror: &record}
}

func (c Candidate) UHID() string {
	if c.Primary != nil {
		return c.Primary.ID
	}
	if c.Mirror != nil {
		return c.Mirror.PatientID
	}
	return ""
}

func (c Candidate) Name() string {
	if c.Primary != nil {
		return c.Primary.Name
	}
	if c.Mirror != nil {
		return c.Mirror.Name
	}
	return ""
}

func (c Candidate) Phone() string {
	if c.Primary != nil {
		return c.Primary.Phone
	}
	if c.Mirror != nil {
		return c.Mirror.Contact
	}
	return ""
}
