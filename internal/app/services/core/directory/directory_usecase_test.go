package directory

import (
	"context"
	"strings"
	"testing"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

// fakePrimarySearcher filters in memory with the same containment
// semantics the mongo regex search applies.
type fakePrimarySearcher struct {
	records []models.PrimaryPatientRecord
}

func (f *fakePrimarySearcher) SearchByName(ctx context.Context, fragment string, limit int64) ([]models.PrimaryPatientRecord, error) {
	var out []models.PrimaryPatientRecord
	for _, r := range f.records {
		if strings.Contains(strings.ToLower(r.Name), strings.ToLower(fragment)) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePrimarySearcher) SearchByPhone(ctx context.Context, fragment string, limit int64) ([]models.PrimaryPatientRecord, error) {
	var out []models.PrimaryPatientRecord
	for _, r := range f.records {
		if strings.Contains(r.Phone, fragment) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeMirrorSearcher struct {
	records []models.MirrorPatientRecord
}

func (f *fakeMirrorSearcher) SearchByName(ctx context.Context, fragment string, limit int64) ([]models.MirrorPatientRecord, error) {
	var out []models.MirrorPatientRecord
	for _, r := range f.records {
		if strings.Contains(strings.ToLower(r.Name), strings.ToLower(fragment)) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMirrorSearcher) SearchByPhone(ctx context.Context, fragment string, limit int64) ([]models.MirrorPatientRecord, error) {
	var out []models.MirrorPatientRecord
	for _, r := range f.records {
		if strings.Contains(r.Contact, fragment) {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestUsecase() DirectoryUsecase {
	primary := &fakePrimarySearcher{records: []models.PrimaryPatientRecord{
		{ID: "ASHA000001", UHID: "ASHA000001", Name: "Asha Rao", Phone: "9876543210"},
		{ID: "ASHOK00001", UHID: "ASHOK00001", Name: "Ashok Kumar", Phone: "9812345678"},
		{ID: "PRIYA00001", UHID: "PRIYA00001", Name: "Priya Singh", Phone: "9900112233"},
	}}
	mirror := &fakeMirrorSearcher{records: []models.MirrorPatientRecord{
		{ID: "ASHA000001", PatientID: "ASHA000001", Name: "Asha Rao", Contact: "9876543210"},
	}}
	return NewDirectoryUsecase(primary, mirror)
}

func TestDirectoryUsecase_Search(t *testing.T) {
	uc := newTestUsecase()

	t.Run("short fragment returns nothing", func(t *testing.T) {
		suggestions, err := uc.Search(context.Background(), "a", constvars.SearchFieldName, "")

		assert.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("fragment floor counts runes not bytes", func(t *testing.T) {
		// One Devanagari character is three bytes; still below the
		// two-character floor.
		suggestions, err := uc.Search(context.Background(), "अ", constvars.SearchFieldName, "")

		assert.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("name containment is case insensitive", func(t *testing.T) {
		suggestions, err := uc.Search(context.Background(), "as", constvars.SearchFieldName, "")

		assert.NoError(t, err)
		names := make([]string, 0, len(suggestions))
		for _, s := range suggestions {
			names = append(names, s.Name)
		}
		assert.Contains(t, names, "Asha Rao")
		assert.Contains(t, names, "Ashok Kumar")
		assert.NotContains(t, names, "Priya Singh")
	})

	t.Run("union keeps both registry copies with source tags", func(t *testing.T) {
		suggestions, err := uc.Search(context.Background(), "asha", constvars.SearchFieldName, "")

		assert.NoError(t, err)
		assert.Len(t, suggestions, 2)

		sources := []string{suggestions[0].Source, suggestions[1].Source}
		assert.Contains(t, sources, constvars.RegistrySourcePrimary)
		assert.Contains(t, sources, constvars.RegistrySourceMirror)
		assert.Equal(t, suggestions[0].UHID, suggestions[1].UHID)
	})

	t.Run("phone digit containment", func(t *testing.T) {
		suggestions, err := uc.Search(context.Background(), "98123", constvars.SearchFieldPhone, "")

		assert.NoError(t, err)
		assert.Len(t, suggestions, 1)
		assert.Equal(t, "Ashok Kumar", suggestions[0].Name)
	})

	t.Run("confirmed name suppresses the dropdown", func(t *testing.T) {
		suggestions, err := uc.Search(context.Background(), "Asha Rao", constvars.SearchFieldName, "Asha Rao")

		assert.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("trailing whitespace does not defeat the suppression", func(t *testing.T) {
		suggestions, err := uc.Search(context.Background(), "Asha Rao", constvars.SearchFieldName, "Asha Rao ")

		assert.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("editing past the confirmed name reopens the search", func(t *testing.T) {
		suggestions, err := uc.Search(context.Background(), "Asha Ra", constvars.SearchFieldName, "Asha Rao")

		assert.NoError(t, err)
		assert.NotEmpty(t, suggestions)
	})
}
