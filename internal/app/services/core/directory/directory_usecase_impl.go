package directory

import (
	"context"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/responses"
	"strings"
	"unicode/utf8"
)

type directoryUsecase struct {
	primary PrimarySearcher
	mirror  MirrorSearcher
}

func NewDirectoryUsecase(primary PrimarySearcher, mirror MirrorSearcher) DirectoryUsecase {
	return &directoryUsecase{
		primary: primary,
		mirror:  mirror,
	}
}

// Search answers fuzzy lookups against the merged view of both
// registries. Matching is case-insensitive substring containment on
// the name, digit substring containment on the phone. Results carry
// their source tag and are not de-duplicated across registries: the
// same person registered in both appears twice.
//
// Once the clerk has confirmed a pick and the input text equals the
// confirmed name exactly, the dropdown stays closed, so that search
// returns nothing.
func (uc *directoryUsecase) Search(ctx context.Context, fragment, field, confirmedName string) ([]responses.Suggestion, error) {
	fragment = strings.TrimSpace(fragment)
	confirmedName = strings.TrimSpace(confirmedName)
	// Names arrive in any script, so the floor counts runes, not bytes.
	if utf8.RuneCountInString(fragment) < constvars.SearchMinFragmentLength {
		return []responses.Suggestion{}, nil
	}
	if confirmedName != "" && fragment == confirmedName {
		return []responses.Suggestion{}, nil
	}

	var candidates []Candidate

	switch field {
	case constvars.SearchFieldPhone:
		primaryRecords, err := uc.primary.SearchByPhone(ctx, fragment, constvars.SearchResultLimit)
		if err != nil {
			return nil, err
		}
		mirrorRecords, err := uc.mirror.SearchByPhone(ctx, fragment, constvars.SearchResultLimit)
		if err != nil {
			return nil, err
		}
		for _, record := range primaryRecords {
			candidates = append(candidates, primaryCandidate(record))
		}
		for _, record := range mirrorRecords {
			candidates = append(candidates, mirrorCandidate(record))
		}
	default:
		primaryRecords, err := uc.primary.SearchByName(ctx, fragment, constvars.SearchResultLimit)
		if err != nil {
			return nil, err
		}
		mirrorRecords, err := uc.mirror.SearchByName(ctx, fragment, constvars.SearchResultLimit)
		if err != nil {
			return nil, err
		}
		for _, record := range primaryRecords {
			candidates = append(candidates, primaryCandidate(record))
		}
		for _, record := range mirrorRecords {
			candidates = append(candidates, mirrorCandidate(record))
		}
	}

	suggestions := make([]responses.Suggestion, 0, len(candidates))
	for _, candidate := range candidates {
		suggestions = append(suggestions, responses.Suggestion{
			Source: candidate.Kind,
			UHID:   candidate.UHID(),
			Name:   candidate.Name(),
			Phone:  candidate.Phone(),
		})
	}
	return suggestions, nil
}
