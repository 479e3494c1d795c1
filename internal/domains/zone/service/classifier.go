package service

import (
	"strings"

	"timevault/internal/domains/zone/model"
)

// Classify names the scheme of identifier. Schemes are tried in the order IANA, Windows, Rails,
// so an identifier valid in several schemes ("UTC") classifies as IANA. Matching ignores case.
// Never fails.
func (s *serviceImpl) Classify(identifier string) model.Scheme {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return model.SchemeUnknown
	}

	if _, ok := s.repo.IanaToWindows(identifier); ok {
		return model.SchemeIana
	}

	if _, ok := s.repo.WindowsToIana(identifier); ok {
		return model.SchemeWindows
	}

	if _, ok := s.repo.RailsToIana(identifier); ok {
		return model.SchemeRails
	}

	return model.SchemeUnknown
}

// Expand lists the names identifier goes by in every scheme, spelled as the tables spell them.
// IANA links expand to their canonical zone. Unknown identifiers expand to nothing.
func (s *serviceImpl) Expand(identifier string) model.Identifiers {
	identifier = strings.TrimSpace(identifier)

	switch s.Classify(identifier) {
	case model.SchemeIana:
		iana := s.repo.Canonical(identifier)
		windows, _ := s.repo.IanaToWindows(iana)

		return model.Identifiers{
			Iana:    &iana,
			Windows: &windows,
			Rails:   s.repo.IanaToRails(iana),
		}
	case model.SchemeWindows:
		windows, _ := s.repo.WindowsName(identifier)
		iana, _ := s.repo.WindowsToIana(windows)

		return model.Identifiers{
			Iana:    &iana,
			Windows: &windows,
			Rails:   s.repo.IanaToRails(iana),
		}
	case model.SchemeRails:
		rails, _ := s.repo.RailsName(identifier)
		res := model.Identifiers{Rails: []string{rails}}

		iana, _ := s.repo.RailsToIana(rails)
		res.Iana = &iana

		if windows, ok := s.repo.IanaToWindows(iana); ok {
			res.Windows = &windows
		}

		return res
	default:
		return model.Identifiers{}
	}
}

// Canonical returns the canonical IANA id for an identifier in any scheme.
func (s *serviceImpl) Canonical(identifier string) (string, bool) {
	identifier = strings.TrimSpace(identifier)

	switch s.Classify(identifier) {
	case model.SchemeIana:
		return s.repo.Canonical(identifier), true
	case model.SchemeWindows:
		return s.repo.WindowsToIana(identifier)
	case model.SchemeRails:
		return s.repo.RailsToIana(identifier)
	default:
		return "", false
	}
}
