package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"socialcopilot/internal/common"
	"socialcopilot/internal/dbmysql"
)

type ProfileService interface {
	SaveProfile(ctx context.Context, accountID uint64, p common.CreatorProfile) (*common.CreatorProfile, error)
	GetProfile(ctx context.Context, accountID uint64) (*common.CreatorProfile, error)
}

type profileService struct {
	profiles ProfileRepository
}

func NewProfileService(profiles ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) SaveProfile(ctx context.Context, accountID uint64, p common.CreatorProfile) (*common.CreatorProfile, error) {
	if err := validateProfile(&p); err != nil {
		return nil, err
	}

	p.CompletedAt = time.Now()
	row := toRow(accountID, &p)
	if err := s.profiles.ReplaceProfile(ctx, row); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return &p, nil
}

func (s *profileService) GetProfile(ctx context.Context, accountID uint64) (*common.CreatorProfile, error) {
	row, err := s.profiles.GetProfileByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no profile yet", common.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return fromRow(row), nil
}

func validateProfile(p *common.CreatorProfile) error {
	if !common.IsValidPositioning(p.Positioning) {
		return fmt.Errorf("%w: unknown positioning %q", common.ErrInvalidRequest, p.Positioning)
	}
	if !common.IsValidAudienceLevel(p.Audience.Level) {
		return fmt.Errorf("%w: unknown audience level %q", common.ErrInvalidRequest, p.Audience.Level)
	}
	if !common.IsValidOfferType(p.Offer.Type) {
		return fmt.Errorf("%w: unknown offer type %q", common.ErrInvalidRequest, p.Offer.Type)
	}
	if p.Offer.ContentFocus != "" && !common.IsValidContentFocus(p.Offer.ContentFocus) {
		return fmt.Errorf("%w: unknown content focus %q", common.ErrInvalidRequest, p.Offer.ContentFocus)
	}
	if !common.IsValidTone(p.ToneOfVoice) {
		return fmt.Errorf("%w: unknown tone of voice %q", common.ErrInvalidRequest, p.ToneOfVoice)
	}
	if !common.IsValidContentLength(p.ContentLength) {
		return fmt.Errorf("%w: unknown content length %q", common.ErrInvalidRequest, p.ContentLength)
	}
	if !common.IsValidPrimaryGoal(p.PrimaryGoal) {
		return fmt.Errorf("%w: unknown primary goal %q", common.ErrInvalidRequest, p.PrimaryGoal)
	}
	if !common.IsValidPostFrequency(p.PostFrequency) {
		return fmt.Errorf("%w: unknown post frequency %q", common.ErrInvalidRequest, p.PostFrequency)
	}
	if len(p.MainChannels) == 0 {
		return fmt.Errorf("%w: at least one main channel required", common.ErrInvalidRequest)
	}
	seen := map[common.Platform]bool{}
	for _, ch := range p.MainChannels {
		if !ch.IsValid() {
			return fmt.Errorf("%w: unknown channel %q", common.ErrInvalidRequest, ch)
		}
		if seen[ch] {
			return fmt.Errorf("%w: duplicate channel %q", common.ErrInvalidRequest, ch)
		}
		seen[ch] = true
	}
	return nil
}

func toRow(accountID uint64, p *common.CreatorProfile) *dbmysql.CreatorProfile {
	channels := make([]string, 0, len(p.MainChannels))
	for _, ch := range p.MainChannels {
		channels = append(channels, ch.String())
	}
	return &dbmysql.CreatorProfile{
		AccountID:       accountID,
		Role:            p.Role,
		ExperienceYears: p.ExperienceYears,
		Positioning:     p.Positioning,
		AudienceProfile: p.Audience.Profile,
		AudienceLevel:   p.Audience.Level,
		MainPain:        p.Audience.MainPain,
		MainDesire:      p.Audience.MainDesire,
		OfferType:       p.Offer.Type,
		MainBenefit:     p.Offer.MainBenefit,
		ContentFocus:    p.Offer.ContentFocus,
		ToneOfVoice:     p.ToneOfVoice,
		ContentLength:   p.ContentLength,
		StyleReference:  p.StyleReference,
		PrimaryGoal:     p.PrimaryGoal,
		MainChannels:    channels,
		PostFrequency:   p.PostFrequency,
		CompletedAt:     p.CompletedAt,
	}
}

func fromRow(row *dbmysql.CreatorProfile) *common.CreatorProfile {
	channels := make([]common.Platform, 0, len(row.MainChannels))
	for _, ch := range row.MainChannels {
		channels = append(channels, common.Platform(ch))
	}
	return &common.CreatorProfile{
		Role:            row.Role,
		ExperienceYears: row.ExperienceYears,
		Positioning:     row.Positioning,
		Audience: common.AudienceInfo{
			Profile:    row.AudienceProfile,
			Level:      row.AudienceLevel,
			MainPain:   row.MainPain,
			MainDesire: row.MainDesire,
		},
		Offer: common.OfferInfo{
			Type:         row.OfferType,
			MainBenefit:  row.MainBenefit,
			ContentFocus: row.ContentFocus,
		},
		ToneOfVoice:    row.ToneOfVoice,
		ContentLength:  row.ContentLength,
		StyleReference: row.StyleReference,
		PrimaryGoal:    row.PrimaryGoal,
		MainChannels:   channels,
		PostFrequency:  row.PostFrequency,
		CompletedAt:    row.CompletedAt,
	}
}
