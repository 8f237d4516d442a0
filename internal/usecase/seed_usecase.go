package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/tuitiontrust/treasury/internal/domain"
)

// seedWallets are the funded testnet accounts fake schools are attached to.
var seedWallets = []string{
	"rweachc46DLM9S5avhfubKT2p9Xt3S6cEd",
	"rLbmFWAe6JDCaZ2Zffe1Wjn9weSwhJiXsb",
	"rwQBkAke9HScNzAe1qoe6cY3nETZCkCEP5",
}

var (
	schoolPrefixes  = []string{"Global", "International", "United", "Academic", "Community", "Riverdale", "Lakeside", "Sunrise"}
	schoolMains     = []string{"Tech", "Arts", "Science", "Business", "Engineering", "Music"}
	schoolSuffixes  = []string{"Academy", "Institute", "School", "College", "University"}
	schoolDomains   = []string{"edu", "org", "school", "ac.uk", "edu.au"}
	schoolCountries = []string{"USA", "Canada", "UK", "Australia", "Germany", "Japan", "Singapore"}
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)

// SeedUseCase creates fake registry rows for development environments.
type SeedUseCase struct {
	schools SchoolRepository
	idGen   IDGenerator
	rng     *rand.Rand
}

// NewSeedUseCase creates a new seeding use case.
func NewSeedUseCase(schools SchoolRepository, idGen IDGenerator) *SeedUseCase {
	return &SeedUseCase{
		schools: schools,
		idGen:   idGen,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SeedResult summarizes a seeding run.
type SeedResult struct {
	Created int      `json:"numCreated"`
	Skipped int      `json:"numSkipped"`
	Schools []string `json:"schoolsCreated"`
}

// SeedSchools inserts one fake school per seed wallet, skipping wallets that
// already have a registry row.
func (uc *SeedUseCase) SeedSchools(ctx context.Context) (*SeedResult, error) {
	existing, err := uc.schools.ExistingWallets(ctx, seedWallets)
	if err != nil {
		return nil, fmt.Errorf("check existing schools: %w", err)
	}

	result := &SeedResult{Schools: make([]string, 0, len(seedWallets))}
	usedNames := make(map[string]bool)

	for _, wallet := range seedWallets {
		if existing[wallet] {
			result.Skipped++
			continue
		}

		name := uc.randomSchoolName()
		for usedNames[name] {
			name = uc.randomSchoolName()
		}
		usedNames[name] = true

		domainName := slugify(name) + "." + pick(uc.rng, schoolDomains)
		country := pick(uc.rng, schoolCountries)

		school := &domain.School{
			ID:            uc.idGen.Generate(),
			Name:          name,
			WalletAddress: wallet,
			ContactEmail:  "info@" + domainName,
			WebsiteURL:    "https://" + domainName,
			Country:       country,
			DID:           "did:web:" + domainName,
			Description:   fmt.Sprintf("Welcome to %s, a %s institution accepting donations at %s.", name, country, wallet),
			IsVerified:    uc.rng.Float64() < 0.6,
		}

		if err := uc.schools.Insert(ctx, school); err != nil {
			return nil, fmt.Errorf("insert school %s: %w", name, err)
		}

		result.Created++
		result.Schools = append(result.Schools, name)
	}

	return result, nil
}

func (uc *SeedUseCase) randomSchoolName() string {
	parts := []string{pick(uc.rng, schoolPrefixes)}
	if uc.rng.Float64() > 0.3 {
		parts = append(parts, pick(uc.rng, schoolMains))
	}
	parts = append(parts, pick(uc.rng, schoolSuffixes))

	return fmt.Sprintf("%s #%d", strings.Join(parts, " "), uc.rng.Intn(1000))
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "")

	return s
}
