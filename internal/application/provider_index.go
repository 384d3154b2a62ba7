package application

import (
	"context"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/pkg/helpers"
)

const defaultSearchSize = 10

// ProviderIndex mirrors provider profiles into Elasticsearch for admin search.
// A nil *ProviderIndex or one without a client is a no-op.
type ProviderIndex struct {
	ES     *elasticsearch.Client
	Index  string
	Logger *logrus.Logger
}

func NewProviderIndex(es *elasticsearch.Client, index string, logger *logrus.Logger) *ProviderIndex {
	return &ProviderIndex{ES: es, Index: index, Logger: logger}
}

func (x *ProviderIndex) Enabled() bool {
	return x != nil && x.ES != nil && x.Index != ""
}

// Put indexes the profile. Failures are logged, not returned.
func (x *ProviderIndex) Put(ctx context.Context, u *entity.User, p *entity.ProviderProfile) {
	if !x.Enabled() || u == nil || p == nil {
		return
	}
	doc := providerDocument(u, p)
	if err := helpers.ESIndexDocument(ctx, x.ES, x.Index, strconv.FormatInt(p.ID, 10), doc); err != nil && x.Logger != nil {
		x.Logger.WithError(err).WithField("provider_id", p.ID).Warn("es index failed")
	}
}

// Search runs a multi_match over name, email, locality and skills.
func (x *ProviderIndex) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if !x.Enabled() {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = defaultSearchSize
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "email", "locality", "services_offered", "languages_spoken"},
			},
		},
		"size": size,
	}
	return helpers.ESSearch(ctx, x.ES, x.Index, query)
}

func providerDocument(u *entity.User, p *entity.ProviderProfile) map[string]any {
	return map[string]any{
		"id":                  p.ID,
		"user_id":             u.ID,
		"name":                u.FirstName + " " + u.LastName,
		"email":               u.Email,
		"phone":               u.Phone,
		"city":                u.City,
		"locality":            p.Locality,
		"services_offered":    p.ServicesOffered,
		"languages_spoken":    p.LanguagesSpoken,
		"experience_years":    p.ExperienceYears,
		"verification_status": p.VerificationStatus,
	}
}
