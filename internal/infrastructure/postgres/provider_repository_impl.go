package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/repository"
)

type ProviderRepository struct {
	pool *pgxpool.Pool
}

func NewProviderRepository(pool *pgxpool.Pool) *ProviderRepository {
	return &ProviderRepository{pool: pool}
}

const providerColumns = `id, user_id, dob, experience_years, services_offered, expected_salary::float8,
	id_proof_type, id_proof_number, id_proof_image, languages_spoken, bio, reference_contact,
	verification_status, locality`

func scanProvider(row pgx.Row) (*entity.ProviderProfile, error) {
	p := &entity.ProviderProfile{}
	if err := row.Scan(&p.ID, &p.UserID, &p.DOB, &p.ExperienceYears, &p.ServicesOffered, &p.ExpectedSalary,
		&p.IDProofType, &p.IDProofNumber, &p.IDProofImage, &p.LanguagesSpoken, &p.Bio, &p.ReferenceContact,
		&p.VerificationStatus, &p.Locality); err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func insertProviderProfile(ctx context.Context, tx pgx.Tx, p *entity.ProviderProfile) error {
	if p.VerificationStatus == "" {
		p.VerificationStatus = entity.VerificationPending
	}
	row := tx.QueryRow(ctx, `
		INSERT INTO provider_profiles (user_id, dob, experience_years, services_offered, expected_salary,
			id_proof_type, id_proof_number, id_proof_image, languages_spoken, bio, reference_contact,
			verification_status, locality)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`, p.UserID, p.DOB, p.ExperienceYears, p.ServicesOffered, p.ExpectedSalary,
		p.IDProofType, p.IDProofNumber, p.IDProofImage, p.LanguagesSpoken, p.Bio, p.ReferenceContact,
		p.VerificationStatus, p.Locality)
	return translate(row.Scan(&p.ID))
}

func (r *ProviderRepository) GetByID(ctx context.Context, id int64) (*entity.ProviderProfile, error) {
	return scanProvider(r.pool.QueryRow(ctx, `SELECT `+providerColumns+` FROM provider_profiles WHERE id = $1`, id))
}

func (r *ProviderRepository) GetByUserID(ctx context.Context, userID string) (*entity.ProviderProfile, error) {
	return scanProvider(r.pool.QueryRow(ctx, `SELECT `+providerColumns+` FROM provider_profiles WHERE user_id = $1`, userID))
}

func (r *ProviderRepository) List(ctx context.Context, status entity.VerificationStatus) ([]entity.ProviderProfile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+providerColumns+` FROM provider_profiles
		WHERE $1::text = '' OR verification_status = $1::text
		ORDER BY id
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.ProviderProfile{}
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProviderRepository) SetVerificationStatus(ctx context.Context, id int64, status entity.VerificationStatus) error {
	return expectOne(r.pool.Exec(ctx, `UPDATE provider_profiles SET verification_status = $1 WHERE id = $2`, status, id))
}

func (r *ProviderRepository) CountByStatus(ctx context.Context, status entity.VerificationStatus) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM provider_profiles WHERE verification_status = $1`, status).Scan(&n)
	return n, err
}

var _ repository.ProviderRepository = (*ProviderRepository)(nil)
