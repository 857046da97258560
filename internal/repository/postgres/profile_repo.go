package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seekerProfileRepo struct {
	db *pgxpool.Pool
}

func NewSeekerProfileRepository(db *pgxpool.Pool) domain.SeekerProfileRepository {
	return &seekerProfileRepo{db: db}
}

func (r *seekerProfileRepo) GetByID(ctx context.Context, id string) (*domain.SeekerProfile, error) {
	query := `
		SELECT id, full_name, skills, experience, education, resume_link
		FROM seeker_profiles
		WHERE id = $1`

	var profile domain.SeekerProfile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID, &profile.FullName, &profile.Skills,
		&profile.Experience, &profile.Education, &profile.ResumeLink,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *seekerProfileRepo) Upsert(ctx context.Context, profile *domain.SeekerProfile) error {
	query := `
		INSERT INTO seeker_profiles (id, full_name, skills, experience, education, resume_link)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			skills = EXCLUDED.skills,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			resume_link = EXCLUDED.resume_link`

	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.FullName, profile.Skills,
		profile.Experience, profile.Education, profile.ResumeLink,
	)
	return err
}

type employerProfileRepo struct {
	db *pgxpool.Pool
}

func NewEmployerProfileRepository(db *pgxpool.Pool) domain.EmployerProfileRepository {
	return &employerProfileRepo{db: db}
}

func (r *employerProfileRepo) GetByID(ctx context.Context, id string) (*domain.EmployerProfile, error) {
	query := `
		SELECT id, company_name, company_description, website, location
		FROM employer_profiles
		WHERE id = $1`

	var profile domain.EmployerProfile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID, &profile.CompanyName, &profile.CompanyDescription,
		&profile.Website, &profile.Location,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *employerProfileRepo) Upsert(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `
		INSERT INTO employer_profiles (id, company_name, company_description, website, location)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			company_description = EXCLUDED.company_description,
			website = EXCLUDED.website,
			location = EXCLUDED.location`

	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.CompanyName, profile.CompanyDescription,
		profile.Website, profile.Location,
	)
	return err
}
