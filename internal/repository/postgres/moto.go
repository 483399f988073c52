package postgres

import (
	"context"
	"database/sql"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/logger"
	"moto-rental-backend/internal/repository"
)

type motoRepository struct {
	db *sql.DB
}

func NewMotoRepository(db *sql.DB) repository.MotoRepository {
	return &motoRepository{db: db}
}

func (r *motoRepository) Create(ctx context.Context, m *domain.Moto) error {
	query := `INSERT INTO motos (identifier, year, model, license_plate) VALUES ($1, $2, $3, $4) RETURNING id`
	logger.DatabaseCall("INSERT", "motos", "identifier", m.Identifier)
	err := r.db.QueryRowContext(ctx, query, m.Identifier, m.Year, m.Model, m.LicensePlate).Scan(&m.ID)
	logger.DatabaseResult("INSERT", 1, err, "motoID", m.ID)
	return err
}

func (r *motoRepository) FindAll(ctx context.Context) ([]domain.Moto, error) {
	query := `SELECT id, identifier, year, model, license_plate FROM motos ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var motos []domain.Moto
	for rows.Next() {
		var m domain.Moto
		if err := rows.Scan(&m.ID, &m.Identifier, &m.Year, &m.Model, &m.LicensePlate); err != nil {
			return nil, err
		}
		motos = append(motos, m)
	}
	return motos, rows.Err()
}

func (r *motoRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.Moto, error) {
	return r.findOne(ctx, `SELECT id, identifier, year, model, license_plate FROM motos WHERE identifier = $1`, identifier)
}

func (r *motoRepository) FindByLicensePlate(ctx context.Context, plate string) (*domain.Moto, error) {
	return r.findOne(ctx, `SELECT id, identifier, year, model, license_plate FROM motos WHERE license_plate = $1`, plate)
}

func (r *motoRepository) findOne(ctx context.Context, query, arg string) (*domain.Moto, error) {
	m := &domain.Moto{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&m.ID, &m.Identifier, &m.Year, &m.Model, &m.LicensePlate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *motoRepository) UpdateLicensePlate(ctx context.Context, identifier, plate string) error {
	query := `UPDATE motos SET license_plate = $1 WHERE identifier = $2`
	logger.DatabaseCall("UPDATE", "motos", "identifier", identifier)
	res, err := r.db.ExecContext(ctx, query, plate, identifier)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "identifier", identifier)
		return err
	}
	affected, _ := res.RowsAffected()
	logger.DatabaseResult("UPDATE", affected, nil, "identifier", identifier)
	return nil
}

func (r *motoRepository) Remove(ctx context.Context, identifier string) error {
	query := `DELETE FROM motos WHERE identifier = $1`
	logger.DatabaseCall("DELETE", "motos", "identifier", identifier)
	_, err := r.db.ExecContext(ctx, query, identifier)
	logger.DatabaseResult("DELETE", 1, err, "identifier", identifier)
	return err
}
