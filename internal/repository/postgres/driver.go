package postgres

import (
	"context"
	"database/sql"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/logger"
	"moto-rental-backend/internal/repository"
)

type driverRepository struct {
	db *sql.DB
}

func NewDriverRepository(db *sql.DB) repository.DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, d *domain.DeliveryDriver) error {
	query := `INSERT INTO delivery_drivers (id, name, cnpj, birth_date, cnh, cnh_type, cnh_image)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	logger.DatabaseCall("INSERT", "delivery_drivers", "driverID", d.ID)
	_, err := r.db.ExecContext(ctx, query, d.ID, d.Name, d.CNPJ, d.BirthDate, d.CNH, d.CNHType, d.CNHImage)
	logger.DatabaseResult("INSERT", 1, err, "driverID", d.ID)
	return err
}

func (r *driverRepository) FindByIdentifier(ctx context.Context, id string) (*domain.DeliveryDriver, error) {
	return r.findOne(ctx, `SELECT id, name, cnpj, birth_date, cnh, cnh_type, cnh_image FROM delivery_drivers WHERE id = $1`, id)
}

func (r *driverRepository) FindByCNPJ(ctx context.Context, cnpj string) (*domain.DeliveryDriver, error) {
	return r.findOne(ctx, `SELECT id, name, cnpj, birth_date, cnh, cnh_type, cnh_image FROM delivery_drivers WHERE cnpj = $1`, cnpj)
}

func (r *driverRepository) FindByCNH(ctx context.Context, cnh string) (*domain.DeliveryDriver, error) {
	return r.findOne(ctx, `SELECT id, name, cnpj, birth_date, cnh, cnh_type, cnh_image FROM delivery_drivers WHERE cnh = $1`, cnh)
}

func (r *driverRepository) findOne(ctx context.Context, query, arg string) (*domain.DeliveryDriver, error) {
	d := &domain.DeliveryDriver{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&d.ID, &d.Name, &d.CNPJ, &d.BirthDate, &d.CNH, &d.CNHType, &d.CNHImage)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *driverRepository) UpdateCNHImage(ctx context.Context, id string, image string) error {
	query := `UPDATE delivery_drivers SET cnh_image = $1 WHERE id = $2`
	logger.DatabaseCall("UPDATE", "delivery_drivers", "driverID", id)
	_, err := r.db.ExecContext(ctx, query, image, id)
	logger.DatabaseResult("UPDATE", 1, err, "driverID", id)
	return err
}
