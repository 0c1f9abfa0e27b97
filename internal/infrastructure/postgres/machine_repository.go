package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/plastigest/planta-api/internal/domain/entity"
	"github.com/plastigest/planta-api/internal/domain/repository"
)

var _ repository.MachineTypeRepository = (*MachineTypeRepo)(nil)
var _ repository.MachineRepository = (*MachineRepo)(nil)

// MachineTypeRepo implementación del puerto MachineTypeRepository sobre PostgreSQL.
type MachineTypeRepo struct {
	q Querier
}

// NewMachineTypeRepository construye el adaptador de persistencia para tipos de máquina.
func NewMachineTypeRepository(q Querier) *MachineTypeRepo {
	return &MachineTypeRepo{q: q}
}

// Create persiste un nuevo tipo de máquina y asigna el ID generado.
func (r *MachineTypeRepo) Create(mt *entity.MachineType) error {
	query := `
		INSERT INTO machine_types (name, created_at, updated_at)
		VALUES ($1, $2, $3) RETURNING id`
	err := r.q.QueryRow(context.Background(), query, mt.Name, mt.CreatedAt, mt.UpdatedAt).Scan(&mt.ID)
	if err != nil {
		return fmt.Errorf("insert machine type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de máquina por ID.
func (r *MachineTypeRepo) GetByID(id int64) (*entity.MachineType, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM machine_types WHERE id = $1`
	var mt entity.MachineType
	err := r.q.QueryRow(context.Background(), query, id).Scan(&mt.ID, &mt.Name, &mt.CreatedAt, &mt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine type: %w", err)
	}
	return &mt, nil
}

// Update actualiza un tipo de máquina existente.
func (r *MachineTypeRepo) Update(mt *entity.MachineType) error {
	query := `UPDATE machine_types SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, mt.ID, mt.Name, mt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update machine type: %w", err)
	}
	return nil
}

// List lista todos los tipos de máquina.
func (r *MachineTypeRepo) List() ([]*entity.MachineType, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM machine_types ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list machine types: %w", err)
	}
	defer rows.Close()
	var list []*entity.MachineType
	for rows.Next() {
		var mt entity.MachineType
		if err := rows.Scan(&mt.ID, &mt.Name, &mt.CreatedAt, &mt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan machine type: %w", err)
		}
		list = append(list, &mt)
	}
	return list, rows.Err()
}

// Delete elimina un tipo de máquina por ID.
func (r *MachineTypeRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM machine_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete machine type: %w", err)
	}
	return nil
}

// MachineRepo implementación del puerto MachineRepository sobre PostgreSQL.
type MachineRepo struct {
	q Querier
}

// NewMachineRepository construye el adaptador de persistencia para máquinas.
func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

// Create persiste una nueva máquina y asigna el ID generado.
func (r *MachineRepo) Create(machine *entity.Machine) error {
	query := `
		INSERT INTO machines (machine_type_id, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		machine.MachineTypeID, machine.Name, machine.Status, machine.CreatedAt, machine.UpdatedAt,
	).Scan(&machine.ID)
	if err != nil {
		return fmt.Errorf("insert machine: %w", err)
	}
	return nil
}

// GetByID obtiene una máquina por ID.
func (r *MachineRepo) GetByID(id int64) (*entity.Machine, error) {
	query := `
		SELECT id, machine_type_id, name, status, created_at, updated_at
		FROM machines WHERE id = $1`
	var m entity.Machine
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.MachineTypeID, &m.Name, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine: %w", err)
	}
	return &m, nil
}

// Update actualiza una máquina existente.
func (r *MachineRepo) Update(machine *entity.Machine) error {
	query := `
		UPDATE machines SET machine_type_id = $2, name = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		machine.ID, machine.MachineTypeID, machine.Name, machine.Status, machine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update machine: %w", err)
	}
	return nil
}

// ListByType lista las máquinas activas de un tipo.
func (r *MachineRepo) ListByType(machineTypeID int64) ([]*entity.Machine, error) {
	query := `
		SELECT id, machine_type_id, name, status, created_at, updated_at
		FROM machines WHERE machine_type_id = $1 AND status = 'activa' ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, machineTypeID)
	if err != nil {
		return nil, fmt.Errorf("list machines by type: %w", err)
	}
	defer rows.Close()
	return scanMachines(rows)
}

// List lista máquinas con paginación.
func (r *MachineRepo) List(limit, offset int) ([]*entity.Machine, error) {
	query := `
		SELECT id, machine_type_id, name, status, created_at, updated_at
		FROM machines ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()
	return scanMachines(rows)
}

// Count cuenta las máquinas registradas.
func (r *MachineRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM machines`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count machines: %w", err)
	}
	return total, nil
}

// Delete elimina una máquina por ID.
func (r *MachineRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM machines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete machine: %w", err)
	}
	return nil
}

func scanMachines(rows pgx.Rows) ([]*entity.Machine, error) {
	var list []*entity.Machine
	for rows.Next() {
		var m entity.Machine
		if err := rows.Scan(&m.ID, &m.MachineTypeID, &m.Name, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
