package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"

	"github.com/anatomypro/backend/platform/database/models"
)

type ClassroomRepository interface {
	CreateOrganization(ctx context.Context, org *models.Organization) error
	GetOrganization(ctx context.Context, id int64) (*models.Organization, error)
	Create(ctx context.Context, classroom *models.Classroom) error
	GetByID(ctx context.Context, id int64) (*models.Classroom, error)
	GetByInviteCode(ctx context.Context, code string) (*models.Classroom, error)
	GetByOrganization(ctx context.Context, orgID int64) ([]*models.Classroom, error)
	AddMember(ctx context.Context, membership *models.ClassroomMembership) error
	RemoveMember(ctx context.Context, classroomID, userID int64) error
	GetMembership(ctx context.Context, classroomID, userID int64) (*models.ClassroomMembership, error)
	GetMembers(ctx context.Context, classroomID int64) ([]*models.ClassroomMembership, error)
	GetClassroomsForUser(ctx context.Context, userID int64) ([]*models.Classroom, error)
}

type classroomRepository struct {
	db *bun.DB
}

func NewClassroomRepository(db *bun.DB) ClassroomRepository {
	return &classroomRepository{db: db}
}

func (r *classroomRepository) CreateOrganization(ctx context.Context, org *models.Organization) error {
	org.CreatedAt = time.Now()
	org.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(org).Exec(ctx)
	return err
}

func (r *classroomRepository) GetOrganization(ctx context.Context, id int64) (*models.Organization, error) {
	org := new(models.Organization)
	err := r.db.NewSelect().
		Model(org).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return org, nil
}

func (r *classroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	classroom.CreatedAt = time.Now()
	classroom.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(classroom).Exec(ctx)
	return err
}

func (r *classroomRepository) GetByID(ctx context.Context, id int64) (*models.Classroom, error) {
	classroom := new(models.Classroom)
	err := r.db.NewSelect().
		Model(classroom).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return classroom, nil
}

func (r *classroomRepository) GetByInviteCode(ctx context.Context, code string) (*models.Classroom, error) {
	classroom := new(models.Classroom)
	err := r.db.NewSelect().
		Model(classroom).
		Where("invite_code = ?", code).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return classroom, nil
}

func (r *classroomRepository) GetByOrganization(ctx context.Context, orgID int64) ([]*models.Classroom, error) {
	var classrooms []*models.Classroom
	err := r.db.NewSelect().
		Model(&classrooms).
		Where("organization_id = ?", orgID).
		Order("id ASC").
		Scan(ctx)
	return classrooms, err
}

func (r *classroomRepository) AddMember(ctx context.Context, membership *models.ClassroomMembership) error {
	membership.CreatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(membership).
		On("CONFLICT (classroom_id, user_id) DO NOTHING").
		Exec(ctx)
	return err
}

func (r *classroomRepository) RemoveMember(ctx context.Context, classroomID, userID int64) error {
	res, err := r.db.NewDelete().
		Model((*models.ClassroomMembership)(nil)).
		Where("classroom_id = ? AND user_id = ?", classroomID, userID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *classroomRepository) GetMembership(ctx context.Context, classroomID, userID int64) (*models.ClassroomMembership, error) {
	membership := new(models.ClassroomMembership)
	err := r.db.NewSelect().
		Model(membership).
		Where("classroom_id = ? AND user_id = ?", classroomID, userID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return membership, nil
}

func (r *classroomRepository) GetMembers(ctx context.Context, classroomID int64) ([]*models.ClassroomMembership, error) {
	var members []*models.ClassroomMembership
	err := r.db.NewSelect().
		Model(&members).
		Relation("User").
		Where("cm.classroom_id = ?", classroomID).
		Order("cm.user_id ASC").
		Scan(ctx)
	return members, err
}

func (r *classroomRepository) GetClassroomsForUser(ctx context.Context, userID int64) ([]*models.Classroom, error) {
	var classrooms []*models.Classroom
	err := r.db.NewSelect().
		Model(&classrooms).
		Join("JOIN classroom_memberships AS cm ON cm.classroom_id = cr.id").
		Where("cm.user_id = ?", userID).
		Order("cr.id ASC").
		Scan(ctx)
	return classrooms, err
}
