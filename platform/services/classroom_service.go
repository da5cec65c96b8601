package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatomypro/backend/platform/database/models"
	"github.com/anatomypro/backend/platform/database/repositories"
)

const (
	inviteCodeLength   = 8
	inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxInviteAttempts  = 5
)

type ClassroomService struct {
	classroomRepo repositories.ClassroomRepository
	userRepo      repositories.UserRepository
}

func NewClassroomService(classroomRepo repositories.ClassroomRepository, userRepo repositories.UserRepository) *ClassroomService {
	return &ClassroomService{
		classroomRepo: classroomRepo,
		userRepo:      userRepo,
	}
}

func newInviteCode() (string, error) {
	buf := make([]byte, inviteCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invite code: %w", err)
	}
	for i, b := range buf {
		buf[i] = inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)]
	}
	return string(buf), nil
}

// Create opens a classroom owned by a teacher. The creator is enrolled as
// its first member with the teacher role. Invite code collisions retry a
// few times before giving up.
func (cs *ClassroomService) Create(ctx context.Context, creator *models.User, name string, organizationID *int64) (*models.Classroom, error) {
	if !creator.IsStaff() {
		return nil, fmt.Errorf("%w: only teachers can create classrooms", ErrForbidden)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: classroom name is required", ErrInvalidArgument)
	}

	var classroom *models.Classroom
	for attempt := 0; attempt < maxInviteAttempts; attempt++ {
		code, err := newInviteCode()
		if err != nil {
			return nil, err
		}
		candidate := &models.Classroom{
			Name:           name,
			InviteCode:     code,
			OrganizationID: organizationID,
		}
		if err := cs.classroomRepo.Create(ctx, candidate); err == nil {
			classroom = candidate
			break
		}
	}
	if classroom == nil {
		return nil, errors.New("failed to create classroom with a unique invite code")
	}

	membership := &models.ClassroomMembership{
		ClassroomID: classroom.ID,
		UserID:      creator.ID,
		Role:        models.MembershipRoleTeacher,
	}
	if err := cs.classroomRepo.AddMember(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to enroll creator: %w", err)
	}

	slog.Info("Classroom created",
		slog.Int64("classroom_id", classroom.ID),
		slog.Int64("teacher_id", creator.ID),
		slog.String("invite_code", classroom.InviteCode))
	return classroom, nil
}

// Join enrolls a user into the classroom behind an invite code. Joining a
// classroom twice is a no-op.
func (cs *ClassroomService) Join(ctx context.Context, userID int64, inviteCode string) (*models.Classroom, error) {
	classroom, err := cs.classroomRepo.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: invalid invite code", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up invite code: %w", err)
	}

	membership := &models.ClassroomMembership{
		ClassroomID: classroom.ID,
		UserID:      userID,
		Role:        models.MembershipRoleStudent,
	}
	if err := cs.classroomRepo.AddMember(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to join classroom: %w", err)
	}
	return classroom, nil
}

func (cs *ClassroomService) Leave(ctx context.Context, userID, classroomID int64) error {
	err := cs.classroomRepo.RemoveMember(ctx, classroomID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (cs *ClassroomService) Get(ctx context.Context, id int64) (*models.Classroom, error) {
	classroom, err := cs.classroomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load classroom: %w", err)
	}
	return classroom, nil
}

func (cs *ClassroomService) ForUser(ctx context.Context, userID int64) ([]*models.Classroom, error) {
	return cs.classroomRepo.GetClassroomsForUser(ctx, userID)
}

// Members returns the roster of a classroom. Only members may see it.
func (cs *ClassroomService) Members(ctx context.Context, requesterID, classroomID int64) ([]*models.ClassroomMembership, error) {
	if _, err := cs.classroomRepo.GetMembership(ctx, classroomID, requesterID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: not a member of this classroom", ErrForbidden)
		}
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	return cs.classroomRepo.GetMembers(ctx, classroomID)
}
