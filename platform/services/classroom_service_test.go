package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/anatomypro/backend/platform/database/models"
	mockrepo "github.com/anatomypro/backend/platform/database/repositories/mock"
)

func TestNewInviteCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := newInviteCode()
		if err != nil {
			t.Fatalf("newInviteCode() error = %v", err)
		}
		if len(code) != inviteCodeLength {
			t.Fatalf("code %q has length %d, want %d", code, len(code), inviteCodeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(inviteCodeAlphabet, r) {
				t.Fatalf("code %q contains %q outside the alphabet", code, r)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("expected distinct codes across generations")
	}
}

func TestClassroomService_CreateEnrollsTeacher(t *testing.T) {
	ctrl := gomock.NewController(t)
	classroomRepo := mockrepo.NewMockClassroomRepository(ctrl)
	cs := NewClassroomService(classroomRepo, nil)
	ctx := context.Background()

	classroomRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Classroom) error {
			if len(c.InviteCode) != inviteCodeLength {
				t.Errorf("invite code %q has length %d, want %d", c.InviteCode, len(c.InviteCode), inviteCodeLength)
			}
			c.ID = 11
			return nil
		})
	classroomRepo.EXPECT().AddMember(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *models.ClassroomMembership) error {
			if m.ClassroomID != 11 || m.UserID != 5 {
				t.Errorf("membership = %+v, want classroom 11 user 5", m)
			}
			if m.Role != models.MembershipRoleTeacher {
				t.Errorf("role = %q, want teacher", m.Role)
			}
			return nil
		})

	teacher := &models.User{ID: 5, Role: models.UserRoleTeacher}
	classroom, err := cs.Create(ctx, teacher, "Anatomia I", nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if classroom.ID != 11 {
		t.Errorf("classroom id = %d, want 11", classroom.ID)
	}
}

func TestClassroomService_CreateRequiresStaff(t *testing.T) {
	ctrl := gomock.NewController(t)
	cs := NewClassroomService(mockrepo.NewMockClassroomRepository(ctrl), nil)

	student := &models.User{ID: 2, Role: models.UserRoleStudent}
	if _, err := cs.Create(context.Background(), student, "Anatomia I", nil); !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestClassroomService_JoinUnknownCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	classroomRepo := mockrepo.NewMockClassroomRepository(ctrl)
	cs := NewClassroomService(classroomRepo, nil)
	ctx := context.Background()

	classroomRepo.EXPECT().GetByInviteCode(ctx, "NOPE1234").Return(nil, sql.ErrNoRows)

	if _, err := cs.Join(ctx, 3, "NOPE1234"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestClassroomService_MembersRequiresMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	classroomRepo := mockrepo.NewMockClassroomRepository(ctrl)
	cs := NewClassroomService(classroomRepo, nil)
	ctx := context.Background()

	classroomRepo.EXPECT().GetMembership(ctx, int64(9), int64(4)).Return(nil, sql.ErrNoRows)

	if _, err := cs.Members(ctx, 4, 9); !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}
