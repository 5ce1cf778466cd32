package dto

import (
	"time"

	"github.com/google/uuid"

	groupmodel "kursusku_backend/internals/features/school/groups/model"
	userdto "kursusku_backend/internals/features/users/user/dto"
)

type GroupDTO struct {
	GroupID        uuid.UUID `json:"group_id"`
	GroupName      string    `json:"group_name"`
	GroupCreatedAt time.Time `json:"group_created_at"`
}

func ToGroupDTO(g groupmodel.GroupModel) GroupDTO {
	return GroupDTO{
		GroupID:        g.GroupID,
		GroupName:      g.GroupName,
		GroupCreatedAt: g.GroupCreatedAt,
	}
}

// GroupDetailDTO: grup + anggota (untuk halaman edit admin & daftar grup)
type GroupDetailDTO struct {
	GroupDTO
	Teachers []userdto.UserDTO `json:"teachers"`
	Students []GroupMemberDTO  `json:"students"`
}

// GroupMemberDTO: student + waktu bergabung
type GroupMemberDTO struct {
	userdto.UserDTO
	JoinedAt time.Time `json:"joined_at"`
}

// StudentGroupDTO: tampilan daftar grup milik student
type StudentGroupDTO struct {
	GroupDTO
	Teachers []userdto.UserDTO `json:"teachers"`
	JoinedAt time.Time         `json:"joined_at"`
}

type CreateGroupRequest struct {
	GroupName  string      `json:"group_name" validate:"required,max=200"`
	CreatedAt  *time.Time  `json:"created_at"`
	TeacherIDs []uuid.UUID `json:"teacher_ids"`
	StudentIDs []uuid.UUID `json:"student_ids"`
}

// UpdateGroupRequest: field nil = tidak diubah.
// TeacherIDs/StudentIDs = pengganti penuh (set), diff dihitung server.
type UpdateGroupRequest struct {
	GroupName  *string      `json:"group_name" validate:"omitempty,max=200"`
	CreatedAt  *time.Time   `json:"created_at"`
	TeacherIDs *[]uuid.UUID `json:"teacher_ids"`
	StudentIDs *[]uuid.UUID `json:"student_ids"`
}
