package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	assignmentmodel "kursusku_backend/internals/features/school/assignments/model"
	groupmodel "kursusku_backend/internals/features/school/groups/model"
	quizmodel "kursusku_backend/internals/features/school/quizzes/model"
	quizservice "kursusku_backend/internals/features/school/quizzes/service"
	usermodel "kursusku_backend/internals/features/users/user/model"
)

// StudentScore: performa gabungan kuis + tugas satu student.
// Persen dihitung dari total skor terhadap total nilai maksimum konten
// yang terlihat (dibuat setelah student bergabung ke grupnya).
type StudentScore struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	UserName    string    `json:"user_name"`
	Percent     float64   `json:"percent"`
	Level       string    `json:"level"`
	Rank        int       `json:"rank"`
	HasContent  bool      `json:"has_content"`
}

// scoreInput: seluruh data yang dibutuhkan perhitungan, dimuat sekali.
type scoreInput struct {
	memberships []groupmodel.GroupStudentMembershipModel
	students    map[uuid.UUID]usermodel.UserModel
	quizzes     []quizmodel.QuizModel
	assignments []assignmentmodel.AssignmentModel
	results     map[uuid.UUID]map[uuid.UUID]int // student → quiz → score
	grades      map[uuid.UUID]map[uuid.UUID]int // student → assignment → grade
}

func loadScoreInput(ctx context.Context, db *gorm.DB) (*scoreInput, error) {
	in := &scoreInput{
		students: make(map[uuid.UUID]usermodel.UserModel),
		results:  make(map[uuid.UUID]map[uuid.UUID]int),
		grades:   make(map[uuid.UUID]map[uuid.UUID]int),
	}

	if err := db.WithContext(ctx).Find(&in.memberships).Error; err != nil {
		return nil, err
	}

	var users []usermodel.UserModel
	if err := db.WithContext(ctx).
		Where("role = ?", constants.RoleStudent).
		Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		in.students[u.ID] = u
	}

	if err := db.WithContext(ctx).Find(&in.quizzes).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Find(&in.assignments).Error; err != nil {
		return nil, err
	}

	var results []quizmodel.StudentQuizResultModel
	if err := db.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	for _, r := range results {
		if in.results[r.ResultStudentID] == nil {
			in.results[r.ResultStudentID] = make(map[uuid.UUID]int)
		}
		in.results[r.ResultStudentID][r.ResultQuizID] = r.ResultScore
	}

	var submissions []assignmentmodel.AssignmentSubmissionModel
	if err := db.WithContext(ctx).
		Where("submission_grade IS NOT NULL").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	for _, s := range submissions {
		if s.SubmissionGrade == nil {
			continue
		}
		if in.grades[s.SubmissionStudentID] == nil {
			in.grades[s.SubmissionStudentID] = make(map[uuid.UUID]int)
		}
		in.grades[s.SubmissionStudentID][s.SubmissionAssignmentID] = *s.SubmissionGrade
	}
	return in, nil
}

func (in *scoreInput) scoreFor(studentID uuid.UUID) (percent float64, hasContent bool) {
	total := 0
	totalMax := 0
	for _, m := range in.memberships {
		if m.MembershipStudentID != studentID {
			continue
		}
		for _, q := range in.quizzes {
			if q.QuizGroupID != m.MembershipGroupID || q.QuizCreatedAt.Before(m.MembershipJoinedAt) {
				continue
			}
			totalMax += q.QuizMaxScore
			if scores, ok := in.results[studentID]; ok {
				total += scores[q.QuizID]
			}
		}
		for _, a := range in.assignments {
			if a.AssignmentGroupID != m.MembershipGroupID || a.AssignmentCreatedAt.Before(m.MembershipJoinedAt) {
				continue
			}
			totalMax += a.AssignmentMaxScore
			if grades, ok := in.grades[studentID]; ok {
				total += grades[a.AssignmentID]
			}
		}
	}
	if totalMax == 0 {
		return 0, false
	}
	return float64(total) / float64(totalMax) * 100, true
}

// ComputeStudentScores menghitung performa untuk subset student
// (nil = semua student aktif), diurutkan persen tertinggi dan diberi rank.
func ComputeStudentScores(ctx context.Context, db *gorm.DB, onlyIDs map[uuid.UUID]bool) ([]StudentScore, error) {
	in, err := loadScoreInput(ctx, db)
	if err != nil {
		return nil, err
	}

	scores := make([]StudentScore, 0, len(in.students))
	for id, u := range in.students {
		if onlyIDs != nil && !onlyIDs[id] {
			continue
		}
		percent, hasContent := in.scoreFor(id)
		scores = append(scores, StudentScore{
			StudentID:   id,
			StudentName: strings.TrimSpace(u.FirstName + " " + u.LastName),
			UserName:    u.UserName,
			Percent:     percent,
			Level:       quizservice.LevelFor(percent),
			HasContent:  hasContent,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Percent != scores[j].Percent {
			return scores[i].Percent > scores[j].Percent
		}
		return scores[i].UserName < scores[j].UserName
	})
	for i := range scores {
		scores[i].Rank = i + 1
	}
	return scores, nil
}

// LevelCounts merekap jumlah student per level. Student tanpa konten
// yang bisa dinilai tidak dihitung.
func LevelCounts(scores []StudentScore) (good, average, weak int) {
	for _, s := range scores {
		if !s.HasContent {
			continue
		}
		switch s.Level {
		case quizservice.LevelGood:
			good++
		case quizservice.LevelAverage:
			average++
		default:
			weak++
		}
	}
	return good, average, weak
}

// PlaceOf mencari posisi satu student dalam daftar rank.
func PlaceOf(scores []StudentScore, studentID uuid.UUID) *StudentScore {
	for i := range scores {
		if scores[i].StudentID == studentID {
			return &scores[i]
		}
	}
	return nil
}

// TopN memotong daftar ke n teratas.
func TopN(scores []StudentScore, n int) []StudentScore {
	if len(scores) <= n {
		return scores
	}
	return scores[:n]
}

// PeerIDs: semua student yang berbagi minimal satu grup dengan student ini.
func PeerIDs(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (map[uuid.UUID]bool, error) {
	var memberships []groupmodel.GroupStudentMembershipModel
	if err := db.WithContext(ctx).Find(&memberships).Error; err != nil {
		return nil, err
	}
	myGroups := make(map[uuid.UUID]bool)
	for _, m := range memberships {
		if m.MembershipStudentID == studentID {
			myGroups[m.MembershipGroupID] = true
		}
	}
	peers := make(map[uuid.UUID]bool)
	for _, m := range memberships {
		if myGroups[m.MembershipGroupID] {
			peers[m.MembershipStudentID] = true
		}
	}
	return peers, nil
}
