// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	paymentroute "kursusku_backend/internals/features/finance/payments/route"
	homeroute "kursusku_backend/internals/features/home/route"
	assignmentroute "kursusku_backend/internals/features/school/assignments/route"
	attendanceroute "kursusku_backend/internals/features/school/attendance/route"
	grouproute "kursusku_backend/internals/features/school/groups/route"
	quizroute "kursusku_backend/internals/features/school/quizzes/route"
	scheduleroute "kursusku_backend/internals/features/school/schedules/route"
	authroute "kursusku_backend/internals/features/users/auth/route"
	userroute "kursusku_backend/internals/features/users/user/route"
	authMiddleware "kursusku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authroute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	paymentroute.PaymentPublicRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("panel admin"), constants.AdminOnly...),
	)

	// ===================== TEACHER =====================
	log.Println("[INFO] Setting up TEACHER group (Auth + RoleCheck)...")
	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("panel teacher"), constants.TeacherOnly...),
	)

	// ===================== STUDENT =====================
	log.Println("[INFO] Setting up STUDENT group (Auth + RoleCheck)...")
	student := app.Group("/api/s",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("panel student"), constants.StudentOnly...),
	)

	// ===================== PROFILE (semua role) =====================
	profile := app.Group("/api", authMiddleware.AuthMiddleware(db))
	userroute.ProfileRoutes(profile, db)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting User routes...")
	userroute.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Group routes...")
	grouproute.GroupAdminRoutes(admin, db)
	grouproute.GroupTeacherRoutes(teacher, db)
	grouproute.GroupStudentRoutes(student, db)

	log.Println("[INFO] Mounting Schedule routes...")
	scheduleroute.ScheduleAdminRoutes(admin, db)
	scheduleroute.ScheduleTeacherRoutes(teacher, db)
	scheduleroute.ScheduleStudentRoutes(student, db)

	log.Println("[INFO] Mounting Quiz routes...")
	quizroute.QuizAdminRoutes(admin, db)
	quizroute.QuizTeacherRoutes(teacher, db)
	quizroute.QuizStudentRoutes(student, db)

	log.Println("[INFO] Mounting Assignment routes...")
	assignmentroute.AssignmentAdminRoutes(admin, db)
	assignmentroute.AssignmentTeacherRoutes(teacher, db)
	assignmentroute.AssignmentStudentRoutes(student, db)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceroute.AttendanceAdminRoutes(admin, db)
	attendanceroute.AttendanceTeacherRoutes(teacher, db)
	attendanceroute.AttendanceStudentRoutes(student, db)

	log.Println("[INFO] Mounting Payment routes...")
	paymentroute.PaymentAdminRoutes(admin, db)
	paymentroute.PaymentStudentRoutes(student, db)

	log.Println("[INFO] Mounting Home routes...")
	homeroute.HomeTeacherRoutes(teacher, db)
	homeroute.HomeStudentRoutes(student, db)
}
