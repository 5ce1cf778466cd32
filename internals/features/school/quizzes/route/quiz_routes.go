package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizcontroller "kursusku_backend/internals/features/school/quizzes/controller"
)

// Dipasang di bawah /api/a (admin)
func QuizAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := quizcontroller.NewAdminQuizController(db)
	quizzes := api.Group("/quizzes")
	quizzes.Get("/", ctrl.ListQuizzes)
	quizzes.Post("/", ctrl.CreateQuiz)
	quizzes.Get("/:id", ctrl.GetQuiz)
	quizzes.Put("/:id", ctrl.UpdateQuiz)
	quizzes.Delete("/:id", ctrl.DeleteQuiz)
	quizzes.Get("/:id/results", ctrl.QuizResults)
	quizzes.Post("/:id/questions", ctrl.AddQuestion)
	quizzes.Put("/:id/questions/:question_id", ctrl.UpdateQuestion)
	quizzes.Delete("/:id/questions/:question_id", ctrl.DeleteQuestion)
}

// Dipasang di bawah /api/t (teacher)
func QuizTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := quizcontroller.NewTeacherQuizController(db)
	quizzes := api.Group("/quizzes")
	quizzes.Get("/", ctrl.MyQuizzes)
	quizzes.Post("/", ctrl.CreateQuiz)
	quizzes.Get("/:id", ctrl.GetQuiz)
	quizzes.Put("/:id", ctrl.UpdateQuiz)
	quizzes.Delete("/:id", ctrl.DeleteQuiz)
	quizzes.Get("/:id/results", ctrl.QuizResults)
	quizzes.Post("/:id/questions", ctrl.AddQuestion)
	quizzes.Put("/:id/questions/:question_id", ctrl.UpdateQuestion)
	quizzes.Delete("/:id/questions/:question_id", ctrl.DeleteQuestion)
}

// Dipasang di bawah /api/s (student)
func QuizStudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := quizcontroller.NewStudentQuizController(db)
	quizzes := api.Group("/quizzes")
	quizzes.Get("/", ctrl.MyQuizzes)
	quizzes.Get("/:id/start", ctrl.StartQuiz)
	quizzes.Post("/:id/submit", ctrl.SubmitQuiz)
	quizzes.Get("/:id/result", ctrl.MyResult)
}
