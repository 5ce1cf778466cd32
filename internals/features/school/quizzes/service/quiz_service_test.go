package service

import (
	"testing"

	"kursusku_backend/internals/features/school/quizzes/dto"
	"kursusku_backend/internals/features/school/quizzes/model"
)

func answers(correct int, total int) []dto.AnswerInput {
	out := make([]dto.AnswerInput, 0, total)
	for i := 0; i < total; i++ {
		out = append(out, dto.AnswerInput{Text: "pilihan", IsCorrect: i < correct})
	}
	return out
}

func TestValidQuestion(t *testing.T) {
	tests := []struct {
		name string
		in   dto.QuestionInput
		want bool
	}{
		{"valid dua pilihan", dto.QuestionInput{Text: "2+2?", Answers: answers(1, 2)}, true},
		{"valid empat pilihan", dto.QuestionInput{Text: "ibukota?", Answers: answers(1, 4)}, true},
		{"teks kosong", dto.QuestionInput{Text: "   ", Answers: answers(1, 2)}, false},
		{"satu pilihan saja", dto.QuestionInput{Text: "soal", Answers: answers(1, 1)}, false},
		{"tanpa jawaban benar", dto.QuestionInput{Text: "soal", Answers: answers(0, 3)}, false},
		{"dua jawaban benar", dto.QuestionInput{Text: "soal", Answers: answers(2, 4)}, false},
		{"pilihan kosong", dto.QuestionInput{Text: "soal", Answers: []dto.AnswerInput{
			{Text: "a", IsCorrect: true}, {Text: "  "},
		}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidQuestion(tt.in); got != tt.want {
				t.Errorf("ValidQuestion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsStale(t *testing.T) {
	quiz := model.QuizModel{QuizVersion: 3}

	if IsStale(model.StudentQuizResultModel{ResultQuizVersion: 3}, quiz) {
		t.Error("hasil versi sama tidak boleh basi")
	}
	if !IsStale(model.StudentQuizResultModel{ResultQuizVersion: 2}, quiz) {
		t.Error("hasil versi lama harus basi")
	}
}
