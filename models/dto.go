package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type CreateQuestionRequest struct {
	Name          string        `json:"name" binding:"required,min=1,max=255"`
	Question      string        `json:"question" binding:"required"`
	Option1       string        `json:"option1" binding:"required"`
	Option2       string        `json:"option2" binding:"required"`
	Option3       string        `json:"option3" binding:"required"`
	Option4       string        `json:"option4" binding:"required"`
	CorrectOption int           `json:"correct_option" binding:"required,min=1,max=4"`
	Level         QuestionLevel `json:"level" binding:"required,oneof=easy medium hard"`
	TagName       string        `json:"tag_name" binding:"required"`
}

type QuestionListParams struct {
	Name      string `form:"name"`
	TagID     uint   `form:"tag_id"`
	Level     string `form:"level"`
	Answered  string `form:"answered"` // "answered" or "unanswered", relative to the requesting user
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
}

type RelateQuestionRequest struct {
	RelatedID uint `json:"related_id" binding:"required"`
}

type SubmitAnswerRequest struct {
	QuestionID uint `json:"question_id" binding:"required"`
	Option     int  `json:"option" binding:"required"`
}

type SubmitAnswerResponse struct {
	Correct bool `json:"correct"`
}

type LeaderboardParams struct {
	Name string `form:"name"`
	Sort string `form:"sort,default=desc"`
}

type LeaderboardEntry struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Rank  int    `json:"rank"`
}
