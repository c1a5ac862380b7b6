package contracts

import (
	"time"

	"github.com/mlima3022/Financas/internal/domain/goal"
)

type GoalCreateRequest struct {
	Name         string     `json:"name" binding:"required,max=100"`
	TargetAmount float64    `json:"target_amount" binding:"required,gt=0"`
	TargetDate   *time.Time `json:"target_date" binding:"omitempty"`
}

type GoalContributionRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type GoalCreateResponse struct {
	Message string     `json:"message"`
	Goal    *goal.Goal `json:"goal"`
}

type GoalSingleResponse struct {
	Goal *goal.Goal `json:"goal"`
}

type GoalListResponse struct {
	Goals []*goal.Goal `json:"goals"`
	Total int          `json:"total"`
}
