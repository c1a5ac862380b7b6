package contracts

import "github.com/mlima3022/Financas/internal/domain/category"

type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CategoryCreateResponse struct {
	Message  string             `json:"message"`
	Category *category.Category `json:"category"`
}

type CategoryListResponse struct {
	Categories []*category.Category `json:"categories"`
	Total      int                  `json:"total"`
}
