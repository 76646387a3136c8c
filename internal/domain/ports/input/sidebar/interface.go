package sidebar_service

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/sidebar --outpkg mocks --with-expecter --filename SidebarService.go
type Service interface {
	Load(ctx context.Context) (*model.Sidebar, error)
}
