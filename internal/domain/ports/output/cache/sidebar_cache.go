package cache

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name SidebarCache --dir . --output ../../../../../mocks/cache --outpkg mocks --with-expecter --filename SidebarCache.go
type SidebarCache interface {
	GetSidebar(ctx context.Context) (*model.Sidebar, error)
	SetSidebar(ctx context.Context, sidebar *model.Sidebar) error
	DeleteSidebar(ctx context.Context) error
}
