package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/hisabapp/hisab/internal/core/domain"
	"github.com/hisabapp/hisab/internal/core/ports"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/dto"
	"github.com/hisabapp/hisab/internal/store"
)

// CategoryService mutates the category collection. Renaming propagates to
// Transaction.CategoryName; deleting cascades the transactions filed
// under the category.
type CategoryService struct {
	BaseService
	st        *store.Store
	refresher portssvc.RefresherSvcFacade
	mut       mutator[domain.Category]
}

func NewCategoryService(st *store.Store, gw ports.CategoryGateway, refresher portssvc.RefresherSvcFacade) *CategoryService {
	return &CategoryService{
		st:        st,
		refresher: refresher,
		mut:       mutator[domain.Category]{entity: "category", coll: st.Categories, gw: gw},
	}
}

var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

func (s *CategoryService) ListCategories(ctx context.Context) []domain.Category {
	return s.st.Categories.Items()
}

func (s *CategoryService) AddCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	placeholder := domain.Category{
		CategoryID: tempID(),
		Name:       req.Name,
		Type:       req.Type,
		Budget:     req.Budget,
		CreatedAt:  time.Now(),
	}

	category, err := s.mut.add(ctx, placeholder)
	if err != nil {
		s.LogError(ctx, err, "Failed to add category", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Category added", slog.String("category_id", category.CategoryID))
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	var prevName string
	category, err := s.mut.update(ctx, categoryID, func(c domain.Category) domain.Category {
		prevName = c.Name
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Type != nil {
			c.Type = *req.Type
		}
		if req.Budget != nil {
			c.Budget = req.Budget
		}
		return c
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	if category.Name != prevName {
		updated := s.st.RenameCategoryRefs(category.CategoryID, category.Name)
		s.LogInfo(ctx, "Category rename propagated to transactions",
			slog.String("category_id", category.CategoryID),
			slog.Int("transactions_updated", updated))
	}

	if err := s.refresher.RefreshMoneyStats(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh money statistics after category update")
	}

	s.LogInfo(ctx, "Category updated", slog.String("category_id", category.CategoryID))
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	err := s.mut.delete(ctx, categoryID, func() func() {
		snapshot := s.st.Transactions.Items()
		removed := s.st.Transactions.RemoveWhere(func(t domain.Transaction) bool {
			return t.CategoryID == categoryID
		})
		if removed > 0 {
			s.LogDebug(ctx, "Cascaded transaction removal", slog.Int("transactions_removed", removed))
		}
		return func() { s.st.Transactions.Replace(snapshot) }
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}

	if err := s.refresher.RefreshMoneyStats(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh money statistics after category delete")
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
