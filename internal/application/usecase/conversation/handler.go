// Package conversation drives the multi-step chat wizards. Each incoming
// event carries either typed text or a button token; the handler resolves
// the user's session, applies the step, and renders the next screen.
package conversation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/application/usecase/catalog"
	"github.com/pantry-bot/backend/internal/application/usecase/recipe"
	"github.com/pantry-bot/backend/internal/application/usecase/selection"
	"github.com/pantry-bot/backend/internal/application/usecase/shopping"
	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// Event is one inbound conversation event. Exactly one of Text and Token
// is expected to be set.
type Event struct {
	UserID string
	Text   string
	Token  string
}

// UseCases bundles everything the conversation layer can invoke.
type UseCases struct {
	CreateCategory  *catalog.CreateCategoryUseCase
	ListCategories  *catalog.ListCategoriesUseCase
	DeleteCategory  *catalog.DeleteCategoryUseCase
	ReorderCategory *catalog.ReorderCategoryUseCase
	ListProducts    *catalog.ListProductsUseCase
	GetProduct      *catalog.GetProductUseCase
	RenameProduct   *catalog.RenameProductUseCase
	DeleteProduct   *catalog.DeleteProductUseCase
	GetStats        *catalog.GetStatsUseCase

	CreateRecipe *recipe.CreateRecipeUseCase
	UpdateRecipe *recipe.UpdateRecipeUseCase
	DeleteRecipe *recipe.DeleteRecipeUseCase
	ListRecipes  *recipe.ListRecipesUseCase
	GetRecipe    *recipe.GetRecipeUseCase

	AddSelected    *selection.AddRecipeUseCase
	RemoveSelected *selection.RemoveRecipeUseCase
	ClearSelection *selection.ClearSelectionUseCase
	ListSelection  *selection.ListSelectionUseCase

	GenerateList    *shopping.GenerateListUseCase
	AddRecipeToList *shopping.AddRecipeToListUseCase
	ToggleItem      *shopping.ToggleItemUseCase
	DeleteItem      *shopping.DeleteItemUseCase
	FinishShopping  *shopping.FinishShoppingUseCase
	GetList         *shopping.GetListUseCase
	AddAdHoc        *shopping.AddAdHocItemUseCase
	ToggleAdHoc     *shopping.ToggleAdHocItemUseCase
	DeleteAdHoc     *shopping.DeleteAdHocItemUseCase
}

// Handler is the conversation state machine. One event is handled to
// completion per call; the session is loaded once at dispatch and saved
// (or cleared) before the reply goes out.
type Handler struct {
	sessions adapter.SessionStore
	products adapter.ProductRepository
	adhoc    adapter.AdHocRegistry
	uc       UseCases
	logger   *slog.Logger
}

// NewHandler creates a new conversation Handler.
func NewHandler(
	sessions adapter.SessionStore,
	products adapter.ProductRepository,
	adhoc adapter.AdHocRegistry,
	uc UseCases,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		sessions: sessions,
		products: products,
		adhoc:    adhoc,
		uc:       uc,
		logger:   logger,
	}
}

// HandleEvent processes one event and returns the reply to render.
// Failures never propagate as errors to the transport: every path
// resolves to a navigable reply.
func (h *Handler) HandleEvent(ctx context.Context, event Event) *Reply {
	session, err := h.sessions.Load(ctx, event.UserID)
	if err != nil {
		h.logger.Error("failed to load session", "user_id", event.UserID, "error", err)
		session = entity.NewSession()
	}

	var reply *Reply
	if event.Token != "" {
		reply = h.handleToken(ctx, event.UserID, session, ParseToken(event.Token))
	} else {
		reply = h.handleText(ctx, event.UserID, session, event.Text)
	}

	if err := h.sessions.Save(ctx, event.UserID, session); err != nil {
		h.logger.Error("failed to save session", "user_id", event.UserID, "error", err)
		return h.failSafe(ctx, event.UserID, session)
	}

	return reply
}

// failSafe clears the wizard and falls back to the main menu after a
// store failure, so no partial draft survives.
func (h *Handler) failSafe(ctx context.Context, userID string, session *entity.Session) *Reply {
	*session = *entity.NewSession()
	if err := h.sessions.Clear(ctx, userID); err != nil {
		h.logger.Error("failed to clear session", "user_id", userID, "error", err)
	}
	return &Reply{
		Text: "Something went wrong, please start over",
		Buttons: [][]Button{
			row(btn("🏠 Main menu", ActionMainMenu, "")),
		},
	}
}

// internalError logs the failure, discards the wizard and replies
// generically. Domain errors are mapped to alerts before reaching here.
func (h *Handler) internalError(ctx context.Context, userID string, session *entity.Session, err error) *Reply {
	h.logger.Error("conversation step failed", "user_id", userID, "error", err)
	return h.failSafe(ctx, userID, session)
}

// mainMenuReply renders the main menu, hiding the compose entry while a
// shopping list is active.
func (h *Handler) mainMenuReply(ctx context.Context, userID string) *Reply {
	out, err := h.uc.GetList.Execute(ctx, shopping.GetListInput{UserID: userID})
	if err != nil {
		h.logger.Error("failed to load shopping list for menu", "user_id", userID, "error", err)
		return mainMenu(false)
	}
	return mainMenu(len(out.Items) > 0 || len(out.AdHocItems) > 0)
}

// lostSession is the recovery path when finalize-time fields are missing,
// typically after a session TTL expiry mid-wizard.
func (h *Handler) lostSession(ctx context.Context, userID string, session *entity.Session) *Reply {
	*session = *entity.NewSession()
	reply := h.mainMenuReply(ctx, userID)
	reply.Text = "The form data was lost, please start over"
	return reply
}

// isDomainError reports whether err is a coded domain error that should
// surface as an alert rather than a generic failure.
func isDomainError(err error) bool {
	var catErr *domainerror.CatalogError
	var recErr *domainerror.RecipeError
	var shpErr *domainerror.ShoppingError
	return errors.As(err, &catErr) || errors.As(err, &recErr) || errors.As(err, &shpErr)
}
