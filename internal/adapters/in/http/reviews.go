package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// AddReview handles POST /api/v1/reviews.
func (s *Server) AddReview(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	var req NewReviewRequest
	if err = bindBody(c, &req); err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewAddReviewCommand(actor, req.OrderID, req.MenuItemID, req.Rating, req.Comment)
	if err != nil {
		return s.writeError(c, err)
	}

	r, err := s.handlers.AddReview.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, newReviewResponse(queries.NewReviewView(r)))
}

// ListItemReviews handles GET /api/v1/reviews/{menuItemId}. It is public.
func (s *Server) ListItemReviews(c echo.Context) error {
	menuItemID, err := pathUUID(c, "menuItemId")
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewListItemReviewsQuery(menuItemID)
	if err != nil {
		return s.writeError(c, err)
	}

	res, err := s.handlers.ListItemReviews.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	reviews := make([]ReviewResponse, 0, len(res.Reviews))
	for _, v := range res.Reviews {
		reviews = append(reviews, newReviewResponse(v))
	}
	return c.JSON(http.StatusOK, ItemReviewsResponse{
		MenuItemID:    res.MenuItemID,
		Count:         res.Count,
		AverageRating: res.Average.StringFixed(1),
		Reviews:       reviews,
	})
}
