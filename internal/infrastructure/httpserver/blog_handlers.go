package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scenastudio/site-backend/internal/core/domain/blog"
	"github.com/scenastudio/site-backend/internal/infrastructure/httpserver/helpers"
)

// blogPage serves one page of the public listing. Bad or out-of-range page
// numbers never 404: the view model carries the empty branch to render.
func (s *Server) blogPage(c echo.Context) error {
	page := blog.ParsePage(c.QueryParam("page"))
	view := s.blogSvc.ListPage(c.Request().Context(), page)
	return c.JSON(http.StatusOK, view)
}

// blogPost serves one post by slug. A missing post or a failed fetch both
// redirect to the listing instead of rendering an error page.
func (s *Server) blogPost(c echo.Context) error {
	post, err := s.blogSvc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if !errors.Is(err, blog.ErrNotFound) {
			s.logger.WithError(err).Warn("Blog post fetch failed, redirecting to listing")
		}
		return c.Redirect(http.StatusFound, "/blog")
	}
	return c.JSON(http.StatusOK, post)
}

func (s *Server) createBlogPost(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	var req blog.CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	post, err := s.blogSvc.Create(c.Request().Context(), &req, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

func (s *Server) updateBlogPost(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req blog.UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	post, err := s.blogSvc.Update(c.Request().Context(), id, &req, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, post)
}

func (s *Server) deleteBlogPost(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.blogSvc.Delete(c.Request().Context(), id, token); err != nil {
		return upstreamError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// generateBlogPost asks the remote function to draft a post with its
// configured model.
func (s *Server) generateBlogPost(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	post, err := s.blogSvc.Generate(c.Request().Context(), token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, post)
}
