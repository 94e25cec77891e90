package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scenastudio/site-backend/internal/core/domain/course"
	"github.com/scenastudio/site-backend/internal/core/domain/media"
	"github.com/scenastudio/site-backend/internal/infrastructure/httpserver/helpers"
)

func (s *Server) listGallery(c echo.Context) error {
	images, err := s.mediaSvc.GalleryImages(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, images)
}

func (s *Server) listReviews(c echo.Context) error {
	reviews, err := s.mediaSvc.Reviews(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (s *Server) listFAQ(c echo.Context) error {
	faq, err := s.mediaSvc.FAQ(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, faq)
}

func (s *Server) listTeam(c echo.Context) error {
	team, err := s.mediaSvc.Team(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, team)
}

// listModules serves course modules, optionally filtered by course type.
func (s *Server) listModules(c echo.Context) error {
	ctx := c.Request().Context()
	if courseType := c.QueryParam("course_type"); courseType != "" {
		modules, err := s.mediaSvc.ModulesByCourse(ctx, courseType)
		if err != nil {
			return upstreamError(err)
		}
		return c.JSON(http.StatusOK, modules)
	}
	modules, err := s.mediaSvc.Modules(ctx)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, modules)
}

func (s *Server) createGalleryImage(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	var img media.GalleryImage
	if err := c.Bind(&img); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	created, err := s.mediaSvc.CreateGalleryImage(c.Request().Context(), &img, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateGalleryImage(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var img media.GalleryImage
	if err := c.Bind(&img); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	img.ID = id
	updated, err := s.mediaSvc.UpdateGalleryImage(c.Request().Context(), &img, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteGalleryImage(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.mediaSvc.DeleteGalleryImage(c.Request().Context(), id, token); err != nil {
		return upstreamError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) createReview(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	var r media.Review
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	created, err := s.mediaSvc.CreateReview(c.Request().Context(), &r, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateReview(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var r media.Review
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	r.ID = id
	updated, err := s.mediaSvc.UpdateReview(c.Request().Context(), &r, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteReview(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.mediaSvc.DeleteReview(c.Request().Context(), id, token); err != nil {
		return upstreamError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) createFAQ(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	var f media.FAQ
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	created, err := s.mediaSvc.CreateFAQ(c.Request().Context(), &f, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateFAQ(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var f media.FAQ
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	f.ID = id
	updated, err := s.mediaSvc.UpdateFAQ(c.Request().Context(), &f, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteFAQ(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.mediaSvc.DeleteFAQ(c.Request().Context(), id, token); err != nil {
		return upstreamError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) createTeamMember(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	var m media.TeamMember
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	created, err := s.mediaSvc.CreateTeamMember(c.Request().Context(), &m, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateTeamMember(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var m media.TeamMember
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	m.ID = id
	updated, err := s.mediaSvc.UpdateTeamMember(c.Request().Context(), &m, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteTeamMember(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.mediaSvc.DeleteTeamMember(c.Request().Context(), id, token); err != nil {
		return upstreamError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) createModule(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	var m course.Module
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	created, err := s.mediaSvc.CreateModule(c.Request().Context(), &m, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateModule(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var m course.Module
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	m.ID = id
	updated, err := s.mediaSvc.UpdateModule(c.Request().Context(), &m, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteModule(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.mediaSvc.DeleteModule(c.Request().Context(), id, token); err != nil {
		return upstreamError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
