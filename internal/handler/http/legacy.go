package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/everhold/everhold/internal/app"
	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/service"
	"github.com/everhold/everhold/internal/utils"
	"github.com/everhold/everhold/models"
)

// maxMultipartMemory caps how much of a multipart submission is held in
// memory before the parser spills file parts to disk.
const maxMultipartMemory = 32 << 20

func (h *Handler) createPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clerkID, ok := utils.GetClerkIDFromContext(ctx)
	if !ok {
		h.respondError(w, r, service.ErrNoSession)
		return
	}

	submission, ok := h.materializeRequest(w, r)
	if !ok {
		return
	}

	agg, err := h.services.PageService.CreatePage(ctx, clerkID, submission)
	if err != nil {
		log.Err(err).Str("slug", submission.Slug).Msg("page creation failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PageResponse{Success: true, Data: &agg}, http.StatusOK)
}

func (h *Handler) checkPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clerkID, ok := utils.GetClerkIDFromContext(ctx)
	if !ok {
		h.respondError(w, r, service.ErrNoSession)
		return
	}

	check, err := h.services.PageService.CheckUserPage(ctx, clerkID)
	if err != nil {
		log.Err(err).Msg("page ownership check failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, check, http.StatusOK)
}

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	agg, err := h.services.PageService.GetPage(ctx, slug)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("page load failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, agg, http.StatusOK)
}

func (h *Handler) updatePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clerkID, ok := utils.GetClerkIDFromContext(ctx)
	if !ok {
		h.respondError(w, r, service.ErrNoSession)
		return
	}
	slug := chi.URLParam(r, "slug")

	submission, ok := h.materializeRequest(w, r)
	if !ok {
		return
	}

	agg, err := h.services.PageService.UpdatePage(ctx, clerkID, slug, submission)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("page update failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PageResponse{Success: true, Data: &agg}, http.StatusOK)
}

func (h *Handler) deletePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clerkID, ok := utils.GetClerkIDFromContext(ctx)
	if !ok {
		h.respondError(w, r, service.ErrNoSession)
		return
	}
	slug := chi.URLParam(r, "slug")

	if err := h.services.PageService.DeletePage(ctx, clerkID, slug); err != nil {
		log.Err(err).Str("slug", slug).Msg("page deletion failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PageResponse{Success: true}, http.StatusOK)
}

// materializeRequest parses the request's multipart body and materializes
// it into a typed submission. On failure it writes the error response and
// returns ok=false.
func (h *Handler) materializeRequest(w http.ResponseWriter, r *http.Request) (models.PageSubmission, bool) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidMultipartForm}, http.StatusBadRequest)
		return models.PageSubmission{}, false
	}

	submission, err := h.materializer.Materialize(r.MultipartForm)
	if err != nil {
		log.Err(err).Msg("form materialization failed")
		h.respondError(w, r, err)
		return models.PageSubmission{}, false
	}

	return submission, true
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	utils.WriteJSON(w, models.ErrorResponse{Error: publicErrorMessage(err, status)}, status)
}
