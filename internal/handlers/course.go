package handlers

import (
	"net/http"

	"github.com/abrezinsky/pubgolf/internal/services"
)

// ==================== Pubs ====================

func (h *Handlers) handleGetPubs(w http.ResponseWriter, r *http.Request) {
	pubs, err := h.Pub.ListPubs(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, pubs)
}

// ==================== Courses ====================

func (h *Handlers) handleGetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.Course.ListCourses(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, courses)
}

func (h *Handlers) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	course, err := h.Course.GetCourse(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, course)
}

func (h *Handlers) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var req CourseCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	course, err := h.Course.CreateCourse(r.Context(), services.CourseDraft{
		Name:   req.Name,
		PubIDs: req.PubIDs,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, course)
}

func (h *Handlers) handleGenerateCourse(w http.ResponseWriter, r *http.Request) {
	var req CourseGenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	course, err := h.Course.GenerateCourse(r.Context(), req.Holes, req.MaxDistance)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, course)
}
