package handler

import "net/http"

type galleryImageResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Image   string `json:"image"`
	AltText string `json:"alt_text,omitempty"`
}

type teamMemberResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio,omitempty"`
	Photo string `json:"photo,omitempty"`
}

type testimonialResponse struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Location string `json:"location,omitempty"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
}

// listGallery handles GET /api/v1/gallery.
func (h *Handler) listGallery(w http.ResponseWriter, r *http.Request) {
	images, err := h.content.GalleryImages(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]galleryImageResponse, 0, len(images))
	for _, g := range images {
		out = append(out, galleryImageResponse{
			ID:      g.ID,
			Title:   g.Title,
			Image:   h.imageURL(g.Image),
			AltText: g.AltText,
		})
	}
	writeData(w, http.StatusOK, out)
}

// listTeam handles GET /api/v1/team.
func (h *Handler) listTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.content.TeamMembers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]teamMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, teamMemberResponse{
			ID:    m.ID,
			Name:  m.Name,
			Role:  m.Role,
			Bio:   m.Bio,
			Photo: h.imageURL(m.Photo),
		})
	}
	writeData(w, http.StatusOK, out)
}

// listTestimonials handles GET /api/v1/testimonials.
func (h *Handler) listTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.content.Testimonials(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]testimonialResponse, 0, len(testimonials))
	for _, tm := range testimonials {
		out = append(out, testimonialResponse{
			ID:       tm.ID,
			Author:   tm.Author,
			Location: tm.Location,
			Quote:    tm.Quote,
			Rating:   tm.Rating,
		})
	}
	writeData(w, http.StatusOK, out)
}
