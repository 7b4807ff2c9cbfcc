package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// imageUploadURL hands out a presigned PUT URL; the client stores the
// returned key as the recipe's imagePath after uploading.
func (s *Server) imageUploadURL(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.images.UploadURL(r.Context(), caller(r), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ok(w, map[string]string{"key": key, "uploadUrl": url})
}

func (s *Server) imageRedirect(w http.ResponseWriter, r *http.Request) {
	url, err := s.images.DownloadURL(r.Context(), caller(r), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}
