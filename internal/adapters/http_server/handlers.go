// internal/adapters/http_server/handlers.go
package httpserver

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"lounge_finder/internal/app"
	"lounge_finder/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"highlighted": func(res domain.SearchResult, id int) bool {
		return res.Highlight != nil && res.Highlight.LoungeID == id
	},
}).ParseFS(templateFS, "templates/index.html"))

type Handlers struct{ S *app.SearchService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.page)
	s.mux.Get("/api/lounges", h.listLounges)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func queryFrom(r *http.Request) domain.SearchQuery {
	v := r.URL.Query()
	return app.NormalizeQuery(v.Get("place"), v.Get("date"), v.Get("time"), v.Get("flight"))
}

func (h *Handlers) page(w http.ResponseWriter, r *http.Request) {
	res := h.S.Search(r.Context(), queryFrom(r))

	// render fully before writing so a template error can still become a 500
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, res); err != nil {
		log.Error().Err(err).Msg("render index failed")
		writeProblem(w, http.StatusInternalServerError, "Render Failed", "could not render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Msg("failed to write page body")
	}
}

func (h *Handlers) listLounges(w http.ResponseWriter, r *http.Request) {
	res := h.S.Search(r.Context(), queryFrom(r))

	body, err := json.Marshal(res)
	if err != nil {
		log.Error().Err(err).Msg("marshal search result failed")
		writeProblem(w, http.StatusInternalServerError, "Encoding Failed", "could not encode result")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listLounges body")
	}
}
