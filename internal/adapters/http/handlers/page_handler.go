package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/agecalc/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agecalc/internal/adapters/http/web"
	"github.com/jsamuelsen11/agecalc/internal/domain/age"
	"github.com/jsamuelsen11/agecalc/internal/platform/logging"
	"github.com/jsamuelsen11/agecalc/internal/ports"
)

// PageRenderer writes the HTML page.
type PageRenderer interface {
	Render(w io.Writer, p web.Page) error
}

// PageHandler serves the server-rendered form.
type PageHandler struct {
	svc      ports.AgeService
	renderer PageRenderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(svc ports.AgeService, renderer PageRenderer) *PageHandler {
	return &PageHandler{svc: svc, renderer: renderer}
}

// Show handles GET /: the blank form with placeholder results.
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, web.NewPage(h.svc.Blank(), false, age.Elapsed{}, false))
}

// Submit handles POST / with form-encoded day, month and year. The page is
// re-rendered with the submitted values and either inline messages or the
// result.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBodyBytes)
	if err := r.ParseForm(); err != nil {
		dto.WriteProblem(w, r, errMalformedForm)
		return
	}

	sub, err := h.svc.Submit(r.Context(), ports.AgeInput{
		Day:   r.PostFormValue(age.FieldDay.String()),
		Month: r.PostFormValue(age.FieldMonth.String()),
		Year:  r.PostFormValue(age.FieldYear.String()),
	})
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	result, ok := sub.Result()
	h.render(w, r, web.NewPage(sub.Fields(), sub.HasErrors(), result, ok))
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, p web.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, p); err != nil {
		dto.WriteProblem(w, r, fmt.Errorf("rendering page: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context()).DebugContext(r.Context(), "page write aborted", slog.Any("error", err))
	}
}
