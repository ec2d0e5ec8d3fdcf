package http

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"resume-studio/internal/adapter/repository"
	"resume-studio/internal/domain"
	"resume-studio/internal/layout"
	"resume-studio/internal/model"
	"resume-studio/internal/render"
	"resume-studio/internal/template"
	"resume-studio/pkg/ai"
	"resume-studio/pkg/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ResumesRepo interface {
	Save(ctx context.Context, res *domain.Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Resume, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TextGenerator interface {
	GenerateSummary(ctx context.Context, info model.PersonalInfo) (string, error)
	GenerateBullets(ctx context.Context, exp model.Experience) ([]string, error)
	AnalyzeMatch(ctx context.Context, resumeText, jobDescription string) (*ai.MatchAnalysis, error)
}

type Exporter interface {
	Export(ctx context.Context, blocks []layout.Block, def template.Definition, theme model.ResumeTheme, page layout.PageGeometry, title string) ([]byte, string, error)
}

type Handler struct {
	repo     ResumesRepo
	gen      TextGenerator
	exporter Exporter
	seq      *ai.Sequencer
	page     layout.PageGeometry
	log      *logging.Logger
}

func NewHandler(repo ResumesRepo, gen TextGenerator, exporter Exporter, page layout.PageGeometry, log *logging.Logger) *Handler {
	return &Handler{
		repo:     repo,
		gen:      gen,
		exporter: exporter,
		seq:      ai.NewSequencer(),
		page:     page,
		log:      log,
	}
}

func (h *Handler) Routes(app *fiber.App) {
	app.Get("/templates", h.ListTemplates)

	app.Post("/resumes", h.CreateResume)
	app.Get("/resumes", h.ListResumes)
	app.Get("/resumes/:id", h.GetResume)
	app.Put("/resumes/:id", h.UpdateResume)
	app.Delete("/resumes/:id", h.DeleteResume)
	app.Post("/resumes/:id/reorder", h.Reorder)

	app.Get("/resumes/:id/preview", h.Preview)
	app.Get("/resume/view/:id", h.View)
	app.Post("/resumes/:id/export", h.Export)

	app.Post("/resumes/:id/ai/summary", h.AISummary)
	app.Post("/resumes/:id/ai/bullets/:entryID", h.AIBullets)
	app.Post("/resumes/:id/ai/analyze", h.AIAnalyze)
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	out := []fiber.Map{}
	for _, d := range template.All() {
		out = append(out, fiber.Map{
			"id":      d.ID,
			"name":    d.Name,
			"columns": len(d.Columns),
		})
	}
	return c.JSON(out)
}

type resumeReq struct {
	UserID   string          `json:"userId"`
	Title    string          `json:"title"`
	Template string          `json:"template,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	var req resumeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	data := model.NewResumeData()
	if len(req.Data) > 0 {
		data, err = model.DecodeResumeData(req.Data)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		// a supplied payload must pass the schema; a blank draft is always
		// accepted so editing can start from nothing
		if err := model.Validate(data); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}
	tpl := req.Template
	if tpl == "" {
		tpl = data.Theme.Template
	}

	now := time.Now().UTC()
	res := &domain.Resume{
		ID:        uuid.New(),
		UserID:    uid,
		Title:     req.Title,
		Template:  tpl,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.repo.Save(c.UserContext(), res); err != nil {
		h.log.Error("failed to save resume", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save resume"})
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}
	out, err := h.repo.ListByUser(c.UserContext(), uid)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	res, err := h.load(c)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(res)
}

// UpdateResume replaces title, template and data wholesale: the editor
// always sends a complete snapshot, never a partial merge.
func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	res, err := h.load(c)
	if err != nil {
		return h.storeError(c, err)
	}

	var req resumeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if len(req.Data) > 0 {
		data, err := model.DecodeResumeData(req.Data)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if err := model.Validate(data); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		res.Data = data
	}
	if req.Title != "" {
		res.Title = req.Title
	}
	if req.Template != "" {
		res.Template = req.Template
	}

	res.UpdatedAt = time.Now().UTC()
	if err := h.repo.Save(c.UserContext(), res); err != nil {
		h.log.Error("failed to save resume", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save resume"})
	}
	return c.JSON(res)
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return h.storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type reorderReq struct {
	Section string   `json:"section"`
	IDs     []string `json:"ids"`
}

// Reorder applies a permutation-by-id to one collection. The operation
// never changes cardinality or ids; invalid permutations are rejected.
func (h *Handler) Reorder(c *fiber.Ctx) error {
	res, err := h.load(c)
	if err != nil {
		return h.storeError(c, err)
	}

	var req reorderReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	switch req.Section {
	case "education":
		err = res.Data.ReorderEducation(req.IDs)
	case "experience":
		err = res.Data.ReorderExperience(req.IDs)
	case "skills":
		err = res.Data.ReorderSkills(req.IDs)
	case "achievements":
		err = res.Data.ReorderAchievements(req.IDs)
	case "customSections":
		err = res.Data.ReorderCustomSections(req.IDs)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown section"})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res.UpdatedAt = time.Now().UTC()
	if err := h.repo.Save(c.UserContext(), res); err != nil {
		h.log.Error("failed to save resume", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save resume"})
	}
	return c.JSON(res)
}

// layoutResume runs the pure layout pass for a record and logs any unit
// that exceeds a full page (accepted overflow, not fatal).
func (h *Handler) layoutResume(res *domain.Resume) (template.Definition, []layout.Block) {
	def := template.Resolve(template.ID(res.Template))
	blocks := layout.Layout(res.Data, def, h.page)
	for _, b := range blocks {
		if b.Overflows(h.page) {
			h.log.Warn("block taller than page, placed alone with overflow",
				"resume", res.ID.String(), "section", b.Section, "entry", b.EntryID)
		}
	}
	return def, blocks
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	return h.renderHTML(c)
}

// View is the public, read-only rendering entry point. Visual output is
// identical to the editable preview; only surrounding chrome may differ.
func (h *Handler) View(c *fiber.Ctx) error {
	return h.renderHTML(c)
}

func (h *Handler) renderHTML(c *fiber.Ctx) error {
	res, err := h.load(c)
	if err != nil {
		return h.storeError(c, err)
	}

	def, blocks := h.layoutResume(res)
	tree := render.Render(blocks, def, res.Data.Theme, h.page)

	var b strings.Builder
	if err := render.WriteHTML(&b, tree, render.HostOptions{Title: res.Title, Interactive: true}); err != nil {
		h.log.Error("failed to render resume", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to render resume"})
	}
	c.Type("html")
	return c.SendString(b.String())
}

// Export runs the capture pipeline to completion or a single terminal
// failure; a partial document is never returned.
func (h *Handler) Export(c *fiber.Ctx) error {
	res, err := h.load(c)
	if err != nil {
		return h.storeError(c, err)
	}

	def, blocks := h.layoutResume(res)
	artifact, filename, err := h.exporter.Export(c.UserContext(), blocks, def, res.Data.Theme, h.page, res.Title)
	if err != nil {
		h.log.Error("export failed", "resume", res.ID.String(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Type("pdf")
	return c.Send(artifact)
}

func (h *Handler) AISummary(c *fiber.Ctx) error {
	res, err := h.load(c)
	if err != nil {
		return h.storeError(c, err)
	}

	key := "summary:" + res.ID.String()
	token := h.seq.Begin(key)

	summary, err := h.gen.GenerateSummary(c.UserContext(), res.Data.PersonalInfo)
	if err != nil {
		h.log.Warn("summary generation failed", "resume", res.ID.String(), "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "generation failed"})
	}
	if !h.seq.Accept(key, token) {
		// a newer request for this field was issued; discard this result
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "superseded"})
	}

	// re-read the latest snapshot and replace the whole field exactly once
	res, err = h.load(c)
	if err != nil {
		return h.storeError(c, err)
	}
	res.Data.PersonalInfo.Summary = summary
	res.UpdatedAt = time.Now().UTC()
	if err := h.repo.Save(c.UserContext(), res); err != nil {
		h.log.Error("failed to save resume", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save resume"})
	}
	return c.JSON(fiber.Map{"summary": summary})
}

func (h *Handler) AIBullets(c *fiber.Ctx) error {
	res, err := h.load(c)
	if err != nil {
		return h.storeError(c, err)
	}

	entryID := c.Params("entryID")
	entry := findExperience(res.Data, entryID)
	if entry == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "experience entry not found"})
	}

	key := "bullets:" + res.ID.String() + ":" + entryID
	token := h.seq.Begin(key)

	bullets, err := h.gen.GenerateBullets(c.UserContext(), *entry)
	if err != nil {
		h.log.Warn("bullet generation failed", "resume", res.ID.String(), "entry", entryID, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "generation failed"})
	}
	if !h.seq.Accept(key, token) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "superseded"})
	}

	res, err = h.load(c)
	if err != nil {
		return h.storeError(c, err)
	}
	entry = findExperience(res.Data, entryID)
	if entry == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "experience entry not found"})
	}
	entry.Achievements = bullets
	res.UpdatedAt = time.Now().UTC()
	if err := h.repo.Save(c.UserContext(), res); err != nil {
		h.log.Error("failed to save resume", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save resume"})
	}
	return c.JSON(fiber.Map{"achievements": bullets})
}

type analyzeReq struct {
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) AIAnalyze(c *fiber.Ctx) error {
	res, err := h.load(c)
	if err != nil {
		return h.storeError(c, err)
	}

	var req analyzeReq
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.JobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "jobDescription is required"})
	}

	analysis, err := h.gen.AnalyzeMatch(c.UserContext(), res.Data.PlainText(), req.JobDescription)
	if err != nil {
		h.log.Warn("match analysis failed", "resume", res.ID.String(), "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "analysis failed"})
	}
	return c.JSON(analysis)
}

func (h *Handler) load(c *fiber.Ctx) (*domain.Resume, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return h.repo.GetByID(c.UserContext(), id)
}

func (h *Handler) storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	case errors.Is(err, repository.ErrUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "resume store not available"})
	default:
		h.log.Error("store error", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

func findExperience(data *model.ResumeData, id string) *model.Experience {
	for i := range data.Experience {
		if data.Experience[i].ID == id {
			return &data.Experience[i]
		}
	}
	return nil
}
