// Package http exposes the public portfolio, the published CV and the admin
// CV operations over Fiber.
package http

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/iggarsaudev/career-hub/internal/common"
	"github.com/iggarsaudev/career-hub/internal/domain"
	"github.com/iggarsaudev/career-hub/internal/locale"
	"github.com/iggarsaudev/career-hub/internal/logging"
	"github.com/iggarsaudev/career-hub/internal/usecase"
)

// CVService is the CV pipeline used by the handlers.
type CVService interface {
	Generate(ctx context.Context, lang locale.Lang) (usecase.Rendered, error)
	Preview(ctx context.Context, lang locale.Lang, w io.Writer) (string, error)
	Publish(ctx context.Context, pdf []byte) (domain.PublishAck, error)
	GenerateAndPublish(ctx context.Context, lang locale.Lang) (domain.PublishAck, error)
	Retrieve(ctx context.Context) (usecase.Published, error)
}

// SiteService serves the public portfolio content.
type SiteService interface {
	View(ctx context.Context, lang locale.Lang) (usecase.SiteView, error)
	Profile(ctx context.Context, lang locale.Lang) (usecase.ProfileView, error)
	Projects(ctx context.Context, lang locale.Lang) ([]usecase.ProjectView, error)
	Experience(ctx context.Context, lang locale.Lang) ([]usecase.ExperienceView, error)
	Education(ctx context.Context, lang locale.Lang) ([]usecase.EducationView, error)
	Skills(ctx context.Context, lang locale.Lang) ([]usecase.SkillGroup, error)
	Languages(ctx context.Context, lang locale.Lang) ([]usecase.LanguageView, error)
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type Handler struct {
	cv      CVService
	site    SiteService
	auth    Authenticator
	log     logging.Logger
	timeout time.Duration
}

// NewHandler wires the handlers. timeout bounds the CV generation requests.
func NewHandler(cv CVService, site SiteService, auth Authenticator, log logging.Logger, timeout time.Duration) *Handler {
	return &Handler{cv: cv, site: site, auth: auth, log: log, timeout: timeout}
}

func requestLang(c *fiber.Ctx) locale.Lang {
	return locale.Pick(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
}

func (h *Handler) renderContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string `json:"token"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid payload")
	}
	token, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return h.fail(c, "login", err)
	}
	return JSON(c, fiber.StatusOK, loginResp{Token: token})
}

func (h *Handler) Site(c *fiber.Ctx) error {
	v, err := h.site.View(c.UserContext(), requestLang(c))
	if err != nil {
		return h.fail(c, "site", err)
	}
	return JSON(c, fiber.StatusOK, v)
}

func (h *Handler) Profile(c *fiber.Ctx) error {
	v, err := h.site.Profile(c.UserContext(), requestLang(c))
	if err != nil {
		if errors.Is(err, common.ErrMissingProfile) {
			return Error(c, fiber.StatusNotFound, "profile not found")
		}
		return h.fail(c, "profile", err)
	}
	return JSON(c, fiber.StatusOK, v)
}

// collection adapts a per-collection Site method to a handler.
func collection[T any](h *Handler, route string, fn func(context.Context, locale.Lang) ([]T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := fn(c.UserContext(), requestLang(c))
		if err != nil {
			return h.fail(c, route, err)
		}
		return JSON(c, fiber.StatusOK, v)
	}
}

func (h *Handler) Projects() fiber.Handler {
	return collection(h, "projects", h.site.Projects)
}

func (h *Handler) Experience() fiber.Handler {
	return collection(h, "experience", h.site.Experience)
}

func (h *Handler) Education() fiber.Handler {
	return collection(h, "education", h.site.Education)
}

func (h *Handler) Skills() fiber.Handler {
	return collection(h, "skills", h.site.Skills)
}

func (h *Handler) Languages() fiber.Handler {
	return collection(h, "languages", h.site.Languages)
}

// GetCV serves the published CV as a download.
func (h *Handler) GetCV(c *fiber.Ctx) error {
	pub, err := h.cv.Retrieve(c.UserContext())
	if err != nil {
		return h.fail(c, "cv", err)
	}
	c.Attachment(pub.FileName)
	c.Type("pdf")
	return c.Send(pub.Data)
}

type publishResp struct {
	Message     string    `json:"message"`
	URL         string    `json:"url"`
	Size        int       `json:"size"`
	PublishedAt time.Time `json:"publishedAt"`
}

func published(ack domain.PublishAck) publishResp {
	return publishResp{Message: "CV published", URL: "/api/cv", Size: ack.Size, PublishedAt: ack.PublishedAt}
}

// UploadCV publishes a client-rendered PDF sent as multipart field "file".
func (h *Handler) UploadCV(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "missing file")
	}
	f, err := fh.Open()
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "unreadable file")
	}
	defer f.Close()
	pdf, err := io.ReadAll(f)
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "unreadable file")
	}

	ack, err := h.cv.Publish(c.UserContext(), pdf)
	if err != nil {
		return h.fail(c, "cv upload", err)
	}
	return JSON(c, fiber.StatusOK, published(ack))
}

// PublishCV renders the CV server-side and publishes it.
func (h *Handler) PublishCV(c *fiber.Ctx) error {
	ctx, cancel := h.renderContext(c)
	defer cancel()
	ack, err := h.cv.GenerateAndPublish(ctx, requestLang(c))
	if err != nil {
		return h.fail(c, "cv publish", err)
	}
	return JSON(c, fiber.StatusOK, published(ack))
}

// DownloadCV renders the CV and sends it without storing it.
func (h *Handler) DownloadCV(c *fiber.Ctx) error {
	ctx, cancel := h.renderContext(c)
	defer cancel()
	r, err := h.cv.Generate(ctx, requestLang(c))
	if err != nil {
		return h.fail(c, "cv download", err)
	}
	c.Attachment(r.FileName)
	c.Type("pdf")
	return c.Send(r.Data)
}

// PreviewCV streams the rendered CV inline. The status is chosen once the
// renderer produces its first bytes, so early failures still map to an error
// response; a failure mid-stream aborts the body.
func (h *Handler) PreviewCV(c *fiber.Ctx) error {
	ctx, cancel := h.renderContext(c)
	lang := requestLang(c)
	pr, pw := io.Pipe()
	w := &firstWriteWriter{w: pw, first: make(chan struct{})}
	done := make(chan error, 1)

	go func() {
		defer cancel()
		_, err := h.cv.Preview(ctx, lang, w)
		pw.CloseWithError(err)
		done <- err
	}()

	select {
	case <-w.first:
		c.Type("pdf")
		c.Set(fiber.HeaderContentDisposition, "inline")
		return c.SendStream(pr)
	case err := <-done:
		if err == nil {
			err = common.ErrRenderFailure
		}
		return h.fail(c, "cv preview", err)
	}
}

// firstWriteWriter signals before its first write reaches w.
type firstWriteWriter struct {
	w     io.Writer
	once  sync.Once
	first chan struct{}
}

func (f *firstWriteWriter) Write(p []byte) (int, error) {
	f.once.Do(func() { close(f.first) })
	return f.w.Write(p)
}
