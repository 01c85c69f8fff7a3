// Package httpapi exposes a study session over JSON. Each browser gets a
// session cookie; state lives in a session.Store for the life of the
// process.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/studyhub/internal/navigation"
	"github.com/abhisek/studyhub/internal/session"
)

const (
	SessionCookie = "studyhub_session"
	sessionKey    = "session_id"
	xlsxMIME      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Handler serves the study API for every browser session.
type Handler struct {
	ctrl     *navigation.Controller
	sessions *session.Store
	ttl      time.Duration
	logger   *zap.Logger
}

// NewHandler creates a Handler. ttl sets the cookie lifetime and should
// match the store's.
func NewHandler(ctrl *navigation.Controller, sessions *session.Store, ttl time.Duration, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{ctrl: ctrl, sessions: sessions, ttl: ttl, logger: logger}
}

// Router builds the gin engine with every route registered.
func (h *Handler) Router() *gin.Engine {
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(h.logger))

	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	v1.Use(h.withSession)
	{
		v1.GET("/state", h.GetState)
		v1.PUT("/page", h.SelectPage)
		v1.GET("/guide", h.GetGuide)

		cards := v1.Group("/flashcards")
		{
			cards.POST("/next", h.simple(navigation.NextCard))
			cards.POST("/prev", h.simple(navigation.PrevCard))
			cards.POST("/reveal", h.simple(navigation.ToggleReveal))
		}

		practice := v1.Group("/practice")
		{
			practice.POST("/question", h.NewQuestion)
			practice.POST("/answer", h.answer(navigation.AnswerPractice))
		}

		test := v1.Group("/test")
		{
			test.POST("/start", h.StartTest)
			test.POST("/answer", h.answer(navigation.AnswerTest))
			test.GET("/result", h.GetResult)
			test.GET("/result.xlsx", h.ExportResult)
		}

		timed := v1.Group("/timed")
		{
			timed.POST("/start", h.simple(navigation.StartTimed))
			timed.POST("/answer", h.answer(navigation.AnswerTimed))
		}
	}

	return router
}

// HealthCheck handles GET /health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// withSession attaches the session id, issuing a new cookie when the
// request has none or an unparseable one.
func (h *Handler) withSession(c *gin.Context) {
	id, err := c.Cookie(SessionCookie)
	if err != nil || uuid.Validate(id) != nil {
		id = uuid.NewString()
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id, int(h.ttl.Seconds()), "/", "", false, true)
	c.Set(sessionKey, id)
	c.Next()
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// GetState handles GET /api/v1/state
func (h *Handler) GetState(c *gin.Context) {
	st := h.sessions.Get(sessionID(c))
	c.JSON(http.StatusOK, h.ctrl.View(st))
}

// GetGuide handles GET /api/v1/guide
func (h *Handler) GetGuide(c *gin.Context) {
	lib := h.ctrl.Library()
	c.JSON(http.StatusOK, gin.H{"topic": lib.Topic, "markdown": lib.Guide})
}

// SelectPage handles PUT /api/v1/page
func (h *Handler) SelectPage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	h.dispatch(c, navigation.Action{Kind: navigation.SelectPage, Page: session.Page(req.Page)})
}

// NewQuestion handles POST /api/v1/practice/question. The body is optional.
func (h *Handler) NewQuestion(c *gin.Context) {
	var req QuestionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}
	h.dispatch(c, navigation.Action{Kind: navigation.NewQuestion, UseExternal: req.UseExternal})
}

// StartTest handles POST /api/v1/test/start. An absent count uses the
// default size.
func (h *Handler) StartTest(c *gin.Context) {
	var req StartTestRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}
	h.dispatch(c, navigation.Action{Kind: navigation.StartTest, Count: req.Count})
}

// GetResult handles GET /api/v1/test/result
func (h *Handler) GetResult(c *gin.Context) {
	res, ok := h.ctrl.Result(h.sessions.Get(sessionID(c)))
	if !ok {
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Finish the practice test to see your results.",
			Code:    "test_not_complete",
		})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ExportResult handles GET /api/v1/test/result.xlsx
func (h *Handler) ExportResult(c *gin.Context) {
	res, ok := h.ctrl.Result(h.sessions.Get(sessionID(c)))
	if !ok {
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Finish the practice test to export the review.",
			Code:    "test_not_complete",
		})
		return
	}
	data, err := ReviewWorkbook(res)
	if err != nil {
		h.logger.Error("export review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "could not build the review sheet", Code: "export_failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="practice-test-review.xlsx"`)
	c.Data(http.StatusOK, xlsxMIME, data)
}

func (h *Handler) simple(kind navigation.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.dispatch(c, navigation.Action{Kind: kind})
	}
}

func (h *Handler) answer(kind navigation.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnswerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		h.dispatch(c, navigation.Action{Kind: kind, Option: *req.Option})
	}
}

// dispatch applies a to the caller's session under its lock and writes the
// outcome together with the resulting view.
func (h *Handler) dispatch(c *gin.Context, a navigation.Action) {
	var out navigation.Outcome
	st := h.sessions.Update(sessionID(c), func(st session.State) session.State {
		var next session.State
		next, out = h.ctrl.Dispatch(c.Request.Context(), st, a)
		return next
	})

	if out.Err != nil {
		h.logger.Debug("action rejected",
			zap.String("action", string(a.Kind)),
			zap.String("code", out.Code()),
			zap.Error(out.Err))
	}

	c.JSON(statusFor(out), ActionResponse{
		Status:  out.Status,
		Code:    out.Code(),
		Message: out.Message,
		Verdict: navigation.NewVerdictView(out.Verdict),
		View:    h.ctrl.View(st),
	})
}
