package slacklet

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mattjoyce/slacklet/internal/log"
	"github.com/mattjoyce/slacklet/payload"
	"github.com/mattjoyce/slacklet/slackclient"
)

const (
	// maxBodySize caps inbound payload bodies.
	maxBodySize = 1 << 20 // 1 MiB

	// retryNumHeader marks a retried Slack delivery.
	retryNumHeader = "X-Slack-Retry-Num"
)

// Args is the typed context passed to every handler. App, Payload, Client,
// Request, and Dispatch are always set; the per-category fields are only
// set for the matching payload category.
type Args struct {
	App      *App
	Payload  *payload.Payload
	Client   slackclient.API
	Request  *http.Request
	Dispatch *DispatchContext

	// Events.
	Event     *payload.Event
	EventType string
	UserID    string
	ChannelID string

	// Slash commands.
	Command string
	Text    string

	// Interactivity.
	Action *payload.Action
}

type ackResponse struct {
	OK bool `json:"ok"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Router builds the HTTP handler serving the payload routes under the
// configured prefix, plus /healthz.
func (a *App) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(a.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Route(a.cfg.PathPrefix, func(r chi.Router) {
		r.Post("/events", a.handleEvents)
		r.Post("/command", a.handleCommand)
		r.Post("/interactivity", a.handleInteractivity)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		a.respondJSON(w, http.StatusOK, ackResponse{OK: true})
	})

	return r
}

func (a *App) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		a.logger.Info("payload request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// handleEvents receives Events API envelopes. url_verification payloads are
// answered synchronously; everything else is acknowledged and dispatched in
// the background.
func (a *App) handleEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := a.readBody(w, r)
	if !ok {
		return
	}

	p, err := payload.Parse(body)
	if err != nil {
		a.respondError(w, http.StatusBadRequest, "malformed payload")
		return
	}

	if p.Type == payload.TypeURLVerification {
		a.respondJSON(w, http.StatusOK, map[string]string{"challenge": p.Challenge})
		return
	}

	if p.Event == nil || p.Event.Type == "" {
		a.respondError(w, http.StatusBadRequest, "missing event")
		return
	}

	a.ack(w)
	go a.dispatch(context.Background(), CategoryEvents, p.Event.Type, p, r)
}

// handleCommand receives slash commands, either as the JSON payload schema
// or as the form encoding Slack uses on the wire.
func (a *App) handleCommand(w http.ResponseWriter, r *http.Request) {
	var p *payload.Payload
	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			a.respondError(w, http.StatusBadRequest, "malformed form body")
			return
		}
		p = payload.FromForm(r.PostForm)
	} else {
		body, ok := a.readBody(w, r)
		if !ok {
			return
		}
		parsed, err := payload.Parse(body)
		if err != nil {
			a.respondError(w, http.StatusBadRequest, "malformed payload")
			return
		}
		p = parsed
	}

	if p.Command == "" {
		a.respondError(w, http.StatusBadRequest, "missing command")
		return
	}

	a.ack(w)
	go a.dispatch(context.Background(), CategoryCommand, p.Command, p, r)
}

// handleInteractivity receives interactive-component payloads, either as
// the JSON payload schema or wrapped in a form "payload" field as Slack
// sends them.
func (a *App) handleInteractivity(w http.ResponseWriter, r *http.Request) {
	var raw []byte
	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			a.respondError(w, http.StatusBadRequest, "malformed form body")
			return
		}
		raw = []byte(r.PostForm.Get("payload"))
	} else {
		body, ok := a.readBody(w, r)
		if !ok {
			return
		}
		raw = body
	}

	p, err := payload.Parse(raw)
	if err != nil {
		a.respondError(w, http.StatusBadRequest, "malformed payload")
		return
	}

	action := p.FirstAction()
	if action == nil || action.ActionID == "" {
		a.respondError(w, http.StatusBadRequest, "missing action")
		return
	}

	a.ack(w)
	go a.dispatch(context.Background(), CategoryInteractivity, action.ActionID, p, r)
}

// dispatch runs the callback pipeline for one acknowledged payload. It runs
// in its own goroutine, decoupled from the request/response cycle: the
// webhook caller has already received its acknowledgement, and handler
// execution is best-effort.
func (a *App) dispatch(ctx context.Context, category Category, name string, p *payload.Payload, r *http.Request) {
	dc := newDispatchContext()
	logger := log.WithDispatch(dc.ID).With("category", string(category), "name", name)

	ev := &HookEvent{
		App:      a,
		Category: category,
		Key:      name,
		Payload:  p,
		Request:  r,
		Dispatch: dc,
	}

	handler := a.registry.Get(category, name)
	if handler == nil {
		logger.Debug("no handler registered")
		if err := a.hooks.Emit(ctx, HookUnhandled, ev); err != nil {
			logger.Error("unhandled hook failed", "error", err)
		}
		return
	}

	if err := a.preHandle(ctx, ev); err != nil {
		logger.Error("pre-handle hook failed", "error", err)
		return
	}
	if dc.Skipped() {
		logger.Debug("dispatch skipped", "reason", dc.Reason())
		return
	}

	args := a.buildArgs(category, p, r, dc)
	if err := handler(ctx, args); err != nil {
		ev.Err = err
		if herr := a.hooks.Emit(ctx, HookError, ev); herr != nil {
			logger.Error("error hook failed", "error", herr)
		}
		logger.Error("handler failed", "error", err)
		return
	}

	if dc.Skipped() {
		logger.Debug("post-handle skipped", "reason", dc.Reason())
		return
	}
	if err := a.hooks.Emit(ctx, HookPostHandle, ev); err != nil {
		logger.Error("post-handle hook failed", "error", err)
	}
}

// preHandle applies the process-wide skip filters, then emits the
// pre-handle hook (which may itself request a skip). Filters that match
// request a skip without emitting the hook.
func (a *App) preHandle(ctx context.Context, ev *HookEvent) error {
	p, dc := ev.Payload, ev.Dispatch

	if a.cfg.IgnoreBotEvents && p.FromBotID() {
		dc.Skip("ignoring bot events")
		return nil
	}
	if a.cfg.IgnoreRetryEvents && ev.Request != nil && ev.Request.Header.Get(retryNumHeader) != "" {
		dc.Skip("ignoring retried delivery")
		return nil
	}
	if ev.Category == CategoryEvents && a.cfg.AppUserID != "" &&
		p.Event != nil && p.Event.User == a.cfg.AppUserID {
		dc.Skip("own bot user")
		return nil
	}

	return a.hooks.Emit(ctx, HookPreHandle, ev)
}

func (a *App) buildArgs(category Category, p *payload.Payload, r *http.Request, dc *DispatchContext) *Args {
	args := &Args{
		App:      a,
		Payload:  p,
		Client:   a.client,
		Request:  r,
		Dispatch: dc,
	}
	switch category {
	case CategoryEvents:
		args.Event = p.Event
		args.EventType = p.Event.Type
		args.UserID = p.Event.User
		args.ChannelID = p.Event.Channel
	case CategoryCommand:
		args.Command = p.Command
		args.Text = p.Text
		args.UserID = p.UserID
		args.ChannelID = p.ChannelID
	case CategoryInteractivity:
		args.Action = p.FirstAction()
		args.UserID = p.UserID
		args.ChannelID = p.ChannelID
	}
	return args
}

func (a *App) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		a.respondError(w, http.StatusInternalServerError, "failed to read request body")
		return nil, false
	}
	if len(body) > maxBodySize {
		a.respondError(w, http.StatusRequestEntityTooLarge, "payload too large")
		return nil, false
	}
	return body, true
}

func isForm(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}

// ack sends the immediate acknowledgement. It always succeeds from the
// webhook caller's point of view, regardless of downstream handler outcome.
func (a *App) ack(w http.ResponseWriter) {
	a.respondJSON(w, http.StatusOK, ackResponse{OK: true})
}

func (a *App) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (a *App) respondError(w http.ResponseWriter, status int, message string) {
	a.respondJSON(w, status, errorResponse{Error: message})
}
