package httpapi

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/StungEye-RRC/boredgamegeek/internal/domain/game"
	"github.com/StungEye-RRC/boredgamegeek/internal/platform/logging"
	"github.com/StungEye-RRC/boredgamegeek/internal/usecase"
)

const (
	maxBodyBytes   = 1 << 20
	formURLEncoded = "application/x-www-form-urlencoded"
	formMultipart  = "multipart/form-data"
)

var errUnsupportedMediaType = errors.New("unsupported media type")

type Handler struct {
	gameService *usecase.GameService
	logger      *logging.Logger
	validator   *validator.Validate
}

func NewHandler(gameService *usecase.GameService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		gameService: gameService,
		logger:      logger,
		validator:   validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	items, err := h.gameService.ListGames(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list games failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]gameDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toGameDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	id, err := pathGameID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.GetGame(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get game failed", "game_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toGameDTO(item))
}

// NewGameForm returns the field values an empty new-game form is rendered with.
func (h *Handler) NewGameForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NewGameForm")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, toFormValues(h.gameService.BlankGame()))
}

func (h *Handler) SubmitGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitGame")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := parseSubmittedForm(r); err != nil {
		writeError(ctx, w, err)
		return
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	raw := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			raw[key] = values[0]
		}
	}

	result, err := h.gameService.SubmitGame(ctx, raw)
	if err != nil {
		h.logger.WarnContext(ctx, "submit game failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
		w.Header().Set("Location", "/v1/games/"+strconv.FormatInt(result.Game.ID, 10))
	}
	writeSuccess(ctx, w, status, toGameDTO(result.Game))
}

func (h *Handler) PatchGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PatchGame")
	defer span.End()

	id, err := pathGameID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req patchGameRequest
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.PatchGame(ctx, id, req.rawFields())
	if err != nil {
		h.logger.WarnContext(ctx, "patch game failed", "game_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toGameDTO(item))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// parseSubmittedForm fills r.PostForm from a url-encoded or multipart body.
func parseSubmittedForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var err error
	switch mediaType {
	case formURLEncoded:
		err = r.ParseForm()
	case formMultipart:
		err = r.ParseMultipartForm(maxBodyBytes)
	default:
		return fmt.Errorf("%w: got %q, want %s or %s", errUnsupportedMediaType, mediaType, formURLEncoded, formMultipart)
	}
	if err != nil {
		return fmt.Errorf("%w: invalid form body: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathGameID(r *http.Request) (int64, error) {
	id, err := game.ParseID(r.PathValue("gameID"))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return id, nil
}
