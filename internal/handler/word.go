package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"wordbook/internal/domain"

	"go.uber.org/zap"
)

// Client-facing messages; storage causes are only logged
const (
	msgFetchFailed  = "Failed to fetch words"
	msgInsertFailed = "Failed to insert word"
	msgBadRequest   = "Invalid request body"
	msgTooLarge     = "Request body too large"
)

// addWordRequest uses pointers so an absent field can be told from an empty one
type addWordRequest struct {
	Word    *string `json:"word"`
	Meaning *string `json:"meaning"`
}

// handleListWords returns every entry as a JSON array
func (h *Handler) handleListWords(w http.ResponseWriter, r *http.Request) {
	words, err := h.wordService.ListWords(r.Context())
	if err != nil {
		h.logger.Error("Failed to list words",
			zap.Error(err),
			zap.Bool("storage_error", domain.IsStorageError(err)),
		)
		http.Error(w, msgFetchFailed, http.StatusInternalServerError)
		return
	}

	body, err := json.Marshal(words)
	if err != nil {
		h.logger.Error("Failed to encode words", zap.Error(err))
		http.Error(w, msgFetchFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// handleAddWord stores one entry from a {"word", "meaning"} body
func (h *Handler) handleAddWord(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)

	if err := checkJSONContentType(r.Header.Get("Content-Type")); err != nil {
		h.logger.Debug("Rejected request content type", zap.Error(err))
		http.Error(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	entry, err := decodeWordEntry(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, msgTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.Debug("Rejected malformed request", zap.Error(err))
		http.Error(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	h.logger.Info("add_word",
		zap.String("word", entry.Word),
		zap.String("meaning", entry.Meaning),
	)

	if err := h.wordService.AddWord(r.Context(), entry); err != nil {
		h.logger.Error("Failed to insert word",
			zap.Error(err),
			zap.Bool("storage_error", domain.IsStorageError(err)),
			zap.String("word", entry.Word),
		)
		http.Error(w, msgInsertFailed, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// checkJSONContentType accepts any media type with a json subtype or a +json suffix
func checkJSONContentType(value string) error {
	if value == "" {
		return fmt.Errorf("%w: missing content type", domain.ErrMalformedRequest)
	}
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedRequest, err)
	}
	_, subtype, _ := strings.Cut(mediaType, "/")
	if subtype != "json" && !strings.HasSuffix(subtype, "+json") {
		return fmt.Errorf("%w: content type %s is not json", domain.ErrMalformedRequest, mediaType)
	}
	return nil
}

// decodeWordEntry reads exactly one JSON object carrying both fields as strings.
// Invalid UTF-8 is rejected rather than replaced.
func decodeWordEntry(body io.Reader) (domain.WordEntry, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return domain.WordEntry{}, fmt.Errorf("%w: %w", domain.ErrMalformedRequest, err)
	}
	if !utf8.Valid(raw) {
		return domain.WordEntry{}, fmt.Errorf("%w: body is not valid UTF-8", domain.ErrMalformedRequest)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))

	var req addWordRequest
	if err := dec.Decode(&req); err != nil {
		return domain.WordEntry{}, fmt.Errorf("%w: %w", domain.ErrMalformedRequest, err)
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("trailing data after JSON object")
		}
		return domain.WordEntry{}, fmt.Errorf("%w: %w", domain.ErrMalformedRequest, err)
	}

	if req.Word == nil {
		return domain.WordEntry{}, fmt.Errorf("%w: missing field word", domain.ErrMalformedRequest)
	}
	if req.Meaning == nil {
		return domain.WordEntry{}, fmt.Errorf("%w: missing field meaning", domain.ErrMalformedRequest)
	}

	return domain.WordEntry{Word: *req.Word, Meaning: *req.Meaning}, nil
}
