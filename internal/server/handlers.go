package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/agbru/fibheap/internal/apperrors"
	"github.com/agbru/fibheap/internal/heap"
)

// ErrorResponse is the standard error body returned by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// allocateRequest is the body of POST /allocate.
type allocateRequest struct {
	Name   string `json:"name"`
	Size   int    `json:"size"`
	IsRoot bool   `json:"is_root"`
}

// freeRequest is the body of POST /free.
type freeRequest struct {
	Name string `json:"name"`
}

// referenceRequest is the body of POST /reference.
type referenceRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Action string `json:"action"`
}

// rootRequest is the body of POST /root.
type rootRequest struct {
	Name   string `json:"name"`
	IsRoot bool   `json:"is_root"`
}

// collectResponse is the body returned by POST /collect.
type collectResponse struct {
	FreedCount int `json:"freed_count"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSONResponse(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

func (s *Server) handleAllocate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req allocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if s.securityConfig.MaxAllocationSize > 0 && req.Size > s.securityConfig.MaxAllocationSize {
		s.writeErrorResponse(w, http.StatusBadRequest, "requested size exceeds the configured maximum")
		return
	}

	var block heap.BlockView
	var err error
	s.submit(func(h *heap.Heap) {
		block, err = h.Allocate(req.Name, req.Size, req.IsRoot)
	})

	if err != nil {
		s.writeErrorResponse(w, statusForError(err), err.Error())
		return
	}
	s.writeJSONResponse(w, http.StatusOK, block)
}

func (s *Server) handleFree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req freeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var err error
	s.submit(func(h *heap.Heap) {
		err = h.Free(req.Name)
	})

	if err != nil {
		s.writeErrorResponse(w, statusForError(err), err.Error())
		return
	}
	s.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "freed"})
}

func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req referenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var err error
	switch req.Action {
	case "add":
		s.submit(func(h *heap.Heap) { err = h.AddReference(req.From, req.To) })
	case "remove":
		s.submit(func(h *heap.Heap) { err = h.RemoveReference(req.From, req.To) })
	default:
		s.writeErrorResponse(w, http.StatusBadRequest, "action must be \"add\" or \"remove\"")
		return
	}

	if err != nil {
		s.writeErrorResponse(w, statusForError(err), err.Error())
		return
	}
	s.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req rootRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var err error
	s.submit(func(h *heap.Heap) {
		err = h.SetRoot(req.Name, req.IsRoot)
	})

	if err != nil {
		s.writeErrorResponse(w, statusForError(err), err.Error())
		return
	}
	s.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCollect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var freed int
	s.submit(func(h *heap.Heap) {
		freed = h.CollectContext(r.Context())
	})

	s.writeJSONResponse(w, http.StatusOK, collectResponse{FreedCount: freed})
}

func (s *Server) handleBlocks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var blocks []heap.BlockView
	s.submit(func(h *heap.Heap) {
		blocks = h.IterateBlocks()
	})

	s.writeJSONResponse(w, http.StatusOK, blocks)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var stats heap.Stats
	s.submit(func(h *heap.Heap) {
		stats = h.Stats()
	})

	s.writeJSONResponse(w, http.StatusOK, stats)
}

// statusForError maps a core error kind to its HTTP status, per SPEC_FULL.md
// §6.4's "structured error mapped to 4xx" contract.
func statusForError(err error) int {
	var notFound apperrors.NotFoundError
	var nameTooLong apperrors.NameTooLongError
	var duplicateName apperrors.DuplicateNameError
	var outOfMemory apperrors.OutOfMemoryError
	var invalidSize apperrors.InvalidSizeError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &nameTooLong), errors.As(err, &duplicateName), errors.As(err, &invalidSize):
		return http.StatusBadRequest
	case errors.As(err, &outOfMemory):
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", err)
	}
}

func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	s.writeJSONResponse(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
