// Package ptphttp exposes a ptp.Session's read-only operations over
// HTTP: a router-agnostic table of (method, path) to handler, bound
// onto a chi.Router.
package ptphttp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/go-chi/chi"

	"github.com/nasa-jpl/go-ptp/ptp"
)

// MethodPath is an HTTP method and URL pattern: a router-agnostic key
// so a route table is not tied to one mux implementation.
type MethodPath struct {
	Method, Path string
}

// RouteTable maps (method, path) to handler, bound onto a chi.Router by
// Bind.
type RouteTable map[MethodPath]http.HandlerFunc

// Bind registers every route in the table on mux, plus a
// /list-of-routes endpoint enumerating them as JSON.
func (rt RouteTable) Bind(mux chi.Router) {
	for mp, h := range rt {
		mux.Method(mp.Method, mp.Path, h)
	}
	mux.Get("/list-of-routes", rt.listRoutesHandler())
}

func (rt RouteTable) listRoutesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paths := make([]string, 0, len(rt))
		for mp := range rt {
			paths = append(paths, mp.Method+" "+mp.Path)
		}
		sort.Strings(paths)
		writeJSON(w, http.StatusOK, paths)
	}
}

// Handler is the bound HTTP surface for one ptp.Session: a thin
// wrapper struct whose constructor builds and returns its RouteTable.
// mu serializes every request that touches session, since a Session is
// not safe for concurrent use.
type Handler struct {
	mu      sync.Mutex
	session *ptp.Session
	table   RouteTable
}

// NewHandler builds the route table for session's read-only operations.
func NewHandler(session *ptp.Session) *Handler {
	h := &Handler{session: session}
	h.table = RouteTable{
		{http.MethodGet, "/device-info"}:          h.deviceInfo,
		{http.MethodGet, "/storage-ids"}:          h.storageIDs,
		{http.MethodGet, "/storage/{id}"}:         h.storageInfo,
		{http.MethodGet, "/objects"}:               h.objects,
		{http.MethodGet, "/object/{handle}/info"}: h.objectInfo,
		{http.MethodGet, "/object/{handle}/data"}: h.objectData,
	}
	return h
}

// RT returns the handler's route table, for Bind or inspection.
func (h *Handler) RT() RouteTable {
	return h.table
}

func (h *Handler) deviceInfo(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	info, err := h.session.GetDeviceInfo()
	h.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) storageIDs(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	ids, err := h.session.GetStorageIDs()
	h.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ids)
}

func (h *Handler) storageInfo(w http.ResponseWriter, r *http.Request) {
	id, err := parseU32(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	info, err := h.session.GetStorageInfo(id)
	h.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) objects(w http.ResponseWriter, r *http.Request) {
	storage, err := parseU32(r.URL.Query().Get("storage"))
	if err != nil {
		http.Error(w, "storage: "+err.Error(), http.StatusBadRequest)
		return
	}
	parent := uint32(0xFFFFFFFF)
	if p := r.URL.Query().Get("parent"); p != "" {
		parent, err = parseU32(p)
		if err != nil {
			http.Error(w, "parent: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	h.mu.Lock()
	handles, err := h.session.GetObjectHandles(storage, parent, nil)
	h.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, handles)
}

func (h *Handler) objectInfo(w http.ResponseWriter, r *http.Request) {
	handle, err := parseU32(chi.URLParam(r, "handle"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	info, err := h.session.GetObjectInfo(handle)
	h.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) objectData(w http.ResponseWriter, r *http.Request) {
	handle, err := parseU32(chi.URLParam(r, "handle"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	data, err := h.session.GetObject(handle)
	h.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Println("error writing object payload to client:", err)
	}
}

func parseU32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("error encoding response body:", err)
	}
}

// writeError maps a ptp error to an HTTP status: a non-Ok response code
// is a 502 (the device responded, but refused the operation); anything
// else is a 500.
func writeError(w http.ResponseWriter, err error) {
	if code, ok := ptp.IsResponse(err); ok {
		http.Error(w, ptp.StandardResponseCode.Name(code)+": "+err.Error(), http.StatusBadGateway)
		return
	}
	var pe *ptp.Error
	if errors.As(err, &pe) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
